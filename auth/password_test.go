package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	hasher := DefaultHasher()
	credential := "S0meSecretNobodyKnows!"

	hash, err := hasher.Hash(credential)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))
	req.NotContains(hash, credential)

	match, err := hasher.Compare(credential, hash)
	req.NoError(err)
	req.True(match)

	match, err = hasher.Compare("WrongCredential", hash)
	req.NoError(err)
	req.False(match)
}

func TestCompare_RejectsMalformedHash(t *testing.T) {
	req := require.New(t)
	hasher := DefaultHasher()

	_, err := hasher.Compare("whatever", "not-an-encoded-hash")
	req.Error(err)
}

func TestCompare_RejectsGarbageParameters(t *testing.T) {
	req := require.New(t)
	hasher := DefaultHasher()

	// Six dollar-separated parts, but the parameter fields don't parse
	_, err := hasher.Compare("whatever", "$argon2id$v=19$garbage$c2FsdA$aGFzaA")
	req.Error(err)

	_, err = hasher.Compare("whatever", "$argon2id$nonsense$m=65536,t=3,p=2$c2FsdA$aGFzaA")
	req.Error(err)
}

func TestHash_SaltsAreRandom(t *testing.T) {
	req := require.New(t)
	hasher := DefaultHasher()

	first, err := hasher.Hash("same-credential")
	req.NoError(err)
	second, err := hasher.Hash("same-credential")
	req.NoError(err)

	req.NotEqual(first, second)
}

func TestCompare_AcceptsForeignParameters(t *testing.T) {
	req := require.New(t)
	// The verification parameters come from the encoded hash, not from
	// the verifying hasher.
	weak := NewArgon2Hasher(8*1024, 1, 1)
	strong := DefaultHasher()

	hash, err := weak.Hash("credential")
	req.NoError(err)

	match, err := strong.Compare("credential", hash)
	req.NoError(err)
	req.True(match)
}

// BenchmarkHash measures the CPU/RAM impact of a single derivation.
func BenchmarkHash(b *testing.B) {
	hasher := DefaultHasher()
	for i := 0; i < b.N; i++ {
		_, _ = hasher.Hash("A-very-long-and-complex-credential-for-bench-123!")
	}
}
