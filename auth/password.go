package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Default Argon2 parameters based on OWASP recommendations
const (
	DefaultMemory      = 64 * 1024 // 64 MB
	DefaultIterations  = 3
	DefaultParallelism = 2
	SaltLength         = 16
	KeyLength          = 32
)

// Argon2Hasher implements CredentialHasher with Argon2id.
type Argon2Hasher struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
}

func NewArgon2Hasher(memory, iterations uint32, parallelism uint8) Argon2Hasher {
	return Argon2Hasher{memory: memory, iterations: iterations, parallelism: parallelism}
}

func DefaultHasher() Argon2Hasher {
	return NewArgon2Hasher(DefaultMemory, DefaultIterations, DefaultParallelism)
}

// Hash generates a secure Argon2id hash from a plain text credential.
func (h Argon2Hasher) Hash(credential string) (string, error) {
	// 1. Generate a random salt
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	// 2. Generate the hash
	hash := argon2.IDKey([]byte(credential), salt, h.iterations, h.memory, h.parallelism, KeyLength)

	// 3. Format the result for storage (encoded in base64)
	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	// We return a string containing all the metadata needed for verification
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s", argon2.Version, h.memory, h.iterations, h.parallelism, b64Salt, b64Hash), nil
}

// Compare compares a plain text credential with a stored hash.
func (h Argon2Hasher) Compare(credential, encodedHash string) (bool, error) {
	// 1. Parse the encoded hash
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return false, errors.New("invalid hash format")
	}

	var version, memory, iterations, parallelism int
	if n, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || n != 1 {
		return false, errors.New("invalid hash format")
	}
	if n, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil || n != 3 {
		return false, errors.New("invalid hash format")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, err
	}

	decodedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, err
	}

	// 2. Re-hash the credential with the parameters stored in the hash itself
	comparisonHash := argon2.IDKey([]byte(credential), salt, uint32(iterations), uint32(memory), uint8(parallelism), uint32(len(decodedHash)))

	// 3. Constant time comparison to prevent timing attacks
	if subtle.ConstantTimeCompare(decodedHash, comparisonHash) == 1 {
		return true, nil
	}

	return false, nil
}
