//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=../mocks/mock_hasher.go -package=mocks
package auth

// CredentialHasher derives one-way hashes from credentials and verifies
// them. The plaintext never leaves the call site.
type CredentialHasher interface {
	Hash(credential string) (string, error)
	Compare(credential, encodedHash string) (bool, error)
}
