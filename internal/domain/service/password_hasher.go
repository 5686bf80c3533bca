// Package service defines interfaces for core, stateless domain logic and for
// the external collaborators the use cases depend on.
package service

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext secret.
	Hash(password string) (string, error)

	// Check compares a plaintext secret with a hash.
	Check(password, hash string) bool
}
