// Package service defines the ports the use cases depend on: hashing, tokens,
// revocation, image storage, QR codes and event publishing.
package service

// PasswordHasher hashes passwords at registration and checks them at login.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
