package service

// PasswordHasher defines the interface for hashing and verifying passwords.
type PasswordHasher interface {
	// Hash creates a hash from a plain-text password.
	Hash(password string) (string, error)

	// Check compares a plain-text password with a stored hash.
	Check(password, hash string) bool
}
