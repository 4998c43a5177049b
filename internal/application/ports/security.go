package ports

// PasswordHasher hashes and verifies passwords (Argon2id).
// Verify must report false on a malformed hash rather than fail hard;
// it sits on the authentication path.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
