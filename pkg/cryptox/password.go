package cryptox

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is embedded in every hash we produce, so raising it later only
// affects newly written hashes.
const bcryptCost = 10

// HashPassword returns a bcrypt hash of the password with an embedded random
// salt and cost factor.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash.
// Returns nil on match. The comparison is constant-time with respect to the
// hash contents.
func VerifyPassword(password, encodedHash string) error {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
}

// padHash is a throwaway hash used to equalize response timing when a login
// names an email that has no user row.
var padHash, _ = bcrypt.GenerateFromPassword([]byte("folio-timing-pad"), bcryptCost)

// DummyVerify burns roughly the same CPU as a real verification against a
// stored hash. It always fails; only the elapsed time matters.
func DummyVerify(password string) {
	_ = bcrypt.CompareHashAndPassword(padHash, []byte(password))
}
