package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidHash indicates a stored hash that bcrypt cannot parse. This is a
// data corruption or migration problem, distinct from a wrong password.
var ErrInvalidHash = errors.New("crypto: stored password hash is malformed")

// HashPassword hashes plaintext using bcrypt. The salt and cost factor are
// embedded in the returned hash, so verification needs no external state.
func HashPassword(plain string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
}

// ComparePassword checks plaintext against a bcrypt hash in constant time.
// A mismatch is a normal false result, not an error.
func ComparePassword(hash []byte, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(hash, []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, ErrInvalidHash
	}
}
