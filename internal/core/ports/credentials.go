package ports

import (
	"errors"
)

var (
	// ErrInvalidToken is returned for malformed, forged or expired tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrPasswordMismatch is returned when a password does not match its hash.
	ErrPasswordMismatch = errors.New("password does not match")
)

// PasswordHasher hashes and checks customer passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer signs bearer tokens for authenticated customers.
type TokenIssuer interface {
	Issue(username string) (string, error)
}

// TokenVerifier checks a bearer token and returns the username it was issued to.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
