// Package auth signs and verifies bearer tokens and hashes customer passwords.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fastex/internal/core/ports"
	"fastex/internal/pkg/errs"

	"github.com/golang-jwt/jwt"
)

// Issuer is the iss claim of every token this service signs.
const Issuer = "fastex"

// JWTTokens issues and verifies HS256 tokens whose subject is the username.
type JWTTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTTokens creates the token service. A nil clock means time.Now.
func NewJWTTokens(secret string, ttl time.Duration, clock func() time.Time) (*JWTTokens, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("ttl", fmt.Errorf("%s is not positive", ttl))
	}
	if clock == nil {
		clock = time.Now
	}

	return &JWTTokens{secret: []byte(secret), ttl: ttl, now: clock}, nil
}

// Issue signs a token for username valid for the configured TTL.
func (t *JWTTokens) Issue(username string) (string, error) {
	if strings.TrimSpace(username) == "" {
		return "", errs.NewValueIsRequiredError("username")
	}

	now := t.now()
	claims := jwt.StandardClaims{
		Subject:   username,
		Issuer:    Issuer,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(t.ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks signature, issuer and expiry and returns the subject.
// Every failure maps to ports.ErrInvalidToken.
func (t *JWTTokens) Verify(token string) (string, error) {
	claims := &jwt.StandardClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", errors.Join(ports.ErrInvalidToken, err)
	}

	if !claims.VerifyIssuer(Issuer, true) {
		return "", ports.ErrInvalidToken
	}
	if !claims.VerifyExpiresAt(t.now().Unix(), true) {
		return "", ports.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ports.ErrInvalidToken
	}

	return claims.Subject, nil
}
