// Package session holds the signed-in customer's bearer token on the client
// side and answers the core's Auth Gate questions from it.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"fastex/internal/core/ports"

	"github.com/golang-jwt/jwt"
)

var _ ports.AuthGate = (*Store)(nil)

// Store keeps at most one token. The identity is the token's subject; the
// signature is not checked here since the Booking Store verifies every call.
// An expired or unreadable token counts as no session.
type Store struct {
	clock  func() time.Time
	parser jwt.Parser

	mu    sync.RWMutex
	token string
}

// NewStore creates an empty store. A nil clock means time.Now.
func NewStore(clock func() time.Time) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{clock: clock}
}

// SignIn keeps token as the current session token.
func (s *Store) SignIn(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
}

// SignOut drops the token.
func (s *Store) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// CurrentSession implements ports.AuthGate.
func (s *Store) CurrentSession(_ context.Context) (ports.Session, bool) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	identity, ok := s.identity(token)
	if !ok {
		return ports.Session{}, false
	}
	return ports.Session{Identity: identity, Token: token}, true
}

// Token implements ports.AuthGate.
func (s *Store) Token(ctx context.Context) (string, bool) {
	session, ok := s.CurrentSession(ctx)
	if !ok {
		return "", false
	}
	return session.Token, true
}

func (s *Store) identity(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	claims := &jwt.StandardClaims{}
	if _, _, err := s.parser.ParseUnverified(token, claims); err != nil {
		return "", false
	}
	if claims.Subject == "" || !claims.VerifyExpiresAt(s.clock().Unix(), false) {
		return "", false
	}
	return claims.Subject, true
}
