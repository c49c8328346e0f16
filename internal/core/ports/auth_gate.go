package ports

import (
	"context"
)

// Session is an authenticated customer as seen by the client core.
type Session struct {
	Identity string
	Token    string
}

// AuthGate answers whether a customer is signed in and who they are.
type AuthGate interface {
	// CurrentSession returns false when nobody is signed in.
	CurrentSession(ctx context.Context) (Session, bool)

	// Token returns the bearer token, or false when absent.
	Token(ctx context.Context) (string, bool)
}
