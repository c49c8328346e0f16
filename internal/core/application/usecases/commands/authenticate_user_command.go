package commands

import (
	"errors"
	"strings"

	"fastex/internal/pkg/guard"
)

var ErrAuthenticateUserCommandIsNotConstructed = errors.New(
	"AuthenticateUserCommand must be created via NewAuthenticateUserCommand constructor",
)

// AuthenticateUserCommand exchanges credentials for a bearer token.
type AuthenticateUserCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserCommand requires a username and a password.
func NewAuthenticateUserCommand(username, password string) (AuthenticateUserCommand, error) {
	cmd := AuthenticateUserCommand{
		username: strings.TrimSpace(username),
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		required("username", cmd.username),
		required("password", cmd.password),
	); err != nil {
		return AuthenticateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AuthenticateUserCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateUserCommandIsNotConstructed)
}

func (c AuthenticateUserCommand) Username() string { return c.username }
func (c AuthenticateUserCommand) Password() string { return c.password }
