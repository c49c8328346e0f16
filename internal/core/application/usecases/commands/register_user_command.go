package commands

import (
	"errors"
	"strings"

	"fastex/internal/core/domain/model/user"
	"fastex/internal/pkg/errs"
	"fastex/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand creates a customer account.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	username  string
	password  string
	firstname string
	lastname  string
	email     string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand checks the plain-text password rules and that
// username, first name and e-mail are present. The e-mail format and the
// remaining invariants are enforced by user.NewUser.
func NewRegisterUserCommand(username, password, firstname, lastname, email string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		username:  strings.TrimSpace(username),
		password:  password,
		firstname: strings.TrimSpace(firstname),
		lastname:  strings.TrimSpace(lastname),
		email:     strings.TrimSpace(email),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		required("username", cmd.username),
		user.ValidatePassword(password),
		required("firstname", cmd.firstname),
		required("email", cmd.email),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Username() string  { return c.username }
func (c RegisterUserCommand) Password() string  { return c.password }
func (c RegisterUserCommand) Firstname() string { return c.firstname }
func (c RegisterUserCommand) Lastname() string  { return c.lastname }
func (c RegisterUserCommand) Email() string     { return c.email }

func required(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
