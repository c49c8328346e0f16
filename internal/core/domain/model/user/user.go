// Package user contains the registered customer aggregate used by the Booking
// Store to authenticate requests and address notifications.
package user

import (
	"errors"
	"fmt"
	"strings"

	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User was not created through NewUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	// ErrUsernameTaken is returned when registering a username that already exists.
	ErrUsernameTaken = errors.New("username is already taken")
)

// MinPasswordLength is the shortest plain-text password accepted at registration.
const MinPasswordLength = 6

// User is a registered customer. It never holds the plain-text password, only
// its hash.
type User struct {
	id           kernel.UUID
	username     string
	passwordHash string
	firstname    string
	lastname     string
	email        string

	isConstructed bool
}

// NewUser creates a customer from an already hashed password. Username,
// first name, e-mail and password hash are required; the last name may be empty.
func NewUser(id kernel.UUID, username, passwordHash, firstname, lastname, email string) (*User, error) {
	u := &User{isConstructed: true, lastname: strings.TrimSpace(lastname)}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setPasswordHash(passwordHash),
		u.setFirstname(firstname),
		u.setEmail(email),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was created by NewUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID      { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Firstname() string    { return u.firstname }
func (u *User) Lastname() string     { return u.lastname }
func (u *User) Email() string        { return u.email }

// ValidatePassword checks a plain-text password against the registration rules.
func ValidatePassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < MinPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("must be at least %d characters", MinPasswordLength))
	}
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setFirstname(firstname string) error {
	firstname = strings.TrimSpace(firstname)
	if firstname == "" {
		return errs.NewValueIsRequiredError("firstname")
	}
	u.firstname = firstname
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an e-mail address", email))
	}
	u.email = email
	return nil
}
