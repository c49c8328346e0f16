package commands

import (
	"context"
	"errors"

	"fastex/internal/core/ports"
	"fastex/internal/pkg/errs"
)

// ErrBadCredentials is returned for an unknown username or a wrong password.
// The two cases are deliberately indistinguishable to the caller.
var ErrBadCredentials = errors.New("Bad credentials")

// AuthenticateUserCommandHandler checks credentials and issues a token.
type AuthenticateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

// NewAuthenticateUserCommandHandler creates the handler.
func NewAuthenticateUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) AuthenticateUserCommandHandler {
	return AuthenticateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

// Handle returns a signed token for valid credentials, or ErrBadCredentials.
func (h *AuthenticateUserCommandHandler) Handle(ctx context.Context, cmd AuthenticateUserCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.UserRepository().GetByUsername(ctx, cmd.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", ErrBadCredentials
	}
	if err != nil {
		return "", err
	}

	if err = h.hasher.Compare(customer.PasswordHash(), cmd.Password()); err != nil {
		if errors.Is(err, ports.ErrPasswordMismatch) {
			return "", ErrBadCredentials
		}
		return "", err
	}

	return h.issuer.Issue(customer.Username())
}
