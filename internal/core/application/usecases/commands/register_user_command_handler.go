package commands

import (
	"context"

	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/core/domain/model/user"
	"fastex/internal/core/ports"
)

// RegisterUserCommandHandler hashes the password and stores the new customer.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterUserCommandHandler creates the handler.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle returns user.ErrUsernameTaken when the username already exists.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	customer, err := user.NewUser(kernel.NewUUID(), cmd.Username(), hash, cmd.Firstname(), cmd.Lastname(), cmd.Email())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, customer); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return customer, nil
}
