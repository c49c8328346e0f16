// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fastex/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BookingRepoFactory provides access to the booking repository within a transaction.
	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OutboxRepoFactory provides access to the notification outbox within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// BookingUoW spans a booking change, the customer lookup and the outbox
	// write, so a notification is queued only when the booking is committed.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   b, err := uow.BookingRepository().Get(ctx, id)
	//   // ... mutate, then queue the notification
	//   err = uow.OutboxRepository().Add(ctx, n)
	//
	//   err = uow.Commit(ctx)
	BookingUoW interface {
		TxManager
		BookingRepoFactory
		UserRepoFactory
		OutboxRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// OutboxUoW manages transactions for outbox maintenance.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
