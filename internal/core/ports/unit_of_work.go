package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one database transaction spanning bookings, users and the
// notification outbox. Repositories run inside the open transaction, or on the
// plain connection when none is open. A deferred Rollback after Commit returns
// an error that callers ignore.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when no transaction is open.
	Commit(ctx context.Context) error

	// Rollback fails when no transaction is open.
	Rollback(ctx context.Context) error

	BookingRepository() BookingRepository
	UserRepository() UserRepository
	OutboxRepository() OutboxRepository
}
