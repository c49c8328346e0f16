// Package postgres provides the GORM-based Unit of Work for the Booking Store.
// A unit of work spans one business transaction: a booking change, the customer
// lookup it needs and the outbox notification it queues are committed together
// or not at all.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.BookingRepository().Add(ctx, b); err != nil {
//	    return err
//	}
//	if err := uow.OutboxRepository().Add(ctx, n); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns at most one transaction; goroutines must use
// separate instances.
package postgres

import (
	"context"

	"fastex/internal/adapters/out/postgres/bookingrepo"
	"fastex/internal/adapters/out/postgres/outboxrepo"
	"fastex/internal/adapters/out/postgres/userrepo"
	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// Models lists the persistence models of every repository, in migration order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&bookingrepo.BookingDTO{},
		&outboxrepo.NotificationDTO{},
	}
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and records the aggregates
// written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin again while a transaction is
// open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction when
// no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when
// no transaction is open, which makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// BookingRepository returns a booking repository bound to the open transaction,
// or to the plain connection when none is open.
func (uow *GormUnitOfWork) BookingRepository() ports.BookingRepository {
	return bookingrepo.NewGormBookingRepository(uow.conn(), uow)
}

// UserRepository returns a user repository bound to the open transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

// OutboxRepository returns an outbox repository bound to the open transaction.
func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount reports how many writes were tracked so far.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
