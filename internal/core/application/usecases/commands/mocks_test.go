package commands_test

import (
	"context"
	"time"

	"fastex/internal/core/application/usecases/commands"
	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/core/domain/model/notification"
	"fastex/internal/core/domain/model/user"
	"fastex/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockOutboxRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

func (m *MockOutboxRepository) DeletePublishedBefore(ctx context.Context, t time.Time) (int64, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW implements every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

type MockCancellationLock struct{ mock.Mock }

func (m *MockCancellationLock) Acquire(ctx context.Context, id kernel.UUID, ttl time.Duration) (string, bool, error) {
	args := m.Called(ctx, id, ttl)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockCancellationLock) Release(ctx context.Context, id kernel.UUID, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(username string) (string, error) {
	args := m.Called(username)
	return args.String(0), args.Error(1)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
