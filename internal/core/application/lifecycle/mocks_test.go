package lifecycle_test

import (
	"context"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) CreateBooking(ctx context.Context, token string, details booking.Details) (*booking.Booking, error) {
	args := m.Called(ctx, token, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingStore) ListBookings(ctx context.Context, token string) ([]*booking.Booking, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

func (m *MockBookingStore) CancelBooking(ctx context.Context, token string, id kernel.UUID) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

type MockAuthGate struct {
	mock.Mock
}

func (m *MockAuthGate) CurrentSession(ctx context.Context) (ports.Session, bool) {
	args := m.Called(ctx)
	return args.Get(0).(ports.Session), args.Bool(1)
}

func (m *MockAuthGate) Token(ctx context.Context) (string, bool) {
	args := m.Called(ctx)
	return args.String(0), args.Bool(1)
}

func signedIn(auth *MockAuthGate, identity string) {
	auth.On("CurrentSession", mock.Anything).Return(ports.Session{Identity: identity, Token: "tok-" + identity}, true)
	auth.On("Token", mock.Anything).Return("tok-"+identity, true)
}

func signedOut(auth *MockAuthGate) {
	auth.On("CurrentSession", mock.Anything).Return(ports.Session{}, false)
	auth.On("Token", mock.Anything).Return("", false)
}
