package http_test

import (
	"context"

	"fastex/internal/core/application/usecases/commands"
	"fastex/internal/core/application/usecases/queries"
	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
)

type MockCreateBookingHandler struct{ mock.Mock }

func (m *MockCreateBookingHandler) Handle(ctx context.Context, cmd commands.CreateBookingCommand) (*booking.Booking, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

type MockCancelBookingHandler struct{ mock.Mock }

func (m *MockCancelBookingHandler) Handle(ctx context.Context, cmd commands.CancelBookingCommand) (*booking.Booking, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

type MockRegisterUserHandler struct{ mock.Mock }

func (m *MockRegisterUserHandler) Handle(ctx context.Context, cmd commands.RegisterUserCommand) (*user.User, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockAuthenticateUserHandler struct{ mock.Mock }

func (m *MockAuthenticateUserHandler) Handle(ctx context.Context, cmd commands.AuthenticateUserCommand) (string, error) {
	args := m.Called(ctx, cmd)
	return args.String(0), args.Error(1)
}

type MockGetMyBookingsHandler struct{ mock.Mock }

func (m *MockGetMyBookingsHandler) Handle(
	ctx context.Context,
	query queries.GetMyBookingsQuery,
) ([]queries.GetMyBookingsQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetMyBookingsQueryResponse), args.Error(1)
}
