package commands_test

import (
	"errors"
	"testing"
	"time"

	"fastex/internal/core/application/usecases/commands"
	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/core/domain/model/notification"
	"fastex/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const lockTTL = 10 * time.Second

func TestNewCancelBookingCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewCancelBookingCommand(id, "mary")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.BookingID())
	assert.Equal(t, "mary", cmd.Username())

	_, err = commands.NewCancelBookingCommand(kernel.UUID{}, " ")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCancelBookingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := newBooking(t, "mary")
	cmd, _ := commands.NewCancelBookingCommand(target.ID(), "mary")

	lock := new(MockCancellationLock)
	lock.On("Acquire", ctx, target.ID(), lockTTL).Return("hold-1", true, nil).Once()
	lock.On("Release", mock.Anything, target.ID(), "hold-1").Return(nil).Once()

	bookings := new(MockBookingRepository)
	users := new(MockUserRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookings).Once(),
		bookings.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		bookings.On("Update", ctx, mock.MatchedBy(func(b *booking.Booking) bool {
			return b.Status() == booking.Cancelled
		})).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("GetByUsername", ctx, "mary").Return(newUser(t, "mary"), nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
			return n.Kind() == notification.BookingCancelled
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelBookingCommandHandler(factory, lock, lockTTL, clock)
	cancelled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, booking.Cancelled, cancelled.Status())
	lock.AssertExpectations(t)
	bookings.AssertExpectations(t)
	outbox.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelBookingCommandHandler_Handle_LockHeld(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCancelBookingCommand(id, "mary")

	lock := new(MockCancellationLock)
	lock.On("Acquire", ctx, id, lockTTL).Return("", false, nil).Once()
	factory := new(MockBookingUoWFactory)

	h := commands.NewCancelBookingCommandHandler(factory, lock, lockTTL, clock)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCancellationInProgress)
	factory.AssertNotCalled(t, "Create")
	lock.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBookingCommandHandler_Handle_LockError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCancelBookingCommand(id, "mary")

	lock := new(MockCancellationLock)
	lock.On("Acquire", ctx, id, commands.DefaultCancellationLockTTL).Return("", false, errors.New("redis down")).Once()

	h := commands.NewCancelBookingCommandHandler(new(MockBookingUoWFactory), lock, 0, clock)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "redis down")
}

func TestCancelBookingCommandHandler_Handle_DomainErrors(t *testing.T) {
	testCases := []struct {
		name     string
		target   func(t *testing.T) *booking.Booking
		username string
		expected error
	}{
		{
			name:     "not the owner",
			target:   func(t *testing.T) *booking.Booking { return newBooking(t, "mary") },
			username: "john",
			expected: booking.ErrNotOwner,
		},
		{
			name: "already cancelled",
			target: func(t *testing.T) *booking.Booking {
				b := newBooking(t, "mary")
				require.NoError(t, b.Cancel("mary"))
				return b
			},
			username: "mary",
			expected: booking.ErrAlreadyCancelled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			target := tc.target(t)
			cmd, _ := commands.NewCancelBookingCommand(target.ID(), tc.username)

			lock := new(MockCancellationLock)
			lock.On("Acquire", ctx, target.ID(), lockTTL).Return("hold-1", true, nil).Once()
			lock.On("Release", mock.Anything, target.ID(), "hold-1").Return(nil).Once()

			bookings := new(MockBookingRepository)
			uow := new(MockUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("BookingRepository").Return(bookings).Once(),
				bookings.On("Get", ctx, target.ID()).Return(target, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)
			factory := new(MockBookingUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewCancelBookingCommandHandler(factory, lock, lockTTL, clock)
			_, err := h.Handle(ctx, cmd)

			require.ErrorIs(t, err, tc.expected)
			bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			lock.AssertExpectations(t)
		})
	}
}

func TestCancelBookingCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCancelBookingCommand(id, "mary")

	lock := new(MockCancellationLock)
	lock.On("Acquire", ctx, id, lockTTL).Return("hold-1", true, nil).Once()
	lock.On("Release", mock.Anything, id, "hold-1").Return(nil).Once()

	bookings := new(MockBookingRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BookingRepository").Return(bookings).Once()
	bookings.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("bookingId", id.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelBookingCommandHandler(factory, lock, lockTTL, clock)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	lock.AssertExpectations(t)
}
