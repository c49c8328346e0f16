package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"fastex/internal/core/application/usecases/commands"
	"fastex/internal/core/application/usecases/queries"
	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/core/domain/model/user"
	"fastex/internal/core/ports"
	"fastex/internal/generated/servers"
	"fastex/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	CreateBookingHandler interface {
		Handle(ctx context.Context, cmd commands.CreateBookingCommand) (*booking.Booking, error)
	}

	CancelBookingHandler interface {
		Handle(ctx context.Context, cmd commands.CancelBookingCommand) (*booking.Booking, error)
	}

	RegisterUserHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterUserCommand) (*user.User, error)
	}

	AuthenticateUserHandler interface {
		Handle(ctx context.Context, cmd commands.AuthenticateUserCommand) (string, error)
	}

	GetMyBookingsHandler interface {
		Handle(ctx context.Context, query queries.GetMyBookingsQuery) ([]queries.GetMyBookingsQueryResponse, error)
	}

	GetMasterDataHandler interface {
		Handle(ctx context.Context, query queries.GetMasterDataQuery) (queries.GetMasterDataQueryResponse, error)
	}
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createBookingHandler    CreateBookingHandler
	cancelBookingHandler    CancelBookingHandler
	registerUserHandler     RegisterUserHandler
	authenticateUserHandler AuthenticateUserHandler

	// Query handlers
	getMyBookingsHandler GetMyBookingsHandler
	getMasterDataHandler GetMasterDataHandler

	tokens ports.TokenVerifier
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createBookingHandler CreateBookingHandler,
	cancelBookingHandler CancelBookingHandler,
	registerUserHandler RegisterUserHandler,
	authenticateUserHandler AuthenticateUserHandler,
	getMyBookingsHandler GetMyBookingsHandler,
	getMasterDataHandler GetMasterDataHandler,
	tokens ports.TokenVerifier,
	logger *slog.Logger,
) *Server {
	return &Server{
		createBookingHandler:    createBookingHandler,
		cancelBookingHandler:    cancelBookingHandler,
		registerUserHandler:     registerUserHandler,
		authenticateUserHandler: authenticateUserHandler,
		getMyBookingsHandler:    getMyBookingsHandler,
		getMasterDataHandler:    getMasterDataHandler,
		tokens:                  tokens,
		logger:                  logger.With("component", "http_server"),
	}
}

// GetMasterData handles GET /api/v1/master - returns the selection catalog.
func (s *Server) GetMasterData(ctx echo.Context) error {
	data, err := s.getMasterDataHandler.Handle(ctx.Request().Context(), queries.NewGetMasterDataQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve master data")
	}

	response := servers.MasterData{
		Locations:      make([]string, 0, len(data.Locations)),
		ServiceClasses: make([]string, 0, len(data.ServiceClasses)),
	}
	for _, l := range data.Locations {
		response.Locations = append(response.Locations, l.Name())
	}
	for _, c := range data.ServiceClasses {
		response.ServiceClasses = append(response.ServiceClasses, c.String())
	}

	return ctx.JSON(http.StatusOK, response)
}

// Register handles POST /api/v1/auth/register - creates a customer account.
func (s *Server) Register(ctx echo.Context) error {
	var req servers.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(req.Username, req.Password, req.Firstname, req.Lastname, req.Email)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid registration data: "+err.Error())
	}

	u, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Registration failed")
	}

	return ctx.JSON(http.StatusCreated, servers.Customer{
		Username:  u.Username(),
		Firstname: u.Firstname(),
		Lastname:  u.Lastname(),
		Email:     u.Email(),
	})
}

// Login handles POST /api/v1/auth/login - exchanges credentials for a token.
func (s *Server) Login(ctx echo.Context) error {
	var req servers.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAuthenticateUserCommand(req.Username, req.Password)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid credentials data: "+err.Error())
	}

	token, err := s.authenticateUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Login failed")
	}

	return ctx.JSON(http.StatusOK, servers.LoginResponse{Token: token})
}

// CreateBooking handles POST /api/v1/booking - stores a booking for the caller.
func (s *Server) CreateBooking(ctx echo.Context) error {
	username, err := s.authenticate(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Unauthorized")
	}

	var req servers.NewBooking
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	details, err := detailsFromRequest(req)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid booking data: "+err.Error())
	}

	cmd, err := commands.NewCreateBookingCommand(kernel.NewUUID(), username, details)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid booking data: "+err.Error())
	}

	b, err := s.createBookingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create booking")
	}

	return ctx.JSON(http.StatusCreated, bookingFromAggregate(b))
}

// GetMyBookings handles GET /api/v1/booking/myBookings - lists the caller's active bookings.
func (s *Server) GetMyBookings(ctx echo.Context) error {
	username, err := s.authenticate(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Unauthorized")
	}

	query, err := queries.NewGetMyBookingsQuery(username)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	bookings, err := s.getMyBookingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve bookings")
	}

	response := make([]servers.Booking, len(bookings))
	for i, b := range bookings {
		response[i] = bookingResponse(b.ID, b.Details, b.Status, b.BookedBy, b.BookedOn)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelBooking handles DELETE /api/v1/booking/{bookingId} - cancels one of the caller's bookings.
func (s *Server) CancelBooking(ctx echo.Context, bookingId openapi_types.UUID) error {
	username, err := s.authenticate(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Unauthorized")
	}

	id, err := kernel.UUIDFromBytes(bookingId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid booking id")
	}

	cmd, err := commands.NewCancelBookingCommand(id, username)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	b, err := s.cancelBookingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to cancel booking")
	}

	return ctx.JSON(http.StatusOK, bookingFromAggregate(b))
}

// authenticate returns the username of a valid bearer token.
func (s *Server) authenticate(ctx echo.Context) (string, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", ports.ErrInvalidToken
	}

	return s.tokens.Verify(strings.TrimSpace(token))
}

// fail maps application errors to HTTP statuses. Unexpected errors are logged
// and reported as 500 with the generic message.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, commands.ErrBadCredentials):
		return errorJSON(ctx, http.StatusUnauthorized, commands.ErrBadCredentials.Error())
	case errors.Is(err, booking.ErrNotOwner):
		return errorJSON(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrAlreadyCancelled),
		errors.Is(err, commands.ErrCancellationInProgress),
		errors.Is(err, user.ErrUsernameTaken):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	s.logger.ErrorContext(ctx.Request().Context(), message,
		"method", ctx.Request().Method,
		"path", ctx.Path(),
		"error", err,
	)
	return errorJSON(ctx, http.StatusInternalServerError, message)
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}
