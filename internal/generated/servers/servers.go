// Package servers holds the wire types and echo bindings of the Booking Store
// REST API described by the embedded openapi.yaml.
package servers

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

//go:embed openapi.yaml
var spec []byte

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MasterData defines model for MasterData.
type MasterData struct {
	Locations      []string `json:"locations"`
	ServiceClasses []string `json:"serviceClasses"`
}

// RegisterRequest defines model for RegisterRequest.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname,omitempty"`
	Email     string `json:"email"`
}

// Customer defines model for Customer.
type Customer struct {
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse defines model for LoginResponse.
type LoginResponse struct {
	Token string `json:"token"`
}

// NewBooking defines model for NewBooking.
type NewBooking struct {
	FromLocation          string  `json:"fromLocation"`
	ToLocation            string  `json:"toLocation"`
	Price                 float64 `json:"price"`
	ServiceClass          string  `json:"serviceClass"`
	PickupAddress         string  `json:"pickupAddress"`
	DeliveryAddress       string  `json:"deliveryAddress"`
	ReceiverName          string  `json:"receiverName"`
	EstimatedDeliveryDate string  `json:"estimatedDeliveryDate"`
}

// Booking defines model for Booking.
type Booking struct {
	Id                    openapi_types.UUID `json:"id"`
	FromLocation          string             `json:"fromLocation"`
	ToLocation            string             `json:"toLocation"`
	Price                 float64            `json:"price"`
	ServiceClass          string             `json:"serviceClass"`
	PickupAddress         string             `json:"pickupAddress"`
	DeliveryAddress       string             `json:"deliveryAddress"`
	ReceiverName          string             `json:"receiverName"`
	EstimatedDeliveryDate string             `json:"estimatedDeliveryDate"`
	Status                string             `json:"status"`
	BookedBy              string             `json:"bookedBy"`
	BookedOn              time.Time          `json:"bookedOn"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Locations and service classes available for booking.
	// (GET /api/v1/master)
	GetMasterData(ctx echo.Context) error
	// Register a customer.
	// (POST /api/v1/auth/register)
	Register(ctx echo.Context) error
	// Exchange credentials for a bearer token.
	// (POST /api/v1/auth/login)
	Login(ctx echo.Context) error
	// Book a delivery.
	// (POST /api/v1/booking)
	CreateBooking(ctx echo.Context) error
	// Active bookings of the signed-in customer.
	// (GET /api/v1/booking/myBookings)
	GetMyBookings(ctx echo.Context) error
	// Cancel one of the customer's bookings.
	// (DELETE /api/v1/booking/{bookingId})
	CancelBooking(ctx echo.Context, bookingId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetMasterData converts echo context to params.
func (w *ServerInterfaceWrapper) GetMasterData(ctx echo.Context) error {
	return w.Handler.GetMasterData(ctx)
}

// Register converts echo context to params.
func (w *ServerInterfaceWrapper) Register(ctx echo.Context) error {
	return w.Handler.Register(ctx)
}

// Login converts echo context to params.
func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	return w.Handler.Login(ctx)
}

// CreateBooking converts echo context to params.
func (w *ServerInterfaceWrapper) CreateBooking(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CreateBooking(ctx)
}

// GetMyBookings converts echo context to params.
func (w *ServerInterfaceWrapper) GetMyBookings(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.GetMyBookings(ctx)
}

// CancelBooking converts echo context to params.
func (w *ServerInterfaceWrapper) CancelBooking(ctx echo.Context) error {
	var bookingId openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "bookingId", ctx.Param("bookingId"), &bookingId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter bookingId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CancelBooking(ctx, bookingId)
}

// EchoRouter is implemented by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/master", wrapper.GetMasterData)
	router.POST(baseURL+"/api/v1/auth/register", wrapper.Register)
	router.POST(baseURL+"/api/v1/auth/login", wrapper.Login)
	router.POST(baseURL+"/api/v1/booking", wrapper.CreateBooking)
	router.GET(baseURL+"/api/v1/booking/myBookings", wrapper.GetMyBookings)
	router.DELETE(baseURL+"/api/v1/booking/:bookingId", wrapper.CancelBooking)
}

// RawSpec returns the embedded OpenAPI document as YAML.
func RawSpec() []byte {
	out := make([]byte, len(spec))
	copy(out, spec)
	return out
}

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}

	if err = swagger.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("error validating Swagger: %w", err)
	}

	return swagger, nil
}
