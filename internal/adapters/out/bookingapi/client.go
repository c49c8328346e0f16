// Package bookingapi is the client side of the Booking Store REST API. It
// implements ports.BookingStore and ports.MasterDataProvider for the client core.
package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/core/ports"
	"fastex/internal/generated/servers"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	_ ports.BookingStore       = (*Client)(nil)
	_ ports.MasterDataProvider = (*Client)(nil)
)

// ResponseError is a non-success answer from the Booking Store.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("booking store responded %d", e.StatusCode)
	}
	return fmt.Sprintf("booking store responded %d: %s", e.StatusCode, e.Message)
}

// Client talks JSON to the Booking Store. Timeouts belong to the underlying
// http.Client; the client never retries.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// NewClient creates a client for the store at baseURL, e.g. "http://localhost:8080".
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	return NewClientWithHTTP(baseURL, &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

// NewClientWithHTTP creates a client using the given http.Client.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) (*Client, error) {
	if httpClient == nil {
		return nil, errors.New("http client is required")
	}

	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse booking store url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("booking store url %q must be absolute", baseURL)
	}

	return &Client{baseURL: u, httpClient: httpClient}, nil
}

// FetchMasterData implements ports.MasterDataProvider.
func (c *Client) FetchMasterData(ctx context.Context) (ports.MasterData, error) {
	var body servers.MasterData
	if err := c.do(ctx, http.MethodGet, "/api/v1/master", "", nil, &body); err != nil {
		return ports.MasterData{}, err
	}
	return ports.MasterData{Locations: body.Locations, ServiceClasses: body.ServiceClasses}, nil
}

// CreateBooking implements ports.BookingStore.
func (c *Client) CreateBooking(ctx context.Context, token string, details booking.Details) (*booking.Booking, error) {
	if err := details.Validate(); err != nil {
		return nil, err
	}

	req := servers.NewBooking{
		FromLocation:          details.FromLocation().Name(),
		ToLocation:            details.ToLocation().Name(),
		Price:                 details.Price().InexactFloat64(),
		ServiceClass:          details.ServiceClass().String(),
		PickupAddress:         details.PickupAddress(),
		DeliveryAddress:       details.DeliveryAddress(),
		ReceiverName:          details.ReceiverName(),
		EstimatedDeliveryDate: details.EstimatedDeliveryDate(),
	}

	var body servers.Booking
	if err := c.do(ctx, http.MethodPost, "/api/v1/booking", token, req, &body); err != nil {
		return nil, err
	}
	return toBooking(body)
}

// ListBookings implements ports.BookingStore.
func (c *Client) ListBookings(ctx context.Context, token string) ([]*booking.Booking, error) {
	var body []servers.Booking
	if err := c.do(ctx, http.MethodGet, "/api/v1/booking/myBookings", token, nil, &body); err != nil {
		return nil, err
	}

	bookings := make([]*booking.Booking, 0, len(body))
	for _, b := range body {
		restored, err := toBooking(b)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, restored)
	}
	return bookings, nil
}

// CancelBooking implements ports.BookingStore.
func (c *Client) CancelBooking(ctx context.Context, token string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/api/v1/booking/"+url.PathEscape(id.String()), token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func responseError(resp *http.Response) error {
	var body servers.Error
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &body); err != nil || body.Message == "" {
		body.Message = strings.TrimSpace(string(raw))
	}
	return &ResponseError{StatusCode: resp.StatusCode, Message: body.Message}
}

func toBooking(b servers.Booking) (*booking.Booking, error) {
	from, fromErr := kernel.NewLocation(b.FromLocation)
	to, toErr := kernel.NewLocation(b.ToLocation)
	id, idErr := kernel.UUIDFromBytes(b.Id[:])
	status, statusErr := booking.ParseStatus(b.Status)
	if err := errors.Join(fromErr, toErr, idErr, statusErr); err != nil {
		return nil, fmt.Errorf("decode booking: %w", err)
	}

	details, err := booking.NewDetails(
		from,
		to,
		booking.ParseServiceClass(b.ServiceClass),
		b.PickupAddress,
		b.DeliveryAddress,
		b.ReceiverName,
		decimal.NewFromFloat(b.Price).Round(2),
		b.EstimatedDeliveryDate,
	)
	if err != nil {
		return nil, fmt.Errorf("decode booking: %w", err)
	}

	return booking.RestoreBooking(id, details, status, b.BookedBy, b.BookedOn)
}
