// Package http exposes the Booking Store REST API over echo.
package http

import (
	"log/slog"
	"net/http"
	"sync"

	"fastex/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const specPath = "/api/v1/openapi.yaml"

// swaggerDoc feeds the embedded document to the swagger UI's doc.json.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var registerDocOnce sync.Once

// registerSwaggerDoc makes /swagger/doc.json serve swagger. swag keeps a
// process-wide registry, so only the first document is registered.
func registerSwaggerDoc(swagger *openapi3.T) error {
	payload, err := swagger.MarshalJSON()
	if err != nil {
		return err
	}
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(payload)})
	})
	return nil
}

// NewRouter builds the echo instance with the health check, the API document
// (YAML at /api/v1/openapi.yaml, JSON at /swagger/doc.json), the swagger UI and
// the validated API routes.
func NewRouter(server servers.ServerInterface, swagger *openapi3.T, logger *slog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.Error("request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.Info("request", attrs...)
			return nil
		},
	}))

	validator, err := RequestValidator(swagger)
	if err != nil {
		return nil, err
	}
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET(specPath, func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", servers.RawSpec())
	})
	if err = registerSwaggerDoc(swagger); err != nil {
		return nil, err
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}
