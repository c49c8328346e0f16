package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fastex/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// errMissingBearer is reported by the validator when a secured operation is
// called without a bearer token. Token verification itself happens in the handlers.
var errMissingBearer = errors.New("missing bearer token")

// RequestValidator returns middleware that validates requests under /api/v1
// against the OpenAPI document. Unknown routes are passed through so echo can
// answer 404/405 itself.
func RequestValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	swagger.Servers = nil

	router, err := legacy.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		MultiError:         false,
		AuthenticationFunc: requireBearer,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			if !strings.HasPrefix(req.URL.Path, "/api/v1/") {
				return next(ctx)
			}

			// The document has no servers, so a lookup only fails for unknown
			// paths or methods.
			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				var securityErr *openapi3filter.SecurityRequirementsError
				if errors.As(validateErr, &securityErr) {
					return errorJSON(ctx, http.StatusUnauthorized, "Unauthorized")
				}
				return errorJSON(ctx, http.StatusBadRequest, validationMessage(validateErr))
			}

			return next(ctx)
		}
	}, nil
}

// LoadSwagger parses the embedded OpenAPI document.
func LoadSwagger() (*openapi3.T, error) {
	return servers.GetSwagger()
}

func requireBearer(_ context.Context, input *openapi3filter.AuthenticationInput) error {
	header := input.RequestValidationInput.Request.Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return errMissingBearer
	}
	return nil
}

func validationMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		return requestErr.Error()
	}
	return err.Error()
}
