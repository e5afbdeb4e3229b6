package http

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"tailoring/api/openapi"
	"tailoring/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

var registerSwaggerOnce sync.Once

// contract is the loaded API description. Requests are validated against it before they reach
// a handler.
type contract struct {
	router routers.Router
	raw    []byte
}

func loadContract(ctx context.Context) (*contract, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapi.Spec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}

	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(raw),
			LeftDelim:        "{{",
			RightDelim:       "}}",
		})
	})

	return &contract{router: router, raw: raw}, nil
}

// validateRequests rejects requests that do not match the documented parameters and bodies.
// Routes missing from the document are left to echo.
func (c *contract) validateRequests() echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, err := c.router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			if err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}); err != nil {
				return errs.NewValueIsInvalidErrorWithCause("request", requestProblem(err))
			}
			return next(ctx)
		}
	}
}

// requestProblem reduces a validation failure to one line naming the offending field. The full
// kin-openapi message embeds the schema and is not meant for clients.
func requestProblem(err error) error {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return errors.New("request does not match the API contract")
	}

	reason := reqErr.Reason
	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr.Err, &schemaErr) {
		reason = schemaErr.Reason
		if path := schemaErr.JSONPointer(); len(path) > 0 {
			reason = fmt.Sprintf("%s: %s", strings.Join(path, "."), reason)
		}
	} else if reason == "" && reqErr.Err != nil {
		reason, _, _ = strings.Cut(reqErr.Err.Error(), "\n")
	}

	switch {
	case reqErr.Parameter != nil:
		return fmt.Errorf("parameter %q: %s", reqErr.Parameter.Name, reason)
	case reqErr.RequestBody != nil:
		return fmt.Errorf("request body: %s", reason)
	default:
		return errors.New(reason)
	}
}
