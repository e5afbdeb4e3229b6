package http

import (
	"errors"
	"net/http"

	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var errUnauthenticated = errors.New("missing or invalid identity")

// statusFor maps domain and store errors onto HTTP status codes. Conflicts and store failures
// are checked first because they wrap other sentinels.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStoreFailure):
		return http.StatusServiceUnavailable
	case errors.Is(err, order.ErrIncompleteAssignment):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrTransitionIsInvalid), errors.Is(err, order.ErrPrematureDelivery):
		return http.StatusConflict
	case errors.Is(err, errs.ErrActionIsForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewHTTPErrorHandler renders every error as Error. Messages of 5xx responses are generic.
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := http.StatusInternalServerError, ""
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			code = statusFor(err)
			message = err.Error()
		}

		if code >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
			message = http.StatusText(code)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.Error("failed to write error response", zap.Error(writeErr))
		}
	}
}
