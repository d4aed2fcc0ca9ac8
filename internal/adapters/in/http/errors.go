package http

import (
	"errors"
	"net/http"

	"martdelivery/internal/core/ports"
	"martdelivery/internal/generated/servers"
	"martdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusCode maps an application error to the HTTP status returned to the client.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrInvalidMart):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidGeometry):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ports.ErrAddressNotFound),
		errors.Is(err, errs.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := StatusCode(err)
	message := err.Error()
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		if code != http.StatusBadGateway {
			message = http.StatusText(code)
		}
	}
	return ctx.JSON(code, servers.Error{Code: int32(code), Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

// ErrorHandler renders errors that never reached a use case (routing, parameter
// binding, panics recovered by middleware) in the API error shape.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = ctx.JSON(code, servers.Error{Code: int32(code), Message: message})
}
