// Package middleware contains the HTTP error handler.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "cabradar/internal/delivery/context"
	"cabradar/internal/delivery/http/response"
	domainerrors "cabradar/internal/domain/errors"
	"cabradar/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders handler errors as {"error": message}.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
			_ = response.Error(c, httpErr.Code, domainerrors.ErrInternal.Message())

			return
		}
		_ = response.Error(c, httpErr.Code, httpMessage(httpErr))

		return
	}

	m.logUnhandled(c, err)
	_ = response.Error(c, domainerrors.ErrInternal.HTTPCode(), domainerrors.ErrInternal.Message())
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

func httpMessage(httpErr *echo.HTTPError) string {
	switch msg := httpErr.Message.(type) {
	case string:
		return msg
	case nil:
		return ""
	default:
		return fmt.Sprint(msg)
	}
}
