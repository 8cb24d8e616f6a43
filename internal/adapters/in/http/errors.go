package http

import (
	"errors"
	"log/slog"
	"net/http"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps a use case error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, order.ErrNotPending),
		errors.Is(err, ports.ErrStaleOrder),
		errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrDriverIsRequired),
		errors.Is(err, services.ErrDriverNotFound),
		errors.Is(err, services.ErrDriverNotApproved),
		errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrItemNotApproved),
		errors.Is(err, services.ErrOutOfStock),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			slog.String("path", ctx.Path()),
			slog.String("error", err.Error()),
		)
		return ctx.JSON(code, Error{Code: code, Message: "Internal server error"})
	}

	body := Error{Code: code, Message: err.Error()}
	var oos *services.OutOfStockError
	if errors.As(err, &oos) {
		body.Available = &oos.Available
	}
	return ctx.JSON(code, body)
}

func badRequest(ctx echo.Context, message string, err error) error {
	if err != nil {
		message += ": " + err.Error()
	}
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
