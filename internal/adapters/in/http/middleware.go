package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"orderdesk/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ActorHeader carries the id of the acting user. Sessions are handled in
// front of this service. The middleware only parses the id; use cases load
// and authorize the user.
const ActorHeader = "X-Actor-ID"

const actorKey = "actor_id"

// RequireActor rejects requests without a well formed ActorHeader.
func RequireActor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			values := ctx.Request().Header.Values(ActorHeader)
			if len(values) != 1 {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: fmt.Sprintf("Expected one value for %s, got %d", ActorHeader, len(values)),
				})
			}

			var raw openapi_types.UUID
			err := runtime.BindStyledParameterWithOptions("simple", ActorHeader, values[0], &raw,
				runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
			if err == nil {
				var id kernel.UUID
				if id, err = kernel.UUIDFromBytes(raw[:]); err == nil {
					ctx.Set(actorKey, id)
					return next(ctx)
				}
			}

			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: fmt.Sprintf("Invalid format for header %s: %s", ActorHeader, err),
			})
		}
	}
}

func actorFrom(ctx echo.Context) kernel.UUID {
	id, _ := ctx.Get(actorKey).(kernel.UUID)
	return id
}

// RequestLogger writes one slog record per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				logger.LogAttrs(ctx.Request().Context(), slog.LevelError, "Request error", attrs...)
				return nil
			}
			logger.LogAttrs(ctx.Request().Context(), slog.LevelInfo, "Request", attrs...)
			return nil
		},
	})
}

func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	var raw openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromBytes(raw[:])
}
