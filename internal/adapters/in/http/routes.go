package http

import (
	_ "orderdesk/internal/adapters/in/http/docs" // registers the swagger document

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// BasePath prefixes every API route.
const BasePath = "/api/v1"

// RegisterRoutes mounts the API on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	actor := RequireActor()
	api := e.Group(BasePath)

	api.POST("/users", s.RegisterUser)
	api.POST("/users/:id/approve", s.ApproveUser, actor)
	api.GET("/drivers/eligible", s.GetEligibleDrivers, actor)

	api.POST("/stock", s.AddStockItem, actor)
	api.POST("/stock/:id/approve", s.ApproveStockItem, actor)

	api.POST("/orders", s.CreateOrder, actor)
	api.GET("/orders", s.GetDashboard, actor)
	api.GET("/orders/:id", s.GetOrder, actor)
	api.DELETE("/orders/:id", s.DeleteOrder, actor)
	api.POST("/orders/:id/transitions", s.RequestTransition, actor)
}
