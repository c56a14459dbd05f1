// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/workspace-booking/internal/config"
	"github.com/iliyamo/workspace-booking/internal/handler"
	"github.com/iliyamo/workspace-booking/internal/middleware"
	"github.com/iliyamo/workspace-booking/internal/model"
)

// Handlers collects everything the router mounts.
type Handlers struct {
	Auth       *handler.AuthHandler
	Rooms      *handler.RoomHandler
	Customers  *handler.CustomerHandler
	Drinks     *handler.DrinkHandler
	Bookings   *handler.BookingHandler
	DrinkOrder *handler.DrinkOrderHandler
	Report     *handler.ReportHandler
}

// Register mounts all routes.  Auth endpoints are open; everything
// else under /v1 requires a valid access token, with catalog writes
// restricted to admins.  The daily report additionally sits behind the
// Redis response cache, and the whole surface behind the rate limiter.
func Register(e *echo.Echo, h Handlers, jwtSecret string, rdb *redis.Client) {
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	e.GET("/healthz", handler.Health)

	g := e.Group("/v1/auth")
	g.POST("/register", h.Auth.Register)
	g.POST("/login", h.Auth.Login)
	g.POST("/refresh", h.Auth.Refresh)
	g.POST("/refresh-access", h.Auth.RefreshAccess)
	g.POST("/logout", h.Auth.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleAdmin, model.RoleEmployee))
	auth.GET("/me", h.Auth.Me)

	admin := middleware.RequireRole(model.RoleAdmin)

	auth.GET("/rooms", h.Rooms.List)
	auth.GET("/rooms/:id", h.Rooms.Get)
	auth.POST("/rooms", h.Rooms.Create, admin)
	auth.PUT("/rooms/:id", h.Rooms.Update, admin)
	auth.DELETE("/rooms/:id", h.Rooms.Delete, admin)

	auth.GET("/customers", h.Customers.List)
	auth.GET("/customers/:id", h.Customers.Get)
	auth.POST("/customers", h.Customers.Create)
	auth.PUT("/customers/:id", h.Customers.Update)
	auth.DELETE("/customers/:id", h.Customers.Delete, admin)

	auth.GET("/drinks", h.Drinks.List)
	auth.GET("/drinks/:id", h.Drinks.Get)
	auth.POST("/drinks", h.Drinks.Create, admin)
	auth.PUT("/drinks/:id", h.Drinks.Update, admin)
	auth.DELETE("/drinks/:id", h.Drinks.Delete, admin)

	auth.GET("/bookings", h.Bookings.List)
	auth.GET("/bookings/:id", h.Bookings.Get)
	auth.POST("/bookings", h.Bookings.Create)
	auth.POST("/bookings/:id/drink-orders", h.Bookings.AddDrinkOrder)
	auth.POST("/bookings/:id/end", h.Bookings.End)

	auth.DELETE("/drink-orders/:id", h.DrinkOrder.Delete)

	auth.GET("/reports/daily", h.Report.Daily,
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
}
