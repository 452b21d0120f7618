package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/seat-booking/internal/config"
	"github.com/iliyamo/seat-booking/internal/handler"
	"github.com/iliyamo/seat-booking/internal/middleware"
)

// Handlers groups everything the routes dispatch to.
type Handlers struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Catalog   *handler.CatalogHandler
	Sessions  *handler.SessionHandler
	Bookings  *handler.BookingHandler
	Transport *handler.TransportHandler
}

// RegisterRoutes registers routes that do not require authentication.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/healthz", h.Health.Health)
}

// RegisterPublic registers the event catalog and the bus and train
// departure listings.  Listings are cached in Redis when a client is
// available.
func RegisterPublic(e *echo.Echo, h Handlers, cfg config.CacheConfig, rdb *redis.Client) {
	cache := middleware.NewRedisCache(cfg, rdb)
	g := e.Group("/v1/events", cache)
	g.GET("", h.Catalog.ListEvents)
	g.GET("/featured", h.Catalog.FeaturedEvents)
	g.GET("/:id", h.Catalog.GetEvent)

	t := e.Group("/v1/transport", cache)
	t.GET("/bus", h.Transport.ListBuses)
	t.GET("/train", h.Transport.ListTrains)
}

// RegisterAuth registers authentication and profile routes.  Register,
// login and refresh are open; the rest need a valid access token.
func RegisterAuth(e *echo.Echo, h Handlers, jwtSecret string, limit echo.MiddlewareFunc) {
	g := e.Group("/v1/auth", limit)
	g.POST("/register", h.Auth.Register)
	g.POST("/login", h.Auth.Login)
	g.POST("/refresh", h.Auth.Refresh)

	protected := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/me", h.Auth.Me)
	protected.PATCH("/me", h.Auth.UpdateMe)
}

// RegisterBooking registers the booking session flow and the "my
// bookings" routes.  Seat toggles and checkout are rate limited.
func RegisterBooking(e *echo.Echo, h Handlers, jwtSecret string, limit echo.MiddlewareFunc) {
	jwt := middleware.JWTAuth(jwtSecret)

	e.POST("/v1/events/:id/sessions", h.Sessions.Start, limit)
	e.POST("/v1/transport/bus/:id/sessions", h.Transport.StartBus, limit)
	e.POST("/v1/transport/train/:id/sessions", h.Transport.StartTrain, limit)

	s := e.Group("/v1/sessions/:id", middleware.OptionalJWT(jwtSecret))
	s.GET("", h.Sessions.Get)
	s.DELETE("", h.Sessions.Abandon)
	s.GET("/layout", h.Sessions.Layout)
	s.GET("/summary", h.Sessions.Summary)
	s.POST("/seats/:seat_id/toggle", h.Sessions.ToggleSeat, limit)
	s.DELETE("/selection", h.Sessions.ClearSelection)
	s.POST("/proceed", h.Sessions.Proceed)
	s.POST("/back", h.Sessions.Back)
	s.POST("/checkout", h.Sessions.Checkout, jwt, limit)

	b := e.Group("/v1", jwt)
	b.GET("/my-bookings", h.Bookings.ListMine)
	b.GET("/bookings/:id", h.Bookings.Get)
	b.POST("/bookings/:id/cancel", h.Bookings.Cancel)
	b.POST("/bookings/:id/seen", h.Bookings.MarkSeen)
}
