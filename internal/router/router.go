package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-room-booking/internal/handler"
    "github.com/iliyamo/hotel-room-booking/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check
// for load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterBooking mounts the booking endpoints.  Every route requires a
// bearer token signed with jwtSecret; the token's subject is the user
// on whose behalf the engine runs.  Extra middleware (the rate
// limiter) runs after authentication so buckets can be keyed by user.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler, jwtSecret string, extra ...echo.MiddlewareFunc) {
    g := e.Group("/booking")
    g.Use(middleware.JWTAuth(jwtSecret))
    for _, m := range extra {
        g.Use(m)
    }
    g.GET("", h.GetBooking)
    g.POST("", h.CreateBooking)
    g.PUT("/:bookingId", h.ReplaceBooking)
}

// RegisterPublic mounts the unauthenticated hotel browse endpoints.
// They are read-only and sit behind the response cache middleware when
// one is supplied.
func RegisterPublic(e *echo.Echo, p *handler.HotelHandler, extra ...echo.MiddlewareFunc) {
    g := e.Group("/hotels", extra...)
    g.GET("", p.GetHotels)
    g.GET("/:id/rooms", p.GetHotelRooms)
}
