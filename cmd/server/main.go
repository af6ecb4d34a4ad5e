package main // Entry point package

import (
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-room-booking/internal/config"
    "github.com/iliyamo/hotel-room-booking/internal/database"
    "github.com/iliyamo/hotel-room-booking/internal/handler"
    "github.com/iliyamo/hotel-room-booking/internal/middleware"
    "github.com/iliyamo/hotel-room-booking/internal/queue"
    "github.com/iliyamo/hotel-room-booking/internal/repository"
    "github.com/iliyamo/hotel-room-booking/internal/router"
    "github.com/iliyamo/hotel-room-booking/internal/service"
)

func main() {
    // Load .env when present; real deployments set the environment directly.
    _ = godotenv.Load()
    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer func() { _ = db.Close() }()

    // Repositories and the booking decision engine.
    enrollmentRepo := repository.NewEnrollmentRepo(db)
    ticketRepo := repository.NewTicketRepo(db)
    hotelRepo := repository.NewHotelRepo(db)
    bookingRepo := repository.NewBookingRepo(db)
    bookingSvc := service.NewBookingService(db, enrollmentRepo, ticketRepo, hotelRepo, bookingRepo)

    bookingHandler := handler.NewBookingHandler(bookingSvc, hotelRepo)
    hotelHandler := handler.NewHotelHandler(hotelRepo)

    // Redis backs rate limiting and the browse cache; when it is down
    // both features disable themselves and the API keeps serving.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Printf("redis unavailable; rate limiting and response cache disabled")
    }
    rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
    browseCache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

    // Background consumer writing booking events to logs/booking.log.
    go func() {
        if err := queue.StartBookingConsumer(); err != nil {
            log.Printf("booking consumer stopped: %v", err)
        }
    }()

    e := echo.New()
    router.RegisterRoutes(e)
    router.RegisterBooking(e, bookingHandler, cfg.JWTSecret, rateLimit)
    router.RegisterPublic(e, hotelHandler, browseCache)

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)

    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
