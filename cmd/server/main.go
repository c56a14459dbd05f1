package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/workspace-booking/internal/clock"
	"github.com/iliyamo/workspace-booking/internal/config"
	"github.com/iliyamo/workspace-booking/internal/database"
	"github.com/iliyamo/workspace-booking/internal/handler"
	"github.com/iliyamo/workspace-booking/internal/queue"
	"github.com/iliyamo/workspace-booking/internal/repository"
	"github.com/iliyamo/workspace-booking/internal/router"
	"github.com/iliyamo/workspace-booking/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	if err := database.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatalf("migrate: %v", err)
	}
	cancel()

	// Redis is optional: when unreachable, rate limiting and response
	// caching are disabled and the API still serves.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and caching disabled")
	}

	store := repository.NewStore(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	clk := clock.NewSystem()

	bookingSvc := service.NewBookingService(store, clk)
	reportSvc := service.NewReportService(store, clk)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, router.Handlers{
		Auth:       handler.NewAuthHandler(cfg, users, tokens),
		Rooms:      handler.NewRoomHandler(store.Rooms),
		Customers:  handler.NewCustomerHandler(store.Customers),
		Drinks:     handler.NewDrinkHandler(store.Drinks),
		Bookings:   handler.NewBookingHandler(bookingSvc, store.Bookings),
		DrinkOrder: handler.NewDrinkOrderHandler(bookingSvc),
		Report:     handler.NewReportHandler(reportSvc),
	}, cfg.JWTSecret, rdb)

	// Background consumer appends completed bookings to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
