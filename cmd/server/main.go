package main // Entry point package

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/seat-booking/internal/auth"
	"github.com/iliyamo/seat-booking/internal/booking"
	"github.com/iliyamo/seat-booking/internal/catalog"
	"github.com/iliyamo/seat-booking/internal/config"
	"github.com/iliyamo/seat-booking/internal/database"
	"github.com/iliyamo/seat-booking/internal/handler"
	"github.com/iliyamo/seat-booking/internal/latency"
	"github.com/iliyamo/seat-booking/internal/ledger"
	"github.com/iliyamo/seat-booking/internal/middleware"
	"github.com/iliyamo/seat-booking/internal/queue"
	"github.com/iliyamo/seat-booking/internal/router"
)

func main() {
	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := config.NewRedisClient(cfg.Redis)
	if rdb == nil {
		log.Printf("redis: unavailable at %s; cache and rate limiting disabled", cfg.Redis.Addr)
	} else {
		defer rdb.Close()
	}

	repo, closeRepo, err := openLedger(ctx, cfg, rdb)
	if err != nil {
		log.Fatalf("ledger: %v", err)
	}
	defer closeRepo()
	var opts []ledger.Option
	if cfg.DemoSeed {
		opts = append(opts, ledger.WithDemoBookings())
	}
	led := ledger.New(repo, opts...)

	var notifier booking.Notifier
	if cfg.QueueEnabled {
		notifier = queue.NewPublisher(cfg.RabbitURL)
		go queue.NewConsumer(cfg.RabbitURL, cfg.BookingLogDir).Run(ctx)
	}

	sessions := booking.NewManager(led, notifier, latency.Fixed(cfg.CheckoutDelay), cfg.SessionTTL)
	go sessions.Run(ctx, time.Minute)
	users := auth.NewDirectory(latency.Fixed(cfg.AuthDelay), cfg.BcryptCost)
	events := catalog.Default()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	h := router.Handlers{
		Health:    &handler.HealthHandler{LedgerStore: cfg.LedgerStore, Sessions: sessions},
		Auth:      handler.NewAuthHandler(cfg, users),
		Catalog:   &handler.CatalogHandler{Catalog: events},
		Sessions:  &handler.SessionHandler{Catalog: events, Sessions: sessions},
		Bookings:  &handler.BookingHandler{Ledger: led},
		Transport: &handler.TransportHandler{Routes: catalog.DefaultRoutes(), Sessions: sessions},
	}
	limit := middleware.NewTokenBucket(cfg.RateLimit, rdb)
	router.RegisterRoutes(e, h)
	router.RegisterPublic(e, h, cfg.Cache, rdb)
	router.RegisterAuth(e, h, cfg.JWTSecret, limit)
	router.RegisterBooking(e, h, cfg.JWTSecret, limit)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, ledger=%s)", addr, cfg.Env, cfg.LedgerStore)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// openLedger builds the repository selected by LEDGER_STORE.  The returned
// func releases whatever the store holds open.
func openLedger(ctx context.Context, cfg config.Config, rdb *redis.Client) (ledger.Repository, func(), error) {
	noop := func() {}
	switch cfg.LedgerStore {
	case config.StoreFile:
		repo, err := ledger.NewFileRepository(cfg.LedgerDir)
		return repo, noop, err
	case config.StoreRedis:
		if rdb == nil {
			return nil, noop, fmt.Errorf("LEDGER_STORE=redis but redis is unreachable at %s", cfg.Redis.Addr)
		}
		return ledger.NewRedisRepository(rdb, "ledger"), noop, nil
	case config.StoreMySQL:
		db, err := database.Open(ctx, cfg.DB)
		if err != nil {
			return nil, noop, err
		}
		repo := ledger.NewMySQLRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		return repo, func() { _ = db.Close() }, nil
	default:
		return ledger.NewMemoryRepository(), noop, nil
	}
}
