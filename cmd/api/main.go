package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/01moynul/shop-api/internal/config"
	"github.com/01moynul/shop-api/internal/database"
	"github.com/01moynul/shop-api/internal/events"
	"github.com/01moynul/shop-api/internal/handlers"
	"github.com/01moynul/shop-api/internal/logger"
	"github.com/01moynul/shop-api/internal/routes"
	"github.com/01moynul/shop-api/internal/shop"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("shop API stopped")
	}
}

// run owns every resource it opens, so deferred closes always happen
// before main decides the exit code.
func run() error {
	// 0. --- Load Environment Variables (.env) ---
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.GinMode != gin.ReleaseMode)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. --- Database Connection ---
	db, err := database.Open(ctx, cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("connect to %s database: %w", cfg.DBDriver, err)
	}
	defer db.Close()

	// 2. --- Event Publisher ---
	var publisher events.Publisher = events.Noop{}
	if cfg.RabbitURL != "" {
		rabbit, err := events.NewRabbit(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			return fmt.Errorf("connect to rabbitmq: %w", err)
		}
		defer rabbit.Close()
		publisher = rabbit
		log.Info().Str("exchange", cfg.RabbitExchange).Msg("publishing order events")
	} else {
		log.Warn().Msg("RABBIT_URL not set, order events are disabled")
	}

	// 3. --- Application Setup ---
	svc, err := shop.NewService(db, publisher)
	if err != nil {
		return fmt.Errorf("build shop service: %w", err)
	}
	app := &handlers.Handlers{
		DB:   db,
		Shop: svc,
	}

	// --- Router Setup ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRouter(app, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- Start Server ---
	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("driver", cfg.DBDriver).Msg("starting shop API server")
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Warn().Msg("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
