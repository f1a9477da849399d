// Command listd runs the shopping list HTTP service.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	app "github.com/groceryworks/listd/internal/app"
	"github.com/groceryworks/listd/internal/app/httpapi"
	"github.com/groceryworks/listd/internal/app/metrics"
	"github.com/groceryworks/listd/internal/app/storage/memory"
	"github.com/groceryworks/listd/internal/config"
	"github.com/groceryworks/listd/internal/middleware"
	"github.com/groceryworks/listd/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// A missing .env is fine; env vars may come from the environment itself.
	_ = godotenv.Load()

	cfg := config.LoadOrDefault()
	log := logger.New("listd", logger.ParseLevel(cfg.LogLevel))

	application := app.New(memory.New(), log)

	handler := httpapi.NewHandler(application)
	handler = middleware.Logging(log.WithField("component", "http"))(handler)
	handler = metrics.InstrumentHandler(handler)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout.Std(),
		WriteTimeout: cfg.WriteTimeout.Std(),
		IdleTimeout:  cfg.IdleTimeout.Std(),
	}

	go func() {
		log.Infof("%s v%s listening on %s", app.ServiceName, app.Version, cfg.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("server error")
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("shutdown error")
	}
	log.Info("service stopped")
}
