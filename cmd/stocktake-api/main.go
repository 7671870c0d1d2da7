// Command stocktake-api serves cached stocktake snapshots over HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/grasp-labs/ds-go-katana-models/config"
	"github.com/grasp-labs/ds-go-katana-models/handlers"
	"github.com/grasp-labs/ds-go-katana-models/middleware"
	"github.com/grasp-labs/ds-go-katana-models/middleware/logctx"
	"github.com/grasp-labs/ds-go-katana-models/store"
	"github.com/grasp-labs/ds-go-katana-models/tracing"
)

func main() {
	ctx := context.Background()
	logger := logctx.New("stocktake-api", log.INFO, os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.Error(ctx, "Loading config: %v", err)
		os.Exit(1)
	}
	defer cfg.Close()

	s, err := store.NewFromConfig(cfg, logger)
	if err != nil {
		logger.Error(ctx, "Creating store: %v", err)
		os.Exit(1)
	}

	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(ctx)

	upstream := &http.Client{
		Timeout:   5 * time.Second,
		Transport: tracing.NewTransportFromConfig(cfg, http.DefaultTransport, tp.Tracer(tracing.Component), logger),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware(logger))
	e.Use(middleware.LocaleMiddleware(middleware.DefaultLocale))

	v1 := e.Group("/v1")
	(&handlers.Stocktakes{Store: s, Logger: logger}).Register(v1)
	(&handlers.Upstream{Client: upstream, BaseURL: cfg.BaseURL(), Logger: logger}).Register(v1)

	addr := os.Getenv("PORT")
	if addr == "" {
		addr = "8080"
	}

	go func() {
		if err := e.Start(":" + addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "Server stopped: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "%s %s listening on :%s (upstream %s)", cfg.Name(), cfg.Version(), addr, cfg.BaseURL())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "Shutdown: %v", err)
	}
}
