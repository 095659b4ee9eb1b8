package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Briscoooe/irish-rail-rest-api/internal/app"
	"github.com/Briscoooe/irish-rail-rest-api/internal/appconf"
	"github.com/Briscoooe/irish-rail-rest-api/internal/irishrail"
	"github.com/Briscoooe/irish-rail-rest-api/internal/logging"
	"github.com/Briscoooe/irish-rail-rest-api/internal/restapi"
)

const shutdownTimeout = 15 * time.Second

func main() {
	appconf.LoadDotEnv(".")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Getenv, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run serves the API until ctx is cancelled, then drains in-flight requests.
func run(ctx context.Context, args []string, getenv func(string) string, stdout io.Writer) error {
	cfg, err := appconf.Parse(args, getenv)
	if err != nil {
		return err
	}

	application := buildApplication(cfg, logging.NewStructuredLogger(stdout, cfg.LogLevel))
	srv := newServer(application)

	serveErr := make(chan error, 1)
	go func() {
		logging.LogOperation(application.Logger, "server_starting",
			slog.String("addr", srv.Addr),
			slog.String("env", cfg.Env.String()),
			slog.String("feed_url", cfg.FeedBaseURL))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logging.LogOperation(application.Logger, "server_shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logging.LogOperation(application.Logger, "server_stopped")
	return nil
}

func buildApplication(cfg appconf.Config, logger *slog.Logger) *app.Application {
	return &app.Application{
		Config: cfg,
		Logger: logger,
		Feed:   irishrail.NewClient(cfg.FeedConfig(), nil),
	}
}

func newServer(application *app.Application) *http.Server {
	cfg := application.Config
	// A request may wait for every feed attempt before it can answer.
	feedBudget := cfg.FeedTimeout * time.Duration(cfg.FeedRetries+1)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      restapi.NewRestAPI(application).Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: feedBudget + 5*time.Second,
		ErrorLog:     slog.NewLogLogger(application.Logger.Handler(), slog.LevelError),
	}
}
