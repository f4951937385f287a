package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	regressor "github.com/aouyang1/go-regressor"
	"github.com/aouyang1/go-regressor/config"
	"github.com/aouyang1/go-regressor/server"
	"github.com/aouyang1/go-regressor/service"

	"github.com/gin-gonic/gin"
	"github.com/pkg/profile"
	"golang.org/x/time/rate"
)

func main() {
	profileMode := flag.String("profile", "", "profile the process while serving, cpu or mem")
	flag.Parse()

	if err := run(*profileMode); err != nil {
		slog.Error("regressor exited", "error", err.Error())
		os.Exit(1)
	}
}

func newLogger(w io.Writer, app config.AppConfig) (*slog.Logger, error) {
	level, err := config.ParseLogLevel(app.LogLevel)
	if err != nil {
		return nil, err
	}
	opt := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch app.LogFormat {
	case "text":
		handler = slog.NewTextHandler(w, opt)
	default:
		handler = slog.NewJSONHandler(w, opt)
	}
	return slog.New(handler).With("version", app.Version), nil
}

func startProfile(mode string) (interface{ Stop() }, error) {
	switch mode {
	case "":
		return nil, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook), nil
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook), nil
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
}

func run(profileMode string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("unable to load config, %w", err)
	}

	logger, err := newLogger(os.Stderr, cfg.App)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	prof, err := startProfile(profileMode)
	if err != nil {
		return err
	}
	if prof != nil {
		defer prof.Stop()
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r, err := regressor.New(regressor.NewDefaultOptions())
	if err != nil {
		return fmt.Errorf("unable to initialize regressor, %w", err)
	}
	if err := r.Fit(); err != nil {
		return fmt.Errorf("unable to train regressor, %w", err)
	}
	model, err := r.Model()
	if err != nil {
		return err
	}
	summary, err := r.Summary()
	if err != nil {
		return err
	}

	var limiter *rate.Limiter
	if cfg.RateLimit.Enabled() {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	}

	router := server.BuildRouter(server.RouterDeps{
		Handler:        server.NewHandler(service.New(model), summary, r, logger),
		Logger:         logger,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Limiter:        limiter,
	})
	srv := server.New(":"+cfg.Server.Port, router, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
