package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	apphttp "phone_info_backend/internal/http"
	"phone_info_backend/internal/http/router"
	"phone_info_backend/internal/phoneinfo"
	"phone_info_backend/platform/config"
	"phone_info_backend/platform/logger"
	"phone_info_backend/platform/phone"
	"phone_info_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Numbering-plan metadata provider; its tables are immutable after init
	// and shared across all requests.
	meta := phone.NewProvider()

	// Shared validator instance for dependency injection
	val := validator.New()

	phoneModule := phoneinfo.NewModule(meta, cfg, val, log)

	app := &apphttp.App{
		Config: cfg,
		Env:    cfg.Env,
		Logger: log,
		Modules: []apphttp.Module{
			phoneModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
