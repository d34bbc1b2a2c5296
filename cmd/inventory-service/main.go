package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/app"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/config"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// Local development keeps settings in a .env file; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewAdapter(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Infow("application starting", "env", cfg.Env, "port", cfg.HTTP.Port)

	if err = app.Run(ctx, cfg, log); err != nil {
		log.Errorw("application failed", "error", err)
		cancel()
		os.Exit(1)
	}

	log.Infow("application exited normally")
}
