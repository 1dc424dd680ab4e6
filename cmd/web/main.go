package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"flipkartmini.com/app/internal/config"
	apphttp "flipkartmini.com/app/internal/http"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	r := apphttp.NewRouter(logger, cfg)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
