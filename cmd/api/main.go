package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/roadshare/roadshare/internal/config"
	"github.com/roadshare/roadshare/internal/container"
)

func main() {
	// .env для локальной разработки; в production переменные
	// приходят из окружения и файл отсутствует.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load(getEnv("ROADSHARE_CONFIG_PATH", "configs"), "config")
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	c := container.New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := c.Initialize(ctx); err != nil {
		cancel()
		log.Fatal("Failed to initialize container: ", err)
	}
	cancel()

	if err := c.Run(); err != nil {
		c.Logger().Error("Server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := c.Shutdown(shutdownCtx); err != nil {
		c.Logger().Error("Shutdown error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	c.Logger().Info("Server stopped gracefully")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
