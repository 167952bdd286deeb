package container

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadshare/roadshare/internal/config"
)

func TestNew(t *testing.T) {
	cfg := config.Development()
	c := New(cfg)

	require.NotNil(t, c)
	assert.Equal(t, cfg, c.config)
}

func TestContainer_Config(t *testing.T) {
	cfg := config.Development()
	c := New(cfg)

	assert.Equal(t, cfg, c.Config())
}

func TestContainer_Logger_BeforeInit(t *testing.T) {
	cfg := config.Development()
	c := New(cfg)

	// Logger is nil before initialization
	assert.Nil(t, c.Logger())
}

func TestContainer_Pool_BeforeInit(t *testing.T) {
	cfg := config.Development()
	c := New(cfg)

	// Pool is nil before initialization
	assert.Nil(t, c.Pool())
}

func TestContainer_HTTPServer_BeforeInit(t *testing.T) {
	cfg := config.Development()
	c := New(cfg)

	// Server is nil before initialization
	assert.Nil(t, c.HTTPServer())
}

func TestContainer_UserRepository_BeforeInit(t *testing.T) {
	cfg := config.Development()
	c := New(cfg)

	// Repo is nil before initialization
	assert.Nil(t, c.UserRepository())
}

func TestContainer_TravelRepository_BeforeInit(t *testing.T) {
	cfg := config.Development()
	c := New(cfg)

	// Repo is nil before initialization
	assert.Nil(t, c.TravelRepository())
}

func TestContainer_InscriptionRepository_BeforeInit(t *testing.T) {
	cfg := config.Development()
	c := New(cfg)

	// Repo is nil before initialization
	assert.Nil(t, c.InscriptionRepository())
}

func TestContainer_UnitOfWork_BeforeInit(t *testing.T) {
	cfg := config.Development()
	c := New(cfg)

	// UoW is nil before initialization
	assert.Nil(t, c.UnitOfWork())
}

func TestContainer_RegisterUserUseCase_BeforeInit(t *testing.T) {
	cfg := config.Development()
	c := New(cfg)

	assert.Nil(t, c.RegisterUserUseCase())
}

func TestContainer_LoginUseCase_BeforeInit(t *testing.T) {
	cfg := config.Development()
	c := New(cfg)

	assert.Nil(t, c.LoginUseCase())
}

func TestContainer_CreateTravelUseCase_BeforeInit(t *testing.T) {
	cfg := config.Development()
	c := New(cfg)

	assert.Nil(t, c.CreateTravelUseCase())
}

func TestContainer_CreateInscriptionUseCase_BeforeInit(t *testing.T) {
	cfg := config.Development()
	c := New(cfg)

	assert.Nil(t, c.CreateInscriptionUseCase())
}

func TestContainer_initLogger_DebugLevel(t *testing.T) {
	cfg := config.Development()
	cfg.Log.Level = "debug"
	cfg.Log.Format = "text"
	cfg.App.Debug = true

	c := New(cfg)
	logger := c.initLogger()

	require.NotNil(t, logger)
	assert.NotNil(t, logger.Handler())
}

func TestContainer_initLogger_InfoLevel(t *testing.T) {
	cfg := config.Development()
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"

	c := New(cfg)
	logger := c.initLogger()

	require.NotNil(t, logger)
}

// ContainerBuilder Tests

func TestNewBuilder(t *testing.T) {
	cfg := config.Development()
	builder := NewBuilder(cfg)

	require.NotNil(t, builder)
	assert.Equal(t, cfg, builder.cfg)
}

func TestContainerBuilder_WithLogger(t *testing.T) {
	cfg := config.Development()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	builder := NewBuilder(cfg).WithLogger(logger)

	assert.Equal(t, logger, builder.logger)
}

func TestContainerBuilder_WithPool(t *testing.T) {
	cfg := config.Development()

	// nil pool for testing builder chain
	builder := NewBuilder(cfg).WithPool(nil)

	assert.Nil(t, builder.pool)
}

func TestContainerBuilder_WithMailer(t *testing.T) {
	cfg := config.Development()

	// nil mailer for testing builder chain
	builder := NewBuilder(cfg).WithMailer(nil)

	assert.Nil(t, builder.mailer)
}

func TestContainerBuilder_Chain(t *testing.T) {
	cfg := config.Development()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	builder := NewBuilder(cfg).
		WithLogger(logger).
		WithPool(nil).
		WithMailer(nil).
		WithTokenService(nil)

	assert.Equal(t, cfg, builder.cfg)
	assert.Equal(t, logger, builder.logger)
}

// HealthStatus Tests

func TestHealthStatus_Structure(t *testing.T) {
	status := &HealthStatus{
		Status:  "healthy",
		Version: "1.0.0",
		Checks:  map[string]string{"database": "ok", "cache": "ok"},
	}

	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "1.0.0", status.Version)
	assert.Equal(t, "ok", status.Checks["database"])
	assert.Equal(t, "ok", status.Checks["cache"])
}

func TestHealthStatus_Unhealthy(t *testing.T) {
	status := &HealthStatus{
		Status:  "unhealthy",
		Version: "1.0.0",
		Checks:  map[string]string{"database": "error: connection refused"},
	}

	assert.Equal(t, "unhealthy", status.Status)
	assert.Contains(t, status.Checks["database"], "error")
}

// Shutdown Tests

func TestContainer_Shutdown_NilComponents(t *testing.T) {
	cfg := config.Development()
	c := New(cfg)
	c.logger = slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Should not panic with nil components
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := c.Shutdown(ctx)
	assert.NoError(t, err)
}

// Initialize Tests (with expected failures for no DB)

func TestContainer_Initialize_NoDB(t *testing.T) {
	cfg := config.Development()
	cfg.Database.Host = "invalid-host-that-does-not-exist"
	cfg.Database.Port = 59999
	cfg.Cache.Disabled = true

	c := New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := c.Initialize(ctx)

	// Should fail because database is not available
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize database")
}

// Edge Cases

func TestContainer_MultipleNew(t *testing.T) {
	cfg1 := config.Development()
	cfg2 := config.Test()

	c1 := New(cfg1)
	c2 := New(cfg2)

	assert.NotEqual(t, c1, c2)
	assert.Equal(t, cfg1, c1.Config())
	assert.Equal(t, cfg2, c2.Config())
}

func TestContainer_AllLogLevels(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error", "unknown", ""}

	for _, level := range levels {
		t.Run(level, func(t *testing.T) {
			cfg := config.Development()
			cfg.Log.Level = level

			c := New(cfg)
			logger := c.initLogger()

			require.NotNil(t, logger)
		})
	}
}

func TestContainer_AllLogFormats(t *testing.T) {
	formats := []string{"json", "text", "unknown", ""}

	for _, format := range formats {
		t.Run(format, func(t *testing.T) {
			cfg := config.Development()
			cfg.Log.Format = format

			c := New(cfg)
			logger := c.initLogger()

			require.NotNil(t, logger)
		})
	}
}

func TestContainerBuilder_Build_WithoutPool(t *testing.T) {
	cfg := config.Development()
	cfg.Database.Host = "invalid-host"
	cfg.Database.Port = 59999
	cfg.Cache.Disabled = true

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewBuilder(cfg).
		WithLogger(logger).
		Build(ctx)

	// Should fail - no pool provided and DB connection fails
	assert.Error(t, err)
}
