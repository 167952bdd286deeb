package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadshare/roadshare/internal/application/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// staticTokenService - заглушка для тестов роутера, авторизация тут не предмет теста.
type staticTokenService struct{}

func (staticTokenService) Generate(claims ports.TokenClaims) (string, error) {
	return "test-token", nil
}

func (staticTokenService) Validate(token string) (*ports.TokenClaims, error) {
	return &ports.TokenClaims{
		UserID: "00000000-0000-0000-0000-000000000001",
		Email:  "test@example.com",
		Role:   "USER",
	}, nil
}

func TestDefaultRouterConfig(t *testing.T) {
	cfg := DefaultRouterConfig()

	assert.NotNil(t, cfg.Logger)
	assert.Equal(t, "dev", cfg.Version)
	assert.Equal(t, "unknown", cfg.BuildTime)
	assert.Equal(t, "development", cfg.Environment)
	assert.Contains(t, cfg.AllowedOrigins, "*")
}

func TestNewRouterBuilder(t *testing.T) {
	cfg := DefaultRouterConfig()
	builder := NewRouterBuilder(cfg)

	require.NotNil(t, builder)
	assert.Equal(t, cfg, builder.config)
}

func TestNewRouterBuilder_NilConfig(t *testing.T) {
	builder := NewRouterBuilder(nil)

	require.NotNil(t, builder)
	assert.NotNil(t, builder.config)
	assert.Equal(t, "development", builder.config.Environment)
}

func TestRouterBuilder_Chain(t *testing.T) {
	cfg := DefaultRouterConfig()
	userUC := &UserUseCases{}
	travelUC := &TravelUseCases{}
	inscriptionUC := &InscriptionUseCases{}
	carUC := &CarUseCases{}
	cityUC := &CityUseCases{}
	catalogUC := &CatalogUseCases{}

	builder := NewRouterBuilder(cfg).
		WithUserUseCases(userUC).
		WithTravelUseCases(travelUC).
		WithInscriptionUseCases(inscriptionUC).
		WithCarUseCases(carUC).
		WithCityUseCases(cityUC).
		WithCatalogUseCases(catalogUC)

	assert.Equal(t, userUC, builder.users)
	assert.Equal(t, travelUC, builder.travels)
	assert.Equal(t, inscriptionUC, builder.inscriptions)
	assert.Equal(t, carUC, builder.cars)
	assert.Equal(t, cityUC, builder.cities)
	assert.Equal(t, catalogUC, builder.catalog)
}

func TestRouterBuilder_Build_Development(t *testing.T) {
	cfg := &RouterConfig{
		Logger:         slog.New(slog.NewTextHandler(os.Stdout, nil)),
		Tokens:         staticTokenService{},
		Version:        "1.0.0",
		BuildTime:      "2024-01-01",
		Environment:    "development",
		AllowedOrigins: []string{"*"},
	}

	router := NewRouterBuilder(cfg).Build()

	require.NotNil(t, router)
}

func TestRouterBuilder_Build_Production(t *testing.T) {
	cfg := &RouterConfig{
		Logger:         slog.New(slog.NewTextHandler(os.Stdout, nil)),
		Tokens:         staticTokenService{},
		Version:        "1.0.0",
		BuildTime:      "2024-01-01",
		Environment:    "production",
		AllowedOrigins: []string{"https://example.com"},
	}

	router := NewRouterBuilder(cfg).Build()

	require.NotNil(t, router)
}

func TestRouterBuilder_Build_HealthEndpoints(t *testing.T) {
	cfg := DefaultRouterConfig()
	router := NewRouterBuilder(cfg).Build()

	endpoints := []string{"/health", "/live", "/ready"}
	for _, endpoint := range endpoints {
		t.Run(endpoint, func(t *testing.T) {
			req := httptest.NewRequest("GET", endpoint, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestRouterBuilder_Build_MetricsEndpoint(t *testing.T) {
	cfg := DefaultRouterConfig()
	router := NewRouterBuilder(cfg).Build()

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_") // Prometheus Go metrics
}

func TestRouterBuilder_Build_404Handler(t *testing.T) {
	cfg := DefaultRouterConfig()
	router := NewRouterBuilder(cfg).Build()

	req := httptest.NewRequest("GET", "/nonexistent/path", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Endpoint not found")
}

func TestNewRouter(t *testing.T) {
	cfg := DefaultRouterConfig()
	router := NewRouter(cfg)

	require.NotNil(t, router)
}

func TestNewRouter_NilConfig(t *testing.T) {
	router := NewRouter(nil)

	require.NotNil(t, router)
}

func TestRouter_CORS_Development(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.Environment = "development"
	router := NewRouterBuilder(cfg).Build()

	req := httptest.NewRequest("OPTIONS", "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	// OPTIONS request should return 204 or 200
	assert.True(t, w.Code == http.StatusNoContent || w.Code == http.StatusOK)
}

func TestRouter_CORS_Production(t *testing.T) {
	cfg := &RouterConfig{
		Logger:         slog.Default(),
		Tokens:         staticTokenService{},
		Version:        "1.0.0",
		Environment:    "production",
		AllowedOrigins: []string{"https://example.com"},
	}
	router := NewRouterBuilder(cfg).Build()

	req := httptest.NewRequest("OPTIONS", "/health", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	// Should allow the specific origin
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Origin"), "https://example.com")
}

func TestRouter_RequestID(t *testing.T) {
	cfg := DefaultRouterConfig()
	router := NewRouterBuilder(cfg).Build()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	// Should have X-Request-ID header
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_ProtectedRouteRequiresAuth(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.Tokens = staticTokenService{}

	router := NewRouterBuilder(cfg).
		WithTravelUseCases(&TravelUseCases{}).
		Build()

	req := httptest.NewRequest("GET", "/api/v1/travels", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_CatalogIsPublic(t *testing.T) {
	cfg := DefaultRouterConfig()

	router := NewRouterBuilder(cfg).
		WithCatalogUseCases(&CatalogUseCases{}).
		Build()

	// Без token, но справочники открыты. Use cases пустые,
	// так что достаточно убедиться, что auth не срезал запрос.
	req := httptest.NewRequest("GET", "/api/v1/catalog/colors", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.NotEqual(t, http.StatusUnauthorized, w.Code)
}

func TestUserUseCases_Structure(t *testing.T) {
	uc := &UserUseCases{}

	assert.Nil(t, uc.RegisterUser)
	assert.Nil(t, uc.Login)
	assert.Nil(t, uc.GetUser)
	assert.Nil(t, uc.ListUsers)
	assert.Nil(t, uc.AnonymizeUser)
	assert.Nil(t, uc.DeleteUser)
}

func TestInscriptionUseCases_Structure(t *testing.T) {
	uc := &InscriptionUseCases{}

	assert.Nil(t, uc.CreateInscription)
	assert.Nil(t, uc.ConfirmInscription)
	assert.Nil(t, uc.CancelInscription)
	assert.Nil(t, uc.ListByUser)
	assert.Nil(t, uc.ListByTravel)
}

func TestRouterConfig_AllFields(t *testing.T) {
	logger := slog.Default()

	cfg := &RouterConfig{
		Logger:         logger,
		Pool:           nil,
		Cache:          nil,
		Tokens:         staticTokenService{},
		Version:        "1.0.0",
		BuildTime:      "2024-01-01",
		Environment:    "staging",
		AllowedOrigins: []string{"https://staging.example.com"},
	}

	assert.Equal(t, logger, cfg.Logger)
	assert.Nil(t, cfg.Pool)
	assert.Nil(t, cfg.Cache)
	assert.NotNil(t, cfg.Tokens)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "2024-01-01", cfg.BuildTime)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Contains(t, cfg.AllowedOrigins, "https://staging.example.com")
}
