// Package http - Router configuration for REST API.
//
// Router собирает все handlers и middleware в единую точку входа.
//
// Pattern: Composition Root
// - Все зависимости собираются здесь
// - Handlers получают только нужные им use cases
// - Middleware применяется к соответствующим группам routes
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/roadshare/roadshare/internal/adapters/http/common"
	"github.com/roadshare/roadshare/internal/adapters/http/handlers"
	"github.com/roadshare/roadshare/internal/adapters/http/middleware"
	"github.com/roadshare/roadshare/internal/application/ports"
)

// ============================================
// Router Configuration
// ============================================

// RouterConfig - конфигурация роутера.
type RouterConfig struct {
	// Logger для middleware
	Logger *slog.Logger
	// Database pool для health checks
	Pool *pgxpool.Pool
	// Cache для health checks (nil - кэш выключен)
	Cache ports.CacheService
	// Tokens валидирует access-токены
	Tokens ports.TokenService
	// Version приложения
	Version string
	// BuildTime время сборки
	BuildTime string
	// Environment (development, staging, production)
	Environment string
	// AllowedOrigins для CORS (production)
	AllowedOrigins []string
}

// DefaultRouterConfig - конфигурация по умолчанию для development.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		Logger:         slog.Default(),
		Version:        "dev",
		BuildTime:      "unknown",
		Environment:    "development",
		AllowedOrigins: []string{"*"},
	}
}

// ============================================
// Use Case Providers
// ============================================

// UserUseCases - provider для user use cases.
type UserUseCases struct {
	RegisterUser  handlers.RegisterUserUseCase
	Login         handlers.LoginUseCase
	GetUser       handlers.GetUserUseCase
	ListUsers     handlers.ListUsersUseCase
	AnonymizeUser handlers.AnonymizeUserUseCase
	DeleteUser    handlers.DeleteUserUseCase
}

// TravelUseCases - provider для travel use cases.
type TravelUseCases struct {
	CreateTravel handlers.CreateTravelUseCase
	GetTravel    handlers.GetTravelUseCase
	ListTravels  handlers.ListTravelsUseCase
	DeleteTravel handlers.DeleteTravelUseCase
}

// InscriptionUseCases - provider для inscription use cases.
type InscriptionUseCases struct {
	CreateInscription  handlers.CreateInscriptionUseCase
	ConfirmInscription handlers.ConfirmInscriptionUseCase
	CancelInscription  handlers.CancelInscriptionUseCase
	ListByUser         handlers.ListInscriptionsByUserUseCase
	ListByTravel       handlers.ListInscriptionsByTravelUseCase
}

// CarUseCases - provider для car use cases.
type CarUseCases struct {
	RegisterCar handlers.RegisterCarUseCase
	ListCars    handlers.ListCarsUseCase
	ListMine    handlers.ListCarsByDriverUseCase
}

// CityUseCases - provider для city use cases.
type CityUseCases struct {
	CreateCity handlers.CreateCityUseCase
	ListCities handlers.ListCitiesUseCase
}

// CatalogUseCases - provider для catalog use cases.
type CatalogUseCases struct {
	ListBrands handlers.ListBrandsUseCase
	ListModels handlers.ListModelsUseCase
	ListColors handlers.ListColorsUseCase
}

// ============================================
// Router Builder
// ============================================

// RouterBuilder - builder для создания роутера.
//
// Pattern: Builder
// - Позволяет пошагово настроить роутер
// - Проще тестировать
// - Можно переиспользовать части конфигурации
type RouterBuilder struct {
	config       *RouterConfig
	users        *UserUseCases
	travels      *TravelUseCases
	inscriptions *InscriptionUseCases
	cars         *CarUseCases
	cities       *CityUseCases
	catalog      *CatalogUseCases
}

// NewRouterBuilder создаёт новый builder.
func NewRouterBuilder(config *RouterConfig) *RouterBuilder {
	if config == nil {
		config = DefaultRouterConfig()
	}
	return &RouterBuilder{
		config: config,
	}
}

// WithUserUseCases добавляет user use cases.
func (b *RouterBuilder) WithUserUseCases(useCases *UserUseCases) *RouterBuilder {
	b.users = useCases
	return b
}

// WithTravelUseCases добавляет travel use cases.
func (b *RouterBuilder) WithTravelUseCases(useCases *TravelUseCases) *RouterBuilder {
	b.travels = useCases
	return b
}

// WithInscriptionUseCases добавляет inscription use cases.
func (b *RouterBuilder) WithInscriptionUseCases(useCases *InscriptionUseCases) *RouterBuilder {
	b.inscriptions = useCases
	return b
}

// WithCarUseCases добавляет car use cases.
func (b *RouterBuilder) WithCarUseCases(useCases *CarUseCases) *RouterBuilder {
	b.cars = useCases
	return b
}

// WithCityUseCases добавляет city use cases.
func (b *RouterBuilder) WithCityUseCases(useCases *CityUseCases) *RouterBuilder {
	b.cities = useCases
	return b
}

// WithCatalogUseCases добавляет catalog use cases.
func (b *RouterBuilder) WithCatalogUseCases(useCases *CatalogUseCases) *RouterBuilder {
	b.catalog = useCases
	return b
}

// Build создаёт сконфигурированный Gin Engine.
func (b *RouterBuilder) Build() *gin.Engine {
	// Настраиваем режим Gin
	if b.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Создаём router без default middleware
	router := gin.New()

	// Настраиваем кастомные валидаторы
	handlers.SetupValidator()

	// ============================================
	// Global Middleware
	// ============================================

	// 1. Recovery - должен быть первым
	router.Use(middleware.Recovery(&middleware.RecoveryConfig{
		Logger:           b.config.Logger,
		EnableStackTrace: b.config.Environment != "production",
	}))

	// 2. Request ID
	router.Use(middleware.RequestID())

	// 3. CORS
	if b.config.Environment == "production" {
		router.Use(middleware.CORS(middleware.ProductionCORSConfig(b.config.AllowedOrigins)))
	} else {
		router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	}

	// 4. Logging
	router.Use(middleware.Logging(&middleware.LoggingConfig{
		Logger:    b.config.Logger,
		SkipPaths: []string{"/health", "/live", "/ready", "/metrics"},
	}))

	// 5. Rate Limiting (global)
	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))

	// 6. Metrics (Prometheus)
	router.Use(middleware.Metrics())

	// ============================================
	// Metrics Endpoint (no auth)
	// ============================================

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ============================================
	// Health Check Routes (no auth)
	// ============================================

	healthHandler := handlers.NewHealthHandler(
		b.config.Pool,
		b.config.Cache,
		b.config.Version,
		b.config.BuildTime,
	)
	healthHandler.RegisterRoutes(router)

	// ============================================
	// API v1 Routes
	// ============================================

	v1 := router.Group("/api/v1")

	var userHandler *handlers.UserHandler
	if b.users != nil {
		userHandler = handlers.NewUserHandler(
			b.users.RegisterUser,
			b.users.Login,
			b.users.GetUser,
			b.users.ListUsers,
			b.users.AnonymizeUser,
			b.users.DeleteUser,
		)
	}

	// Public routes (no auth required)
	publicGroup := v1.Group("")
	publicGroup.Use(middleware.AuthRateLimit())
	{
		if userHandler != nil {
			// Регистрация и вход - публичные
			publicGroup.POST("/users", userHandler.Register)
			userHandler.RegisterAuthRoutes(publicGroup)
		}
	}

	// Каталог и города читаются без авторизации: это справочники,
	// нужные клиенту ещё до регистрации.
	if b.catalog != nil {
		catalogHandler := handlers.NewCatalogHandler(
			b.catalog.ListBrands,
			b.catalog.ListModels,
			b.catalog.ListColors,
		)
		catalogHandler.RegisterRoutes(v1)
	}

	var cityHandler *handlers.CityHandler
	if b.cities != nil {
		cityHandler = handlers.NewCityHandler(b.cities.CreateCity, b.cities.ListCities)
		v1.GET("/cities", cityHandler.List)
	}

	// Protected routes (auth required)
	protectedGroup := v1.Group("")
	protectedGroup.Use(middleware.Auth(&middleware.AuthConfig{
		Tokens:    b.config.Tokens,
		SkipPaths: []string{}, // Auth обязательна
	}))
	{
		// User routes
		if userHandler != nil {
			users := protectedGroup.Group("/users")
			{
				users.GET("", userHandler.ListUsers)
				users.GET("/:id", userHandler.GetUser)
				users.POST("/:id/anonymize", userHandler.Anonymize)
				users.DELETE("/:id", userHandler.Delete)
			}
		}

		// Travel routes
		if b.travels != nil {
			travelHandler := handlers.NewTravelHandler(
				b.travels.CreateTravel,
				b.travels.GetTravel,
				b.travels.ListTravels,
				b.travels.DeleteTravel,
			)
			travels := protectedGroup.Group("/travels")
			{
				travels.POST("", travelHandler.Create)
				travels.GET("", travelHandler.List)
				travels.GET("/:id", travelHandler.Get)
				travels.DELETE("/:id", travelHandler.Delete)
			}
		}

		// Inscription routes
		if b.inscriptions != nil {
			inscriptionHandler := handlers.NewInscriptionHandler(
				b.inscriptions.CreateInscription,
				b.inscriptions.ConfirmInscription,
				b.inscriptions.CancelInscription,
				b.inscriptions.ListByUser,
				b.inscriptions.ListByTravel,
			)
			inscriptions := protectedGroup.Group("/inscriptions")
			{
				// Бронирование - горячий путь, свой лимит
				booking := inscriptions.Group("")
				booking.Use(middleware.BookingRateLimit())
				{
					booking.POST("", inscriptionHandler.Create)
				}

				inscriptions.GET("", inscriptionHandler.ListMine)
				inscriptions.PATCH("/:id/confirm", inscriptionHandler.Confirm)
				inscriptions.DELETE("/:id", inscriptionHandler.Cancel)
			}

			// Nested route: бронирования поездки
			protectedGroup.GET("/travels/:id/inscriptions", inscriptionHandler.ListByTravel)
		}

		// Car routes
		if b.cars != nil {
			carHandler := handlers.NewCarHandler(
				b.cars.RegisterCar,
				b.cars.ListCars,
				b.cars.ListMine,
			)
			cars := protectedGroup.Group("/cars")
			{
				cars.POST("", carHandler.Register)
				cars.GET("", carHandler.List)
				cars.GET("/mine", carHandler.ListMine)
			}
		}
	}

	// ============================================
	// Admin Routes (admin role required)
	// ============================================

	adminGroup := v1.Group("/admin")
	adminGroup.Use(middleware.Auth(&middleware.AuthConfig{
		Tokens: b.config.Tokens,
	}))
	adminGroup.Use(middleware.RequireRole("ADMIN"))
	{
		// Справочник городов пополняют только администраторы
		if cityHandler != nil {
			adminGroup.POST("/cities", cityHandler.Create)
		}
	}

	// ============================================
	// 404 Handler
	// ============================================

	router.NoRoute(func(c *gin.Context) {
		common.Error(c, 404, &common.APIError{
			Code:    common.ErrCodeNotFound,
			Message: "Endpoint not found",
			Details: map[string]interface{}{
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			},
		})
	})

	return router
}

// ============================================
// Quick Setup Functions
// ============================================

// NewRouter создаёт роутер с базовой конфигурацией (для простых случаев).
func NewRouter(config *RouterConfig) *gin.Engine {
	return NewRouterBuilder(config).Build()
}
