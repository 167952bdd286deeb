// Package container - Dependency Injection container for the application.
//
// Container управляет жизненным циклом всех зависимостей:
// - Создание (lazy initialization)
// - Доступ (getters)
// - Закрытие (cleanup)
//
// Pattern: Composition Root
// - Все зависимости собираются в одном месте
// - Легко тестировать
// - Легко заменять реализации
package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roadshare/roadshare/internal/adapters/http"
	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/application/usecases/car"
	"github.com/roadshare/roadshare/internal/application/usecases/catalog"
	"github.com/roadshare/roadshare/internal/application/usecases/city"
	"github.com/roadshare/roadshare/internal/application/usecases/inscription"
	"github.com/roadshare/roadshare/internal/application/usecases/travel"
	"github.com/roadshare/roadshare/internal/application/usecases/user"
	"github.com/roadshare/roadshare/internal/config"
	"github.com/roadshare/roadshare/internal/infrastructure/auth"
	"github.com/roadshare/roadshare/internal/infrastructure/cache"
	"github.com/roadshare/roadshare/internal/infrastructure/email"
	"github.com/roadshare/roadshare/internal/infrastructure/persistence/postgres"
	"github.com/roadshare/roadshare/internal/pkg/logger"
)

// ============================================
// Container
// ============================================

// Container - DI контейнер приложения.
type Container struct {
	config *config.Config
	logger *slog.Logger

	// Infrastructure
	pool       *pgxpool.Pool
	redisCache *cache.RedisCache

	// Services
	tokens ports.TokenService
	hasher ports.PasswordHasher
	mailer ports.Mailer

	// Repositories (за кэширующими декораторами, где они есть)
	userRepo        ports.UserRepository
	driverRepo      ports.DriverRepository
	carRepo         ports.CarRepository
	travelRepo      ports.TravelRepository
	inscriptionRepo ports.InscriptionRepository
	cityRepo        ports.CityRepository
	brandRepo       ports.BrandRepository
	modelRepo       ports.ModelRepository
	colorRepo       ports.ColorRepository

	// Unit of Work
	uow ports.UnitOfWork

	// Use Cases
	registerUserUC  *user.RegisterUserUseCase
	loginUC         *user.LoginUseCase
	getUserUC       *user.GetUserUseCase
	listUsersUC     *user.ListUsersUseCase
	anonymizeUserUC *user.AnonymizeUserUseCase
	deleteUserUC    *user.DeleteUserUseCase

	createTravelUC *travel.CreateTravelUseCase
	getTravelUC    *travel.GetTravelUseCase
	listTravelsUC  *travel.ListTravelsUseCase
	deleteTravelUC *travel.DeleteTravelUseCase

	createInscriptionUC  *inscription.CreateInscriptionUseCase
	confirmInscriptionUC *inscription.ConfirmInscriptionUseCase
	cancelInscriptionUC  *inscription.CancelInscriptionUseCase
	listByUserUC         *inscription.ListInscriptionsByUserUseCase
	listByTravelUC       *inscription.ListInscriptionsByTravelUseCase

	registerCarUC *car.RegisterCarUseCase
	listCarsUC    *car.ListCarsUseCase
	listMyCarsUC  *car.ListCarsByDriverUseCase

	createCityUC *city.CreateCityUseCase
	listCitiesUC *city.ListCitiesUseCase

	listBrandsUC *catalog.ListBrandsUseCase
	listModelsUC *catalog.ListModelsUseCase
	listColorsUC *catalog.ListColorsUseCase

	// HTTP
	httpServer *http.Server
}

// New создаёт новый контейнер с заданной конфигурацией.
func New(cfg *config.Config) *Container {
	return &Container{
		config: cfg,
	}
}

// ============================================
// Initialization
// ============================================

// Initialize инициализирует все зависимости.
func (c *Container) Initialize(ctx context.Context) error {
	c.logger = c.initLogger()
	c.logger.Info("Initializing application container...")

	// 1. Database
	if err := c.initDatabase(ctx); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	c.logger.Info("Database connected")

	// 2. Redis (недоступность - не фатальная ошибка)
	c.initCache(ctx)

	// 3. Services (JWT, bcrypt, mailer)
	if err := c.initServices(); err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	c.logger.Info("Services initialized")

	// 4. Repositories
	c.initRepositories()
	c.logger.Info("Repositories initialized")

	// 5. Use Cases
	c.initUseCases()
	c.logger.Info("Use cases initialized")

	// 6. HTTP Server
	c.initHTTPServer()
	c.logger.Info("HTTP server initialized")

	c.logger.Info("Container initialization complete")
	return nil
}

// initLogger инициализирует логгер.
func (c *Container) initLogger() *slog.Logger {
	log := logger.New(&logger.Config{
		Level:     c.config.Log.Level,
		Format:    c.config.Log.Format,
		AddSource: c.config.App.Debug,
	})
	slog.SetDefault(log)
	return log
}

// initDatabase инициализирует подключение к БД.
func (c *Container) initDatabase(ctx context.Context) error {
	pool, err := postgres.NewConnectionPool(ctx, postgres.Config{
		Host:            c.config.Database.Host,
		Port:            c.config.Database.Port,
		Database:        c.config.Database.Database,
		User:            c.config.Database.User,
		Password:        c.config.Database.Password,
		SSLMode:         c.config.Database.SSLMode,
		MaxConns:        c.config.Database.MaxConnections,
		MinConns:        c.config.Database.MinConnections,
		MaxConnLifetime: c.config.Database.MaxConnLifetime,
		MaxConnIdleTime: c.config.Database.MaxConnIdleTime,
	})
	if err != nil {
		return err
	}

	c.pool = pool
	return nil
}

// initCache инициализирует Redis.
//
// Redis - вспомогательная инфраструктура: если он недоступен,
// приложение стартует без кэша и работает напрямую с БД.
func (c *Container) initCache(ctx context.Context) {
	if c.config.Cache.Disabled {
		c.logger.Info("Cache disabled by configuration")
		return
	}

	redisCache, err := cache.NewRedisCache(ctx, cache.RedisConfig{
		Host:     c.config.Redis.Host,
		Port:     c.config.Redis.Port,
		Password: c.config.Redis.Password,
		DB:       c.config.Redis.DB,
	})
	if err != nil {
		c.logger.Warn("Redis unavailable, starting without cache",
			slog.String("error", err.Error()),
		)
		return
	}

	c.redisCache = redisCache
	c.logger.Info("Redis connected", slog.String("addr", c.config.Redis.Addr()))
}

// initServices инициализирует JWT, bcrypt и mailer.
func (c *Container) initServices() error {
	tokens, err := auth.NewJWTService(c.config.Auth.JWTSecret, c.config.Auth.AccessTokenExpiry)
	if err != nil {
		return fmt.Errorf("jwt service: %w", err)
	}
	c.tokens = tokens

	c.hasher = auth.NewBcryptHasher(c.config.Auth.BcryptCost)

	if c.config.SMTP.Enabled() {
		c.mailer = email.NewSMTPMailer(email.SMTPConfig{
			Host:     c.config.SMTP.Host,
			Port:     c.config.SMTP.Port,
			Username: c.config.SMTP.Username,
			Password: c.config.SMTP.Password,
			From:     c.config.SMTP.From,
		}, c.logger)
	} else {
		c.mailer = email.NewNoopMailer(c.logger)
	}

	return nil
}

// initRepositories инициализирует репозитории.
//
// Постоянное хранилище - PostgreSQL; читаемые-тяжёлые репозитории
// оборачиваются в cache-aside декораторы поверх Redis.
func (c *Container) initRepositories() {
	userRepo := postgres.NewUserRepository(c.pool)
	driverRepo := postgres.NewDriverRepository(c.pool)
	carRepo := postgres.NewCarRepository(c.pool)
	travelRepo := postgres.NewTravelRepository(c.pool)
	inscriptionRepo := postgres.NewInscriptionRepository(c.pool)
	cityRepo := postgres.NewCityRepository(c.pool)
	brandRepo := postgres.NewBrandRepository(c.pool)
	modelRepo := postgres.NewModelRepository(c.pool)
	colorRepo := postgres.NewColorRepository(c.pool)

	if c.redisCache != nil {
		opts := cache.Options{
			Prefix:         "roadshare",
			UserTTL:        c.config.Cache.UserTTL,
			TravelTTL:      c.config.Cache.TravelTTL,
			InscriptionTTL: c.config.Cache.InscriptionTTL,
			CityTTL:        c.config.Cache.CityTTL,
			CatalogTTL:     c.config.Cache.CatalogTTL,
		}

		c.userRepo = cache.NewCachedUserRepository(userRepo, c.redisCache, opts, c.logger)
		c.driverRepo = cache.NewCachedDriverRepository(driverRepo, c.redisCache, opts, c.logger)
		c.carRepo = cache.NewCachedCarRepository(carRepo, c.redisCache, opts, c.logger)
		c.travelRepo = cache.NewCachedTravelRepository(travelRepo, c.redisCache, opts, c.logger)
		c.inscriptionRepo = cache.NewCachedInscriptionRepository(inscriptionRepo, c.redisCache, opts, c.logger)
		c.cityRepo = cache.NewCachedCityRepository(cityRepo, c.redisCache, opts, c.logger)
		c.brandRepo = cache.NewCachedBrandRepository(brandRepo, c.redisCache, opts, c.logger)
		c.modelRepo = cache.NewCachedModelRepository(modelRepo, c.redisCache, opts, c.logger)
		c.colorRepo = cache.NewCachedColorRepository(colorRepo, c.redisCache, opts, c.logger)
	} else {
		c.userRepo = userRepo
		c.driverRepo = driverRepo
		c.carRepo = carRepo
		c.travelRepo = travelRepo
		c.inscriptionRepo = inscriptionRepo
		c.cityRepo = cityRepo
		c.brandRepo = brandRepo
		c.modelRepo = modelRepo
		c.colorRepo = colorRepo
	}

	// Unit of Work
	c.uow = postgres.NewUnitOfWork(c.pool)
}

// initUseCases инициализирует use cases.
func (c *Container) initUseCases() {
	// User Use Cases
	c.registerUserUC = user.NewRegisterUserUseCase(c.userRepo, c.hasher, c.mailer, c.logger)
	c.loginUC = user.NewLoginUseCase(c.userRepo, c.hasher, c.tokens, c.logger)
	c.getUserUC = user.NewGetUserUseCase(c.userRepo)
	c.listUsersUC = user.NewListUsersUseCase(c.userRepo)
	c.anonymizeUserUC = user.NewAnonymizeUserUseCase(c.userRepo, c.logger)
	c.deleteUserUC = user.NewDeleteUserUseCase(c.userRepo, c.logger)

	// Travel Use Cases
	c.createTravelUC = travel.NewCreateTravelUseCase(c.driverRepo, c.carRepo, c.cityRepo, c.travelRepo)
	c.getTravelUC = travel.NewGetTravelUseCase(c.travelRepo)
	c.listTravelsUC = travel.NewListTravelsUseCase(c.travelRepo)
	c.deleteTravelUC = travel.NewDeleteTravelUseCase(c.travelRepo, c.driverRepo)

	// Inscription Use Cases
	c.createInscriptionUC = inscription.NewCreateInscriptionUseCase(
		c.userRepo,
		c.travelRepo,
		c.inscriptionRepo,
		c.mailer,
		c.logger,
	)
	c.confirmInscriptionUC = inscription.NewConfirmInscriptionUseCase(c.inscriptionRepo, c.travelRepo, c.driverRepo)
	c.cancelInscriptionUC = inscription.NewCancelInscriptionUseCase(c.inscriptionRepo)
	c.listByUserUC = inscription.NewListInscriptionsByUserUseCase(c.inscriptionRepo)
	c.listByTravelUC = inscription.NewListInscriptionsByTravelUseCase(c.travelRepo, c.inscriptionRepo)

	// Car Use Cases
	c.registerCarUC = car.NewRegisterCarUseCase(
		c.userRepo,
		c.driverRepo,
		c.carRepo,
		c.modelRepo,
		c.colorRepo,
		c.uow,
		c.logger,
	)
	c.listCarsUC = car.NewListCarsUseCase(c.carRepo)
	c.listMyCarsUC = car.NewListCarsByDriverUseCase(c.driverRepo, c.carRepo)

	// City Use Cases
	c.createCityUC = city.NewCreateCityUseCase(c.cityRepo)
	c.listCitiesUC = city.NewListCitiesUseCase(c.cityRepo)

	// Catalog Use Cases
	c.listBrandsUC = catalog.NewListBrandsUseCase(c.brandRepo)
	c.listModelsUC = catalog.NewListModelsUseCase(c.modelRepo)
	c.listColorsUC = catalog.NewListColorsUseCase(c.colorRepo)
}

// initHTTPServer инициализирует HTTP сервер.
func (c *Container) initHTTPServer() {
	var cacheService ports.CacheService
	if c.redisCache != nil {
		cacheService = c.redisCache
	}

	// Router Config
	routerConfig := &http.RouterConfig{
		Logger:         c.logger,
		Pool:           c.pool,
		Cache:          cacheService,
		Tokens:         c.tokens,
		Version:        c.config.App.Version,
		BuildTime:      c.config.App.BuildTime,
		Environment:    c.config.App.Environment,
		AllowedOrigins: c.config.CORS.AllowedOrigins,
	}

	// Build Router
	router := http.NewRouterBuilder(routerConfig).
		WithUserUseCases(&http.UserUseCases{
			RegisterUser:  c.registerUserUC,
			Login:         c.loginUC,
			GetUser:       c.getUserUC,
			ListUsers:     c.listUsersUC,
			AnonymizeUser: c.anonymizeUserUC,
			DeleteUser:    c.deleteUserUC,
		}).
		WithTravelUseCases(&http.TravelUseCases{
			CreateTravel: c.createTravelUC,
			GetTravel:    c.getTravelUC,
			ListTravels:  c.listTravelsUC,
			DeleteTravel: c.deleteTravelUC,
		}).
		WithInscriptionUseCases(&http.InscriptionUseCases{
			CreateInscription:  c.createInscriptionUC,
			ConfirmInscription: c.confirmInscriptionUC,
			CancelInscription:  c.cancelInscriptionUC,
			ListByUser:         c.listByUserUC,
			ListByTravel:       c.listByTravelUC,
		}).
		WithCarUseCases(&http.CarUseCases{
			RegisterCar: c.registerCarUC,
			ListCars:    c.listCarsUC,
			ListMine:    c.listMyCarsUC,
		}).
		WithCityUseCases(&http.CityUseCases{
			CreateCity: c.createCityUC,
			ListCities: c.listCitiesUC,
		}).
		WithCatalogUseCases(&http.CatalogUseCases{
			ListBrands: c.listBrandsUC,
			ListModels: c.listModelsUC,
			ListColors: c.listColorsUC,
		}).
		Build()

	// Server Config
	serverConfig := &http.ServerConfig{
		Host:            c.config.Server.Host,
		Port:            fmt.Sprintf("%d", c.config.Server.Port),
		ReadTimeout:     c.config.Server.ReadTimeout,
		WriteTimeout:    c.config.Server.WriteTimeout,
		IdleTimeout:     c.config.Server.IdleTimeout,
		ShutdownTimeout: c.config.Server.ShutdownTimeout,
		Logger:          c.logger,
	}

	c.httpServer = http.NewServer(serverConfig, router)
}

// ============================================
// Getters
// ============================================

// Config возвращает конфигурацию.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger возвращает логгер.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}

// Pool возвращает пул соединений к БД.
func (c *Container) Pool() *pgxpool.Pool {
	return c.pool
}

// HTTPServer возвращает HTTP сервер.
func (c *Container) HTTPServer() *http.Server {
	return c.httpServer
}

// ============================================
// Repository Getters
// ============================================

// UserRepository возвращает репозиторий пользователей.
func (c *Container) UserRepository() ports.UserRepository {
	return c.userRepo
}

// TravelRepository возвращает репозиторий поездок.
func (c *Container) TravelRepository() ports.TravelRepository {
	return c.travelRepo
}

// InscriptionRepository возвращает репозиторий инскрипций.
func (c *Container) InscriptionRepository() ports.InscriptionRepository {
	return c.inscriptionRepo
}

// UnitOfWork возвращает Unit of Work.
func (c *Container) UnitOfWork() ports.UnitOfWork {
	return c.uow
}

// ============================================
// Use Case Getters
// ============================================

// RegisterUserUseCase возвращает use case регистрации пользователя.
func (c *Container) RegisterUserUseCase() *user.RegisterUserUseCase {
	return c.registerUserUC
}

// LoginUseCase возвращает use case входа.
func (c *Container) LoginUseCase() *user.LoginUseCase {
	return c.loginUC
}

// CreateTravelUseCase возвращает use case публикации поездки.
func (c *Container) CreateTravelUseCase() *travel.CreateTravelUseCase {
	return c.createTravelUC
}

// CreateInscriptionUseCase возвращает use case бронирования.
func (c *Container) CreateInscriptionUseCase() *inscription.CreateInscriptionUseCase {
	return c.createInscriptionUC
}

// ============================================
// Shutdown
// ============================================

// Shutdown выполняет graceful shutdown всех компонентов.
func (c *Container) Shutdown(ctx context.Context) error {
	c.logger.Info("Shutting down container...")

	var errs []error

	// 1. HTTP Server
	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("HTTP server shutdown: %w", err))
		}
	}

	// 2. Redis
	if c.redisCache != nil {
		if err := c.redisCache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		} else {
			c.logger.Info("Redis connection closed")
		}
	}

	// 3. Database (даём время на завершение транзакций)
	if c.pool != nil {
		// Graceful close с таймаутом
		done := make(chan struct{})
		go func() {
			c.pool.Close()
			close(done)
		}()

		select {
		case <-done:
			c.logger.Info("Database connection closed")
		case <-ctx.Done():
			c.logger.Warn("Database close timeout")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}

	c.logger.Info("Container shutdown complete")
	return nil
}

// ============================================
// Run
// ============================================

// Run запускает приложение и ожидает сигнал завершения.
func (c *Container) Run() error {
	c.logger.Info("Starting RoadShare API Server",
		slog.String("version", c.config.App.Version),
		slog.String("environment", c.config.App.Environment),
		slog.String("address", c.config.Server.Address()),
	)

	return c.httpServer.Run()
}

// ============================================
// Builder Pattern (Alternative)
// ============================================

// ContainerBuilder - builder для создания контейнера с кастомными компонентами.
type ContainerBuilder struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
	mailer ports.Mailer
	tokens ports.TokenService
}

// NewBuilder создаёт новый builder.
func NewBuilder(cfg *config.Config) *ContainerBuilder {
	return &ContainerBuilder{
		cfg: cfg,
	}
}

// WithLogger устанавливает кастомный логгер.
func (b *ContainerBuilder) WithLogger(logger *slog.Logger) *ContainerBuilder {
	b.logger = logger
	return b
}

// WithPool устанавливает готовый пул соединений.
func (b *ContainerBuilder) WithPool(pool *pgxpool.Pool) *ContainerBuilder {
	b.pool = pool
	return b
}

// WithMailer устанавливает кастомный mailer.
func (b *ContainerBuilder) WithMailer(m ports.Mailer) *ContainerBuilder {
	b.mailer = m
	return b
}

// WithTokenService устанавливает кастомный token service.
func (b *ContainerBuilder) WithTokenService(ts ports.TokenService) *ContainerBuilder {
	b.tokens = ts
	return b
}

// Build создаёт контейнер.
func (b *ContainerBuilder) Build(ctx context.Context) (*Container, error) {
	c := New(b.cfg)

	// Use provided or initialize
	if b.logger != nil {
		c.logger = b.logger
	} else {
		c.logger = c.initLogger()
	}

	if b.pool != nil {
		c.pool = b.pool
	} else {
		if err := c.initDatabase(ctx); err != nil {
			return nil, err
		}
	}

	c.initCache(ctx)

	if err := c.initServices(); err != nil {
		return nil, err
	}

	if b.mailer != nil {
		c.mailer = b.mailer
	}
	if b.tokens != nil {
		c.tokens = b.tokens
	}

	c.initRepositories()
	c.initUseCases()
	c.initHTTPServer()

	return c, nil
}

// ============================================
// Health Check
// ============================================

// HealthStatus - статус здоровья приложения.
type HealthStatus struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

// Health возвращает статус здоровья приложения.
func (c *Container) Health(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:  "healthy",
		Version: c.config.App.Version,
		Checks:  make(map[string]string),
	}

	// Database check
	if err := c.pool.Ping(ctx); err != nil {
		status.Status = "unhealthy"
		status.Checks["database"] = "error: " + err.Error()
	} else {
		status.Checks["database"] = "ok"
	}

	// Cache check (degraded, не unhealthy: кэш не критичен)
	if c.redisCache != nil {
		if c.redisCache.IsHealthy(ctx) {
			status.Checks["cache"] = "ok"
		} else {
			status.Checks["cache"] = "degraded"
		}
	} else {
		status.Checks["cache"] = "disabled"
	}

	return status
}
