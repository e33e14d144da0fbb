package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/safetravel/internal/config"
	v1 "github.com/shenikar/safetravel/internal/handler/http/v1"
	"github.com/shenikar/safetravel/internal/observability"
	"github.com/shenikar/safetravel/internal/repository"
	"github.com/shenikar/safetravel/internal/seed"
	"github.com/shenikar/safetravel/internal/service"
	"github.com/shenikar/safetravel/internal/webhook"
	"github.com/shenikar/safetravel/pkg/logger"
	"github.com/shenikar/safetravel/pkg/postgres"
	redisclient "github.com/shenikar/safetravel/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/safetravel/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title SafeTravel API
// @version 1.0
// @description Crime awareness service: incidents, community reports, proximity alerts and hotspots.
// @host localhost:8080
// @BasePath /api/v1
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// openReportLog выбирает журнал сообщений по REPORT_LOG_DRIVER; cleanup освобождает соединения
func openReportLog(ctx context.Context, cfg *config.Config, log *logrus.Logger) (repository.ReportLog, func(), error) {
	switch cfg.ReportLogDriver {
	case config.DriverPostgres:
		if err := runMigrations(cfg, log); err != nil {
			return nil, nil, err
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		log.Info("Successfully connected to PostgreSQL")
		return repository.NewPostgresReportLog(dbpool, log), dbpool.Close, nil

	case config.DriverSQLite:
		sqliteLog, err := repository.NewSQLiteReportLog(ctx, cfg.SQLitePath, log)
		if err != nil {
			return nil, nil, err
		}
		log.WithField("path", cfg.SQLitePath).Info("Using SQLite report log")
		return sqliteLog, func() { _ = sqliteLog.Close() }, nil

	default:
		log.WithField("path", cfg.ReportLogPath).Info("Using CSV report log")
		return repository.NewFileReportLog(cfg.ReportLogPath, log), func() {}, nil
	}
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	// Журнал сообщений пользователей
	reportLog, closeLog, err := openReportLog(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open report log: %v", err)
	}
	defer closeLog()

	// Демонстрационные данные + журнал
	generator := seed.NewGenerator(cfg.SeedRandom, clock)
	initial := append(generator.Crimes(cfg.SeedCrimes), generator.CommunityReports(cfg.SeedReports)...)
	store, err := repository.OpenIncidentStore(ctx, reportLog, initial, log, metrics)
	if err != nil {
		log.Fatalf("Failed to open incident store: %v", err)
	}

	// Оповещения: Redis очередь + воркер вебхуков
	var publisher webhook.AlertPublisher = webhook.NopPublisher{}
	if cfg.AlertsEnabled {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		publisher = webhook.NewRedisAlertPublisher(redisClient)
		webhook.NewWorker(redisClient, log, cfg).Start(ctx)
	}

	// Инициализация сервисов
	safetyService := service.NewSafetyService(store, seed.SafeLocations(), publisher, clock, log, metrics)

	// Инициализация хэндлеров
	handler := v1.NewHandler(safetyService, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), v1.RequestLoggerMiddleware(log))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	log.WithFields(logrus.Fields{
		"port":      cfg.HTTPPort,
		"incidents": store.Len(),
	}).Info("HTTP server started")

	// Graceful shutdown
	select {
	case <-ctx.Done():
		log.Info("Received shutdown signal, shutting down server...")
	case err := <-serverErr:
		log.WithError(err).Error("Error starting HTTP server")
		closeLog()
		os.Exit(1)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	log.Info("Server gracefully stopped")
}
