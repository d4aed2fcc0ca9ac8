package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"martdelivery/cmd"
	_ "martdelivery/docs"
	httpin "martdelivery/internal/adapters/in/http"
	"martdelivery/internal/adapters/out/postgres"
	"martdelivery/internal/adapters/out/rabbitmq"
	"martdelivery/internal/core/ports"
	"martdelivery/internal/generated/servers"
	"martdelivery/internal/jobs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, closeDB := mustOpenDatabase(config)
	defer closeDB()

	redisClient := openRedis(ctx, config, logger)
	if redisClient != nil {
		defer redisClient.Close()
	}

	var geocoderCache redis.Cmdable
	if redisClient != nil {
		geocoderCache = redisClient
	}
	geocoder, err := cmd.NewGeocoder(config, geocoderCache, logger)
	if err != nil {
		log.Fatalf("Failed to create geocoder: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Failed to access database pool: %v", err)
	}
	healthChecks := map[string]httpin.HealthCheck{"postgres": sqlDB.PingContext}

	var publisher ports.OrderEventPublisher
	if config.RabbitMQURL != "" {
		client, dialErr := rabbitmq.Dial(config.RabbitMQURL, config.RabbitMQExchange)
		if dialErr != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", dialErr)
		}
		defer client.Close()
		publisher = rabbitmq.NewOrderEventPublisher(client, config.RabbitMQExchange)
		healthChecks["rabbitmq"] = client.Ping
	} else {
		logger.Warn("RABBITMQ_URL is not set, order status events are disabled")
	}

	app := cmd.NewCompositionRoot(config, gormDB, geocoder, publisher, logger)

	backfillHandler := app.CreateBackfillMartLocationsCommandHandler()
	jobManager := jobs.NewJobManager(&backfillHandler, config.MartBackfillSchedule, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := newWebServer(app, healthChecks, logger)

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", startErr)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}

func mustOpenDatabase(config cmd.Config) (*gorm.DB, func()) {
	pgxConfig, err := pgx.ParseConfig(config.DSN())
	if err != nil {
		log.Fatalf("Invalid database configuration: %v", err)
	}

	sqlDB := stdlib.OpenDB(*pgxConfig)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB, func() {
		_ = sqlDB.Close()
	}
}

func openRedis(ctx context.Context, config cmd.Config, logger *slog.Logger) *redis.Client {
	if config.RedisAddr == "" {
		logger.Warn("REDIS_ADDR is not set, geocoding results are not cached")
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("Redis is unreachable, the geocoding cache will be bypassed until it recovers",
			"addr", config.RedisAddr, "error", err)
	}
	return client
}

func newWebServer(app cmd.CompositionRoot, healthChecks map[string]httpin.HealthCheck, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpin.ErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.LogAttrs(c.Request().Context(), slog.LevelError, "request",
					slog.Group("http", attrs...), slog.String("error", v.Error.Error()))
				return nil
			}
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", slog.Group("http", attrs...))
			return nil
		},
	}))

	swagger, err := servers.GetSwagger()
	if err != nil {
		log.Fatalf("Failed to load OpenAPI document: %v", err)
	}
	validator, err := httpin.RequestValidator(swagger)
	if err != nil {
		log.Fatalf("Failed to create request validator: %v", err)
	}
	e.Use(validator)

	e.GET("/health", httpin.HealthHandler(healthChecks))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	createOrder := app.CreateCreateOrderCommandHandler()
	changeStatus := app.CreateChangeOrderStatusCommandHandler()
	updateLocation := app.CreateUpdateOrderLocationCommandHandler()
	createMart := app.CreateCreateMartCommandHandler()

	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:         &createOrder,
		ChangeOrderStatus:   &changeStatus,
		UpdateOrderLocation: &updateLocation,
		CreateMart:          &createMart,
		GetOptimizedBatch:   app.CreateGetOptimizedBatchQueryHandler(),
		GetOrder:            app.CreateGetOrderQueryHandler(),
		GetMart:             app.CreateGetMartQueryHandler(),
		GetMartsByOwner:     app.CreateGetMartsByOwnerQueryHandler(),
	}, logger)
	servers.RegisterHandlers(e, server)

	return e
}
