package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"mesa-pos/internal/handler"
	"mesa-pos/internal/repositories"
	"mesa-pos/internal/router"
	"mesa-pos/internal/service"
	"mesa-pos/pkg/database"
	"mesa-pos/pkg/envconfig"
	"mesa-pos/pkg/flags"
	"mesa-pos/pkg/logger"
	"mesa-pos/pkg/shutdownsetup"
)

func main() {
	flagConfig := flags.Parse()

	envErr := envconfig.LoadEnvFile(".env")

	loggerConfig := envconfig.LoadLoggerConfig()
	appLogger := logger.New(loggerConfig)
	defer appLogger.Close()

	if envErr != nil {
		appLogger.Warn("Failed to load .env file", "error", envErr)
	} else {
		appLogger.Debug(".env file loaded successfully")
	}

	appLogger.Info("Starting Mesa POS order service",
		"environment", loggerConfig.Environment,
		"log_level", loggerConfig.Level)

	dbConfig, err := envconfig.LoadDatabaseConfig()
	if err != nil {
		appLogger.Fatal("Invalid database configuration", "error", err)
	}

	db, err := database.NewConnection(dbConfig, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to establish database connection", "error", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("Failed to close database connection", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if flagConfig.Migrate {
		if err := db.Migrate(ctx); err != nil {
			cancel()
			appLogger.Fatal("Failed to apply schema", "error", err)
		}
	}
	if err := db.HealthCheck(ctx); err != nil {
		appLogger.Error("Database health check failed", "error", err)
	} else {
		appLogger.Info("Database health check passed")
	}
	cancel()

	orderRepo := repositories.NewOrderRepository(appLogger, db)
	menuRepo := repositories.NewMenuRepository(appLogger, db)
	settingsRepo := repositories.NewSettingsRepository(appLogger, db)
	statsRepo := repositories.NewStatsRepository(appLogger, db)

	orderService := service.NewOrderService(orderRepo, settingsRepo, appLogger)
	menuService := service.NewMenuService(menuRepo, appLogger)
	systemService := service.NewSystemService(settingsRepo, db, appLogger)
	statsService := service.NewStatsService(statsRepo, settingsRepo, appLogger)

	orderHandler := handler.NewOrderHandler(orderService, appLogger)
	menuHandler := handler.NewMenuHandler(menuService, appLogger)
	systemHandler := handler.NewSystemHandler(systemService, appLogger)
	statsHandler := handler.NewStatsHandler(statsService, appLogger)

	mux := router.NewRouter(orderHandler, menuHandler, systemHandler, statsHandler)
	allowedOrigins := envconfig.GetList("CORS_ALLOWED_ORIGINS", []string{"*"})

	port := flagConfig.Port
	if port == "" {
		port = envconfig.GetEnv("PORT", "8080")
	}
	if err := flags.ValidatePort(port); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	host := envconfig.GetEnv("HOST", "localhost")

	server := &http.Server{
		Addr:         net.JoinHostPort(host, port),
		Handler:      router.WithMiddleware(mux, appLogger, allowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := shutdownsetup.Run(server, appLogger); err != nil {
		appLogger.Error("Server stopped with error", "error", err)
		db.LogStats()
		return
	}
	db.LogStats()
}
