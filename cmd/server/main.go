// Package main initializes and starts the activity log HTTP server,
// setting up configuration, logging, the database connection, repositories,
// services and handlers.
package main

import (
	"cmp"
	"fmt"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/kamilprz/activitylog/internal/config"
	"github.com/kamilprz/activitylog/internal/db"
	"github.com/kamilprz/activitylog/internal/logger"
	"github.com/kamilprz/activitylog/internal/repository"
	"github.com/kamilprz/activitylog/internal/server/handler/http"
	"github.com/kamilprz/activitylog/internal/service"
	"github.com/kamilprz/activitylog/internal/token"
)

// tokenTTL is the validity window of issued bearer tokens.
const tokenTTL = time.Hour

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Port
	dbName := options.DatabaseDSN

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.JWTSecret == "" {
		zapLogger.Fatal("token signing secret is required (flag -s or JWT_SECRET)")
	}

	// Initialize PostgreSQL connection.
	postgressDB, err := db.InitPostgres(dbName)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Initialize the user repository.
	userRepo := repository.NewPostgresUserRepository(postgressDB)

	// Initialize the token issuer and business-logic services.
	issuer := token.NewIssuer([]byte(options.JWTSecret), tokenTTL)
	authService := service.NewAuthService(userRepo, issuer)
	userService := service.NewUserService(userRepo)

	// Create HTTP handlers for auth and user endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}
	userHandler := &http.UserHandler{UserService: userService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, userHandler, issuer, zapLogger)

	// Create and start the HTTP server.
	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
