// @title         Job Tracker API
// @version       1.0
// @description   Track job applications, interviews and activity history.
// @BasePath      /api/v1
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Supabase access token, as "Bearer <JWT>".
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"jobtracker/api-gateway/config"
	_ "jobtracker/api-gateway/docs"
	"jobtracker/api-gateway/handlers"
	"jobtracker/api-gateway/internal/health"
	"jobtracker/api-gateway/internal/store"
	"jobtracker/api-gateway/middleware"
	"jobtracker/api-gateway/utils"
)

func main() {
	cfg := config.Load()
	logger := config.InitLogger(cfg.LogLevel)

	rest, err := config.NewRestClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize PostgREST client: %v", err)
	}
	db := store.New(rest, logger)

	var resolver middleware.IdentityResolver
	if cfg.SupabaseJWTSecret != "" {
		resolver = middleware.NewJWTResolver(cfg.SupabaseJWTSecret, cfg.JWTIssuer)
	} else {
		supaClient, err := config.NewSupabaseClient(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Supabase: %v", err)
		}
		resolver = middleware.NewSupabaseResolver(supaClient)
		logger.Warn("SUPABASE_JWT_SECRET not set; resolving tokens against the auth server")
	}

	checkers := []health.Checker{health.NewPostgRESTChecker(db)}
	if cfg.DatabaseURL != "" {
		pool, err := config.ConnectPostgres(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres connect: %v", err)
		}
		defer pool.Close()
		checkers = append(checkers, health.NewPostgresChecker(pool))
	}

	app := fiber.New(fiber.Config{
		AppName:      "jobtracker-api",
		BodyLimit:    cfg.BodyLimitBytes,
		ErrorHandler: errorHandler(),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(middleware.RequestLogger(logger))

	healthHandler := handlers.NewHealthHandler(health.NewService(checkers...))
	app.Get("/health", healthHandler.Health)
	app.Get("/ready", healthHandler.Ready)
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	apiV1 := app.Group("/api/v1", middleware.RequireIdentity(resolver))
	handlers.NewApplicationHandler(logger, db).Register(apiV1)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info("Shutting down API Gateway")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.WithError(err).Error("Graceful shutdown failed")
		}
	}()

	logger.Infof("Starting API Gateway on port %s...", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// errorHandler keeps fiber's own status codes (404 for unknown routes, 405, 413) and
// hides everything else behind a generic 500.
func errorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return utils.RespondWithError(c, fe.Code, fe.Message)
		}
		config.Log.WithError(err).Error("Unhandled error")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
