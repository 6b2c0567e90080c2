// @title ShuleLink Content API
// @version 1.0
// @description Quotes, study notes, quizzes and study-buddy chat for the ShuleLink learning app.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "shulelink/cmd/api/docs"
	"shulelink/internal/app"
	"shulelink/internal/config"
	"shulelink/internal/handler"
	"shulelink/internal/logger"
	"shulelink/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()
	components, err := app.Build(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to build content pipeline", zap.Error(err))
	}
	appLogger.Info("Content pipeline initialized", zap.Bool("cache_enabled", components.Cache != nil))

	contentHandler := handler.NewContentHandler(components.Content, components.Cache)
	validation := middleware.NewValidationMiddleware()

	fiberApp := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(middleware.RequestLogger())
	fiberApp.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))

	fiberApp.Get("/swagger/*", swagger.HandlerDefault)
	fiberApp.Get("/health", contentHandler.Health)

	api := fiberApp.Group("/api")
	api.Get("/quote", contentHandler.GetDailyQuote)
	api.Get("/notes", validation.ValidateTopicParams(), contentHandler.GetNotes)
	api.Get("/topics", contentHandler.ListTopics)
	api.Get("/quizzes", validation.ValidateQuizParams(), contentHandler.GetQuizzes)
	api.Post("/quiz/check", contentHandler.CheckAnswer)
	api.Post("/chat", contentHandler.Chat)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := fiberApp.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := fiberApp.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := components.Close(shutdownCtx); err != nil {
		appLogger.Error("Failed to release resources", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
