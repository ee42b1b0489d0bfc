// @title Samayak Quiz API
// @version 1.0
// @description Generates multiple-choice quizzes from topics or PDF documents and plays them as timed sessions.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_SESSION_TOKEN' to authorize.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "samayak/cmd/api/docs"
	"samayak/internal/adapter"
	"samayak/internal/cache"
	"samayak/internal/config"
	"samayak/internal/domain"
	"samayak/internal/handler"
	"samayak/internal/logger"
	"samayak/internal/middleware"
	"samayak/internal/service"
	"samayak/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

const sessionSweepInterval = time.Minute

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

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	generator, closeGenerator, err := adapter.NewContentGenerator(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create content generator", zap.Error(err))
	}
	defer closeGenerator()

	// Redis is optional; without it trending topics are fetched on every request.
	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Info("Redis address not set, trending topics will not be cached")
	}
	trendingCache := service.NewTrendingTopicsCache(cacheAdapter, cfg.LLM.Model, cfg.Trending.TTL)

	gateway, err := service.NewQuizGateway(generator, cfg.Quiz, trendingCache, cfg.LLM.Timeout)
	if err != nil {
		appLogger.Fatal("Failed to create quiz gateway", zap.Error(err))
	}

	secret := cfg.Session.Secret
	if secret == "" {
		secret = randomSecret()
		appLogger.Warn("session.secret not set, using a random secret; tokens will not survive a restart")
	}
	tokens, err := service.NewSessionTokenService(secret, cfg.Session.TTL)
	if err != nil {
		appLogger.Fatal("Failed to create session token service", zap.Error(err))
	}

	registry := service.NewSessionRegistry(cfg.Session.TTL, cfg.Quiz.RevealDelay)
	go registry.Run(ctx, sessionSweepInterval)

	// Initialize services
	quizService := service.NewQuizService(gateway, cfg.Quiz.DefaultQuestions)
	sessionService := service.NewSessionService(gateway, registry, tokens, cfg.Quiz.DefaultQuestions)

	// Initialize handlers
	quizHandler := handler.NewQuizHandler(quizService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	validator := middleware.NewValidationMiddleware(
		validation.NewValidator(cfg.Quiz.MaxQuestions, cfg.Quiz.MaxDocumentBytes()),
		cfg.Quiz.DefaultQuestions,
	)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    cfg.Server.BodyLimitMB * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Request-ID", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "sessions": registry.Len()})
	})

	handler.RegisterRoutes(app, quizHandler, sessionHandler, validator, tokens)

	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Logger.Env),
			zap.String("provider", cfg.LLM.Provider),
			zap.String("model", cfg.LLM.Model),
		)
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
