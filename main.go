package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/medina-atelier/admin-api/controllers"
	"github.com/medina-atelier/admin-api/database"
	"github.com/medina-atelier/admin-api/pkg/logger"
	"github.com/medina-atelier/admin-api/repository"
	"github.com/medina-atelier/admin-api/routes"
	"github.com/medina-atelier/admin-api/services"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	logger.Initialize(os.Getenv("APP_ENV"))
	defer zap.L().Sync()

	cfg, err := LoadConfig()
	if err != nil {
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	if err := database.Connect(cfg.MongoURL, cfg.MongoDB); err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Close(); err != nil {
			zap.L().Error("MongoDB disconnect failed", zap.Error(err))
		}
	}()

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		zap.L().Warn("Failed to parse REDIS_URL, falling back to default", zap.Error(err))
		redisOpts = &redis.Options{Addr: "localhost:6379"}
	}
	redisClient := redis.NewClient(redisOpts)

	// Wire the layers together.
	orderRepo := repository.NewMongoOrderRepository(database.DB)
	productRepo := repository.NewMongoProductRepository(database.DB)
	userRepo := repository.NewMongoUserRepository(database.DB)
	videoRepo := repository.NewMongoVideoRepository(database.DB)

	inventoryService := services.NewInventoryService(productRepo)
	orderService := services.NewOrderService(orderRepo, userRepo, inventoryService)
	catalogService := services.NewCatalogService(productRepo)
	userService := services.NewUserService(userRepo)
	videoService := services.NewVideoService(videoRepo)
	statsService := services.NewStatsService(orderRepo, userRepo, productRepo)
	authService := services.NewAuthService(cfg.AdminEmail, cfg.AdminPasswordHash, []byte(cfg.JWTSecret))

	cache := controllers.NewCacheManager(redisClient)

	ctrl := routes.Controllers{
		Auth:     controllers.NewAuthController(authService),
		Orders:   controllers.NewOrderController(orderService),
		Products: controllers.NewProductController(catalogService, inventoryService, cache),
		Users:    controllers.NewUserController(userService),
		Settings: controllers.NewSettingsController(videoService),
		Stats:    controllers.NewStatsController(statsService),
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(logger.RequestLogger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(r, ctrl, []byte(cfg.JWTSecret))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Admin API listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Graceful shutdown failed", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		zap.L().Warn("Redis close failed", zap.Error(err))
	}
}
