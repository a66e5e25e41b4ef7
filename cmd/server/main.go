package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/internal/config"
	"voyago/internal/handlers"
	"voyago/internal/middleware"
	"voyago/internal/repositories/mongodb"
	"voyago/internal/services"
	"voyago/internal/utils"
	"voyago/pkg/cache"
	"voyago/pkg/database"
	"voyago/pkg/logger"
	"voyago/pkg/ws"
	"voyago/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer db.Close()

	if err := database.EnsureIndexes(db.Database); err != nil {
		log.WithError(err).Fatal("Failed to ensure indexes")
	}

	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, running without cache")
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	// Repositories. A nil cache disables read-through.
	var cacheService mongodb.CacheService
	if redisCache != nil {
		cacheService = redisCache
	}
	userRepo := mongodb.NewUserRepository(db.Database, cacheService)
	tripRepo := mongodb.NewTripRepository(db.Database, cacheService)
	routeRepo := mongodb.NewSavedRouteRepository(db.Database)

	// Services
	authService := services.NewAuthService(userRepo, cfg.Security.JWTSecret, log)
	tripService := services.NewTripService(tripRepo, log)
	routeService := services.NewSavedRouteService(routeRepo, log)

	// Live progress hub
	hub := ws.NewHub(log)
	go hub.Run()

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	tripHandler := handlers.NewTripHandler(tripService)
	routeHandler := handlers.NewSavedRouteHandler(routeService)
	wsHandler := handlers.NewWSHandler(hub, log)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "UNHEALTHY", "database unreachable")
			return
		}
		utils.SuccessResponse(c, "ok", gin.H{"version": cfg.App.Version})
	})

	routes.SetupAuthRoutes(router, authHandler, cfg.Security.JWTSecret)
	routes.SetupTripRoutes(router, tripHandler, wsHandler, cfg.Security.JWTSecret)
	routes.SetupSavedRouteRoutes(router, routeHandler, cfg.Security.JWTSecret)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler: router,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}
}
