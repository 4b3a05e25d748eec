package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/mstratford/fpl-advisor/internal/api"
	"github.com/mstratford/fpl-advisor/internal/api/middleware"
	"github.com/mstratford/fpl-advisor/internal/fpl"
	"github.com/mstratford/fpl-advisor/internal/prediction"
	"github.com/mstratford/fpl-advisor/internal/services"
	"github.com/mstratford/fpl-advisor/pkg/config"
	"github.com/mstratford/fpl-advisor/pkg/database"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
		gin.SetMode(gin.DebugMode)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Connect to Redis
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logrus.Fatalf("Failed to parse Redis URL: %v", err)
	}
	redisClient := redis.NewClient(opt)
	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize services
	cacheService := services.NewCacheService(redisClient)
	fplClient := fpl.NewClient(fpl.Config{
		BaseURL:          cfg.FPLBaseURL,
		Timeout:          cfg.ExternalAPITimeout,
		CacheTTL:         cfg.CacheExpiration,
		RequestsPerMin:   cfg.FPLRateLimit,
		BreakerThreshold: uint32(cfg.CircuitBreakerThreshold),
	}, cacheService, logrus.StandardLogger())

	snapshotService := services.NewSnapshotService(db.DB, logrus.StandardLogger())
	refresher := services.NewRefresherService(fplClient, cacheService, snapshotService, logrus.StandardLogger(), cfg.DataRefreshInterval)
	if err := refresher.Start(); err != nil {
		logrus.Errorf("Failed to start refresher: %v", err)
	}
	defer refresher.Stop()

	predictor := prediction.New(prediction.DefaultRules())
	advisor := services.NewAdvisorService(fplClient, predictor, logrus.StandardLogger(), cfg.FixtureHorizon)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.CorsOrigins))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC(),
		})
	})

	// Setup API routes under /api/v1
	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, db, advisor, refresher, snapshotService, cfg)

	// Setup server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
