package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recommendation-service/app/echo-server/router"
	"recommendation-service/business/product"
	"recommendation-service/business/recommendation"
	"recommendation-service/internal/middleware"
	mongoRepo "recommendation-service/internal/repository/mongodb"
	"recommendation-service/internal/rest"
	"recommendation-service/pkg/config"
	"recommendation-service/pkg/database"
	"recommendation-service/pkg/logger"
	"recommendation-service/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Recommendation Service", "version", cfg.App.Version)

	metrics.Init()

	client, db, err := database.InitMongo(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully", "database", cfg.Mongo.Database)

	// Init repo
	productRepo := mongoRepo.NewProductRepository(db)
	recommendationRepo := mongoRepo.NewRecommendationRepository(db)

	// Init service
	productService := product.NewProductService(productRepo)
	recommendationService := recommendation.NewRecommendationService(recommendationRepo, productRepo)

	// Init handler
	productHandler := rest.NewProductHandler(productService)
	recommendationHandler := rest.NewRecommendationHandler(recommendationService)
	adminHandler := rest.NewRecommendationAdminHandler(recommendationService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(middleware.TraceMiddleware())

	// Service endpoints
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message": "Welcome to the Recommendation Service",
			"version": cfg.App.Version,
		})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "healthy",
			"service": "recommendation-service",
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupRecommendationRoutes(api, recommendationHandler)
	router.SetupProductRoutes(api, productHandler)
	router.SetRecommendationAdminRoutes(api, adminHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := database.CloseMongo(client); err != nil {
		logger.Error("Database shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
