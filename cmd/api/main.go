// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/app"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/favorites"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/infrastructure/database/redis"
	"github.com/your-org/storefront-backend/internal/interfaces/http"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := middleware.NewLogger(cfg)
	logger.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := redisClient.Health(); err != nil {
		log.Fatalf("Redis health check failed: %v", err)
	}

	// Load the product catalog
	catalogSvc, err := catalog.NewService()
	if err != nil {
		log.Fatalf("Failed to load product catalog: %v", err)
	}

	// Domain services
	favoritesSvc := favorites.NewService(redisClient, logger)
	orderSvc := order.NewService(order.NewRepository(), logger)

	// Accounts and access policy
	passwords := auth.NewPasswordManager(cfg.Security.BcryptCost)
	directory := auth.NewDirectory(passwords, logger)
	policy := auth.NewPolicy(cfg.Security.AdminEmails)

	// Seed demo accounts in development
	if cfg.IsDevelopment() {
		seedAccounts(directory, logger)
	}

	registry := app.NewRegistry(directory, policy, catalogSvc, favoritesSvc, orderSvc, logger)

	logger.Info("All systems operational")

	// Create and start HTTP server
	server := http.NewServer(cfg, redisClient.GetClient(), registry, policy, catalogSvc, orderSvc, logger)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	logger.Info("Server shutdown completed")
}

func seedAccounts(directory *auth.Directory, logger *logrus.Logger) {
	accounts := []struct {
		email, password, displayName string
	}{
		{"admin@fashionstore.com", "Admin1234", "Store Admin"},
		{"demo@example.com", "Demo1234", "Demo User"},
	}

	for _, a := range accounts {
		if err := directory.Seed(a.email, a.password, a.displayName); err != nil {
			logger.Warnf("Failed to seed account %s: %v", a.email, err)
		}
	}
}
