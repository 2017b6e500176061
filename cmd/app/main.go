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

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/robfig/cron/v3"

	"tradejournal/configs"
	"tradejournal/internal/database"
	delivery "tradejournal/internal/delivery/http"
	"tradejournal/internal/infra"
	"tradejournal/internal/middleware"
	"tradejournal/internal/repository"
	"tradejournal/internal/service"
	"tradejournal/internal/usecase"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := configs.Load()

	ctx := context.Background()

	// Initialize database
	db, err := infra.NewDatabase(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tradeRepo := repository.NewTradeRepository(db)

	// Initialize services
	authService := usecase.NewAuthService(userRepo, cfg.Auth.BcryptCost)
	tradeService := usecase.NewTradeService(tradeRepo)
	statsService := usecase.NewStatsService(tradeRepo)

	uploadService, err := service.NewUploadService(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	// Orphan-upload sweep: nightly, with a 24h grace period for uploads
	// not yet attached to a trade.
	maintenance := service.NewMaintenanceService(tradeRepo, cfg.Upload.Dir, 24*time.Hour)
	cronScheduler := cron.New()
	if _, err := cronScheduler.AddFunc("30 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := maintenance.SweepOrphanUploads(ctx); err != nil {
			log.Printf("[ERROR] Upload sweep failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to add upload sweep cron job: %v", err)
	}
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// Initialize HTTP server
	e := echo.New()
	e.HideBanner = true

	delivery.SetupRoutes(e, &delivery.RouterConfig{
		AuthHandler:      delivery.NewAuthHandler(authService, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		TradeHandler:     delivery.NewTradeHandler(tradeService),
		UploadHandler:    delivery.NewUploadHandler(uploadService),
		DashboardHandler: delivery.NewDashboardHandler(statsService),
		AuthMiddleware:   middleware.Auth(userRepo, cfg.Auth.JWTSecret),
		UploadDir:        cfg.Upload.Dir,
		DB:               db,
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Trading journal starting on %s (env: %s)", addr, cfg.Server.Env)

	// Run server in goroutine
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[OK] Server exited gracefully")
}
