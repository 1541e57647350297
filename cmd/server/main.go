package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/yourorg/accountsvc/internal/auth"
	"github.com/yourorg/accountsvc/internal/config"
	"github.com/yourorg/accountsvc/internal/handlers"
	"github.com/yourorg/accountsvc/internal/middleware"
	"github.com/yourorg/accountsvc/internal/routes"
	"github.com/yourorg/accountsvc/internal/service"
	"github.com/yourorg/accountsvc/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ CRITICAL: %v", err)
	}

	// The store is a hard dependency: refuse to start without it.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	st, err := store.Connect(ctx, cfg.MongoURI, cfg.DBName)
	cancel()
	if err != nil {
		log.Fatalf("❌ database connect: %v", err)
	}
	log.Println("✅ MongoDB connected")

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	err = st.EnsureSchema(ctx)
	cancel()
	if err != nil {
		log.Fatalf("❌ ensure schema: %v", err)
	}

	users := store.NewUserStore(st)
	svc := service.NewAccountService(users, auth.NewHasher(),
		auth.NewTokenIssuer([]byte(cfg.SessionSecret), cfg.TokenTTL))

	app := fiber.New()
	app.Use(logger.New())
	if cfg.DebugDashboard {
		app.Use(middleware.DashboardLogger())
	}

	routes.Register(app, handlers.NewAuthHandler(svc), handlers.NewHealthHandler(st))

	// Graceful shutdown on Ctrl+C / SIGTERM
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("\n🛑 Termination signal received, shutting down...")

		if err := app.Shutdown(); err != nil {
			log.Printf("⚠️  Error shutting down server: %v", err)
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Disconnect(shutdownCtx); err != nil {
			log.Printf("⚠️  Error closing MongoDB connection: %v", err)
		}

		log.Println("✅ Server stopped cleanly")
		os.Exit(0)
	}()

	log.Printf("🚀 Server listening on :%s", cfg.Port)
	log.Println("📍 Available endpoints:")
	log.Println("   POST /register   - Create an account")
	log.Printf("   POST /login      - Authenticate (JWT, %s)", cfg.TokenTTL)
	log.Println("   GET  /searchuser - Look up a profile (Bearer token)")
	log.Println("   GET  /health     - Health check")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
