package main

import (
	"log"
	"net/http"
	"time"

	"github.com/prisha-enterprises/backoffice/internal/auth"
	"github.com/prisha-enterprises/backoffice/internal/config"
	"github.com/prisha-enterprises/backoffice/internal/db"
	api "github.com/prisha-enterprises/backoffice/internal/http"
	"github.com/prisha-enterprises/backoffice/internal/http/handlers"
	rl "github.com/prisha-enterprises/backoffice/internal/http/rate_limiter"
	"github.com/prisha-enterprises/backoffice/internal/notify"
	"github.com/prisha-enterprises/backoffice/internal/redissvc"
	"github.com/prisha-enterprises/backoffice/internal/repo"
)

// @title Prisha Enterprises Back Office API
// @version 1.0
// @description REST API backing the marketing site: product catalog, inquiry intake and company settings.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Could not load configuration: %v", err)
	}
	auth.SetSecret(cfg.JWTSecret)

	switch cfg.StorageDriver {
	case "postgres":
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("❌ Could not connect to database:", err)
		}
		defer database.Close()

		if err := db.EnsureSchema(database); err != nil {
			log.Fatal("❌ Could not prepare database schema:", err)
		}

		handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
		handlers.SetInquiryRepo(repo.NewPostgresInquiryRepository(database))
		handlers.SetSettingsRepo(repo.NewPostgresSettingsRepository(database))
	case "memory":
		handlers.SetProductRepo(repo.NewInMemoryProductRepository())
		handlers.SetInquiryRepo(repo.NewInMemoryInquiryRepository())
		handlers.SetSettingsRepo(repo.NewInMemorySettingsRepository())
	default:
		log.Fatalf("❌ Unknown storage driver %q (want memory or postgres)", cfg.StorageDriver)
	}

	if cfg.RedisAddr != "" {
		redisService, err := redissvc.Connect(cfg.RedisAddr)
		if err != nil {
			log.Fatalf("❌ Could not connect to Redis: %v", err)
		}
		defer redisService.Close()

		notify.SetRedisService(redisService)
		go notify.StartDailyDigest(24 * time.Hour)
	}

	go rl.StartVisitorCleanupLoop()

	r := api.NewRouter()
	log.Printf("✅ Server running on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
