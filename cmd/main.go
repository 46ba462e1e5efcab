package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/vidbrief/internal/config"
	"github.com/Vovarama1992/vidbrief/internal/delivery"
	"github.com/Vovarama1992/vidbrief/internal/domain"
	"github.com/Vovarama1992/vidbrief/internal/infra"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// LOGGER
	zcore, _ := zap.NewProduction()
	zl := logger.NewZapLogger(zcore.Sugar())

	// ENV
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	// POSTGRES
	ctx := context.Background()

	pool, err := infra.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("cannot connect pgxpool: ", err)
	}
	defer pool.Close()

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctxPing); err != nil {
		log.Fatal("postgres ping failed: ", err)
	}

	if err := infra.Migrate(ctx, pool); err != nil {
		log.Fatal("migrate failed: ", err)
	}

	// REPOS
	userRepo := infra.NewPostgresUserRepo(pool)
	summaryRepo := infra.NewPostgresSummaryRepo(pool)
	usageRepo := infra.NewPostgresUsageRepo(pool)

	// PROVIDERS
	transcripts := infra.NewSupadataClient(cfg.SupadataAPIKey, cfg.HTTPTimeout)
	generator := infra.NewGeminiClient(cfg.GeminiAPIKey, cfg.HTTPTimeout, zl)

	// SERVICES
	authService := domain.NewAuthService(userRepo, cfg.AuthSecret)
	summarizeService := domain.NewSummarizeService(
		transcripts,
		generator,
		summaryRepo,
		usageRepo,
		cfg.DailyLimit,
		zl,
	)

	// HANDLERS
	authHandler := delivery.NewAuthHandler(authService, zl)
	summarizeHandler := delivery.NewSummarizeHandler(summarizeService, zl)
	profileHandler := delivery.NewProfileHandler(userRepo, usageRepo, summaryRepo, cfg.DailyLimit, zl)

	pageHandler, err := delivery.NewPageHandler(zl)
	if err != nil {
		log.Fatal("templates: ", err)
	}

	// ROUTER
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Auth"},
		AllowCredentials: true,
	}))

	delivery.RegisterRoutes(r, authService, authHandler, summarizeHandler, profileHandler, pageHandler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "server started",
		Fields:  map[string]any{"port": cfg.Port},
	})

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		zl.Log(logger.LogEntry{
			Level:   "error",
			Message: "server crashed",
			Error:   err,
		})
	}
}
