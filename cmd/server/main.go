package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"coderank/internal/auth"
	"coderank/internal/db"
	"coderank/internal/platform/config"
	"coderank/internal/platform/metrics"
	"coderank/internal/transport/http/api"
	authhandler "coderank/internal/transport/http/handlers/auth"
	batchhandler "coderank/internal/transport/http/handlers/batch"
	directoryhandler "coderank/internal/transport/http/handlers/directory"
	salaryhandler "coderank/internal/transport/http/handlers/salary"
	taskshandler "coderank/internal/transport/http/handlers/tasks"
	"coderank/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	adminKeyHash := ""
	if cfg.AdminAPIKey != "" {
		adminKeyHash, err = auth.HashKey(cfg.AdminAPIKey)
		if err != nil {
			log.Fatalf("admin key hash failed: %v", err)
		}
	}

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(cfg, adminKeyHash)
		r.Post("/auth/token", authHandler.HandleToken)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireToken(cfg.JWTSecret))

			batchhandler.NewHandler(pool, collector).RegisterRoutes(r)
			taskshandler.NewHandler(pool).RegisterRoutes(r)
			directoryhandler.NewHandler(pool).RegisterRoutes(r)
			salaryhandler.NewHandler(pool).RegisterRoutes(r)
		})
	})

	log.Printf("evaluation engine listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
