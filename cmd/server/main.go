package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"dezporcento/internal/db"
	"dezporcento/internal/domain/notify"
	"dezporcento/internal/domain/records"
	"dezporcento/internal/platform/config"
	"dezporcento/internal/platform/email"
	recordshandler "dezporcento/internal/transport/http/handlers/records"
	reportshandler "dezporcento/internal/transport/http/handlers/reports"
	statshandler "dezporcento/internal/transport/http/handlers/stats"
	"dezporcento/internal/transport/http/middleware"
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
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	store := records.NewStore(pool)
	service := records.NewService(store)
	dispatcher := notify.NewDispatcher(email.New(cfg), store, cfg.EmailFrom, cfg.ReportRecipient)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

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

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireSession(cfg.SessionJWTSecret))

		recordshandler.NewHandler(service).RegisterRoutes(r)
		statshandler.NewHandler(service).RegisterRoutes(r)
		reportshandler.NewHandler(service, dispatcher, config.WeekdayNames).RegisterRoutes(r)
	})

	log.Printf("payroll server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
