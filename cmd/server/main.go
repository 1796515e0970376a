package main

import (
	"log"
	"net/http"

	"yecs-backend/internal/config"
	"yecs-backend/internal/database"
	"yecs-backend/internal/handlers"
	"yecs-backend/internal/repository"
	"yecs-backend/internal/scoring"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env (ignore error in production, env vars set directly)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Open SQLite and run migrations
	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("❌ Failed to open database: %v", err)
	}
	defer db.Close()
	log.Printf("✅ Database ready at %s", cfg.DatabasePath)

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)

	// Initialize score engine
	engine := scoring.NewEngine()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userRepo)
	scoreHandler := handlers.NewScoreHandler(engine)

	// Setup chi router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Liveness check
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("YECS Backend is running!"))
	})

	// API routes
	r.Post("/api/user", userHandler.SyncUser)
	r.Post("/api/calculate-score", scoreHandler.CalculateScore)

	// Start server
	log.Printf("🚀 YECS backend starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
