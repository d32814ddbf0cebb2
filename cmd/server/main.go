package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"socialfeed/internal/api/middleware"
	"socialfeed/internal/api/routes"
	"socialfeed/internal/core/feed"
	"socialfeed/internal/db/memory"
	"socialfeed/internal/ids"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from environment")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Wire the stores behind the feed service; the service is the only
	// component that composes them.
	gen := ids.NewGenerator()
	postRepo := memory.NewPostRepository(gen)
	commentRepo := memory.NewCommentRepository(gen)
	likeRepo := memory.NewLikeRepository()
	feedService := feed.NewService(postRepo, commentRepo, likeRepo, logger)

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	// The API is open to any origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	rateLimit := envInt("RATE_LIMIT_RPM", 100)
	rateLimiter := middleware.NewRateLimiter(rateLimit, 1*time.Minute)
	r.Use(rateLimiter.Middleware)

	routes.RegisterPostRoutes(r, feedService)
	routes.RegisterCommentRoutes(r, feedService)
	routes.RegisterLikeRoutes(r, feedService)

	openapiPath := os.Getenv("OPENAPI_PATH")
	if openapiPath == "" {
		openapiPath = "openapi.yaml"
	}
	routes.RegisterDocsRoutes(r, openapiPath)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	fmt.Printf("Social feed API starting on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, raw, fallback)
		return fallback
	}
	return v
}
