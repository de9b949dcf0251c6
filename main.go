// Main entry point of the collabo-go backend. It loads configuration,
// connects the database pool, runs migrations, seeds the category table,
// wires the services and handlers together, and serves the HTTP API with
// graceful shutdown.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/collabogames/collabo-go/apperror"
	"github.com/collabogames/collabo-go/auth"
	"github.com/collabogames/collabo-go/categories"
	"github.com/collabogames/collabo-go/config"
	"github.com/collabogames/collabo-go/db"
	"github.com/collabogames/collabo-go/users"
)

const version = "0.1.0"

func main() {
	// .env is a development convenience; in production the variables are set
	// directly in the environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if cfg.DB.MigrationsPath != "" {
		if err := db.RunMigrations(cfg.DB); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Seed the default categories. Not fatal: the listing endpoint falls
	// back to the default set when the table is empty or unreachable.
	categoryStore := categories.NewStore(pool)
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := categoryStore.Ensure(seedCtx); err != nil {
		log.Printf("Warning: failed to seed categories: %v", err)
	}
	seedCancel()

	// Wire up services and handlers. Dependencies are injected explicitly
	// through constructors; nothing reads configuration at request time.
	userStore := auth.NewUserStore(pool)
	verifier := auth.NewVerifier(cfg.Auth.PasswordMode)
	if cfg.Auth.PasswordMode == config.PasswordModePlaintext {
		log.Println("WARNING: plaintext password mode is enabled; this is for development only")
	}
	tokenIssuer := auth.NewTokenIssuer(cfg.Auth)
	authService := auth.NewAuthService(userStore, verifier, tokenIssuer)
	authHandlers := auth.NewHandlers(authService)

	userHandlers := users.NewUserHandlers(userStore)
	categoryHandlers := categories.NewHandlers(categoryStore)

	r := chi.NewRouter()

	// Chi requires all middleware to be registered before any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic recovery that still answers with the standard error shape.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					auth.WriteError(ww, r, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	// Liveness endpoint.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "CollaboGames API server is running",
			"version": version,
		})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/token", authHandlers.HandleToken())
		r.Post("/register", authHandlers.HandleRegister())

		// Token validation sits behind the session gate like the other
		// protected routes.
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(authService))
			r.Get("/validate-token", authHandlers.HandleValidateToken())
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(auth.RequireAuth(authService))

		r.Get("/me", userHandlers.HandleMe())
		r.Post("/points", userHandlers.HandleAddPoints())
		r.Post("/answers", userHandlers.HandleIncrementAnswers())
	})

	r.Get("/categories", categoryHandlers.HandleList())

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}
