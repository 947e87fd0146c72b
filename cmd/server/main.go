package main

import (
	"log"
	"net/http"

	"github.com/elrefaeey/ahmedelrefaey/internal/admin"
	"github.com/elrefaeey/ahmedelrefaey/internal/auth"
	"github.com/elrefaeey/ahmedelrefaey/internal/config"
	"github.com/elrefaeey/ahmedelrefaey/internal/database"
	"github.com/elrefaeey/ahmedelrefaey/internal/handlers"
	"github.com/elrefaeey/ahmedelrefaey/internal/middleware"
	"github.com/elrefaeey/ahmedelrefaey/internal/site"
	"github.com/elrefaeey/ahmedelrefaey/internal/supabase"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Schema migrations need a direct Postgres connection. PostgREST
	// access below works without one, so this is best-effort.
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL not set. Migrations will be skipped.")
	} else {
		migrator, err := database.NewMigrator(cfg.DatabaseURL)
		if err != nil {
			log.Printf("Warning: Failed to initialize migrator: %v", err)
		} else {
			if err := migrator.Run(); err != nil {
				log.Printf("Warning: Migration failed: %v", err)
			} else {
				log.Println("Migrations completed successfully")
			}
			migrator.Close()
		}
	}

	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	projectStore := supabase.NewProjectStore(supabaseClient)
	gate := auth.NewGate(cfg)
	registry := admin.NewRegistry(projectStore)

	siteHandler, err := site.NewHandler(projectStore)
	if err != nil {
		log.Fatalf("Failed to initialize site templates: %v", err)
	}

	authHandler := handlers.NewAuthHandler(gate, registry)
	projectsHandler := handlers.NewProjectsHandler(projectStore)
	revealHandler := handlers.NewRevealHandler()
	adminHandler := handlers.NewAdminHandler(registry, storageClient)
	uploadHandler := handlers.NewUploadHandler(storageClient)

	router := gin.Default()

	// Rendered site and its assets
	router.GET("/", siteHandler.Index)
	router.StaticFS("/static", site.StaticFS())

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// Public API routes
	api := router.Group("/api/v1")
	api.GET("/projects", projectsHandler.ListActive)
	api.POST("/reveal", revealHandler.Reveal)
	api.POST("/admin/login", authHandler.Login)

	// Admin panel routes
	adminAPI := api.Group("/admin")
	adminAPI.Use(middleware.AdminAuth(gate))

	adminAPI.GET("/projects", adminHandler.ListAll)
	adminAPI.POST("/draft", adminHandler.StartCreate)
	adminAPI.POST("/draft/:project_id", adminHandler.StartEdit)
	adminAPI.PUT("/draft", adminHandler.SaveDraft)
	adminAPI.DELETE("/draft", adminHandler.CancelDraft)
	adminAPI.DELETE("/projects/:project_id", adminHandler.Delete)
	adminAPI.POST("/projects/:project_id/toggle", adminHandler.ToggleActive)
	adminAPI.POST("/images", uploadHandler.UploadImage)
	adminAPI.POST("/logout", authHandler.Logout)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
