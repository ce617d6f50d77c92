package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"draftdeck/internal/auth"
	"draftdeck/internal/catalog"
	"draftdeck/internal/config"
	"draftdeck/internal/handler"
	"draftdeck/internal/llm"
	"draftdeck/internal/middleware"
	"draftdeck/internal/repository/postgres"
	"draftdeck/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logOutput := io.Writer(os.Stdout)
	if cfg.Debug {
		if logFile, err := config.SetupLogFile("logs", 10); err == nil {
			defer logFile.Close()
			logOutput = io.MultiWriter(os.Stdout, logFile)
		}
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Token issuer for register/login and request authentication
	tokenTTL := time.Duration(cfg.TokenTTLMinutes) * time.Minute
	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, tokenTTL, logger)
	if err != nil {
		log.Fatalf("Failed to create token issuer: %v", err)
	}

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create repositories
	tables := postgres.NewTableNames(cfg.TablePrefix)
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	projectRepo := postgres.NewProjectRepository(repoConfig)
	sectionRepo := postgres.NewSectionRepository(repoConfig)
	refinementRepo := postgres.NewRefinementRepository(repoConfig)
	commentRepo := postgres.NewCommentRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Provider defaults registry and LLM gateway
	registry, err := catalog.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load provider catalog: %v", err)
	}
	gateway, err := llm.New(llm.Config{
		Provider:           cfg.LLMProvider,
		OpenAIAPIKey:       cfg.OpenAIAPIKey,
		OpenAIModel:        cfg.OpenAIModel,
		GeminiAPIKey:       cfg.GeminiAPIKey,
		GeminiModel:        cfg.GeminiModel,
		GeminiEndpoint:     cfg.GeminiEndpoint,
		OpenRouterAPIKey:   cfg.OpenRouterAPIKey,
		OpenRouterModel:    cfg.OpenRouterModel,
		OpenRouterEndpoint: cfg.OpenRouterEndpoint,
	}, registry, logger)
	if err != nil {
		log.Fatalf("Failed to create LLM gateway: %v", err)
	}

	// Create services
	authService := service.NewAuthService(userRepo, tokens, logger)
	projectService := service.NewProjectService(projectRepo, sectionRepo, txManager, logger)
	generationService := service.NewGenerationService(projectRepo, sectionRepo, gateway, logger)
	outlineService := service.NewOutlineService(projectRepo, sectionRepo, txManager, gateway, logger)
	refinementService := service.NewRefinementService(projectRepo, sectionRepo, refinementRepo, txManager, gateway, logger)
	commentService := service.NewCommentService(projectRepo, sectionRepo, commentRepo, logger)
	exportService := service.NewExportService(projectRepo, sectionRepo, logger)

	// Create handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	projectHandler := handler.NewProjectHandler(projectService, generationService, outlineService, exportService, logger)
	sectionHandler := handler.NewSectionHandler(refinementService, commentService, logger)

	logger.Info("services initialized")

	// Protected routes (Go 1.22+ enhanced patterns)
	api := http.NewServeMux()
	api.HandleFunc("GET /api/projects", projectHandler.ListProjects)
	api.HandleFunc("POST /api/projects", projectHandler.CreateProject)
	api.HandleFunc("GET /api/projects/{id}", projectHandler.GetProject)
	api.HandleFunc("POST /api/projects/{id}/generate", projectHandler.Generate)
	api.HandleFunc("POST /api/projects/{id}/outline/suggest", projectHandler.SuggestOutline)
	api.HandleFunc("POST /api/projects/{id}/outline/apply", projectHandler.ApplyOutline)
	api.HandleFunc("GET /api/projects/{id}/export", projectHandler.Export)

	api.HandleFunc("POST /api/sections/{id}/refinements", sectionHandler.CreateRefinement)
	api.HandleFunc("GET /api/sections/{id}/refinements", sectionHandler.ListRefinements)
	api.HandleFunc("POST /api/sections/{id}/comments", sectionHandler.CreateComment)
	api.HandleFunc("GET /api/sections/{id}/comments", sectionHandler.ListComments)

	// Public routes; the auth middleware guards only the /api/ subtree
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.Handle("/api/", middleware.Auth(tokens, logger)(api))

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Routes
	var root http.Handler = mux
	root = middleware.Recovery(logger)(root)

	// CORS - must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Serve until SIGINT/SIGTERM, then drain in-flight requests
	shutdownCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	case <-shutdownCtx.Done():
		logger.Info("shutdown signal received")
		drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(drainCtx); err != nil {
			logger.Error("shutdown incomplete", "error", err)
		}
	}
}
