package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Ralastessh/Industry-service/internal"
	"github.com/Ralastessh/Industry-service/internal/ai"
	"github.com/Ralastessh/Industry-service/internal/ai/gemini"
	"github.com/Ralastessh/Industry-service/internal/ai/mock"
	"github.com/Ralastessh/Industry-service/internal/corpus"
	"github.com/Ralastessh/Industry-service/internal/glossary"
	"github.com/Ralastessh/Industry-service/internal/handler"
	"github.com/Ralastessh/Industry-service/internal/metrics"
	"github.com/Ralastessh/Industry-service/internal/middleware"
	"github.com/Ralastessh/Industry-service/internal/quiz"
	"github.com/Ralastessh/Industry-service/internal/service"
	"github.com/Ralastessh/Industry-service/internal/session"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Load static data files
	glossaryCatalog, err := glossary.LoadCatalog(cfg.GlossaryPath)
	if err != nil {
		return fmt.Errorf("glossary catalog failed to load: %w", err)
	}
	annotator, err := glossary.NewAnnotator(glossaryCatalog)
	if err != nil {
		return fmt.Errorf("glossary annotator failed to build: %w", err)
	}

	quizCatalog, err := quiz.LoadCatalog(cfg.QuizPath)
	if err != nil {
		return fmt.Errorf("quiz catalog failed to load: %w", err)
	}

	legalCorpus, err := corpus.Load(cfg.LegalCorpusPath)
	if err != nil {
		return fmt.Errorf("legal corpus failed to load: %w", err)
	}
	logger.Info("Static data loaded",
		"glossary_terms", len(glossaryCatalog),
		"quiz_questions", len(quizCatalog),
		"legal_chunks", legalCorpus.Len())

	// Select AI provider
	var provider ai.Provider
	switch cfg.AIProvider {
	case "gemini":
		provider, err = gemini.New(gemini.Config{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
			ProviderConfig: ai.ProviderConfig{
				RequestTimeout: cfg.AIRequestTimeout,
			},
		}, logger)
		if err != nil {
			return fmt.Errorf("gemini provider initialization failed: %w", err)
		}
	default:
		provider = mock.New(logger)
	}
	logger.Info("AI provider ready", "provider", cfg.AIProvider)

	// Session state and services
	store := session.NewStore()
	analysisService := service.NewAnalysisService(provider, legalCorpus, store, cfg.ContextTopK, logger)
	chatService := service.NewChatService(provider, legalCorpus, store, cfg.ContextTopK, logger)

	// Handlers
	analysisHandler := handler.NewAnalysisHandler(analysisService, logger)
	chatHandler := handler.NewChatHandler(chatService, logger)
	glossaryHandler := handler.NewGlossaryHandler(glossaryCatalog, annotator, logger)
	quizHandler := handler.NewQuizHandler(quizCatalog, logger)

	// Middleware
	isSecure := cfg.Env != "development"
	loggingMw := middleware.NewRequestLoggingMiddleware(logger)
	securityMw := middleware.NewSecurityHeadersMiddleware(isSecure)
	aiLimiter := middleware.NewRateLimiter(cfg.AIRateLimit, cfg.AIRateLimitWindow, logger)
	aiLimitMw := middleware.NewRateLimitMiddleware(aiLimiter, logger)
	metricsAuthMw := middleware.NewMetricsAuthMiddleware(cfg.MetricsUsername, cfg.MetricsPassword)

	base := middleware.Stack(metrics.Middleware, securityMw.Handler, loggingMw.Handler)
	aiLimited := middleware.Stack(aiLimitMw.Limit)

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.Health)

	// Prometheus metrics (basic auth when configured)
	mux.Handle("GET /metrics", metricsAuthMw.Handler(promhttp.Handler()))

	// AI-backed endpoints carry a per-IP budget
	mux.Handle("POST /api/analyses", aiLimited(http.HandlerFunc(analysisHandler.Create)))
	mux.Handle("POST /api/chat", aiLimited(http.HandlerFunc(chatHandler.Send)))

	// Session history and dashboard
	mux.HandleFunc("GET /api/analyses", analysisHandler.List)
	mux.HandleFunc("GET /api/analyses/{id}", analysisHandler.GetByID)
	mux.HandleFunc("GET /api/dashboard", analysisHandler.Dashboard)
	mux.HandleFunc("GET /api/chat", chatHandler.History)

	// Static reference data
	mux.HandleFunc("GET /api/glossary", glossaryHandler.List)
	mux.HandleFunc("POST /api/glossary/annotate", glossaryHandler.Annotate)
	mux.HandleFunc("GET /api/quiz", quizHandler.List)

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: base(mux),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
		}
	}()

	<-sigChan
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
