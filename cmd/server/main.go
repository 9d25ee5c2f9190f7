package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jpendyala/money-management-expense-tracker/internal/api/handlers"
	"github.com/jpendyala/money-management-expense-tracker/internal/api/middleware"
	"github.com/jpendyala/money-management-expense-tracker/internal/config"
	"github.com/jpendyala/money-management-expense-tracker/internal/extraction"
	"github.com/jpendyala/money-management-expense-tracker/internal/infra/dynamo"
	"github.com/jpendyala/money-management-expense-tracker/internal/logger"
	"github.com/jpendyala/money-management-expense-tracker/internal/pipeline"
)

func main() {
	port := flag.String("port", "", "HTTP server port (overrides SERVER_PORT)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info")
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.Logger.Level)

	if *port == "" {
		*port = cfg.Server.Port
	}

	ctx := context.Background()

	store, err := dynamo.NewStore(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create transaction store")
	}

	extractor, err := extraction.NewClient(ctx, cfg.Extraction.APIKey, cfg.Extraction.Model)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create extraction client")
	}

	pipe := pipeline.New(extractor, store, log)
	transactionsHandler := handlers.NewTransactionsHandler(pipe, store, log)

	mux := http.NewServeMux()

	mux.HandleFunc("/", handlers.Index)

	mux.HandleFunc("/api/transactions", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			transactionsHandler.Submit(w, r)
		case http.MethodGet:
			transactionsHandler.List(w, r)
		default:
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.CORS(mux),
			),
		),
	)

	server := &http.Server{
		Addr:         ":" + *port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", *port).Msg("Starting expense tracker server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
