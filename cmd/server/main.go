// @title Term Sheet API
// @version 1.0
// @description Classify, extract, validate and compare term sheets.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "termsheet/docs"
	"termsheet/internal/classifier"
	"termsheet/internal/comparator"
	"termsheet/internal/config"
	"termsheet/internal/extractor"
	"termsheet/internal/handler"
	"termsheet/internal/llm"
	_ "termsheet/internal/llm/providers"
	"termsheet/internal/logging"
	"termsheet/internal/middleware"
	"termsheet/internal/repository/postgres"
	"termsheet/internal/router"
	"termsheet/internal/schema"
	"termsheet/internal/service"
	s3storage "termsheet/internal/storage/s3"
	"termsheet/internal/textsource"
	"termsheet/internal/validator"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.Setup(cfg.Log)

	registry, err := schema.Load(cfg.Schema.Path)
	if err != nil {
		return fmt.Errorf("failed to load schemas: %w", err)
	}

	completer, err := llm.NewFromConfig(&cfg.Completion)
	if err != nil {
		return fmt.Errorf("failed to initialize completion provider: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	store, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Repositories
	uploadRepo := postgres.NewUploadRepo(db)
	validationRepo := postgres.NewValidationRepo(db)
	comparisonRepo := postgres.NewComparisonRepo(db)

	// Pipeline
	text := textsource.New(cfg.Upload.MaxFileSizeMB * 1024 * 1024)
	cls := classifier.New(completer, cfg.Pipeline)
	ext := extractor.New(completer, registry, cls, cfg.Pipeline)
	val := validator.New(completer, registry, cfg.Pipeline)
	cmp := comparator.New(text)

	// Services
	uploadSvc := service.NewUploadService(uploadRepo, store, text, ext, &cfg.S3, &cfg.Upload)
	validationSvc := service.NewValidationService(uploadRepo, validationRepo, val)
	comparisonSvc := service.NewComparisonService(comparisonRepo, cmp, &cfg.Upload)
	reportSvc := service.NewReportService(uploadRepo, validationRepo, comparisonRepo, val)
	assistantSvc := service.NewAssistantService(completer, cfg.Pipeline)

	verifier := middleware.NewTokenVerifier(cfg.Auth)
	if verifier == nil {
		log.Printf("main: TERMSHEET_AUTH_JWT_SECRET is empty, API authentication disabled")
	}

	r := router.Setup(cfg, verifier, router.Handlers{
		Upload:     handler.NewUploadHandler(uploadSvc, cfg.Upload.MaxFileSizeMB),
		Validation: handler.NewValidationHandler(validationSvc, reportSvc),
		Comparison: handler.NewComparisonHandler(comparisonSvc, reportSvc, cfg.Upload.MaxFileSizeMB),
		Assistant:  handler.NewAssistantHandler(assistantSvc),
		Health:     handler.NewHealthHandler(db),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s (%d document types loaded)", cfg.Server.Port, len(registry.Types()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
