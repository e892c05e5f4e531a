package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"docklogger/internal/config"
	"docklogger/internal/email/noop"
	"docklogger/internal/email/ses"
	"docklogger/internal/export"
	"docklogger/internal/extract"
	"docklogger/internal/extract/claude"
	"docklogger/internal/extract/gemini"
	"docklogger/internal/handler"
	"docklogger/internal/port"
	"docklogger/internal/repository/postgres"
	"docklogger/internal/router"
	"docklogger/internal/service"
	s3storage "docklogger/internal/storage/s3"
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

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	docRepo := postgres.NewDocumentRepo(db)
	entryRepo := postgres.NewTimesheetEntryRepo(db)
	holidayRepo := postgres.NewHolidayRepo(db)

	// Storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Extraction pipeline: Claude primary, Gemini backup
	extractor := extract.NewExtractor(
		claude.NewClient(&cfg.Extractor.Primary),
		gemini.NewClient(&cfg.Extractor.Backup),
		cfg.Extractor.Backup.APIKey,
	)

	// Email delivery
	var sender port.EmailSender
	if cfg.Email.Provider == "ses" {
		sender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		sender = noop.NewNoopSender()
	}

	// Services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	docSvc := service.NewDocumentService(docRepo, entryRepo, holidayRepo, s3Client, extractor, &cfg.S3)
	exportSvc := export.NewService(entryRepo, userRepo, sender)

	// Handlers
	h := router.Handlers{
		Auth:      handler.NewAuthHandler(authSvc),
		Document:  handler.NewDocumentHandler(docSvc),
		Extract:   handler.NewExtractHandler(extractor, extractor),
		Holiday:   handler.NewHolidayHandler(holidayRepo),
		Timesheet: handler.NewTimesheetHandler(entryRepo),
		Export:    handler.NewExportHandler(exportSvc),
		Health:    handler.NewHealthHandler(db),
	}

	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, h)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Extraction queue worker
	worker := service.NewExtractQueueWorker(docRepo, docSvc, service.ExtractQueueConfig{
		PollInterval: time.Duration(cfg.Queue.PollIntervalSecs) * time.Second,
		Concurrency:  cfg.Queue.Concurrency,
	})
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Start(ctx)
	}()

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Printf("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	<-workerDone

	return nil
}
