package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/plantio/internal/config"
	"github.com/mamadbah2/plantio/internal/repository/memory"
	"github.com/mamadbah2/plantio/internal/repository/mongodb"
	"github.com/mamadbah2/plantio/internal/repository/sheets"
	"github.com/mamadbah2/plantio/internal/scheduler"
	"github.com/mamadbah2/plantio/internal/server/handlers"
	"github.com/mamadbah2/plantio/internal/server/router"
	plantingsvc "github.com/mamadbah2/plantio/internal/service/planting"
	reportingsvc "github.com/mamadbah2/plantio/internal/service/reporting"
	whatsappsvc "github.com/mamadbah2/plantio/internal/service/whatsapp"
	whatsappclient "github.com/mamadbah2/plantio/pkg/clients/whatsapp"
	"github.com/mamadbah2/plantio/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	plantingSvc := plantingsvc.NewService(memory.NewRecordStore(), logger.Named(baseLogger, "svc.planting"))

	var sinks []reportingsvc.Sink

	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, logger.Named(baseLogger, "repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		sinks = append(sinks, reportingsvc.NewSheetsSink(sheetsRepo, cfg.Sheets.ExportRange))
		baseLogger.Info("sheets export sink enabled", zap.String("range", cfg.Sheets.ExportRange))
	}

	if cfg.MongoDB.Enabled() {
		connectCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		mongoRepo, err := mongodb.NewMongoDBRepository(connectCtx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		cancel()
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		sinks = append(sinks, reportingsvc.NewArchiveSink(mongoRepo))
		baseLogger.Info("mongodb export archive enabled", zap.String("db", cfg.MongoDB.DBName))
	}

	reportingSvc := reportingsvc.NewService(plantingSvc, logger.Named(baseLogger, "svc.reporting"), sinks...)

	var messagingSvc whatsappsvc.MessagingService
	if cfg.WhatsApp.Enabled() {
		whatsClient := whatsappclient.NewClient(cfg.WhatsApp)
		messagingSvc = whatsappsvc.NewMetaWhatsAppService(whatsClient, logger.Named(baseLogger, "svc.whatsapp"))
		baseLogger.Info("whatsapp summary notifications enabled")
	}

	if cfg.Export.Scheduled() {
		loc, err := cfg.Export.Location()
		if err != nil {
			baseLogger.Fatal("invalid timezone", zap.Error(err))
		}
		sched := scheduler.NewScheduler(cfg.Export.CronSchedule, loc, reportingSvc, messagingSvc, cfg.WhatsApp.ReportRecipient, logger.Named(baseLogger, "scheduler"))
		if err := sched.Start(); err != nil {
			baseLogger.Fatal("failed to start scheduler", zap.Error(err))
		}
		defer sched.Stop()
	}

	engine := router.New(
		handlers.NewPlantingHandler(plantingSvc, logger.Named(baseLogger, "handlers.planting")),
		handlers.NewExportHandler(plantingSvc, reportingSvc, logger.Named(baseLogger, "handlers.export")),
		logger.Named(baseLogger, "router"),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
