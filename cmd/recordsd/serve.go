package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"course-records-backend/internal/api"
	"course-records-backend/internal/app"
	"course-records-backend/internal/logger"
	"course-records-backend/internal/notification"
	"course-records-backend/internal/records"
	"course-records-backend/internal/snapshot"
	"course-records-backend/internal/store"
)

var (
	serveSetup bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Load the catalog from the configured store and serve it over HTTP.
With --setup the store is first reset to the built-in seed catalog.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveSetup, "setup", false, "Reset the store to the seed catalog before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := store.New(&cfg.Storage, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mode := app.ModeRun
	if serveSetup {
		mode = app.ModeSetup
	}
	a := app.New(st, log)
	if err := a.Run(ctx, mode); err != nil {
		return err
	}
	log.Info("catalog ready", zap.Stringer("mode", mode), zap.String("backend", cfg.Storage.Backend))

	var (
		opts           []records.Option
		registry       *notification.Registry
		webpushOptions *webpush.Options
	)
	if cfg.Push.Enabled() {
		webpushOptions = &webpush.Options{
			VAPIDPublicKey:  cfg.Push.PublicKey,
			VAPIDPrivateKey: cfg.Push.PrivateKey,
			Subscriber:      cfg.Push.Subject,
			TTL:             cfg.Push.TTL,
		}
		registry = notification.NewRegistry()
		pool := notification.NewWorkerPool(cfg.WorkerPool.Size, registry, webpushOptions, log)
		pool.Start(ctx)
		opts = append(opts, records.WithSeatListener(func(deptCode, courseCode string) {
			pool.Dispatch(deptCode, courseCode)
		}))
	} else {
		log.Warn("VAPID keys are not configured, seat notifications are disabled")
	}

	go snapshot.NewService(cfg.Snapshot, a, log).Run(ctx)

	handler := api.NewHandler(records.NewRouter(a, opts...), registry, webpushOptions, log)
	engine := api.NewRouter(handler, cfg.Server, log)
	a.OnReplace(handler.FlushCache)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, stopping services")
	case err := <-serverErr:
		runErr = fmt.Errorf("http server: %w", err)
		log.Error("HTTP server failed", zap.Error(err))
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}
	if err := a.Terminate(shutdownCtx); err != nil {
		log.Error("failed to persist catalog", zap.Error(err))
		if runErr == nil {
			runErr = err
		}
	}

	log.Info("server gracefully stopped")
	return runErr
}
