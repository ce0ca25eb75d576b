package snapshot

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"course-records-backend/config"
	"course-records-backend/internal/app"
)

// Saver persists the live catalog. *app.App satisfies it.
type Saver interface {
	Snapshot(ctx context.Context) error
}

// Service periodically writes the live catalog to its store.
type Service struct {
	cfg   config.SnapshotConfig
	saver Saver
	log   *zap.Logger
}

// NewService creates a snapshot service.
func NewService(cfg config.SnapshotConfig, saver Saver, log *zap.Logger) *Service {
	return &Service{cfg: cfg, saver: saver, log: log}
}

// Run saves the catalog every interval until ctx is cancelled.
func (s *Service) Run(ctx context.Context) {
	if !s.cfg.Enabled {
		s.log.Info("snapshot service is disabled")
		return
	}
	s.log.Info("starting snapshot service", zap.Duration("interval", s.cfg.Interval))

	timer := time.NewTimer(s.cfg.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("snapshot service shutting down")
			return
		case <-timer.C:
			s.SaveOnce(ctx)
			timer.Reset(s.cfg.Interval)
		}
	}
}

// SaveOnce performs a single save and reports whether it succeeded.
func (s *Service) SaveOnce(ctx context.Context) bool {
	start := time.Now()
	if err := s.saver.Snapshot(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return false
		}
		if errors.Is(err, app.ErrSourceNotLoaded) {
			s.log.Warn("snapshot skipped", zap.Error(err))
			return false
		}
		s.log.Error("snapshot failed", zap.Error(err))
		return false
	}
	s.log.Debug("snapshot saved", zap.Duration("took", time.Since(start)))
	return true
}
