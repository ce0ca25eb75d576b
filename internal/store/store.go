package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"course-records-backend/config"
	"course-records-backend/internal/catalog"
	"course-records-backend/internal/db"
)

// ErrUnknownBackend is returned by New for an unrecognised storage backend.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store loads and saves whole catalog snapshots.
type Store interface {
	// Load returns the stored catalog, or an empty one when nothing has
	// been stored yet.
	Load(ctx context.Context) (*catalog.Database, error)
	// Save replaces the stored catalog with db.
	Save(ctx context.Context, db *catalog.Database) error
}

// New builds the Store selected by cfg.Backend.
func New(cfg *config.StorageConfig, log *zap.Logger) (Store, error) {
	switch cfg.Backend {
	case "file":
		return NewFileStore(cfg.Path), nil
	case "sql":
		gdb, err := db.Init(cfg, log)
		if err != nil {
			return nil, fmt.Errorf("failed to open sql store: %w", err)
		}
		return NewGormStore(gdb), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
