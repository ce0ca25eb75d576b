package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"course-records-backend/internal/catalog"
	"course-records-backend/internal/seed"
	"course-records-backend/internal/store"
)

// ErrNoDatabase is returned by View, Update and Snapshot when no database
// is loaded, either before Run or after Terminate.
var ErrNoDatabase = errors.New("no database loaded")

// ErrSourceNotLoaded is returned by Snapshot and Terminate when Run could
// not read the store. Saving would overwrite the unreadable source with the
// empty fallback catalog.
var ErrSourceNotLoaded = errors.New("store was not loaded, refusing to overwrite it")

// Mode selects how Run obtains the initial database.
type Mode int

const (
	// ModeRun loads the stored catalog.
	ModeRun Mode = iota
	// ModeSetup replaces the stored catalog with the seed catalog.
	ModeSetup
)

func (m Mode) String() string {
	switch m {
	case ModeRun:
		return "run"
	case ModeSetup:
		return "setup"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// App owns the single live catalog. Every access goes through one RWMutex.
type App struct {
	mu    sync.RWMutex
	db    *catalog.Database
	store store.Store
	log   *zap.Logger

	// loadFailed is set when ModeRun fell back to an empty catalog. It is
	// cleared by ModeSetup, a successful ModeRun, or Override.
	loadFailed bool
	onReplace  []func()
}

// New creates an App. st may be nil, in which case nothing is loaded or
// persisted.
func New(st store.Store, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{store: st, log: log}
}

// Run builds the live database. In ModeSetup the seed catalog is installed
// and written back to the store. In ModeRun the stored catalog is loaded;
// if loading fails the app starts with an empty catalog and will not save
// it back over the store.
func (a *App) Run(ctx context.Context, mode Mode) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch mode {
	case ModeSetup:
		db := seed.Catalog()
		if a.store != nil {
			if err := a.store.Save(ctx, db); err != nil {
				return fmt.Errorf("failed to persist seed catalog: %w", err)
			}
		}
		a.db = db
		a.loadFailed = false
		a.log.Info("seed catalog installed", zap.Int("departments", len(db.DepartmentMapping())))
	case ModeRun:
		a.db, a.loadFailed = a.load(ctx)
	default:
		return fmt.Errorf("unknown mode %v", mode)
	}
	a.notifyReplaced()
	return nil
}

func (a *App) load(ctx context.Context) (*catalog.Database, bool) {
	if a.store == nil {
		return catalog.NewDatabase(), false
	}
	db, err := a.store.Load(ctx)
	if err != nil {
		a.log.Warn("failed to load catalog, starting empty; saves are disabled until setup or override",
			zap.Error(err))
		return catalog.NewDatabase(), true
	}
	a.log.Info("catalog loaded", zap.Int("departments", len(db.DepartmentMapping())))
	return db, false
}

// LoadFailed reports whether the live catalog is the empty fallback for an
// unreadable store.
func (a *App) LoadFailed() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loadFailed
}

// Database returns the live database, or nil after Terminate.
func (a *App) Database() *catalog.Database {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.db
}

// Override replaces the live database wholesale. The replacement may be
// saved over the store even if the last load failed.
func (a *App) Override(db *catalog.Database) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.db = db
	a.loadFailed = false
	a.notifyReplaced()
}

// OnReplace registers fn to run whenever Run or Override installs a new
// catalog. fn is called with the write lock held and must not call back
// into the App.
func (a *App) OnReplace(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onReplace = append(a.onReplace, fn)
}

func (a *App) notifyReplaced() {
	for _, fn := range a.onReplace {
		fn()
	}
}

// Terminate saves the live database and drops it. Calling it again is a
// no-op. The database is dropped even when the save fails or is refused
// with ErrSourceNotLoaded.
func (a *App) Terminate(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.db == nil {
		return nil
	}
	db := a.db
	a.db = nil

	if a.store == nil {
		return nil
	}
	if a.loadFailed {
		return fmt.Errorf("skipping save on shutdown: %w", ErrSourceNotLoaded)
	}
	if err := a.store.Save(ctx, db); err != nil {
		return fmt.Errorf("failed to persist catalog on shutdown: %w", err)
	}
	a.log.Info("catalog persisted on shutdown")
	return nil
}

// Snapshot writes the live database to the store without dropping it.
func (a *App) Snapshot(ctx context.Context) error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.db == nil {
		return ErrNoDatabase
	}
	if a.store == nil {
		return nil
	}
	if a.loadFailed {
		return ErrSourceNotLoaded
	}
	return a.store.Save(ctx, a.db)
}

// View runs fn with the read lock held.
func (a *App) View(fn func(*catalog.Database) error) error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.db == nil {
		return ErrNoDatabase
	}
	return fn(a.db)
}

// Update runs fn with the write lock held.
func (a *App) Update(fn func(*catalog.Database) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.db == nil {
		return ErrNoDatabase
	}
	return fn(a.db)
}
