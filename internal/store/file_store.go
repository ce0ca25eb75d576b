package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"course-records-backend/internal/catalog"
	"course-records-backend/internal/parse"
)

// FileStore keeps the catalog in a single file. Files ending in .yaml or
// .yml hold the YAML encoding; anything else holds the text listing.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(s.path))
	return ext == ".yaml" || ext == ".yml"
}

// Load reads the catalog file. A missing file yields an empty catalog.
func (s *FileStore) Load(ctx context.Context) (*catalog.Database, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return catalog.NewDatabase(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	db, err := s.decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return db, nil
}

func (s *FileStore) decode(r io.Reader) (*catalog.Database, error) {
	if s.isYAML() {
		db := catalog.NewDatabase()
		if err := db.Deserialize(r); err != nil {
			return nil, err
		}
		return db, nil
	}
	return parse.ParseListing(r)
}

// Save writes the catalog to a temporary file in the same directory and
// renames it over the old one.
func (s *FileStore) Save(ctx context.Context, db *catalog.Database) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if s.isYAML() {
		err = db.Serialize(tmp)
	} else {
		err = parse.WriteListing(tmp, db)
	}
	if err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}
