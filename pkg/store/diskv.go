// Package store persists the entry collection as a single JSON value in a
// diskv key/value directory.
package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/moodlog/pkg/entry"
)

// EntriesKey is the one key the whole collection lives under.
const EntriesKey = "nameEntries"

// ErrCorrupt is wrapped by Load when the stored value does not decode.
var ErrCorrupt = errors.New("store: stored entries are corrupt")

// Persistence defines the persistence contract for the entry collection.
type Persistence interface {
	// Load returns the saved collection, or an empty one if nothing was saved.
	Load(ctx context.Context) ([]entry.Entry, error)
	// Save replaces the saved collection as a whole.
	Save(ctx context.Context, entries []entry.Entry) error
	// Exists reports whether a collection has ever been saved.
	Exists() bool
	BasePath() string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// Writes land in TempDir and are renamed into place, so readers only
		// ever see a whole value.
		TempDir: filepath.Join(basePath, tempDir),
		// No read cache: another process may rewrite the value under us.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

const tempDir = ".tmp"

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) BasePath() string {
	return p.basePath
}

func (p *persistence) Exists() bool {
	return p.d.Has(EntriesKey)
}

func (p *persistence) Load(ctx context.Context) ([]entry.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !p.d.Has(EntriesKey) {
		return []entry.Entry{}, nil
	}
	val, err := p.d.Read(EntriesKey)
	if err != nil {
		return nil, fmt.Errorf("store: read entries: %w", err)
	}
	entries, err := entry.Unmarshal(val)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return entries, nil
}

func (p *persistence) Save(ctx context.Context, entries []entry.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := entry.Marshal(entries)
	if err != nil {
		return fmt.Errorf("store: encode entries: %w", err)
	}
	if err := p.d.Write(EntriesKey, data); err != nil {
		return fmt.Errorf("store: write entries: %w", err)
	}
	return nil
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{FileName: key}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
