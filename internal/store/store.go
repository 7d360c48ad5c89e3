package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nhle/admin-console/internal/model"
)

// ErrClosed is returned by slot stores used after Close.
var ErrClosed = errors.New("store closed")

// KV is the local persistence collaborator: a set of named slots, each
// holding one opaque string value. A missing slot is reported as
// ok == false with a nil error.
type KV interface {
	Read(ctx context.Context, key string) (value string, ok bool, err error)
	Write(ctx context.Context, key, value string) error
	Close() error
}

// Open initializes the slot store selected by cfg.Driver. Relative or
// empty paths resolve under dataDir.
func Open(cfg model.StorageConfig, dataDir string) (KV, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))

	switch driver {
	case "", "sqlite", "sqlite3":
		return NewSQLiteStore(resolvePath(cfg.Path, dataDir, "adminui.db"))
	case "file":
		return NewFileStore(resolvePath(cfg.Path, dataDir, "slots"))
	case "keyring":
		ring, err := OpenKeyring(resolvePath(cfg.Path, dataDir, "keyring"))
		if err != nil {
			return nil, err
		}
		return NewKeyringStore(ring), nil
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

func resolvePath(path, dataDir, fallback string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return filepath.Join(dataDir, fallback)
	}
	if path == ":memory:" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dataDir, path)
}
