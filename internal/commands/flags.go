package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/nhle/admin-console/internal/logging"
	"github.com/nhle/admin-console/internal/model"
	"github.com/nhle/admin-console/internal/notification"
	"github.com/nhle/admin-console/internal/store"
)

// Flags holds global options and the services built from them by Setup.
// Only commands that touch notifications call Setup, so config commands
// work even when the config file is invalid.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
	Ephemeral  bool

	// Config is loaded in Setup and available to all commands.
	Config *model.AppConfig

	// KV is the slot store selected by the config.
	KV store.KV

	// Notifications is the initialized notification store.
	Notifications *notification.Store
}

// Setup loads the config, opens the slot store and loads the notification
// collection from it. Later calls are no-ops.
func (f *Flags) Setup(ctx context.Context) error {
	if f.Notifications != nil {
		return nil
	}

	cfg, err := model.LoadConfig(f.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if f.Ephemeral {
		cfg.Storage = model.StorageConfig{Driver: "memory"}
	}

	kv, err := store.Open(cfg.Storage, f.DataDir)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Storage.Driver, err)
	}

	f.Config = cfg
	f.KV = kv
	f.Notifications = NewNotificationStore(ctx, cfg, kv, logging.Component("notifications"))

	storageLog := logging.Component("storage")
	storageLog.Debug().
		Str("driver", cfg.Storage.Driver).
		Str("data_dir", f.DataDir).
		Msg("storage ready")
	return nil
}

// Before is a cli hook that runs Setup.
func (f *Flags) Before(ctx context.Context, _ *cli.Command) (context.Context, error) {
	return ctx, f.Setup(ctx)
}

// Close releases the slot store.
func (f *Flags) Close() error {
	if f.KV == nil {
		return nil
	}
	return f.KV.Close()
}

// NewNotificationStore builds the store, seeding it with the example
// notifications when the config asks for them, and loads any persisted
// snapshot over the seed.
func NewNotificationStore(ctx context.Context, cfg *model.AppConfig, kv store.KV, logger zerolog.Logger) *notification.Store {
	var seed []model.Notification
	if cfg.Notifications.SeedDefaults {
		seed = notification.DefaultNotifications(time.Now())
	}

	s := notification.New(kv, seed, logger)
	s.Initialize(ctx)
	return s
}
