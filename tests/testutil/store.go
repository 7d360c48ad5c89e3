// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/nhle/admin-console/internal/model"
	"github.com/nhle/admin-console/internal/notification"
	"github.com/nhle/admin-console/internal/store"
)

// NewTestStore creates an in-memory SQLite slot store with all migrations
// applied. It is closed when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// NewNotificationStore returns an initialized notification store seeded
// with seed and written through to a fresh in-memory SQLite slot store.
func NewNotificationStore(t *testing.T, seed []model.Notification) *notification.Store {
	t.Helper()

	s := notification.New(NewTestStore(t), seed, zerolog.Nop())
	s.Initialize(t.Context())
	return s
}
