// Package notification holds the console's notification store: an ordered,
// size-bounded collection of alerts that is written through to a slot in
// local persistent storage on every change.
package notification

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nhle/admin-console/internal/model"
	"github.com/nhle/admin-console/internal/store"
)

// SlotKey is the storage slot holding the serialized collection.
const SlotKey = "notifications"

// ErrInvalidInput is returned by Add when a required field is missing or
// the type is unknown.
var ErrInvalidInput = errors.New("invalid notification")

// Store owns the notification collection. Reads return copies; all
// changes go through its methods. It is safe for concurrent use.
//
// Storage failures never escape a method: reads fall back to the current
// collection, and write failures are logged and kept for
// LastPersistError while the in-memory change stands.
type Store struct {
	mu    sync.RWMutex
	items []model.Notification

	kv  store.KV
	log zerolog.Logger

	now   func() time.Time
	newID func() string

	persistErr error
}

// New creates a store over kv seeded with seed. Call Initialize to replace
// the seed with a previously persisted snapshot.
func New(kv store.KV, seed []model.Notification, logger zerolog.Logger) *Store {
	return &Store{
		items: slices.Clone(seed),
		kv:    kv,
		log:   logger,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Initialize loads the persisted snapshot, if any, replacing the current
// collection as-is. A missing, unreadable or corrupt slot leaves the
// collection untouched.
func (s *Store) Initialize(ctx context.Context) {
	raw, ok, err := s.kv.Read(ctx, SlotKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("reading notification snapshot, keeping current state")
		return
	}
	if !ok {
		s.log.Debug().Msg("no notification snapshot, keeping current state")
		return
	}

	items, err := Decode(raw)
	if err != nil {
		s.log.Warn().Err(err).Msg("discarding unreadable notification snapshot")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.log.Debug().Int("count", len(items)).Msg("loaded notifications")
}

// Add creates an unread notification stamped with the current time, puts
// it at the front, applies the retention policy and persists.
func (s *Store) Add(ctx context.Context, in model.NotificationInput) (model.Notification, error) {
	if strings.TrimSpace(in.Title) == "" {
		return model.Notification{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Message) == "" {
		return model.Notification{}, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if !in.Type.Valid() {
		return model.Notification{}, fmt.Errorf("%w: unknown type %q", ErrInvalidInput, in.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := model.Notification{
		ID:        s.uniqueIDLocked(),
		Title:     in.Title,
		Message:   in.Message,
		Type:      in.Type,
		Timestamp: s.now(),
	}

	s.items = Retain(append([]model.Notification{n}, s.items...), MaxNotifications)
	s.persistLocked(ctx)
	return n, nil
}

// MarkAsRead flags the notification with id as read. Unknown ids are
// ignored.
func (s *Store) MarkAsRead(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return
	}
	s.items[i].Read = true
	s.persistLocked(ctx)
}

// MarkAllAsRead flags every notification as read.
func (s *Store) MarkAllAsRead(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		s.items[i].Read = true
	}
	s.persistLocked(ctx)
}

// Delete removes the notification with id, keeping the order of the rest.
// Unknown ids are ignored.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.persistLocked(ctx)
}

// ClearAll empties the collection and persists an empty array.
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persistLocked(ctx)
}

// Notifications returns a copy of the collection in its current order.
func (s *Store) Notifications() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.items)
	if out == nil {
		out = []model.Notification{}
	}
	return out
}

// Get returns the notification with id.
func (s *Store) Get(id string) (model.Notification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexLocked(id)
	if i < 0 {
		return model.Notification{}, false
	}
	return s.items[i], true
}

// UnreadCount counts notifications that have not been read.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// LastPersistError returns the error from the most recent write attempt,
// or nil if it succeeded.
func (s *Store) LastPersistError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistErr
}

func (s *Store) indexLocked(id string) int {
	return slices.IndexFunc(s.items, func(n model.Notification) bool {
		return n.ID == id
	})
}

func (s *Store) uniqueIDLocked() string {
	id := s.newID()
	for s.indexLocked(id) >= 0 {
		id = s.newID()
	}
	return id
}

// persistLocked writes the retention-limited collection to the slot.
func (s *Store) persistLocked(ctx context.Context) {
	data, err := Encode(Retain(s.items, MaxNotifications))
	if err == nil {
		err = s.kv.Write(ctx, SlotKey, data)
	}
	if err != nil {
		s.persistErr = fmt.Errorf("persisting notifications: %w", err)
		s.log.Warn().Err(err).Msg("persisting notifications, in-memory state kept")
		return
	}
	s.persistErr = nil
}
