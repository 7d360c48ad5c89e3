package notification

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nhle/admin-console/internal/model"
)

// record is the persisted shape of a notification. Timestamp is kept raw
// so both RFC 3339 strings and Unix-millisecond numbers decode.
type record struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Type      model.NotificationType `json:"type"`
	Timestamp json.RawMessage        `json:"timestamp"`
	Read      bool                   `json:"read"`
}

// Encode serializes items as a JSON array. Timestamps are written as
// RFC 3339 strings with nanosecond precision.
func Encode(items []model.Notification) (string, error) {
	if items == nil {
		items = []model.Notification{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encoding notifications: %w", err)
	}
	return string(b), nil
}

// Decode parses a persisted snapshot. Any record with a missing id, an
// unknown type or an unreadable timestamp fails the whole snapshot.
// Duplicate ids keep the first occurrence.
func Decode(data string) ([]model.Notification, error) {
	raw := bytes.TrimSpace([]byte(data))
	if len(raw) == 0 || raw[0] != '[' {
		return nil, errors.New("decoding notifications: snapshot is not an array")
	}

	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decoding notifications: %w", err)
	}

	items := make([]model.Notification, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("decoding notification %d: missing id", i)
		}
		if !r.Type.Valid() {
			return nil, fmt.Errorf("decoding notification %s: unknown type %q", r.ID, r.Type)
		}
		ts, err := parseTimestamp(r.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("decoding notification %s: %w", r.ID, err)
		}
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}

		items = append(items, model.Notification{
			ID:        r.ID,
			Title:     r.Title,
			Message:   r.Message,
			Type:      r.Type,
			Timestamp: ts,
			Read:      r.Read,
		})
	}

	return items, nil
}

func parseTimestamp(raw json.RawMessage) (time.Time, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}, errors.New("missing timestamp")
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, fmt.Errorf("parsing timestamp: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing timestamp: %w", err)
		}
		return ts, nil
	}

	var ms float64
	if err := json.Unmarshal(raw, &ms); err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp: %w", err)
	}
	// int64 holds [-2^63, 2^63).
	if ms < -(1<<63) || ms >= 1<<63 {
		return time.Time{}, fmt.Errorf("parsing timestamp: %s out of range", raw)
	}
	return time.UnixMilli(int64(ms)), nil
}
