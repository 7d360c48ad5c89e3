package notification

import (
	"slices"

	"github.com/nhle/admin-console/internal/model"
)

// MaxNotifications bounds the collection. Older records are evicted first.
const MaxNotifications = 50

// Retain returns a copy of items ordered newest first and truncated to
// limit. Records with equal timestamps keep their relative order. A
// negative limit disables truncation.
func Retain(items []model.Notification, limit int) []model.Notification {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b model.Notification) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
