package notification

import (
	"time"

	"github.com/nhle/admin-console/internal/model"
)

// DefaultNotifications returns the example notifications a fresh console
// starts with, newest first and all unread.
func DefaultNotifications(now time.Time) []model.Notification {
	return []model.Notification{
		{
			ID:        "1",
			Title:     "New user registered",
			Message:   "A new account was created and is waiting for approval.",
			Type:      model.NotificationInfo,
			Timestamp: now,
		},
		{
			ID:        "2",
			Title:     "System update available",
			Message:   "A new release is ready to install during the next maintenance window.",
			Type:      model.NotificationWarning,
			Timestamp: now.Add(-time.Hour),
		},
		{
			ID:        "3",
			Title:     "Backup completed",
			Message:   "The nightly backup finished successfully.",
			Type:      model.NotificationSuccess,
			Timestamp: now.Add(-24 * time.Hour),
		},
	}
}
