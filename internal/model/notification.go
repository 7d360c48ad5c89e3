package model

import "time"

// NotificationType is the severity tag attached to a notification.
// It is descriptive only and does not change store behavior.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// NotificationTypes lists every valid type in display order.
var NotificationTypes = []NotificationType{
	NotificationInfo,
	NotificationSuccess,
	NotificationWarning,
	NotificationError,
}

// Valid reports whether t is one of the known notification types.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationInfo, NotificationSuccess, NotificationWarning, NotificationError:
		return true
	}
	return false
}

// Notification represents a single user-facing alert shown in the console.
type Notification struct {
	// ID is unique within the store and never reused.
	ID string `json:"id"`

	// Title is the short headline.
	Title string `json:"title"`

	// Message is the body text.
	Message string `json:"message"`

	// Type is the severity tag.
	Type NotificationType `json:"type"`

	// Timestamp is when this notification was created.
	Timestamp time.Time `json:"timestamp"`

	// Read indicates whether the user has seen this notification.
	Read bool `json:"read"`
}

// NotificationInput holds the caller-supplied fields of a new notification.
type NotificationInput struct {
	Title   string
	Message string
	Type    NotificationType
}
