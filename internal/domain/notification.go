package domain

import "time"

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
	Read      bool             `json:"read"`
}

type NotificationType string

const (
	NotifSuccess NotificationType = "success"
	NotifWarning NotificationType = "warning"
	NotifError   NotificationType = "error"
	NotifInfo    NotificationType = "info"
)
