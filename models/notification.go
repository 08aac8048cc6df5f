package models

import "time"

// Notification types
const (
	NotificationTypeSuccess = "success"
	NotificationTypeError   = "error"
	NotificationTypeInfo    = "info"
	NotificationTypeWarning = "warning"
)

type Notification struct {
	NotificationID      string     `gorm:"primaryKey;column:notification_id" json:"notification_id"`
	UserEmail           string     `gorm:"column:user_email;index" json:"user_email"`
	Type                string     `gorm:"column:type" json:"type"` // success|error|info|warning
	Title               string     `gorm:"column:title" json:"title"`
	Message             string     `gorm:"column:message" json:"message"`
	IsRead              bool       `gorm:"column:is_read" json:"is_read"`
	ActionURL           *string    `gorm:"column:action_url" json:"action_url,omitempty"`
	RelatedSubmissionID *string    `gorm:"column:related_submission_id" json:"related_submission_id,omitempty"`
	CreateAt            time.Time  `gorm:"column:create_at" json:"created_at"`
	UpdateAt            *time.Time `gorm:"column:update_at" json:"-"`
}

func (Notification) TableName() string { return "notifications" }

// IsValidNotificationType reports whether t is a known notification type.
func IsValidNotificationType(t string) bool {
	switch t {
	case NotificationTypeSuccess, NotificationTypeError, NotificationTypeInfo, NotificationTypeWarning:
		return true
	}
	return false
}
