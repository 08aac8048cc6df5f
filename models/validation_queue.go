package models

import "time"

// Validation queue entry statuses
const (
	QueueStatusPending    = "pending"
	QueueStatusInProgress = "in_progress"
	QueueStatusCompleted  = "completed"
	QueueStatusCancelled  = "cancelled"
)

// ValidationQueueEntry assigns a submission to an admin for review.
// Each (submission, admin) pair exists at most once.
type ValidationQueueEntry struct {
	QueueID      uint       `gorm:"primaryKey;column:queue_id" json:"queue_id"`
	SubmissionID string     `gorm:"column:submission_id;uniqueIndex:idx_queue_submission_admin" json:"submission_id"`
	AdminEmail   string     `gorm:"column:admin_email;uniqueIndex:idx_queue_submission_admin" json:"admin_email"`
	Status       string     `gorm:"column:status" json:"status"` // pending|in_progress|completed|cancelled
	CreateAt     time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`

	Submission Submission `gorm:"foreignKey:SubmissionID;references:SubmissionID;constraint:OnDelete:CASCADE" json:"submission,omitempty"`
}

func (ValidationQueueEntry) TableName() string { return "validation_queue" }

// IsValidQueueStatus reports whether s is a known queue entry status.
func IsValidQueueStatus(s string) bool {
	switch s {
	case QueueStatusPending, QueueStatusInProgress, QueueStatusCompleted, QueueStatusCancelled:
		return true
	}
	return false
}
