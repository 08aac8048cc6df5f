package services

import (
	"fmt"
	"log"
	"time"

	"community-hub-api/config"
	"community-hub-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateNotification stores a notification, assigning its ID and
// creation time.
func CreateNotification(db *gorm.DB, n *models.Notification) error {
	if n.NotificationID == "" {
		n.NotificationID = uuid.NewString()
	}
	if n.CreateAt.IsZero() {
		n.CreateAt = time.Now()
	}
	return db.Create(n).Error
}

// BuildReviewNotification constructs the standard "your submission was
// validated/rejected" message for the submission owner.
func BuildReviewNotification(sub *models.Submission, outcome string, reason *string) *models.Notification {
	n := &models.Notification{
		UserEmail:           sub.UserEmail,
		RelatedSubmissionID: &sub.SubmissionID,
	}

	switch outcome {
	case models.StatusValidated:
		n.Type = models.NotificationTypeSuccess
		n.Title = "Submission validated"
		n.Message = fmt.Sprintf("Your submission %q has been validated.", sub.FileName)
	default:
		n.Type = models.NotificationTypeError
		n.Title = "Submission rejected"
		n.Message = fmt.Sprintf("Your submission %q has been rejected.", sub.FileName)
		if reason != nil && *reason != "" {
			n.Message = fmt.Sprintf("%s Reason: %s", n.Message, *reason)
		}
	}

	return n
}

// NotifySubmissionReviewed creates the review-outcome notification for
// the owner and sends a best-effort email copy. Mail failures are
// logged and never returned.
func NotifySubmissionReviewed(db *gorm.DB, sub *models.Submission, outcome string, reason *string) error {
	n := BuildReviewNotification(sub, outcome, reason)
	if err := CreateNotification(db, n); err != nil {
		return err
	}

	if config.MailConfigured() {
		body := fmt.Sprintf("<p>%s</p>", n.Message)
		if err := config.SendMail([]string{sub.UserEmail}, n.Title, body); err != nil {
			log.Printf("Warning: Failed to send review email for submission %s: %v", sub.SubmissionID, err)
		}
	}

	return nil
}
