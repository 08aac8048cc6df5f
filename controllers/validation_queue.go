package controllers

import (
	"net/http"
	"strings"
	"time"

	"community-hub-api/config"
	"community-hub-api/models"

	"github.com/gin-gonic/gin"
)

type QueueRequest struct {
	AdminEmail    string   `json:"adminEmail" binding:"required,email"`
	SubmissionID  string   `json:"submissionId"`
	SubmissionIDs []string `json:"submissionIds"`
}

// queueItemResult is the per-item outcome of a bulk queue operation.
// Bulk operations are not transactional: one failing id must not undo
// the others.
type queueItemResult struct {
	SubmissionID string `json:"submissionId"`
	Status       string `json:"status"` // added|already_queued|removed|not_found|error
	Error        string `json:"error,omitempty"`
}

func (r *QueueRequest) ids() []string {
	if len(r.SubmissionIDs) > 0 {
		return r.SubmissionIDs
	}
	if r.SubmissionID != "" {
		return []string{r.SubmissionID}
	}
	return nil
}

// GetValidationQueue lists the queue entries assigned to one admin,
// each with its submission.
func GetValidationQueue(c *gin.Context) {
	adminEmail := strings.ToLower(strings.TrimSpace(c.Query("adminEmail")))
	if adminEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "adminEmail query parameter is required"})
		return
	}

	var entries []models.ValidationQueueEntry
	if err := config.DB.Preload("Submission").
		Where("admin_email = ?", adminEmail).
		Order("create_at").
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load validation queue"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// AddToValidationQueue assigns one or more submissions to an admin.
// A duplicate (submission, admin) pair counts as already queued, not
// as a failure.
func AddToValidationQueue(c *gin.Context) {
	var req QueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids := req.ids()
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "submissionId or submissionIds is required"})
		return
	}

	adminEmail := strings.ToLower(req.AdminEmail)
	results := make([]queueItemResult, 0, len(ids))

	for _, id := range ids {
		entry := models.ValidationQueueEntry{
			SubmissionID: id,
			AdminEmail:   adminEmail,
			Status:       models.QueueStatusPending,
			CreateAt:     time.Now(),
		}
		err := config.DB.Create(&entry).Error
		switch {
		case err == nil:
			results = append(results, queueItemResult{SubmissionID: id, Status: "added"})
		case isDuplicateKeyErr(err):
			results = append(results, queueItemResult{SubmissionID: id, Status: "already_queued"})
		default:
			results = append(results, queueItemResult{SubmissionID: id, Status: "error", Error: err.Error()})
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "results": results})
}

// RemoveFromValidationQueue unassigns one or more submissions from an
// admin, reporting each id separately.
func RemoveFromValidationQueue(c *gin.Context) {
	var req QueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids := req.ids()
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "submissionId or submissionIds is required"})
		return
	}

	adminEmail := strings.ToLower(req.AdminEmail)
	results := make([]queueItemResult, 0, len(ids))

	for _, id := range ids {
		res := config.DB.Where("submission_id = ? AND admin_email = ?", id, adminEmail).
			Delete(&models.ValidationQueueEntry{})
		switch {
		case res.Error != nil:
			results = append(results, queueItemResult{SubmissionID: id, Status: "error", Error: res.Error.Error()})
		case res.RowsAffected == 0:
			results = append(results, queueItemResult{SubmissionID: id, Status: "not_found"})
		default:
			results = append(results, queueItemResult{SubmissionID: id, Status: "removed"})
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "results": results})
}
