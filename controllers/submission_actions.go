package controllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"community-hub-api/config"
	"community-hub-api/models"
	"community-hub-api/services"

	"github.com/gin-gonic/gin"
)

// updateSubmissionStatus overwrites the status of a submission. The
// transition is deliberately permissive: any known status may replace
// any other, matching the last-write-wins behavior the review UI
// depends on for re-reviews.
func updateSubmissionStatus(id, status string, reason, feedback *string) (*models.Submission, error) {
	var submission models.Submission
	if err := config.DB.Where("submission_id = ?", id).First(&submission).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	submission.Status = status
	submission.UpdateAt = &now
	if status == models.StatusRejected {
		submission.RejectionReason = reason
		submission.RejectionFeedback = feedback
	}

	if err := config.DB.Save(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// actingAdminEmail resolves the admin performing a review action from
// the x-admin-email header, the request body, or the session token.
func actingAdminEmail(c *gin.Context, bodyEmail string) string {
	if v := strings.TrimSpace(c.GetHeader("x-admin-email")); v != "" {
		return strings.ToLower(v)
	}
	if v := strings.TrimSpace(bodyEmail); v != "" {
		return strings.ToLower(v)
	}
	if v, ok := c.Get("email"); ok {
		return v.(string)
	}
	return ""
}

type SubmitSubmissionRequest struct {
	UserEmail string  `json:"userEmail"`
	FileName  string  `json:"fileName"`
	FileType  string  `json:"fileType"`
	FileSize  int64   `json:"fileSize"`
	Preview   *string `json:"preview"`
}

// SubmitSubmission transitions a submission to submitted. Clients may
// fire this before the create call has landed, so a missing row is
// created from the request body when it carries enough data.
func SubmitSubmission(c *gin.Context) {
	submissionID := c.Param("id")

	var req SubmitSubmissionRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	var submission models.Submission
	err := config.DB.Where("submission_id = ?", submissionID).First(&submission).Error
	if err != nil {
		if req.UserEmail == "" || req.FileName == "" || !models.IsValidFileType(req.FileType) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		submission = models.Submission{
			SubmissionID: submissionID,
			UserEmail:    strings.ToLower(req.UserEmail),
			FileName:     req.FileName,
			FileType:     req.FileType,
			FileSize:     req.FileSize,
			Status:       models.StatusPending,
			Preview:      req.Preview,
			CreateAt:     time.Now(),
		}
		if err := config.DB.Create(&submission).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission", "details": err.Error()})
			return
		}
	}

	updated, err := updateSubmissionStatus(submissionID, models.StatusSubmitted, nil, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "submission": updated})
}

// ValidateSubmission marks a submission as validated and notifies the
// owner. Audit and notification failures never fail the validation.
func ValidateSubmission(c *gin.Context) {
	submissionID := c.Param("id")

	var req struct {
		AdminEmail string `json:"adminEmail"`
	}
	_ = c.ShouldBindJSON(&req)

	submission, err := updateSubmissionStatus(submissionID, models.StatusValidated, nil, nil)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	adminEmail := actingAdminEmail(c, req.AdminEmail)
	ua := c.Request.UserAgent()
	services.RecordAdminAction(config.DB, adminEmail, "validate", "submission", &submission.SubmissionID,
		"submission validated", c.ClientIP(), &ua)

	if err := services.NotifySubmissionReviewed(config.DB, submission, models.StatusValidated, nil); err != nil {
		log.Printf("Warning: Failed to create validation notification for %s: %v", submissionID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Submission validated successfully",
		"submission": submission,
	})
}

type RejectSubmissionRequest struct {
	AdminEmail        string  `json:"adminEmail"`
	RejectionReason   *string `json:"rejectionReason"`
	RejectionFeedback *string `json:"rejectionFeedback"`
}

// RejectSubmission marks a submission as rejected, storing the reason
// and feedback, and notifies the owner.
func RejectSubmission(c *gin.Context) {
	submissionID := c.Param("id")

	var req RejectSubmissionRequest
	_ = c.ShouldBindJSON(&req)

	submission, err := updateSubmissionStatus(submissionID, models.StatusRejected, req.RejectionReason, req.RejectionFeedback)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	adminEmail := actingAdminEmail(c, req.AdminEmail)
	desc := "submission rejected"
	if req.RejectionReason != nil && *req.RejectionReason != "" {
		desc = "submission rejected: " + *req.RejectionReason
	}
	ua := c.Request.UserAgent()
	services.RecordAdminAction(config.DB, adminEmail, "reject", "submission", &submission.SubmissionID,
		desc, c.ClientIP(), &ua)

	if err := services.NotifySubmissionReviewed(config.DB, submission, models.StatusRejected, req.RejectionReason); err != nil {
		log.Printf("Warning: Failed to create rejection notification for %s: %v", submissionID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Submission rejected successfully",
		"submission": submission,
	})
}
