package controllers

import (
	"net/http"
	"strings"
	"time"

	"community-hub-api/config"
	"community-hub-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateSubmissionRequest struct {
	ID        string  `json:"id" binding:"required"`
	UserEmail string  `json:"userEmail" binding:"required,email"`
	FileName  string  `json:"fileName" binding:"required"`
	FileType  string  `json:"fileType" binding:"required"`
	FileSize  int64   `json:"fileSize"`
	Status    *string `json:"status"`
	Preview   *string `json:"preview"`

	// Optional type-specific attributes stored on the media row.
	Width     *int     `json:"width"`
	Height    *int     `json:"height"`
	Duration  *float64 `json:"duration"`
	MimeType  *string  `json:"mimeType"`
	Extension *string  `json:"extension"`
}

// isDuplicateKeyErr detects a primary/unique key violation from the
// underlying driver.
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		err == gorm.ErrDuplicatedKey
}

// CreateSubmission stores a new submission. The id comes from the
// client; the primary key constraint is the only duplicate guard.
func CreateSubmission(c *gin.Context) {
	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidFileType(req.FileType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fileType must be image, audio, video or document"})
		return
	}

	status := models.StatusPending
	if req.Status != nil {
		if !models.IsValidStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown submission status"})
			return
		}
		status = *req.Status
	}

	submission := models.Submission{
		SubmissionID: req.ID,
		UserEmail:    strings.ToLower(req.UserEmail),
		FileName:     req.FileName,
		FileType:     req.FileType,
		FileSize:     req.FileSize,
		Status:       status,
		Preview:      req.Preview,
		CreateAt:     time.Now(),
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&submission).Error; err != nil {
			return err
		}
		return createMediaRow(tx, &submission, &req)
	})
	if err != nil {
		if isDuplicateKeyErr(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "A submission with this id already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// createMediaRow writes the per-type metadata row when the request
// carries a preview or any type-specific attribute.
func createMediaRow(tx *gorm.DB, sub *models.Submission, req *CreateSubmissionRequest) error {
	hasMedia := req.Preview != nil || req.Width != nil || req.Height != nil ||
		req.Duration != nil || req.MimeType != nil || req.Extension != nil
	if !hasMedia {
		return nil
	}

	now := time.Now()
	switch sub.FileType {
	case models.FileTypeImage:
		return tx.Create(&models.ImageMetadata{
			SubmissionID: sub.SubmissionID,
			Preview:      req.Preview,
			Width:        req.Width,
			Height:       req.Height,
			MimeType:     req.MimeType,
			Extension:    req.Extension,
			CreateAt:     now,
		}).Error
	case models.FileTypeVideo:
		return tx.Create(&models.VideoMetadata{
			SubmissionID: sub.SubmissionID,
			Preview:      req.Preview,
			Duration:     req.Duration,
			Width:        req.Width,
			Height:       req.Height,
			MimeType:     req.MimeType,
			Extension:    req.Extension,
			CreateAt:     now,
		}).Error
	case models.FileTypeAudio:
		return tx.Create(&models.AudioMetadata{
			SubmissionID: sub.SubmissionID,
			Preview:      req.Preview,
			Duration:     req.Duration,
			MimeType:     req.MimeType,
			Extension:    req.Extension,
			CreateAt:     now,
		}).Error
	case models.FileTypeDocument:
		return tx.Create(&models.WebData{
			SubmissionID: sub.SubmissionID,
			Preview:      req.Preview,
			MimeType:     req.MimeType,
			CreateAt:     now,
		}).Error
	}
	return nil
}

// GetSubmissions lists submissions owned by one user.
func GetSubmissions(c *gin.Context) {
	userEmail, ok := requireUserEmail(c)
	if !ok {
		return
	}

	var submissions []models.Submission
	if err := config.DB.Where("user_email = ?", userEmail).
		Order("create_at").
		Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submissions"})
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// GetSubmission returns a single submission by id.
func GetSubmission(c *gin.Context) {
	var submission models.Submission
	if err := config.DB.Where("submission_id = ?", c.Param("id")).First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	c.JSON(http.StatusOK, submission)
}

func listByStatus(c *gin.Context, status string) {
	var submissions []models.Submission
	if err := config.DB.Where("status = ?", status).
		Order("create_at").
		Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submissions"})
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// GetPendingSubmissions lists submissions awaiting review, whether
// freshly created or explicitly submitted.
func GetPendingSubmissions(c *gin.Context) {
	var submissions []models.Submission
	if err := config.DB.Where("status IN ?", []string{models.StatusPending, models.StatusSubmitted}).
		Order("create_at").
		Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submissions"})
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// GetValidatedSubmissions lists validated submissions.
func GetValidatedSubmissions(c *gin.Context) {
	listByStatus(c, models.StatusValidated)
}

// GetRejectedSubmissions lists rejected submissions.
func GetRejectedSubmissions(c *gin.Context) {
	listByStatus(c, models.StatusRejected)
}

// DeleteSubmission removes a submission together with its media
// metadata, comments and queue entries. Only the owner may delete.
func DeleteSubmission(c *gin.Context) {
	submissionID := c.Param("id")
	userEmail, ok := requireUserEmail(c)
	if !ok {
		return
	}

	var submission models.Submission
	if err := config.DB.Where("submission_id = ? AND user_email = ?", submissionID, userEmail).
		First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		// Dependents first; the FK cascade covers real deployments but
		// the delete must hold on drivers that do not enforce it.
		for _, m := range []interface{}{
			&models.ImageMetadata{}, &models.VideoMetadata{},
			&models.AudioMetadata{}, &models.WebData{},
			&models.Comment{}, &models.ValidationQueueEntry{},
		} {
			if err := tx.Where("submission_id = ?", submissionID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&submission).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete submission", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Submission deleted"})
}
