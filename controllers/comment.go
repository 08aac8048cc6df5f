package controllers

import (
	"net/http"
	"strings"
	"time"

	"community-hub-api/config"
	"community-hub-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateCommentRequest struct {
	AuthorEmail string  `json:"author_email" binding:"required,email"`
	AuthorType  string  `json:"author_type" binding:"required"`
	Text        string  `json:"text" binding:"required"`
	ParentID    *string `json:"parent_id"`
}

// CreateComment adds a comment (or reply) to a submission's thread.
func CreateComment(c *gin.Context) {
	submissionID := c.Param("id")

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text cannot be empty"})
		return
	}
	if !models.IsValidAuthorType(req.AuthorType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "author_type must be user or admin"})
		return
	}

	var submission models.Submission
	if err := config.DB.Where("submission_id = ?", submissionID).First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	if req.ParentID != nil {
		var parent models.Comment
		if err := config.DB.Where("comment_id = ?", *req.ParentID).First(&parent).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parent comment not found"})
			return
		}
		if parent.SubmissionID != submissionID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parent comment belongs to a different submission"})
			return
		}
	}

	comment := models.Comment{
		CommentID:    uuid.NewString(),
		SubmissionID: submissionID,
		AuthorEmail:  strings.ToLower(req.AuthorEmail),
		AuthorType:   req.AuthorType,
		Text:         req.Text,
		ParentID:     req.ParentID,
		CreateAt:     time.Now(),
	}
	if err := config.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListComments returns the full thread for a submission in insertion
// order.
func ListComments(c *gin.Context) {
	submissionID := c.Param("id")

	var comments []models.Comment
	if err := config.DB.Where("submission_id = ?", submissionID).
		Order("create_at").
		Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

type UpdateCommentRequest struct {
	AuthorEmail string `json:"author_email" binding:"required,email"`
	Text        string `json:"text" binding:"required"`
}

// UpdateComment edits a comment. Only the original author may edit;
// an author mismatch reads the same as a missing comment.
func UpdateComment(c *gin.Context) {
	submissionID := c.Param("id")
	commentID := c.Param("commentId")

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text cannot be empty"})
		return
	}

	var comment models.Comment
	if err := config.DB.Where("comment_id = ? AND submission_id = ? AND author_email = ?",
		commentID, submissionID, strings.ToLower(req.AuthorEmail)).
		First(&comment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	now := time.Now()
	comment.Text = req.Text
	comment.UpdateAt = &now
	if err := config.DB.Save(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update comment"})
		return
	}

	c.JSON(http.StatusOK, comment)
}

// DeleteComment removes a comment and every reply under it. Admins may
// delete any comment; users only their own.
func DeleteComment(c *gin.Context) {
	submissionID := c.Param("id")
	commentID := c.Param("commentId")

	authorEmail := strings.ToLower(strings.TrimSpace(c.Query("authorEmail")))
	authorType := strings.TrimSpace(c.Query("authorType"))
	if authorEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "authorEmail query parameter is required"})
		return
	}

	var comment models.Comment
	if err := config.DB.Where("comment_id = ? AND submission_id = ?", commentID, submissionID).
		First(&comment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if authorType != models.AuthorTypeAdmin && comment.AuthorEmail != authorEmail {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	ids, err := collectThreadIDs(config.DB, commentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Where("comment_id IN ?", ids).Delete(&models.Comment{}).Error
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "deleted": len(ids)})
}

// collectThreadIDs walks the reply tree below a comment and returns
// every comment id in it, root included.
func collectThreadIDs(db *gorm.DB, rootID string) ([]string, error) {
	ids := []string{rootID}
	frontier := []string{rootID}

	for len(frontier) > 0 {
		var replies []models.Comment
		if err := db.Select("comment_id").Where("parent_id IN ?", frontier).Find(&replies).Error; err != nil {
			return nil, err
		}
		frontier = frontier[:0]
		for _, r := range replies {
			ids = append(ids, r.CommentID)
			frontier = append(frontier, r.CommentID)
		}
	}

	return ids, nil
}
