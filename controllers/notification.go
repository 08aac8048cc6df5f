package controllers

import (
	"net/http"
	"strings"
	"time"

	"community-hub-api/config"
	"community-hub-api/models"
	"community-hub-api/services"
	"community-hub-api/utils"

	"github.com/gin-gonic/gin"
)

func requireUserEmail(c *gin.Context) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(c.Query("userEmail")))
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userEmail query parameter is required"})
		return "", false
	}
	if !utils.ValidateEmail(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userEmail is not a valid email address"})
		return "", false
	}
	return email, true
}

// GetNotifications lists a user's inbox, newest first. With
// countOnly=true it returns only the unread count.
func GetNotifications(c *gin.Context) {
	userEmail, ok := requireUserEmail(c)
	if !ok {
		return
	}

	if c.Query("countOnly") == "true" {
		var count int64
		if err := config.DB.Model(&models.Notification{}).
			Where("user_email = ? AND is_read = ?", userEmail, false).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count notifications"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"unread_count": count})
		return
	}

	var notifications []models.Notification
	if err := config.DB.Where("user_email = ?", userEmail).
		Order("create_at DESC").
		Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

type CreateNotificationRequest struct {
	UserEmail           string  `json:"userEmail" binding:"required,email"`
	Type                string  `json:"type" binding:"required"`
	Title               string  `json:"title" binding:"required"`
	Message             string  `json:"message" binding:"required"`
	ActionURL           *string `json:"actionUrl"`
	RelatedSubmissionID *string `json:"relatedSubmissionId"`
}

// CreateNotification stores a notification for a user.
func CreateNotification(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidNotificationType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be success, error, info or warning"})
		return
	}

	n := models.Notification{
		UserEmail:           strings.ToLower(req.UserEmail),
		Type:                req.Type,
		Title:               req.Title,
		Message:             req.Message,
		ActionURL:           req.ActionURL,
		RelatedSubmissionID: req.RelatedSubmissionID,
	}
	if err := services.CreateNotification(config.DB, &n); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create notification"})
		return
	}

	c.JSON(http.StatusCreated, n)
}

type MarkNotificationRequest struct {
	ID      string `json:"id"`
	MarkAll bool   `json:"markAll"`
}

// MarkNotificationsRead marks one notification (or all of them with
// markAll=true) as read. Notifications of other users read as missing.
func MarkNotificationsRead(c *gin.Context) {
	userEmail, ok := requireUserEmail(c)
	if !ok {
		return
	}

	var req MarkNotificationRequest
	_ = c.ShouldBindJSON(&req)

	now := time.Now()

	if req.MarkAll || c.Query("markAll") == "true" {
		if err := config.DB.Model(&models.Notification{}).
			Where("user_email = ? AND is_read = ?", userEmail, false).
			Updates(map[string]interface{}{"is_read": true, "update_at": now}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications read"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id or markAll is required"})
		return
	}

	res := config.DB.Model(&models.Notification{}).
		Where("notification_id = ? AND user_email = ?", req.ID, userEmail).
		Updates(map[string]interface{}{"is_read": true, "update_at": now})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification read"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteNotifications removes one notification (or the whole inbox
// with deleteAll=true), scoped to the owning user.
func DeleteNotifications(c *gin.Context) {
	userEmail, ok := requireUserEmail(c)
	if !ok {
		return
	}

	if c.Query("deleteAll") == "true" {
		if err := config.DB.Where("user_email = ?", userEmail).
			Delete(&models.Notification{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notifications"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id or deleteAll is required"})
		return
	}

	res := config.DB.Where("notification_id = ? AND user_email = ?", id, userEmail).
		Delete(&models.Notification{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notification"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
