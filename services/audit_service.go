package services

import (
	"log"
	"time"

	"community-hub-api/models"

	"gorm.io/gorm"
)

// RecordAdminAction appends a row to the admin audit trail. The trail
// is advisory: a failed write is logged and swallowed so it can never
// fail the action it describes.
func RecordAdminAction(db *gorm.DB, adminEmail, action, targetType string, targetID *string, description, ip string, userAgent *string) {
	entry := models.AdminAction{
		AdminEmail: adminEmail,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		IPAddress:  ip,
		UserAgent:  userAgent,
		CreateAt:   time.Now(),
	}
	if description != "" {
		entry.Description = &description
	}

	if err := db.Create(&entry).Error; err != nil {
		log.Printf("Warning: Failed to record admin action %s on %s: %v", action, targetType, err)
	}
}
