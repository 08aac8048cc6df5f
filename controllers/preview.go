package controllers

import (
	"net/http"

	"community-hub-api/config"
	"community-hub-api/services"

	"github.com/gin-gonic/gin"
)

// GetSubmissionPreview resolves the inline preview for a submission.
func GetSubmissionPreview(c *gin.Context) {
	svc := services.NewPreviewService(config.DB)

	result, err := svc.Resolve(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve preview", "details": err.Error()})
		return
	}
	if !result.Found {
		c.JSON(http.StatusNotFound, gin.H{"error": result.Message, "preview": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"preview": result.Preview, "mime_type": result.MimeType})
}

// GetWebDataPreview resolves the extracted web-data preview for a
// document submission.
func GetWebDataPreview(c *gin.Context) {
	svc := services.NewPreviewService(config.DB)

	result, err := svc.ResolveWebData(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve preview", "details": err.Error()})
		return
	}
	if !result.Found {
		c.JSON(http.StatusNotFound, gin.H{"error": result.Message, "preview": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"preview": result.Preview, "mime_type": result.MimeType})
}
