package routes

import (
	"community-hub-api/controllers"
	"community-hub-api/middleware"
	"community-hub-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/auth/register", controllers.RegisterUser)
			public.POST("/auth/login", controllers.LoginUser)
			public.POST("/admin/register", controllers.RegisterAdmin)
			public.POST("/admin/login", controllers.LoginAdmin)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Community Hub API is running",
				})
			})
		}

		// Session-scoped account routes
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)
		}

		// Volunteer-facing routes; callers identify themselves by email
		// the way the dashboard forms do.
		open := v1.Group("")
		{
			// Submissions
			open.GET("/submissions", controllers.GetSubmissions)
			open.POST("/submissions", controllers.CreateSubmission)
			open.GET("/submissions/:id", controllers.GetSubmission)
			open.DELETE("/submissions/:id", controllers.DeleteSubmission)
			open.POST("/submissions/:id/submit", controllers.SubmitSubmission)

			// Previews
			open.GET("/submissions/:id/preview", controllers.GetSubmissionPreview)
			open.GET("/web-data/:id/preview", controllers.GetWebDataPreview)

			// Comment threads
			open.GET("/submissions/:id/comments", controllers.ListComments)
			open.POST("/submissions/:id/comments", controllers.CreateComment)
			open.PUT("/submissions/:id/comments/:commentId", controllers.UpdateComment)
			open.DELETE("/submissions/:id/comments/:commentId", controllers.DeleteComment)

			// Notifications
			open.GET("/notifications", controllers.GetNotifications)
			open.POST("/notifications", controllers.CreateNotification)
			open.PATCH("/notifications", controllers.MarkNotificationsRead)
			open.DELETE("/notifications", controllers.DeleteNotifications)
		}

		// Admin routes (require an active admin session)
		admin := v1.Group("")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			// Review listings
			admin.GET("/submissions/pending", controllers.GetPendingSubmissions)
			admin.GET("/submissions/validated", controllers.GetValidatedSubmissions)
			admin.GET("/submissions/rejected", controllers.GetRejectedSubmissions)

			// Moderation actions
			admin.POST("/submissions/:id/validate", controllers.ValidateSubmission)
			admin.POST("/submissions/:id/reject", controllers.RejectSubmission)

			// Validation queue
			admin.GET("/validation-queue", controllers.GetValidationQueue)
			admin.POST("/validation-queue", controllers.AddToValidationQueue)
			admin.DELETE("/validation-queue", controllers.RemoveFromValidationQueue)

			// Admin account management
			admin.PATCH("/admin/accounts/:email/status",
				middleware.RequireAdminRole(models.AdminRoleSuper),
				controllers.UpdateAdminAccountStatus)
		}
	}
}
