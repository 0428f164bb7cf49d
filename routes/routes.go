package routes

import (
	"github.com/gin-gonic/gin"

	"work-arrangement-api/controllers"
	"work-arrangement-api/middleware"
	"work-arrangement-api/models"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)

			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Work Arrangement API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Staff directory
			protected.GET("/staff/department/:dept", controllers.GetDepartmentStaff)

			// Work arrangement requests (submitters)
			requests := protected.Group("/requests")
			{
				requests.GET("", controllers.GetMyWorkRequests)
				requests.GET("/:id", controllers.GetWorkRequest)

				requests.POST("", middleware.RequireRole(models.RoleStaff, models.RoleManager), controllers.CreateWorkRequest)
				requests.POST("/:id/cancel", controllers.CancelWorkRequest)
				requests.POST("/:id/withdraw", controllers.WithdrawWorkRequest)
			}

			// Manager review
			manager := protected.Group("/manager")
			manager.Use(middleware.RequireRole(models.RoleManager))
			{
				manager.GET("/requests", controllers.GetManagerRequests)
				manager.GET("/requests/pending-count", controllers.GetManagerPendingCount)

				manager.POST("/requests/:id/approve", controllers.ApproveRequest)
				manager.POST("/requests/:id/reject", controllers.RejectRequest)
				manager.POST("/requests/:id/withdraw", controllers.ManagerWithdrawRequest)

				manager.POST("/requests/bulk/approve", controllers.BulkApproveRequests)
				manager.POST("/requests/bulk/reject", controllers.BulkRejectRequests)

				manager.POST("/withdrawals/:id/approve", controllers.ApproveWithdrawal)
				manager.POST("/withdrawals/:id/reject", controllers.RejectWithdrawal)
			}

			// Audit trail (HR read-only)
			audit := protected.Group("/audit")
			audit.Use(middleware.RequireRole(models.RoleHR))
			{
				audit.GET("", controllers.GetAuditTrail)
				audit.GET("/requests/:id", controllers.GetRequestAuditTrail)
			}

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetNotifications)
				notifications.GET("/counter", controllers.GetNotificationCounter)
				notifications.PUT("/:id/read", controllers.MarkNotificationRead)
				notifications.PUT("/read-all", controllers.MarkAllNotificationsRead)
			}
		}
	}
}
