package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mrucampus/helpdesk/internal/app/authz"
	"github.com/mrucampus/helpdesk/internal/app/controllers"
	"github.com/mrucampus/helpdesk/internal/middleware"
	"github.com/mrucampus/helpdesk/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	jwtService *auth.JWTService,
	authController *controllers.AuthController,
	complaintController *controllers.ComplaintController,
	departmentController *controllers.DepartmentController,
	feedbackController *controllers.FeedbackController,
	userController *controllers.UserController,
) {
	api := router.Group("/api")

	// --- Public auth routes ---
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(middleware.JWTAuth(jwtService))

	profile := authenticated.Group("/auth")
	{
		profile.GET("/profile", authController.GetProfile)
		profile.PUT("/profile", authController.UpdateProfile)
	}

	complaints := authenticated.Group("/complaints")
	{
		complaints.POST("", complaintController.Create)
		complaints.GET("", complaintController.List)
		// Fixed path registered before the :id parameter route
		complaints.GET("/stats/summary", complaintController.Stats)
		complaints.GET("/:id", complaintController.GetByID)

		complaints.PUT("/:id",
			middleware.RequireCapability(authz.CapComplaintUpdate),
			complaintController.Update)
	}

	departments := authenticated.Group("/departments")
	{
		departments.GET("", departmentController.List)
		departments.GET("/:id", departmentController.GetByID)

		manage := departments.Group("")
		manage.Use(middleware.RequireCapability(authz.CapDepartmentManage))
		{
			manage.POST("", departmentController.Create)
			manage.PUT("/:id", departmentController.Update)
			manage.DELETE("/:id", departmentController.Delete)
		}
	}

	users := authenticated.Group("/users")
	{
		users.GET("/analytics/complaints",
			middleware.RequireCapability(authz.CapAnalyticsRead),
			userController.Analytics)

		manage := users.Group("")
		manage.Use(middleware.RequireCapability(authz.CapUserManage))
		{
			manage.GET("", userController.List)
			manage.PUT("/:id", userController.Update)
			manage.DELETE("/:id", userController.Delete)
		}
	}

	feedback := authenticated.Group("/feedback")
	{
		feedback.POST("", feedbackController.Submit)
		feedback.GET("/complaint/:id", feedbackController.GetByComplaint)
		feedback.GET("/department/:id", feedbackController.ListByDepartment)
		feedback.GET("/all", feedbackController.Overview)
	}
}
