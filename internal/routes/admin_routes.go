package routes

import (
	"github.com/gin-gonic/gin"

	"blood_donor_system/internal/controllers"
	"blood_donor_system/internal/middleware"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/stats", controllers.GetAdminStats)
	}
}
