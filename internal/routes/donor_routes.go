package routes

import (
	"github.com/gin-gonic/gin"

	"blood_donor_system/internal/controllers"
	"blood_donor_system/internal/middleware"
)

func DonorRoutes(r *gin.Engine) {
	donors := r.Group("/api/donors")
	donors.Use(middleware.RequireAuth())
	{
		donors.GET("/me/donations/export", controllers.ExportMyDonations)
	}
}
