package routes

import (
	"github.com/gin-gonic/gin"

	"blood_donor_system/internal/controllers"
	"blood_donor_system/internal/middleware"
)

func HospitalRoutes(r *gin.Engine) {
	hospitals := r.Group("/api/hospitals")
	{
		hospitals.GET("/:id/stats", controllers.GetHospitalStats)
		hospitals.GET("/:id/blood-requests", middleware.RequireStaff(), controllers.ListHospitalBloodRequests)
	}
}
