package routes

import (
	"github.com/gin-gonic/gin"

	"blood_donor_system/internal/controllers"
)

// PageRoutes registers the server-rendered pages. They never touch the
// database directly; everything goes through the REST API.
func PageRoutes(r *gin.Engine) {
	pages := r.Group("/pages")
	{
		pages.GET("/register", controllers.RegisterPage)
		pages.POST("/register", controllers.RegisterSubmit)
		pages.GET("/login", controllers.LoginPage)
		pages.POST("/login", controllers.LoginSubmit)
		pages.POST("/logout", controllers.LogoutSubmit)

		pages.GET("/profile", controllers.ProfilePage)
		pages.POST("/profile/update", controllers.UpdateProfilePage)
		pages.POST("/profile/password", controllers.ChangePasswordPage)
		pages.GET("/profile/donations/export", controllers.ExportDonationHistoryPage)

		pages.GET("/admin/dashboard", controllers.AdminDashboard)
		pages.GET("/hospital_staff/dashboard", controllers.HospitalStaffDashboard)
		pages.GET("/donor/dashboard", controllers.DonorDashboard)
	}
}
