package routes

import (
	"github.com/gin-gonic/gin"

	"blood_donor_system/internal/controllers"
	"blood_donor_system/internal/middleware"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.RegisterUser)
		auth.POST("/login", controllers.LoginUser)
		auth.POST("/logout/", controllers.LogoutUser)
		auth.GET("/me/", middleware.RequireAuth(), controllers.GetMe)
		auth.PUT("/profile/update", middleware.RequireAuth(), controllers.UpdateProfile)
		auth.POST("/profile/change-password", middleware.RequireAuth(), controllers.ChangePassword)
	}
}
