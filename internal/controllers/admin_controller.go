package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blood_donor_system/internal/config"
	"blood_donor_system/internal/models"
)

// GetAdminStats returns the platform-wide counters for the admin dashboard.
func GetAdminStats(c *gin.Context) {
	var userCount, hospitalCount, requestCount int64
	config.DB.Model(&models.User{}).Count(&userCount)
	config.DB.Model(&models.Hospital{}).Count(&hospitalCount)
	config.DB.Model(&models.BloodRequest{}).Count(&requestCount)

	c.JSON(http.StatusOK, gin.H{
		"user_count":          userCount,
		"hospital_count":      hospitalCount,
		"blood_request_count": requestCount,
	})
}
