package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"blood_donor_system/internal/config"
	"blood_donor_system/internal/models"
)

func hospitalIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid hospital id"})
		return 0, false
	}
	return uint(id), true
}

// GetHospitalStats returns the dashboard counters for one hospital.
func GetHospitalStats(c *gin.Context) {
	hospitalID, ok := hospitalIDParam(c)
	if !ok {
		return
	}

	var hospital models.Hospital
	if err := config.DB.First(&hospital, hospitalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Hospital with ID " + c.Param("id") + " not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "database error: " + err.Error()})
		}
		return
	}

	var staffCount, requestCount, activeRequests, scheduled, completed int64
	config.DB.Model(&models.HospitalStaff{}).Where("hospital_id = ?", hospitalID).Count(&staffCount)
	config.DB.Model(&models.BloodRequest{}).Where("hospital_id = ?", hospitalID).Count(&requestCount)
	config.DB.Model(&models.BloodRequest{}).
		Where("hospital_id = ? AND status = ?", hospitalID, models.RequestActive).Count(&activeRequests)
	config.DB.Model(&models.Donation{}).
		Where("hospital_id = ? AND status = ?", hospitalID, models.DonationScheduled).Count(&scheduled)
	config.DB.Model(&models.Donation{}).
		Where("hospital_id = ? AND status = ?", hospitalID, models.DonationCompleted).Count(&completed)

	c.JSON(http.StatusOK, gin.H{
		"id":                   hospital.ID,
		"name":                 hospital.Name,
		"staff_count":          staffCount,
		"blood_requests_count": requestCount,
		"active_requests":      activeRequests,
		"scheduled_donations":  scheduled,
		"completed_donations":  completed,
	})
}

// ListHospitalBloodRequests returns the hospital's blood requests with
// their associated donations, newest first.
func ListHospitalBloodRequests(c *gin.Context) {
	hospitalID, ok := hospitalIDParam(c)
	if !ok {
		return
	}

	var requests []models.BloodRequest
	err := config.DB.Preload("Donations").
		Where("hospital_id = ?", hospitalID).
		Order("request_date DESC").
		Find(&requests).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "database error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, requests)
}
