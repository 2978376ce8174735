package controllers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blood_donor_system/internal/config"
	"blood_donor_system/internal/middleware"
	"blood_donor_system/internal/models"
)

// ExportMyDonations streams the current donor's donation history as a CSV
// attachment named donation_history.csv.
func ExportMyDonations(c *gin.Context) {
	current := middleware.CurrentUser(c)

	if !current.IsDonor {
		c.JSON(http.StatusForbidden, gin.H{"detail": "You don't have a donor role"})
		return
	}

	var donor models.Donor
	err := config.DB.Preload("Donations.Hospital").
		Where("user_id = ?", current.ID).First(&donor).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Donor profile not found"})
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	_ = writer.Write([]string{"id", "donation_date", "hospital", "blood_type", "blood_amount_ml", "status"})
	for _, donation := range donor.Donations {
		hospital := "-"
		if donation.Hospital != nil {
			hospital = donation.Hospital.Name
		}
		_ = writer.Write([]string{
			strconv.FormatUint(uint64(donation.ID), 10),
			donation.DonationDate.Format("2006-01-02"),
			hospital,
			donation.BloodType,
			strconv.Itoa(donation.BloodAmountML),
			donation.Status,
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not build export: " + err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="donation_history.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
