package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"blood_donor_system/internal/config"
	"blood_donor_system/internal/middleware"
	"blood_donor_system/internal/models"
)

type registerInput struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type profileUpdateInput struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type passwordChangeInput struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// RegisterUser creates an account with the basic user role.
func RegisterUser(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	var errs []fieldError
	errs = validateName(errs, "first_name", input.FirstName)
	errs = validateName(errs, "last_name", input.LastName)
	errs = validatePhoneNumber(errs, input.PhoneNumber)
	errs = validatePassword(errs, input.Password)
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": errs})
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"detail": "User already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not hash password"})
		return
	}

	user := models.User{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Password:    string(hash),
		IsUser:      true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"detail": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not create user: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "You are successfully registered!"})
}

// LoginUser authenticates by email/password and sets the session cookie.
func LoginUser(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Incorrect email or password"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "database error: " + err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Incorrect email or password"})
		return
	}

	token, err := middleware.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not generate token"})
		return
	}
	middleware.SetAuthCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"access_token":  token,
		"refresh_token": nil,
		"message":       "User " + user.Email + " successfully logged in",
	})
}

// GetMe returns the current user with nested role profiles.
func GetMe(c *gin.Context) {
	current := middleware.CurrentUser(c)

	var user models.User
	err := config.DB.
		Preload("DonorProfile.Donations.Hospital").
		Preload("HospitalStaffProfile.Hospital").
		First(&user, current.ID).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not load user: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// LogoutUser deletes the session cookie.
func LogoutUser(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "User successfully logged out!"})
}

// UpdateProfile updates the current user's identity fields and returns the
// updated record with nested profiles, so the page can rebind in place.
func UpdateProfile(c *gin.Context) {
	current := middleware.CurrentUser(c)

	var input profileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	var errs []fieldError
	errs = validateName(errs, "first_name", input.FirstName)
	errs = validateName(errs, "last_name", input.LastName)
	errs = validatePhoneNumber(errs, input.PhoneNumber)
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": errs})
		return
	}

	if input.Email != current.Email {
		var other models.User
		if err := config.DB.Where("email = ? AND id <> ?", input.Email, current.ID).First(&other).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"detail": "Email is already taken by another user"})
			return
		}
	}
	if input.PhoneNumber != current.PhoneNumber {
		var other models.User
		if err := config.DB.Where("phone_number = ? AND id <> ?", input.PhoneNumber, current.ID).First(&other).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"detail": "Phone number is already taken by another user"})
			return
		}
	}

	updates := map[string]interface{}{
		"first_name":   input.FirstName,
		"last_name":    input.LastName,
		"email":        input.Email,
		"phone_number": input.PhoneNumber,
	}
	if err := config.DB.Model(&models.User{}).Where("id = ?", current.ID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not update profile: " + err.Error()})
		return
	}

	var updated models.User
	err := config.DB.
		Preload("DonorProfile.Donations.Hospital").
		Preload("HospitalStaffProfile.Hospital").
		First(&updated, current.ID).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not load user: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ChangePassword verifies the current password and stores the new one.
func ChangePassword(c *gin.Context) {
	current := middleware.CurrentUser(c)

	var input passwordChangeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(current.Password), []byte(input.CurrentPassword)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Incorrect current password"})
		return
	}

	if input.NewPassword != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "New passwords do not match"})
		return
	}

	var errs []fieldError
	errs = validatePassword(errs, input.NewPassword)
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": errs})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not hash password"})
		return
	}
	if err := config.DB.Model(&models.User{}).Where("id = ?", current.ID).
		Update("password", string(hash)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not change password: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
