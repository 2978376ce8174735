package middleware

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"blood_donor_system/internal/config"
	"blood_donor_system/internal/models"
)

// AccessTokenCookie is the session cookie the API sets on login and the
// page layer forwards on every backend call.
const AccessTokenCookie = "user_access_token"

var secret = []byte(getJWTSecret())

func getJWTSecret() string {
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return val
	}
	return "supersecret" // fallback
}

// GenerateToken issues the session token stored in the auth cookie.
// The subject is the user id, matching what RequireAuth reads back.
func GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"exp": time.Now().Add(30 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// SetAuthCookie attaches the session cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(AccessTokenCookie, token, int((30 * 24 * time.Hour).Seconds()), "/", "", false, true)
}

// ClearAuthCookie removes the session cookie (logout).
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(AccessTokenCookie, "", -1, "/", "", false, true)
}

func parseUserID(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, jwt.ErrTokenMalformed
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, jwt.ErrTokenInvalidClaims
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, jwt.ErrTokenInvalidSubject
	}
	return uint(id), nil
}

// RequireAuth ensures a valid session cookie is present and loads the
// current user into the context. Errors use the FastAPI-style "detail"
// envelope the page layer's presenter understands.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(AccessTokenCookie)
		if err != nil || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Token not found"})
			return
		}

		userID, err := parseUserID(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid or expired token"})
			return
		}

		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "User not found"})
			return
		}

		c.Set("current_user", &user)
		c.Next()
	}
}

// RequireAdmin ensures the current user carries the admin role flag.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := RequireAuth()
		req(c)
		if c.IsAborted() {
			return
		}

		user := CurrentUser(c)
		if user == nil || !(user.IsAdmin || user.IsSuperAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Недостатньо прав користувача!"})
			return
		}

		c.Next()
	}
}

// RequireStaff ensures the current user is hospital staff (admins pass too).
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := RequireAuth()
		req(c)
		if c.IsAborted() {
			return
		}

		user := CurrentUser(c)
		if user == nil || !(user.IsHospitalStaff || user.IsAdmin || user.IsSuperAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Недостатньо прав користувача!"})
			return
		}

		c.Next()
	}
}

// CurrentUser returns the user loaded by RequireAuth, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, exists := c.Get("current_user")
	if !exists {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
