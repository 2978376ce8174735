package routes

import (
	"net/http"

	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"blood_donor_system/internal/config"
	"blood_donor_system/internal/controllers"
	"blood_donor_system/internal/webui"
)

// SetupRouter assembles the API routes and the server-rendered pages.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())

	r.LoadHTMLGlob("web/templates/*.html")

	// The page layer reaches the API over HTTP, like the browser it stands
	// in for.
	controllers.SetPagesClient(webui.NewClient(config.APIBaseURL()))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Blood Donor System API is running"})
	})

	AuthRoutes(r)
	DonorRoutes(r)
	HospitalRoutes(r)
	AdminRoutes(r)
	PageRoutes(r)

	return r
}
