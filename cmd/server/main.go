package main

import (
	"log"
	"net/http"

	"blood_donor_system/internal/config"
	"blood_donor_system/internal/logger"
	"blood_donor_system/internal/middleware"
	"blood_donor_system/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Setup Gin router (API + pages)
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := config.ListenAddr()
	log.Printf("🩸 Blood Donor System running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
