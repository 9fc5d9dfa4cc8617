package main

import (
	"log"
	"net/http"

	"utah_trips/internal/config"
	"utah_trips/internal/logger"
	"utah_trips/internal/middleware"
	"utah_trips/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Setup Gin router with request logging and recovery attached
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := config.ServerAddr()
	log.Printf("Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
