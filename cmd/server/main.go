package main

import (
	"log"

	_ "gantt/docs"
	"gantt/internal/config"
	"gantt/internal/server"
)

// @title           Gantt Chart API
// @version         1.0
// @description     API for managing Gantt chart tasks and users.

// @host      localhost:8001
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
