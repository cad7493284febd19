package main

import (
	"log"
	"os"

	"biztrack/config"
	"biztrack/jobs"
	"biztrack/routes"
	"biztrack/services"
	"biztrack/services/logger"
	"biztrack/services/notification"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	bidStatsService := services.NewBidStatsService(services.BidStatsServiceOptions{
		DB:     config.DB,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
		Policy: services.SentPolicyFromEnv(),
	})
	notifier := notification.NewMelodyService(m)

	if err := jobs.InitCronJobs(c, bidStatsService, notifier); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, m)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
