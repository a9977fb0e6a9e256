package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"math-calendar-api/ai"
	"math-calendar-api/dataset"
	"math-calendar-api/db"
	"math-calendar-api/handlers"
	"math-calendar-api/utils"
)

func main() {
	// Set up logging with timestamps
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	utils.LogStartup("Math Calendar API starting...")

	// Optional .env file for local development
	if err := godotenv.Load(); err == nil {
		utils.LogStartup("Loaded configuration from .env file")
	}

	port := utils.GetEnvOrDefault("PORT", "3001")
	dbPath := utils.GetEnvOrDefault("DB_PATH", "./mathcalendar.db")
	utils.LogStartup("Using port %s, database %s", port, dbPath)

	// Initialize content database and seed it from the bundled dataset
	database, err := db.InitDB(dbPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize database: %v", err)
	}
	if err := database.SeedFromDataset(dataset.Months, dataset.Data); err != nil {
		log.Fatalf("[FATAL] Failed to seed content: %v", err)
	}

	provider := ai.NewProviderFromEnv()
	if provider.Enabled() {
		utils.LogStartup("Generation enabled: POST /api/gemini")
	} else {
		utils.LogStartup("Generation disabled: set GEMINI_API_KEY to enable")
	}

	// Set up graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		utils.LogShutdown("Received shutdown signal, closing database...")
		if err := database.Close(); err != nil {
			utils.LogError("Error closing database: %v", err)
		} else {
			utils.LogShutdown("Database connection closed successfully")
		}
		os.Exit(0)
	}()

	router := handlers.NewRouter(database, provider)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	utils.LogStartup("API running at http://localhost:%s/api/months", port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("[FATAL] Server failed to start: %v", err)
	}
}
