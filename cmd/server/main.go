package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "vehiclerental-backend/internal/api/http"
	"vehiclerental-backend/internal/config"
	"vehiclerental-backend/internal/jobs"
	"vehiclerental-backend/internal/logger"
	"vehiclerental-backend/internal/repository/postgres"
	"vehiclerental-backend/internal/scheduler"
	"vehiclerental-backend/internal/security"
	"vehiclerental-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Vehicle Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.Email.Enabled {
		logger.Info("Email notifications enabled", "from", cfg.Email.FromEmail)
		emailSvc = service.NewSendGridEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	} else {
		logger.Info("Email notifications disabled")
		emailSvc = service.NewNoopEmailService()
	}

	// Initialize Services
	rentalSvc := service.NewRentalService(
		store.VehicleRepository,
		store.RenterRepository,
		store.RentalRepository,
		emailSvc,
	)
	fleetSvc := service.NewFleetService(store.VehicleRepository, store.RentalRepository)
	userSvc := service.NewUserService(store.RenterRepository)
	authSvc := service.NewAuthService(store.RenterRepository, tokenManager)
	analyticsSvc := service.NewAnalyticsService(
		store.VehicleRepository,
		store.RenterRepository,
		store.RentalRepository,
	)

	// Initialize scheduled jobs
	jobRunner := jobs.NewJobRunner(db, store, &jobs.Services{
		Email:  emailSvc,
		Rental: rentalSvc,
		User:   userSvc,
	}, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:      authSvc,
		Rental:    rentalSvc,
		Fleet:     fleetSvc,
		User:      userSvc,
		Analytics: analyticsSvc,
		Tokens:    tokenManager,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
