package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"

	httpapi "agroverse-backend/internal/api/http"
	"agroverse-backend/internal/config"
	"agroverse-backend/internal/jobs"
	"agroverse-backend/internal/logger"
	"agroverse-backend/internal/repository/postgres"
	"agroverse-backend/internal/scheduler"
	"agroverse-backend/internal/security"
	"agroverse-backend/internal/service"
	"agroverse-backend/internal/storage"

	_ "github.com/lib/pq"
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
	logger.Info("Starting AgroVerse backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
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
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Storage
	fileStorage, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	logger.Info("Using local storage", "upload_dir", cfg.Storage.UploadDir)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository)
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository, fileStorage)
	bookingSvc := service.NewBookingService(store.BookingRepository, store.EquipmentRepository)
	dashboardSvc := service.NewDashboardService(store.BookingRepository, store.EquipmentRepository)

	// Initialize HTTP handlers
	handlers := httpapi.Handlers{
		Auth:      httpapi.NewAuthHandler(authSvc, userSvc),
		Users:     httpapi.NewUserHandler(authSvc, userSvc),
		Equipment: httpapi.NewEquipmentHandler(equipmentSvc, fileStorage, cfg.Storage.MaxFileSizeMB),
		Bookings:  httpapi.NewBookingHandler(bookingSvc),
		Dashboard: httpapi.NewDashboardHandler(dashboardSvc),
	}
	router := httpapi.NewRouter(tokenManager, handlers, fileStorage.UploadsDir())

	// Start scheduled jobs alongside the API server
	jobRunner := jobs.NewJobRunner(store, fileStorage, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
