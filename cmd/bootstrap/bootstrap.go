package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-management-backend/config"
	deliveryHttp "clinic-management-backend/internal/delivery/http"
	"clinic-management-backend/internal/delivery/http/handler"
	"clinic-management-backend/internal/delivery/http/middleware"
	"clinic-management-backend/internal/infrastructure/cache"
	"clinic-management-backend/internal/infrastructure/database"
	"clinic-management-backend/internal/repository"
	"clinic-management-backend/internal/service"
	"clinic-management-backend/internal/usecase"
	"clinic-management-backend/pkg/jwt"
	"clinic-management-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config        *config.Config
	DB            *gorm.DB
	RedisClient   *redis.Client
	Server        *http.Server
	Notifications *service.NotificationService
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Apply schema migrations
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, notifications, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server
	app.Notifications = notifications

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *service.NotificationService, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize clock and domain services
	clock, err := service.NewClock(cfg.App.TimeZone)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize clock: %w", err)
	}
	slotGenerator := service.NewSlotGenerator(cfg.Clinic, clock)
	roomAssigner := service.NewRoomAssigner()
	notificationService := service.NewNotificationService(log, clock, &service.LogEmailSender{Log: log}, &service.LogSMSSender{Log: log})

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	medicalRecordRepo := repository.NewMedicalRecordRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	medicineRepo := repository.NewMedicineRepository()
	templateRepo := repository.NewDiagnosisTemplateRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(db, log, auditLogRepo)

	// Initialize usecases
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, doctorProfileRepo, patientProfileRepo, slotGenerator, roomAssigner, notificationService, auditService, clock)
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, doctorProfileRepo, patientProfileRepo, auditService, appointmentUsecase, jwtService, redisClient)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, appointmentRepo, doctorProfileRepo, slotGenerator, clock)
	receptionUsecase := usecase.NewReceptionUsecase(db, log, appointmentRepo, medicalRecordRepo, prescriptionRepo, medicineRepo, templateRepo, notificationService, auditService)
	doctorProfileUsecase := usecase.NewDoctorProfileUsecase(db, log, doctorProfileRepo, auditService)
	patientProfileUsecase := usecase.NewPatientProfileUsecase(db, log, patientProfileRepo, auditService)
	medicineUsecase := usecase.NewMedicineUsecase(db, log, medicineRepo, auditService)
	templateUsecase := usecase.NewDiagnosisTemplateUsecase(db, log, templateRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase)
	medicalRecordHandler := handler.NewMedicalRecordHandler(receptionUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorProfileUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientProfileUsecase, customValidator)
	medicineHandler := handler.NewMedicineHandler(medicineUsecase, customValidator)
	templateHandler := handler.NewDiagnosisTemplateHandler(templateUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		appointmentHandler,
		availabilityHandler,
		medicalRecordHandler,
		doctorHandler,
		patientHandler,
		medicineHandler,
		templateHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return server, notificationService, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Let in-flight notifications drain
	if app.Notifications != nil {
		app.Notifications.Wait()
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
