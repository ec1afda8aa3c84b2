package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"practice-management-api/config"
	deliveryHttp "practice-management-api/internal/delivery/http"
	"practice-management-api/internal/delivery/http/handler"
	"practice-management-api/internal/delivery/http/middleware"
	"practice-management-api/internal/infrastructure/database"
	"practice-management-api/internal/repository"
	"practice-management-api/internal/usecase"
	"practice-management-api/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	app.Server = initializeServer(cfg, db)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// openDatabase connects to Postgres when DATABASE_URL is set, otherwise
// falls back to a local sqlite file for development, and migrates.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DB.URL != "" {
		db, err := database.NewPostgresConnection(cfg.DB.URL)
		if err != nil {
			return nil, err
		}
		if err := database.MigratePostgres(db); err != nil {
			return nil, err
		}
		return db, nil
	}

	logrus.Warn("DATABASE_URL not set, falling back to local sqlite store")
	db, err := database.NewSQLiteConnection(cfg.DB.SQLitePath)
	if err != nil {
		return nil, err
	}
	if err := database.MigrateSQLite(db); err != nil {
		return nil, err
	}
	return db, nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB) *http.Server {
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Repositories
	userRepo := repository.NewUserRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	messageRepo := repository.NewMessageRepository()
	medicalRecordRepo := repository.NewMedicalRecordRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	billingRepo := repository.NewBillingRepository()
	insuranceClaimRepo := repository.NewInsuranceClaimRepository()

	// Usecases
	userUsecase := usecase.NewUserUsecase(db, log, userRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, userRepo)
	messageUsecase := usecase.NewMessageUsecase(db, log, messageRepo, userRepo)
	medicalRecordUsecase := usecase.NewMedicalRecordUsecase(db, log, medicalRecordRepo, userRepo)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, userRepo)
	billingUsecase := usecase.NewBillingUsecase(db, log, billingRepo, userRepo)
	insuranceClaimUsecase := usecase.NewInsuranceClaimUsecase(db, log, insuranceClaimRepo, userRepo)

	// Handlers
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	messageHandler := handler.NewMessageHandler(messageUsecase, customValidator)
	medicalRecordHandler := handler.NewMedicalRecordHandler(medicalRecordUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator)
	billingHandler := handler.NewBillingHandler(billingUsecase, customValidator)
	insuranceClaimHandler := handler.NewInsuranceClaimHandler(insuranceClaimUsecase, customValidator)

	// Middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	recoveryMiddleware := middleware.NewRecoveryMiddleware(log)

	router := deliveryHttp.NewRouter(
		userHandler,
		appointmentHandler,
		messageHandler,
		medicalRecordHandler,
		prescriptionHandler,
		billingHandler,
		insuranceClaimHandler,
		corsMiddleware,
		loggingMiddleware,
		recoveryMiddleware,
		cfg.Static.Dir,
	)
	httpRouter := router.Setup()

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close releases the store connection pool.
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
