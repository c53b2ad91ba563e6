package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-erp/config"
	deliveryHttp "hospital-erp/internal/delivery/http"
	"hospital-erp/internal/delivery/http/handler"
	"hospital-erp/internal/delivery/http/middleware"
	"hospital-erp/internal/domain/entity"
	"hospital-erp/internal/infrastructure/cache"
	"hospital-erp/internal/infrastructure/database"
	"hospital-erp/internal/repository"
	"hospital-erp/internal/service"
	"hospital-erp/internal/usecase"
	"hospital-erp/pkg/jwt"
	"hospital-erp/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
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
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply pending migrations
	if err := database.RunMigrations(db, cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	apptRepo := repository.NewAppointmentRepository()
	recordRepo := repository.NewMedicalRecordRepository()
	wardRepo := repository.NewWardRepository()
	admissionRepo := repository.NewAdmissionRepository()
	inventoryRepo := repository.NewInventoryRepository()
	billingRepo := repository.NewBillingRepository()
	catalogRepo := repository.NewServiceCatalogRepository()
	hrRepo := repository.NewHRRepository()
	labRepo := repository.NewLabRepository()
	financeRepo := repository.NewFinanceRepository()
	fleetRepo := repository.NewFleetRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize domain services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	labSyncService := service.NewLabSyncService(db, log, labRepo, cfg.Lab)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo)
	apptUsecase := usecase.NewAppointmentUsecase(db, log, apptRepo, recordRepo, patientRepo, userRepo)
	admissionUsecase := usecase.NewAdmissionUsecase(db, log, wardRepo, admissionRepo, patientRepo, auditService)
	inventoryUsecase := usecase.NewInventoryUsecase(db, log, inventoryRepo)
	billingUsecase := usecase.NewBillingUsecase(db, log, billingRepo, patientRepo)
	serviceUsecase := usecase.NewServiceCatalogUsecase(db, log, catalogRepo, patientRepo)
	hrUsecase := usecase.NewHRUsecase(db, log, hrRepo, userRepo)
	labUsecase := usecase.NewLabUsecase(db, log, labRepo, patientRepo, labSyncService)
	financeUsecase := usecase.NewFinanceUsecase(db, log, financeRepo)
	fleetUsecase := usecase.NewFleetUsecase(db, log, fleetRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, wardRepo, redisClient)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	apptHandler := handler.NewAppointmentHandler(apptUsecase, customValidator)
	admissionHandler := handler.NewAdmissionHandler(admissionUsecase, customValidator)
	inventoryHandler := handler.NewInventoryHandler(inventoryUsecase, customValidator)
	billingHandler := handler.NewBillingHandler(billingUsecase, customValidator)
	serviceHandler := handler.NewServiceHandler(serviceUsecase, customValidator)
	hrHandler := handler.NewHrHandler(hrUsecase, customValidator)
	labHandler := handler.NewLabHandler(labUsecase, customValidator)
	financeHandler := handler.NewFinanceHandler(financeUsecase, customValidator)
	fleetHandler := handler.NewFleetHandler(fleetUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)
	crudHandlers := &deliveryHttp.CrudHandlers{
		ClinicalGuideline: newCrudHandler[entity.ClinicalGuideline](db, log, "Clinical guideline"),
		DiagnosticSession: newCrudHandler[entity.DiagnosticSession](db, log, "Diagnostic session"),
		TreatmentPlan:     newCrudHandler[entity.TreatmentPlan](db, log, "Treatment plan"),
		MedicalOrder:      newCrudHandler[entity.MedicalOrder](db, log, "Medical order"),
		OrderResult:       newCrudHandler[entity.OrderResult](db, log, "Order result"),
		DialysisUnit:      newCrudHandler[entity.DialysisUnit](db, log, "Dialysis unit"),
		DialysisSession:   newCrudHandler[entity.DialysisSession](db, log, "Dialysis session"),
		EmergencyCase:     newCrudHandler[entity.EmergencyCase](db, log, "Emergency case"),
		ReportTemplate:    newCrudHandler[entity.ReportTemplate](db, log, "Report template"),
		ReportExecution:   newCrudHandler[entity.ReportExecution](db, log, "Report execution"),
		CreditCompany:     newCrudHandler[entity.CreditCompany](db, log, "Credit company"),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		userHandler,
		patientHandler,
		apptHandler,
		admissionHandler,
		inventoryHandler,
		billingHandler,
		serviceHandler,
		hrHandler,
		labHandler,
		financeHandler,
		fleetHandler,
		dashboardHandler,
		auditLogHandler,
		crudHandlers,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

func newCrudHandler[T any](db *gorm.DB, log *logrus.Logger, name string) *handler.CrudHandler[T] {
	return handler.NewCrudHandler(usecase.NewCrudUsecase(db, log, repository.NewCrudRepository[T]()), name)
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
