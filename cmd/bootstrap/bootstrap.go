package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pharmacenter-api/config"
	deliveryhttp "pharmacenter-api/internal/delivery/http"
	"pharmacenter-api/internal/delivery/http/handler"
	"pharmacenter-api/internal/delivery/http/middleware"
	"pharmacenter-api/internal/infrastructure/cache"
	"pharmacenter-api/internal/infrastructure/database"
	"pharmacenter-api/internal/repository"
	"pharmacenter-api/internal/service"
	"pharmacenter-api/internal/usecase"
	pkgjwt "pharmacenter-api/pkg/jwt"
	"pharmacenter-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Router      http.Handler
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := setupLogger(cfg.App.Env)

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	jwtService := pkgjwt.NewJWTService(cfg.JWT)
	validate := validator.NewValidator()

	// Repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	doctorRepo := repository.NewDoctorRepository()
	specialtyRepo := repository.NewSpecialtyRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	productRepo := repository.NewProductRepository()
	messageRepo := repository.NewContactMessageRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Services
	slotCache := service.NewSlotCacheService(redisClient, log, cfg.Booking.AvailabilityCacheTTL, cfg.Booking.FeedCacheTTL)
	icalService := service.NewICalService(cfg.Booking.ICalHost, cfg.Booking.SlotMinutes)
	auditService := service.NewAuditService(log, auditRepo)
	assistantService := service.NewAssistantService(cfg.Assistant, log)

	// Usecases
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, cfg.Booking, doctorRepo, appointmentRepo, slotCache)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, userRepo, availabilityUsecase, slotCache, auditService)
	feedUsecase := usecase.NewFeedUsecase(db, log, appointmentRepo, icalService, slotCache)
	authUsecase := usecase.NewAuthUsecase(db, log, redisClient, userRepo, roleRepo, jwtService, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, specialtyRepo, auditService)
	specialtyUsecase := usecase.NewSpecialtyUsecase(db, log, specialtyRepo, auditService)
	productUsecase := usecase.NewProductUsecase(db, log, productRepo, auditService)
	messageUsecase := usecase.NewContactMessageUsecase(db, log, messageRepo)

	// Delivery
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)

	router := deliveryhttp.NewRouter(deliveryhttp.RouterConfig{
		AuthMiddleware:        authMiddleware,
		AuthHandler:           handler.NewAuthHandler(log, validate, authUsecase),
		AvailabilityHandler:   handler.NewAvailabilityHandler(log, availabilityUsecase),
		AppointmentHandler:    handler.NewAppointmentHandler(log, validate, appointmentUsecase),
		ICalHandler:           handler.NewICalHandler(log, feedUsecase),
		DoctorHandler:         handler.NewDoctorHandler(log, validate, doctorUsecase),
		SpecialtyHandler:      handler.NewSpecialtyHandler(log, validate, specialtyUsecase),
		ProductHandler:        handler.NewProductHandler(log, validate, productUsecase),
		ContactMessageHandler: handler.NewContactMessageHandler(log, validate, messageUsecase, cfg.Contact),
		AssistantHandler:      handler.NewAssistantHandler(log, validate, assistantService),
	})

	return &App{
		Config:      cfg,
		Log:         log,
		DB:          db,
		RedisClient: redisClient,
		Router:      router,
	}, nil
}

// Run serves the API until SIGINT/SIGTERM, then drains in-flight requests.
func (a *App) Run() error {
	port := a.Config.App.Port
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      a.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Infof("Server listening on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		a.Log.Infof("Received signal %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := a.RedisClient.Close(); err != nil {
		a.Log.Warnf("Failed to close Redis client: %+v", err)
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.Log.Warnf("Failed to close database: %+v", err)
		}
	}

	a.Log.Info("Server stopped")
	return nil
}

func setupLogger(env string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	if env == "production" {
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}
