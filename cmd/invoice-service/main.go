package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kirim-labs/invoice-service/internal/api"
	"github.com/kirim-labs/invoice-service/internal/config"
	"github.com/kirim-labs/invoice-service/internal/email"
	"github.com/kirim-labs/invoice-service/internal/services"
	"github.com/kirim-labs/invoice-service/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := setupLogger(cfg)
	logger.Info("Starting invoice service...")

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	store, closeStore, err := setupStore(cfg, logger)
	if err != nil {
		logger.Fatalf("Error initializing storage: %v", err)
	}
	defer closeStore()

	var resendService *email.ResendService
	if cfg.Email.ResendAPIKey != "" {
		resendService = email.NewResendService(cfg.Email.ResendAPIKey, cfg.Email.FromEmail, cfg.Server.BaseURL, logger)
		logger.Info("Resend service initialized successfully")
	} else {
		logger.Warn("Resend API key not provided, email delivery will not be available")
	}

	documentService := services.NewDocumentService(store, logger)
	profileService := services.NewProfileService(store, logger)
	pdfGenerator := services.NewPDFGenerator(logger)

	apiHandler := api.NewAPI(
		documentService,
		profileService,
		pdfGenerator,
		resendService,
		cfg,
		logger,
	)

	router := setupRouter(apiHandler, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Infof("Server starting on %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

// setupStore selects the state store backend from configuration.
func setupStore(cfg *config.Config, logger *logrus.Logger) (storage.Store, func(), error) {
	switch cfg.Storage.Type {
	case "redis":
		store, err := storage.NewRedisStore(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using redis state store")
		return store, func() { _ = store.Close() }, nil
	case "file":
		store, err := storage.NewFileStore(cfg.Storage.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Infof("Using file state store at %s", cfg.Storage.Path)
		return store, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage type: %s", cfg.Storage.Type)
	}
}

// setupLogger configures the logger from configuration.
func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

// setupRouter configures the main router.
func setupRouter(apiHandler *api.API, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// CORS middleware for development.
	if cfg.IsDevelopment() {
		router.Use(func(c *gin.Context) {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization")

			if c.Request.Method == "OPTIONS" {
				c.AbortWithStatus(204)
				return
			}

			c.Next()
		})
	}

	apiHandler.RegisterRoutes(router)

	return router
}
