package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"handmade-backend/internal/api"
	"handmade-backend/internal/config"
	"handmade-backend/internal/core"
	"handmade-backend/internal/db"
	"handmade-backend/internal/middleware"
	"handmade-backend/internal/upload"
)

func main() {
	// Load .env for local development. In deployed environments the
	// variables come from the process environment and no file exists.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()

	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded.")

	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirestore(initCtx, appConfig); err != nil {
		zapLogger.Fatal("Failed to initialize Firebase Admin SDK", zap.Error(err))
	}

	firestoreClient := db.GetFirestoreClient()
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firestoreClient == nil || firebaseAuthClient == nil {
		zapLogger.Fatal("Firestore or Firebase Auth client is nil after initialization.")
	}
	zapLogger.Info("Firebase Admin SDK (Firestore, Auth) initialized.")

	// Repositories
	productRepo := db.NewFirestoreProductRepository(firestoreClient)
	membershipRepo := db.NewFirestoreMembershipRepository(firestoreClient)
	orderRepo := db.NewFirestoreOrderRepository(firestoreClient)
	feedbackRepo := db.NewFirestoreFeedbackRepository(firestoreClient)
	messageRepo := db.NewFirestoreMessageRepository(firestoreClient)
	userRepo := db.NewFirestoreUserRepository(firestoreClient)
	auditRepo := db.NewFirestoreAuditRepository(firestoreClient)

	// Services
	uploader := upload.NewClient(
		appConfig.CloudinaryCloudName,
		appConfig.CloudinaryUploadPreset,
		appConfig.CloudinaryUploadFolder,
	)
	auditService := core.NewAuditService(auditRepo)
	userService := core.NewUserService(userRepo, appConfig.BootstrapAdminEmail)
	authService := core.NewAuthService(firebaseAuthClient, userRepo, appConfig.BootstrapAdminEmail)
	productService := core.NewProductService(productRepo, uploader, auditService)
	membershipService := core.NewMembershipService(membershipRepo, productRepo)
	orderService := core.NewOrderService(orderRepo, membershipRepo, auditService)
	feedbackService := core.NewFeedbackService(feedbackRepo, auditService)
	messageService := core.NewMessageService(messageRepo, auditService)
	zapLogger.Info("Core services initialized.")

	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	// Middleware order matters: log first, then recover, then CORS.
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS middleware skipped: CLIENT_URL is not configured.")
	}

	if err := api.RegisterValidators(); err != nil {
		zapLogger.Fatal("Failed to register custom validators", zap.Error(err))
	}

	api.SetupRoutes(
		router,
		zapLogger,
		productService,
		membershipService,
		orderService,
		feedbackService,
		messageService,
		userService,
		authService,
	)

	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := firestoreClient.Close(); err != nil {
		zapLogger.Warn("Failed to close Firestore client", zap.Error(err))
	}
	zapLogger.Info("Server exiting gracefully.")
}
