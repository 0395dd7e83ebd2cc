package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"datavault360/internal/config"
	"datavault360/internal/database"
	"datavault360/internal/handler"
	"datavault360/internal/middleware"
	"datavault360/internal/repository"
	"datavault360/internal/service"
	"datavault360/internal/storage"
	"datavault360/pkg/logger"
	"datavault360/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format, "datavault360")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection
	db, err := database.Connect(cfg, zlog)
	if err != nil {
		zlog.Fatal("Database unavailable", zap.Error(err))
	}

	reports, err := storage.NewLocalStore(cfg.Storage.ReportDir)
	if err != nil {
		zlog.Fatal("Report storage unavailable", zap.Error(err))
	}

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	accountRepo := repository.NewAccountRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	labRepo := repository.NewLabRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	visitRepo := repository.NewVisitRepo(db)
	labTestRepo := repository.NewLabTestRepo(db)
	invitationRepo := repository.NewInvitationRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	analyticsRepo := repository.NewAnalyticsRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, auditRepo, zlog)
	accountService := service.NewAccountService(userRepo, accountRepo, doctorRepo, patientRepo, labRepo, auditRepo)
	roomService := service.NewRoomService(roomRepo, patientRepo, auditRepo)
	invitationService := service.NewInvitationService(invitationRepo, userRepo, accountRepo, doctorRepo, auditRepo,
		cfg.Invitation.FrontendURL, cfg.Invitation.TTL, zlog)
	visitService := service.NewVisitService(visitRepo, doctorRepo, patientRepo, labRepo, auditRepo)
	labTestService := service.NewLabTestService(labTestRepo, doctorRepo, patientRepo, labRepo, reports, auditRepo, zlog)
	analyticsService := service.NewAnalyticsService(analyticsRepo)
	dischargeWorker := service.NewDischargeWorker(roomRepo, auditRepo, cfg.Worker.DischargeInterval, zlog)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := authService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		zlog.Fatal("Failed to bootstrap admin", zap.Error(err))
	}

	// 6. Start background worker in goroutine
	go dischargeWorker.Start(ctx)

	// 7. Setup Gin
	gin.SetMode(cfg.Server.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORS(cfg))
	r.MaxMultipartMemory = cfg.Server.MaxUploadBytes

	// 8. Register handlers and routes
	handler.RegisterRoutes(r, handler.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Accounts:   handler.NewAccountHandler(accountService),
		Rooms:      handler.NewRoomHandler(roomService),
		Invitation: handler.NewInvitationHandler(invitationService),
		Records:    handler.NewRecordHandler(visitService, labTestService, analyticsService, cfg.Server.MaxUploadBytes),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 9. Setup graceful shutdown
	go func() {
		zlog.Info("Server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("Shutting down server...")

	// Cancel background worker context
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
	}
	zlog.Info("Server exited")
}
