package main

import (
	"context"
	"log"
	"net/http"

	_ "csatapi/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"csatapi/internal/auth"
	"csatapi/internal/cache"
	"csatapi/internal/config"
	"csatapi/internal/db"
	"csatapi/internal/handler"
	"csatapi/internal/model"
	"csatapi/internal/repository"
	"csatapi/internal/router"
	"csatapi/internal/service"
	"csatapi/internal/storage"
)

// @title CSAT Feedback API
// @version 1.0
// @description Customer-satisfaction feedback collector with admin reporting and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.Feedback{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	feedbackRepo := repository.NewFeedbackRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	guard := auth.NewAccessGuard(jwtService, cfg.AdminUsername)

	// Screenshot storage: S3 with local-disk fallback when a bucket is
	// configured, local disk only otherwise.
	blobStore := newBlobStore(cfg)

	// Initialize services
	authService := service.NewAuthService(jwtService, cfg.AdminUsername, cfg.AdminPassword, cfg.TokenTTL)
	feedbackService := service.NewFeedbackService(feedbackRepo, blobStore)
	reportService := service.NewReportService(feedbackRepo, cacheClient, cfg.ReportCacheTTL)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	reportHandler := handler.NewReportHandler(reportService)

	// Register routes
	router.Register(e, cfg, guard, authHandler, feedbackHandler, reportHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

func newBlobStore(cfg *config.Config) storage.BlobStore {
	local := storage.NewLocalStore(cfg.UploadDir, cfg.UploadPath)
	if cfg.S3Bucket == "" {
		return local
	}

	s3Store, err := storage.NewS3Store(context.Background(), cfg.S3Bucket, cfg.S3Region, cfg.AWSAccessKey, cfg.AWSSecretKey)
	if err != nil {
		log.Printf("s3 init failed, using local uploads only: %v", err)
		return local
	}
	return storage.NewFallbackStore(s3Store, local)
}
