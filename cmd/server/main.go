package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"golden-seed.backend/internal/config"
	"golden-seed.backend/internal/infrastructure/models"
	"golden-seed.backend/internal/infrastructure/repositories"
	"golden-seed.backend/internal/interfaces/http/handlers"
	"golden-seed.backend/internal/interfaces/http/middleware"
	"golden-seed.backend/internal/usecases"
	"golden-seed.backend/pkg/entropy"
	"golden-seed.backend/pkg/jwt"
	"golden-seed.backend/pkg/logger"
	"golden-seed.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized",
		zap.String("env", cfg.Server.Env),
		zap.String("mode", string(cfg.Server.Mode)))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// The generator is always the deterministic stream; what varies per mode
	// is whether a store and credentials back the admission chain.
	generateFactory := entropy.Factory(entropy.NewSource)

	var (
		authUsecase     *usecases.AuthUsecase
		generateUsecase *usecases.GenerateUsecase
		usageUsecase    *usecases.UsageUsecase
		adminHandler    *handlers.AdminHandler
		adminAuth       gin.HandlerFunc
		storePing       func(ctx context.Context) bool
	)

	if cfg.Server.Mode == config.ModeDemo {
		log.Println("⚠️ Running in demo mode: no database, demo key only")
		authUsecase = usecases.NewAuthUsecase(config.ModeDemo, cfg.Demo.APIKey, nil, nil)
		generateUsecase = usecases.NewGenerateUsecase(generateFactory, nil, cfg.Server.BaseURL)
	} else {
		db, err := openDB(cfg.Database.URL())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		sqlDB, err := getStdDB(db)
		if err != nil {
			return fmt.Errorf("failed to get generic database object: %w", err)
		}
		defer sqlDB.Close()

		if err := sqlDB.Ping(); err != nil {
			log.Printf("⚠️ Database not available: %v (admission will fail open)", err)
		} else {
			log.Println("✅ Connected to PostgreSQL via GORM")
		}

		if err := db.AutoMigrate(
			&models.User{},
			&models.Subscription{},
			&models.ApiKey{},
			&models.UsageLog{},
			&models.GenerationRecord{},
		); err != nil {
			log.Printf("⚠️ Auto-migration failed: %v", err)
		}

		storePing = func(ctx context.Context) bool {
			return sqlDB.PingContext(ctx) == nil
		}

		// Redis is an optional fast path for the rate window.
		var rateWindow usecases.RateWindow
		if cfg.Redis.URL != "" {
			if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
				log.Printf("⚠️ Redis not available: %v (falling back to store counts)", err)
			} else {
				rateWindow = redis.NewRateCounter()
				log.Println("✅ Redis rate window enabled")
			}
		}

		credentialRepo := repositories.NewCredentialRepository(db)
		usageRepo := repositories.NewUsageRepository(db)
		provisioningRepo := repositories.NewProvisioningRepository(db)
		recordRepo := repositories.NewGenerationRecordRepository(db)

		credentialUsecase := usecases.NewCredentialUsecase(credentialRepo)
		usageUsecase = usecases.NewUsageUsecase(usageRepo, rateWindow)
		authUsecase = usecases.NewAuthUsecase(config.ModeProduction, cfg.Demo.APIKey, credentialUsecase, usageUsecase)
		generateUsecase = usecases.NewGenerateUsecase(generateFactory, recordRepo, cfg.Server.BaseURL)
		provisionUsecase := usecases.NewProvisionUsecase(provisioningRepo)

		if cfg.Admin.PasswordHash != "" {
			jwtService := jwt.NewService(cfg.Admin.JWTSecret, cfg.Admin.TokenExpiry)
			adminHandler = handlers.NewAdminHandler(provisionUsecase, usageUsecase, jwtService, cfg.Admin.Email, cfg.Admin.PasswordHash)
			adminAuth = middleware.AdminAuthMiddleware(jwtService)
		} else {
			log.Println("⚠️ ADMIN_PASSWORD_HASH not set, admin endpoints disabled")
		}
	}

	generateHandler := handlers.NewGenerateHandler(generateUsecase, authUsecase, usageUsecase)
	verifyHandler := handlers.NewVerifyHandler(generateUsecase)
	statsHandler := handlers.NewStatsHandler(generateUsecase)
	healthHandler := handlers.NewHealthHandler(generateUsecase, storePing, cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware())

	deps := routeDeps{
		generateHandler: generateHandler,
		verifyHandler:   verifyHandler,
		statsHandler:    statsHandler,
		healthHandler:   healthHandler,
		adminHandler:    adminHandler,
		apiKeyAuth:      middleware.APIKeyAuthMiddleware(authUsecase),
		adminAuth:       adminAuth,
	}
	registerRootRoutes(r, deps)
	registerAPIV1Routes(r, deps)

	log.Printf("🚀 GoldenSeed API starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/api/v1/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
