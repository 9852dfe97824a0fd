package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kyc-chain.backend/internal/config"
	"kyc-chain.backend/internal/infrastructure/jobs"
	"kyc-chain.backend/internal/infrastructure/models"
	"kyc-chain.backend/internal/infrastructure/repositories"
	"kyc-chain.backend/internal/interfaces/http/handlers"
	"kyc-chain.backend/internal/interfaces/http/middleware"
	"kyc-chain.backend/internal/usecases"
	"kyc-chain.backend/pkg/jwt"
	"kyc-chain.backend/pkg/logger"
	"kyc-chain.backend/pkg/metrics"
	"kyc-chain.backend/pkg/redis"
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
			PrepareStmt:    false,
			TranslateError: true,
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
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	if err := db.AutoMigrate(
		&models.Owner{},
		&models.Admin{},
		&models.Bank{},
		&models.Customer{},
		&models.Record{},
		&models.AccessRequest{},
		&models.Grant{},
		&models.HistoryEntry{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Initialize metrics
	m := metrics.New()

	// Initialize repositories
	roleRepo := repositories.NewRoleRepository(db)
	bankRepo := repositories.NewBankRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	recordRepo := repositories.NewRecordRepository(db)
	requestRepo := repositories.NewAccessRequestRepository(db)
	grantRepo := repositories.NewGrantRepository(db)
	historyRepo := repositories.NewHistoryRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize usecases
	guard := usecases.NewAccessControl(roleRepo, bankRepo, grantRepo)
	locks := usecases.NewKeyedMutex()
	nonces := redis.NewNonceStore(cfg.JWT.NonceTTL)

	authUsecase := usecases.NewAuthUsecase(nonces, jwtService, guard)
	roleUsecase := usecases.NewRoleUsecase(roleRepo, guard, m)
	bankUsecase := usecases.NewBankUsecase(bankRepo, requestRepo, grantRepo, guard, m)
	customerUsecase := usecases.NewCustomerUsecase(customerRepo, recordRepo, guard, uow, locks, m)
	accessUsecase := usecases.NewAccessUsecase(customerRepo, bankRepo, requestRepo, grantRepo, guard, uow, locks, m)
	statusUsecase := usecases.NewStatusUsecase(customerRepo, historyRepo, guard, uow, locks, m)

	// Seed the owner on first start
	if cfg.Registry.OwnerAddress != "" {
		if err := roleUsecase.Bootstrap(context.Background(), cfg.Registry.OwnerAddress); err != nil {
			return fmt.Errorf("failed to bootstrap owner: %w", err)
		}
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	adminHandler := handlers.NewAdminHandler(roleUsecase)
	bankHandler := handlers.NewBankHandler(bankUsecase)
	customerHandler := handlers.NewCustomerHandler(customerUsecase)
	accessHandler := handlers.NewAccessHandler(accessUsecase)
	statusHandler := handlers.NewStatusHandler(statusUsecase)

	// Auth middleware: wallet JWT or service API key
	var serviceKey *middleware.ServiceKey
	if cfg.Registry.ServiceKeyHash != "" {
		serviceKey = &middleware.ServiceKey{
			KeyHash: cfg.Registry.ServiceKeyHash,
			Address: cfg.Registry.ServiceAddress,
		}
	}
	authMiddleware := middleware.AuthMiddleware(jwtService, serviceKey)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	integrityJob := jobs.NewHistoryIntegrityJob(statusUsecase, m, cfg.Integrity.Interval)
	go integrityJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware(m))

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:     authHandler,
		adminHandler:    adminHandler,
		bankHandler:     bankHandler,
		customerHandler: customerHandler,
		accessHandler:   accessHandler,
		statusHandler:   statusHandler,
		authMiddleware:  authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		integrityJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 KYC-Chain Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
