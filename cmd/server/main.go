package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"btc-yield.backend/internal/config"
	"btc-yield.backend/internal/infrastructure/blockchain"
	"btc-yield.backend/internal/infrastructure/identity"
	"btc-yield.backend/internal/infrastructure/repositories"
	"btc-yield.backend/internal/infrastructure/swap"
	"btc-yield.backend/internal/interfaces/http/handlers"
	"btc-yield.backend/internal/interfaces/http/middleware"
	"btc-yield.backend/internal/usecases"
	"btc-yield.backend/pkg/crypto"
	"btc-yield.backend/pkg/jwt"
	"btc-yield.backend/pkg/logger"
	"btc-yield.backend/pkg/redis"
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
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized",
		zap.String("env", cfg.Server.Env),
		zap.String("mode", string(cfg.Server.Mode)),
	)

	// Initialize Redis. The session cache degrades to DB-only lookups when
	// Redis is unreachable, so a failure here is not fatal.
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Warn(context.Background(), "Redis unavailable, session cache disabled", zap.Error(err))
	} else {
		logger.Info(context.Background(), "Redis initialized")
	}

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

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	keyRepo := repositories.NewSigningKeyRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	onrampRepo := repositories.NewOnrampSessionRepository(db)
	yieldRepo := repositories.NewYieldPositionRepository(db)
	txRepo := repositories.NewTransactionRepository(db)

	// Identity verification. Development accepts locally minted assertions
	// and the "dev" shortcut; production verifies the provider's signature.
	var verifier identity.Verifier
	if cfg.Server.Mode == config.ModeDevelopment {
		assertions := jwt.NewAssertionService(cfg.Identity.DevSecret, 24*time.Hour)
		verifier = identity.NewDevVerifier(assertions)
	} else {
		verifier, err = identity.NewProviderVerifier(cfg.Identity.AppID, cfg.Identity.VerificationKey)
		if err != nil {
			return fmt.Errorf("failed to initialize identity verifier: %w", err)
		}
	}

	// Chain SDK. Without paymaster credentials there is nothing to deploy
	// against, so production refuses onboarding instead of pretending.
	var sdk blockchain.SDK
	if cfg.Server.Mode == config.ModeDevelopment {
		sdk = blockchain.NewMockSDK()
	} else {
		sdk = blockchain.NewUnavailableSDK()
	}

	var reader blockchain.ChainReader
	rpcReader, err := blockchain.NewRPCStatusReader(cfg.Starknet.RPCURL)
	if err != nil {
		logger.Warn(context.Background(), "Chain RPC unavailable, status lookups limited to local records", zap.Error(err))
	} else {
		defer rpcReader.Close()
		reader = rpcReader
	}

	sealer, err := crypto.NewSealer(cfg.Security.KeyVaultSecret)
	if err != nil {
		return fmt.Errorf("failed to initialize key sealer: %w", err)
	}
	sessionCache := redis.NewSessionCache(30 * time.Minute)
	quotes := swap.NewAvnuClient(cfg.Starknet.SwapBaseURL, cfg.Starknet.IntegratorFeeBps, cfg.Starknet.TreasuryAddress)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, sessionRepo, verifier, sessionCache)
	keyVaultUsecase := usecases.NewKeyVaultUsecase(keyRepo, sealer)
	walletUsecase := usecases.NewWalletUsecase(walletRepo, keyVaultUsecase, sdk)
	txUsecase := usecases.NewTransactionUsecase(txRepo, reader, cfg.Server.Mode)
	yieldUsecase := usecases.NewYieldUsecase(walletUsecase, txUsecase, quotes, onrampRepo, yieldRepo, cfg.Starknet, cfg.Server.Mode)
	portfolioUsecase := usecases.NewPortfolioUsecase(walletRepo, yieldRepo, walletUsecase, cfg.Starknet)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	walletHandler := handlers.NewWalletHandler(walletUsecase)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioUsecase)
	onrampHandler := handlers.NewOnrampHandler(yieldUsecase)
	yieldHandler := handlers.NewYieldHandler(yieldUsecase)
	txHandler := handlers.NewTxHandler(txUsecase)

	sessionMiddleware := middleware.SessionMiddleware(func(c *gin.Context, sessionID string) (string, error) {
		return authUsecase.ResolveSession(c.Request.Context(), sessionID)
	})

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		authHandler:       authHandler,
		walletHandler:     walletHandler,
		portfolioHandler:  portfolioHandler,
		onrampHandler:     onrampHandler,
		yieldHandler:      yieldHandler,
		txHandler:         txHandler,
		sessionMiddleware: sessionMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
	}()

	// Start server
	log.Printf("🚀 BTC Yield Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
