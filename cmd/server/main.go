package main

import (
	"net/http"
	"os"

	_ "github.com/david-jerry/iwitness/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/david-jerry/iwitness/internal/auth"
	"github.com/david-jerry/iwitness/internal/cache"
	"github.com/david-jerry/iwitness/internal/config"
	"github.com/david-jerry/iwitness/internal/db"
	"github.com/david-jerry/iwitness/internal/handler"
	"github.com/david-jerry/iwitness/internal/logger"
	"github.com/david-jerry/iwitness/internal/mailer"
	"github.com/david-jerry/iwitness/internal/model"
	"github.com/david-jerry/iwitness/internal/paystack"
	"github.com/david-jerry/iwitness/internal/repository"
	"github.com/david-jerry/iwitness/internal/router"
	"github.com/david-jerry/iwitness/internal/service"
)

// @title iWitness API
// @version 1.0
// @description Reporting platform backend with user accounts, follows, bank account verification and earnings.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Environment == "development",
	})

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.UserEarning{},
			&model.UserBankAccount{},
			&model.Bank{},
			&model.UserLocation{},
			&model.UserPrivacyConsent{},
			&model.Profile{},
			&model.UserFollow{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Warn().Err(err).Msg("drop table failed (may not exist)")
			}
		}
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.UserFollow{},
		&model.Profile{},
		&model.UserPrivacyConsent{},
		&model.UserLocation{},
		&model.Bank{},
		&model.UserBankAccount{},
		&model.UserEarning{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	followRepo := repository.NewUserFollowRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	consentRepo := repository.NewPrivacyConsentRepository(gormDB)
	locationRepo := repository.NewUserLocationRepository(gormDB)
	bankRepo := repository.NewBankRepository(gormDB)
	bankAccountRepo := repository.NewBankAccountRepository(gormDB)
	earningRepo := repository.NewEarningRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// External services
	paystackClient := paystack.NewClient(cfg.PaystackBaseURL, cfg.PaystackSecretKey, cfg.PaystackTimeout)
	mail := mailer.NewLogMailer(log)

	// Initialize services
	provisioner := service.NewProvisioner(userRepo, profileRepo, consentRepo, locationRepo, bankAccountRepo, earningRepo, log)
	authService := service.NewAuthService(userRepo, provisioner, jwtService, tokenStore, mail, cfg.PublicBaseURL, log)
	userService := service.NewUserService(userRepo, profileRepo, consentRepo, locationRepo, followRepo, cacheClient)
	verifier := service.NewBankVerifier(paystackClient)
	bankService := service.NewBankService(bankRepo, paystackClient, cacheClient)
	bankAccountService := service.NewBankAccountService(bankAccountRepo, bankRepo, verifier)
	earningService := service.NewEarningService(earningRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	bankHandler := handler.NewBankHandler(bankService)
	bankAccountHandler := handler.NewBankAccountHandler(bankAccountService)
	earningHandler := handler.NewEarningHandler(earningService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		userHandler,
		bankHandler,
		bankAccountHandler,
		earningHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
