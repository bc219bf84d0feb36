package main

import (
	"context"
	"flag"

	"github.com/david-jerry/iwitness/internal/cache"
	"github.com/david-jerry/iwitness/internal/config"
	"github.com/david-jerry/iwitness/internal/db"
	"github.com/david-jerry/iwitness/internal/logger"
	"github.com/david-jerry/iwitness/internal/model"
	"github.com/david-jerry/iwitness/internal/paystack"
	"github.com/david-jerry/iwitness/internal/repository"
	"github.com/david-jerry/iwitness/internal/service"
)

func main() {
	country := flag.String("country", "NG", "ISO country code whose bank list is synced")
	flag.Parse()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	log.Info().Str("country", *country).Msg("starting bank reference sync")

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	// Ensure the bank table exists before the upsert pass.
	if err := gormDB.AutoMigrate(&model.Bank{}); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	paystackClient := paystack.NewClient(cfg.PaystackBaseURL, cfg.PaystackSecretKey, cfg.PaystackTimeout)
	bankRepo := repository.NewBankRepository(gormDB)
	bankService := service.NewBankService(bankRepo, paystackClient, cacheClient)

	created, updated, err := bankService.SyncBanks(context.Background(), *country)
	if err != nil {
		log.Fatal().Err(err).Msg("bank sync failed")
	}

	log.Info().
		Int("created", created).
		Int("updated", updated).
		Msg("bank reference sync completed")
}
