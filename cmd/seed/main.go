package main

import (
	"context"
	"flag"
	"net/http"
	"time"

	"go.uber.org/zap"

	"nerd/internal/auth"
	"nerd/internal/cache"
	"nerd/internal/config"
	"nerd/internal/db"
	"nerd/internal/repository"
	"nerd/internal/service"
)

func main() {
	cfg := config.Load()

	source := flag.String("data", cfg.SeedDataPath, "seed document: a JSON file path or an http(s) URL")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if *source == "" {
		logger.Fatal("no seed document given, set SEED_DATA or pass -data")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	gormDB, err := db.Open(cfg.DBDriver, cfg.MySQLDSN, cfg.SQLitePath)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	logger.Info("connected to database", zap.String("driver", cfg.DBDriver))

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("migrate database", zap.Error(err))
	}

	logger.Info("loading seed document", zap.String("source", *source))
	data, err := service.LoadSeedData(ctx, *source, &http.Client{Timeout: 30 * time.Second})
	if err != nil {
		logger.Fatal("load seed document", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	adminRepo := repository.NewAdminRepository(gormDB)
	seeder := service.NewSeedService(
		adminRepo,
		repository.NewMaterialRepository(gormDB),
		auth.NewRoleResolver(cfg.SuperAdminEmail, adminRepo, cacheClient),
		cacheClient,
		logger,
	)
	result, err := seeder.Seed(ctx, *data)
	if err != nil {
		logger.Fatal("seed", zap.Error(err))
	}

	logger.Info("seed completed",
		zap.Int("admins_added", result.AdminsAdded),
		zap.Int("materials_created", result.MaterialsCreated),
		zap.Int("materials_updated", result.MaterialsUpdated),
		zap.Int("skipped", result.Skipped))
}
