package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "nerd/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"nerd/internal/auth"
	"nerd/internal/cache"
	"nerd/internal/config"
	"nerd/internal/db"
	"nerd/internal/events"
	"nerd/internal/handler"
	"nerd/internal/notify"
	"nerd/internal/repository"
	"nerd/internal/router"
	"nerd/internal/service"
	"nerd/internal/storage"
)

// @title NERD API
// @version 1.0
// @description Study material sharing: contribution intake, moderation, publication and catalog search.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.Open(cfg.DBDriver, cfg.MySQLDSN, cfg.SQLitePath)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}
	if cfg.ResetDB {
		logger.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			logger.Fatal("reset database", zap.Error(err))
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("migrate database", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(ctx); err != nil {
		logger.Warn("redis unavailable, running without cache and change feed", zap.Error(err))
	}

	store, err := newObjectStore(ctx, cfg)
	if err != nil {
		logger.Fatal("object store init", zap.Error(err))
	}

	var notifier notify.Notifier = notify.Nop{}
	if cfg.EmailEnabled() {
		notifier = notify.NewEmailJS(notify.EmailJSConfig{
			Endpoint:   cfg.EmailJSEndpoint,
			ServiceID:  cfg.EmailJSServiceID,
			TemplateID: cfg.EmailJSTemplateID,
			PublicKey:  cfg.EmailJSPublicKey,
		}, nil)
	} else {
		logger.Info("EmailJS not configured, contribution alerts disabled")
	}

	broker := events.NewBroker(cacheClient, logger)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	adminRepo := repository.NewAdminRepository(gormDB)
	pendingRepo := repository.NewContributionRepository(gormDB)
	verifiedRepo := repository.NewVerifiedRepository(gormDB)
	materialRepo := repository.NewMaterialRepository(gormDB)
	promotionRepo := repository.NewPromotionRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	roles := auth.NewRoleResolver(cfg.SuperAdminEmail, adminRepo, cacheClient)
	verifier, err := auth.NewGoogleVerifier(ctx, cfg.GoogleClientID, cfg.GoogleCertsURL)
	if err != nil {
		logger.Fatal("google verifier init", zap.Error(err))
	}

	// Initialize services
	authService := service.NewAuthService(verifier, userRepo, roles, jwtService, tokenStore, logger)
	userService := service.NewUserService(userRepo, cacheClient, broker, logger)
	adminService := service.NewAdminService(adminRepo, roles, broker, logger)
	contributionService := service.NewContributionService(pendingRepo, verifiedRepo, materialRepo, store, notifier, broker, logger)
	moderationService := service.NewModerationService(pendingRepo, promotionRepo, store, broker, logger)
	publicationService := service.NewPublicationService(verifiedRepo, promotionRepo, store, cacheClient, broker, logger)
	catalogService := service.NewCatalogService(materialRepo, store, cacheClient, broker, logger)
	seedService := service.NewSeedService(adminRepo, materialRepo, roles, cacheClient, logger)

	maxUpload := int64(cfg.MaxUploadMB) << 20

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, logger, router.Guards{
		JWTSecret: jwtService.Secret(),
		Tokens:    tokenStore,
		Roles:     roles,
		Users:     userService,
	}, router.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Users:         handler.NewUserHandler(userService),
		Contributions: handler.NewContributionHandler(contributionService, maxUpload),
		Moderation:    handler.NewModerationHandler(moderationService),
		Publication:   handler.NewPublicationHandler(publicationService),
		Catalog:       handler.NewCatalogHandler(catalogService, maxUpload),
		Admins:        handler.NewAdminHandler(adminService),
		Events:        handler.NewEventsHandler(broker),
		Seed:          handler.NewSeedHandler(seedService),
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{echo.HeaderAuthorization, echo.HeaderContentType},
		AllowCredentials: true,
	}).Handler(e)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      corsHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("swagger", swaggerURL(cfg)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", zap.Error(err))
	}
}

func newLogger(level string) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewExample()
	}
	return logger
}

func newObjectStore(ctx context.Context, cfg *config.Config) (storage.ObjectStore, error) {
	if cfg.StorageDriver == "memory" {
		return storage.NewMemoryStore("memory://" + cfg.S3Bucket), nil
	}
	return storage.NewS3Store(ctx, storage.Options{
		Region:        cfg.S3Region,
		Endpoint:      cfg.S3Endpoint,
		Bucket:        cfg.S3Bucket,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
}

// swaggerURL is where the docs UI is reachable. SwaggerHost may already
// include a scheme.
func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
