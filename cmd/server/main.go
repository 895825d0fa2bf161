package main

import (
	"context"
	"net/http"

	"vaultbox/internal/auth"
	"vaultbox/internal/config"
	"vaultbox/internal/fieldcrypt"
	"vaultbox/internal/handlers"
	"vaultbox/internal/middleware"
	"vaultbox/internal/repo"
	"vaultbox/internal/service"
	"vaultbox/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	issuer, err := auth.NewTokenIssuer(cfg.SigningSecret, cfg.TokenTTL)
	if err != nil {
		sugar.Fatalw("failed to build token issuer", "error", err)
	}

	cipher, err := fieldcrypt.New(cfg.SigningSecret)
	if err != nil {
		sugar.Fatalw("failed to build field cipher", "error", err)
	}

	store, err := storage.NewS3Storage(ctx, storage.S3Options{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})
	if err != nil {
		sugar.Fatalw("failed to initialize object storage", "error", err)
	}

	svcs := handlers.Services{
		User:         service.NewUserService(repo.NewUserRepository(gormDB), issuer, cfg.PasswordHashCost),
		Card:         service.NewCardService(repo.NewCardRepository(gormDB), cipher, sugar),
		Image:        service.NewImageService(repo.NewImageRepository(gormDB), store, sugar),
		Album:        service.NewAlbumService(repo.NewAlbumRepository(gormDB), store, sugar),
		Folder:       service.NewFolderService(repo.NewFolderRepository(gormDB), store, sugar),
		Document:     service.NewDocumentService(repo.NewDocumentRepository(gormDB), store, cfg.SignedURLTTL, sugar),
		PersonalInfo: service.NewPersonalInfoService(repo.NewPersonalInfoRepository(gormDB), store, cfg.SignedURLTTL, sugar),
	}

	h := handlers.NewHandler(svcs, issuer, sugar, cfg)

	addr := cfg.RunAddress

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"RunAddress", cfg.RunAddress,
		"EnableHTTPS", cfg.EnableHTTPS,
		"S3Bucket", cfg.S3Bucket,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
