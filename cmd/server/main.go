package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httpadapter "portfolio-builder/internal/adapter/http"
	repo "portfolio-builder/internal/adapter/repository"
	"portfolio-builder/internal/config"
	"portfolio-builder/internal/infrastructure/migration"
	"portfolio-builder/internal/pdf"
	"portfolio-builder/internal/usecase"
	"portfolio-builder/pkg/ai"
	infra "portfolio-builder/pkg/infrastructure"
	"portfolio-builder/pkg/logger"
)

func main() {
	ctx := context.Background()
	log := logger.L()
	defer log.Sync()

	cfg := config.Load()

	// infra setup
	pool, err := infra.NewPortfolioPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Warn("portfolio DB not available", zap.Error(err))
	} else {
		if err := migration.RunMigrations(ctx, pool); err != nil {
			log.Fatal("migrations failed", zap.Error(err))
		}
	}

	aiOpts := []ai.Option{ai.WithDefaultModel(cfg.GenerateModel)}
	if cfg.AIEndpoint != "" {
		aiOpts = append(aiOpts, ai.WithEndpoint(cfg.AIEndpoint))
	}
	gateway := ai.NewClient(cfg.APIKey, aiOpts...)

	extractor := usecase.NewExtractor(gateway, cfg.ParseModel)
	generator := usecase.NewGenerator(gateway, cfg.GenerateModel)
	store := repo.NewPortfolioRepo(pool)
	previewer := infra.NewChromedpPreviewer()

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	h := httpadapter.NewHandler(extractor, generator, store, gateway, pdf.NewPopplerExtractor(), previewer, cfg.UploadDir)
	h.Register(app)

	log.Info("server listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
