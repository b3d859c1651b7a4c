// Command seed loads the news classification dataset into the database.
//
// By default it fetches the dataset from Hugging Face and falls back to
// the bundled sample records when the remote fetch fails. Seeding is
// skipped when the table already contains records unless -force is given.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	pgRepo "news-classify/internal/infra/adapter/persistence/postgres"
	"news-classify/internal/infra/db"
	"news-classify/internal/infra/fetcher"
	searchUC "news-classify/internal/usecase/search"
	"news-classify/internal/usecase/seed"
)

func main() {
	force := flag.Bool("force", false, "delete existing records and reseed")
	sampleOnly := flag.Bool("sample-only", false, "skip the remote dataset and seed the bundled sample records")
	flag.Parse()

	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	database := db.Open()
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	newsRepo := pgRepo.NewNewsRepo(database)
	indexRepo := pgRepo.NewIndexRepo(database)
	indexer := searchUC.NewIndexer(newsRepo, indexRepo, logger)

	datasetCfg, err := fetcher.LoadDatasetConfigFromEnv()
	if err != nil {
		logger.Error("invalid dataset configuration", slog.Any("error", err))
		os.Exit(1)
	}
	remote := fetcher.NewHuggingFaceFetcher(datasetCfg, logger)
	sample := fetcher.NewSampleFetcher()

	svc := seed.NewService(newsRepo, remote, sample, indexer, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := svc.Run(ctx, seed.Options{Force: *force, SampleOnly: *sampleOnly}); err != nil {
		logger.Error("seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("seeding complete")
}
