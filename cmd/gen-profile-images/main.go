package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/peregrine-human-data/datagen/internal/config"
	"github.com/peregrine-human-data/datagen/internal/images"
	"github.com/peregrine-human-data/datagen/internal/repository"
	"github.com/peregrine-human-data/datagen/internal/services"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dryRun = flag.Bool("dry-run", false, "plan styles and prompts without calling the image API")
		limit  = flag.Int("limit", 0, "only process the first N taskers (0 = all)")
		seed   = flag.Int64("seed", 42, "random seed for style assignment")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	env, err := config.LoadEnv()
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	if env.PHDURL == "" {
		printError("Error: %v\n", services.ErrMissingPHDURL)
		os.Exit(1)
	}
	if !*dryRun && env.FalKey == "" {
		printError("Error: FAL_KEY not set\n")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := repository.Open(ctx, repository.DefaultConfig(env.PHDURL), logger)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	defer repository.Close(pool, logger)

	repo := repository.NewPHDRepository(pool, env.BatchSize, logger)
	taskers, err := repo.FetchTaskers(ctx)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	if *limit > 0 && *limit < len(taskers) {
		taskers = taskers[:*limit]
	}

	jobs := images.PlanJobs(*seed, taskers)
	logger.Info("planned image jobs", "taskers", len(taskers), "jobs", len(jobs))

	var store *images.S3Store
	if !*dryRun {
		store, err = images.NewS3Store(ctx, env.S3Bucket, env.S3Prefix, env.S3Region)
		if err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
	}

	client := images.NewFalClient(env.FalBaseURL, env.FalKey, logger)
	svc := images.NewService(client, store, repo, logger)
	result := svc.Run(ctx, jobs, *dryRun)

	logger.Info("done",
		"generated", result.Generated, "skipped", result.Skipped, "failed", result.Failed)
	if result.Failed > 0 {
		os.Exit(1)
	}
}
