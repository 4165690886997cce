package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/peregrine-human-data/datagen/internal/config"
	"github.com/peregrine-human-data/datagen/internal/instructions"
	"github.com/peregrine-human-data/datagen/internal/repository"
	"github.com/peregrine-human-data/datagen/internal/services"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func workbookFilename(projectID int, externalName string) string {
	name := unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(externalName), "_")
	return fmt.Sprintf("project_%03d_%s.xlsx", projectID, name)
}

func main() {
	var (
		outDir    = flag.String("out", "project_instructions", "output directory for workbooks")
		projectID = flag.Int("project", 0, "only build the workbook for this project id")
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

	customers, err := config.LoadCustomers()
	if err != nil {
		printError("Error: %v\n", err)
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
	projects, err := repo.FetchProjects(ctx)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		printError("Error: create output directory: %v\n", err)
		os.Exit(1)
	}

	builder := instructions.NewBuilder(customers, logger)
	built := 0
	for _, p := range projects {
		if *projectID != 0 && p.ID != *projectID {
			continue
		}
		data, err := builder.BuildWorkbook(p)
		if err != nil {
			printError("Error: project %d: %v\n", p.ID, err)
			os.Exit(1)
		}
		path := filepath.Join(*outDir, workbookFilename(p.ID, p.ExternalName))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			printError("Error: write %s: %v\n", path, err)
			os.Exit(1)
		}
		built++
	}

	if *projectID != 0 && built == 0 {
		printError("Error: project %d not found\n", *projectID)
		os.Exit(1)
	}
	logger.Info("instruction workbooks written", "count", built, "dir", *outDir)
}
