package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/peregrine-human-data/datagen/internal/taskergen"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		startID = flag.Int("start-id", 21, "first tasker id to generate")
		count   = flag.Int("count", 1108, "number of taskers to generate")
		seed    = flag.Int64("seed", 42, "random seed")
		batch   = flag.Int("batch", 100, "rows per INSERT statement")
		out     = flag.String("out", "", "output SQL file path (required)")
	)
	flag.Parse()

	if *out == "" {
		printError("Error: --out is required\n")
		os.Exit(1)
	}
	if *count <= 0 {
		printError("Error: --count must be positive\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	gen := taskergen.NewGenerator(*seed)
	taskers := gen.Generate(*startID, *count)
	logger.Info("generated tasker profiles", "count", len(taskers),
		"first_id", *startID, "last_id", *startID+*count-1)

	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			printError("Error: create output directory: %v\n", err)
			os.Exit(1)
		}
	}
	f, err := os.Create(*out)
	if err != nil {
		printError("Error: create output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := taskergen.WriteMigration(f, taskers, *batch); err != nil {
		printError("Error: write migration: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		printError("Error: close output file: %v\n", err)
		os.Exit(1)
	}
	logger.Info("wrote tasker migration", "path", *out)
}
