package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/peregrine-human-data/datagen/internal/config"
	"github.com/peregrine-human-data/datagen/internal/services"
)

var opts struct {
	scale         float64
	skipPHD       bool
	skipSRT       bool
	skipFeather   bool
	skipFairtable bool
	phdOnly       bool
	outDir        string
	customersFile string
	today         string
}

func main() {
	root := &cobra.Command{
		Use:   "phd-scale",
		Short: "Generate scaled synthetic data across the PHD ecosystem databases",
		Long: `phd-scale regenerates contracts, projects, and assignments in the core
PHD database, derives per-platform tasker identities, and fills the SRT Tool,
Feather, and Fairtable databases with proportional task activity along the
company growth curve.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	root.Flags().Float64Var(&opts.scale, "scale", 1.0, "scale factor in (0, 1]; 1.0 is the full $350M ARR volume")
	root.Flags().BoolVar(&opts.skipPHD, "skip-phd", false, "reuse existing core rows instead of regenerating them")
	root.Flags().BoolVar(&opts.skipSRT, "skip-srt", false, "skip the SRT Tool workload")
	root.Flags().BoolVar(&opts.skipFeather, "skip-feather", false, "skip the Feather workload")
	root.Flags().BoolVar(&opts.skipFairtable, "skip-fairtable", false, "skip the Fairtable workload")
	root.Flags().BoolVar(&opts.phdOnly, "phd-only", false, "stop after the core database step")
	root.Flags().StringVar(&opts.outDir, "out", "out", "directory for id pairing CSVs")
	root.Flags().StringVar(&opts.customersFile, "customers", "", "JSON file overriding the built-in customer table")
	root.Flags().StringVar(&opts.today, "today", "", "generation horizon as YYYY-MM-DD (default: current date)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	if env.PHDURL == "" {
		return services.ErrMissingPHDURL
	}

	customers, err := loadCustomers()
	if err != nil {
		return err
	}

	var today time.Time
	if opts.today != "" {
		if today, err = time.Parse("2006-01-02", opts.today); err != nil {
			return fmt.Errorf("parse --today: %w", err)
		}
	}

	svc := services.NewScaleService(env, customers, logger)
	logger.Info("phd-scale starting", "scale", opts.scale, "out", opts.outDir)

	started := time.Now()
	results, err := svc.Run(cmd.Context(), services.ScaleOptions{
		Scale:         opts.scale,
		SkipPHD:       opts.skipPHD,
		SkipSRT:       opts.skipSRT,
		SkipFeather:   opts.skipFeather,
		SkipFairtable: opts.skipFairtable,
		PHDOnly:       opts.phdOnly,
		OutDir:        opts.outDir,
		Today:         today,
	})
	if len(results) > 0 {
		printSummary(results, time.Since(started))
	}
	return err
}

func loadCustomers() (map[int]config.Customer, error) {
	if opts.customersFile != "" {
		return config.LoadCustomersFile(opts.customersFile)
	}
	return config.LoadCustomers()
}

func printSummary(results []services.StepResult, elapsed time.Duration) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Step", "Records", "Breakdown", "Elapsed"})

	grandTotal := 0
	for _, r := range results {
		breakdown := ""
		for i, m := range r.Metrics {
			if i > 0 {
				breakdown += ", "
			}
			breakdown += fmt.Sprintf("%s=%d", m.Label, m.Count)
		}
		t.AppendRow(table.Row{r.Name, r.Total(), breakdown, r.Elapsed.Round(time.Millisecond)})
		grandTotal += r.Total()
	}
	t.AppendFooter(table.Row{"Total", grandTotal, "", elapsed.Round(time.Millisecond)})
	t.Render()
}
