package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/peregrine-human-data/datagen/internal/config"
	"github.com/peregrine-human-data/datagen/internal/entity"
	"github.com/peregrine-human-data/datagen/internal/repository"
	"github.com/peregrine-human-data/datagen/internal/scale"
)

// ErrMissingPHDURL is returned before any work starts when the core
// database URL is absent.
var ErrMissingPHDURL = errors.New("PHD_DATABASE_URL not set")

// ScaleOptions selects which pipeline steps run and at what volume.
type ScaleOptions struct {
	Scale         float64
	SkipPHD       bool
	SkipSRT       bool
	SkipFeather   bool
	SkipFairtable bool
	PHDOnly       bool
	OutDir        string
	Today         time.Time
}

// Metric is one labeled row count for the run summary.
type Metric struct {
	Label string
	Count int
}

// StepResult captures one pipeline step's output for the summary table.
type StepResult struct {
	Name    string
	Metrics []Metric
	Elapsed time.Duration
}

// Total sums the step's record counts.
func (r StepResult) Total() int {
	total := 0
	for _, m := range r.Metrics {
		total += m.Count
	}
	return total
}

// ScaleService drives the five-step pipeline: core database, id mappings,
// then the three platform workloads.
type ScaleService struct {
	env       *config.Env
	customers map[int]config.Customer
	logger    *slog.Logger
	runID     string
}

func NewScaleService(env *config.Env, customers map[int]config.Customer, logger *slog.Logger) *ScaleService {
	if logger == nil {
		logger = slog.Default()
	}
	runID := uuid.NewString()
	return &ScaleService{
		env:       env,
		customers: customers,
		logger:    logger.With("run_id", runID),
		runID:     runID,
	}
}

// RunID identifies this pipeline invocation in logs.
func (s *ScaleService) RunID() string { return s.runID }

// Run executes the pipeline. The PHD connection is mandatory; platform
// connections are only required for steps that actually run.
func (s *ScaleService) Run(ctx context.Context, opts ScaleOptions) ([]StepResult, error) {
	if opts.Scale <= 0 || opts.Scale > 1 {
		return nil, fmt.Errorf("scale factor %.3f out of range (0, 1]", opts.Scale)
	}
	if s.env.PHDURL == "" {
		return nil, ErrMissingPHDURL
	}
	if opts.Today.IsZero() {
		opts.Today = time.Now().UTC()
	}
	s.logger.Info("starting scale run",
		"scale", opts.Scale, "seed", s.env.RandomSeed, "today", opts.Today.Format("2006-01-02"))

	var results []StepResult

	phdPool, err := repository.Open(ctx, repository.DefaultConfig(s.env.PHDURL), s.logger.With("db", "phd"))
	if err != nil {
		return nil, fmt.Errorf("open phd database: %w", err)
	}
	defer repository.Close(phdPool, s.logger)
	if err := repository.HealthCheck(ctx, phdPool, 10*time.Second); err != nil {
		return nil, fmt.Errorf("phd database unreachable: %w", err)
	}

	phdRepo := repository.NewPHDRepository(phdPool, s.env.BatchSize, s.logger)
	taskers, err := phdRepo.FetchTaskers(ctx)
	if err != nil {
		return nil, err
	}
	if len(taskers) == 0 {
		return nil, errors.New("no taskers in core database; seed taskers before scaling")
	}

	var projects []entity.Project
	var assignments []entity.Assignment

	if opts.SkipPHD {
		s.logger.Info("skipping core generation, loading existing rows")
		if projects, err = phdRepo.FetchProjects(ctx); err != nil {
			return nil, err
		}
		if assignments, err = phdRepo.FetchAssignments(ctx); err != nil {
			return nil, err
		}
	} else {
		start := time.Now()
		gen := scale.NewPHDGenerator(s.env.RandomSeed, opts.Scale, s.customers, opts.Today, s.logger)
		contracts := gen.Contracts()
		projects = gen.Projects(contracts)
		assignments = gen.Assignments(projects, taskers)

		if err := phdRepo.Replace(ctx, contracts, projects, assignments); err != nil {
			return nil, fmt.Errorf("replace core data: %w", err)
		}
		results = append(results, StepResult{
			Name: "PHD Database",
			Metrics: []Metric{
				{"contracts", len(contracts)},
				{"projects", len(projects)},
				{"assignments", len(assignments)},
			},
			Elapsed: time.Since(start),
		})
	}

	if opts.PHDOnly {
		s.logger.Info("core-only run, skipping platform generators")
		return results, nil
	}

	start := time.Now()
	srtMappings := scale.SRTMappings(s.env.RandomSeed, projects, assignments)
	featherMappings := scale.FeatherMappings(s.env.RandomSeed, projects, assignments)
	if err := scale.WriteMappingFiles(opts.OutDir, srtMappings, featherMappings); err != nil {
		return nil, err
	}
	results = append(results, StepResult{
		Name: "ID Mappings",
		Metrics: []Metric{
			{"srt", len(srtMappings)},
			{"feather", len(featherMappings)},
		},
		Elapsed: time.Since(start),
	})

	if !opts.SkipSRT {
		res, err := s.runSRT(ctx, opts, projects, assignments, srtMappings)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	if !opts.SkipFeather {
		res, err := s.runFeather(ctx, opts, projects, assignments, featherMappings)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	if !opts.SkipFairtable {
		res, err := s.runFairtable(ctx, opts, projects, assignments, taskers)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	s.logger.Info("scale run complete", "steps", len(results))
	return results, nil
}

func mappingRoster(mappings []scale.IDMapping) func(taskerID int) *scale.RosterMember {
	byTasker := make(map[int]string, len(mappings))
	for _, m := range mappings {
		byTasker[m.TaskerID] = m.ExternalID
	}
	return func(taskerID int) *scale.RosterMember {
		ext, ok := byTasker[taskerID]
		if !ok {
			return nil
		}
		return &scale.RosterMember{TaskerID: taskerID, ExternalID: ext}
	}
}

func (s *ScaleService) runSRT(ctx context.Context, opts ScaleOptions, projects []entity.Project, assignments []entity.Assignment, mappings []scale.IDMapping) (StepResult, error) {
	if s.env.SRTURL == "" {
		return StepResult{}, errors.New("SRT_DATABASE_URL not set (use --skip-srt to omit this step)")
	}
	cust, ok := s.customers[config.CustomerMeta]
	if !ok {
		return StepResult{}, errors.New("no SRT customer configured")
	}

	start := time.Now()
	rosters := scale.BuildRosters(assignments, mappingRoster(mappings))
	gen := scale.NewSRTGenerator(s.env.RandomSeed, opts.Today, s.logger)
	annotations, completions, reviews := gen.Generate(cust, projects, rosters, opts.Scale)

	pool, err := repository.Open(ctx, repository.DefaultConfig(s.env.SRTURL), s.logger.With("db", "srt"))
	if err != nil {
		return StepResult{}, fmt.Errorf("open srt database: %w", err)
	}
	defer repository.Close(pool, s.logger)

	repo := repository.NewSRTRepository(pool, s.env.BatchSize, s.logger)
	if err := repo.Replace(ctx, annotations, completions, reviews); err != nil {
		return StepResult{}, fmt.Errorf("replace srt data: %w", err)
	}
	return StepResult{
		Name: "SRT Tool (Meta)",
		Metrics: []Metric{
			{"annotations", len(annotations)},
			{"completions", len(completions)},
			{"reviews", len(reviews)},
		},
		Elapsed: time.Since(start),
	}, nil
}

func (s *ScaleService) runFeather(ctx context.Context, opts ScaleOptions, projects []entity.Project, assignments []entity.Assignment, mappings []scale.IDMapping) (StepResult, error) {
	if s.env.FeatherURL == "" {
		return StepResult{}, errors.New("FEATHER_DATABASE_URL not set (use --skip-feather to omit this step)")
	}
	cust, ok := s.customers[config.CustomerOpenAI]
	if !ok {
		return StepResult{}, errors.New("no Feather customer configured")
	}

	start := time.Now()
	rosters := scale.BuildRosters(assignments, mappingRoster(mappings))
	gen := scale.NewFeatherGenerator(s.env.RandomSeed, opts.Today, s.logger)
	tasks, submissions, reviews := gen.Generate(cust, projects, rosters, opts.Scale)

	pool, err := repository.Open(ctx, repository.DefaultConfig(s.env.FeatherURL), s.logger.With("db", "feather"))
	if err != nil {
		return StepResult{}, fmt.Errorf("open feather database: %w", err)
	}
	defer repository.Close(pool, s.logger)

	repo := repository.NewFeatherRepository(pool, s.env.BatchSize, s.logger)
	if err := repo.Replace(ctx, tasks, submissions, reviews); err != nil {
		return StepResult{}, fmt.Errorf("replace feather data: %w", err)
	}
	return StepResult{
		Name: "Feather (OpenAI)",
		Metrics: []Metric{
			{"tasks", len(tasks)},
			{"submissions", len(submissions)},
			{"reviews", len(reviews)},
		},
		Elapsed: time.Since(start),
	}, nil
}

func (s *ScaleService) runFairtable(ctx context.Context, opts ScaleOptions, projects []entity.Project, assignments []entity.Assignment, taskers []entity.Tasker) (StepResult, error) {
	if s.env.FairtableURL == "" {
		return StepResult{}, errors.New("FAIRTABLE_DATABASE_URL not set (use --skip-fairtable to omit this step)")
	}

	start := time.Now()
	byID := make(map[int]entity.Tasker, len(taskers))
	for _, t := range taskers {
		byID[t.ID] = t
	}
	rosters := scale.BuildRosters(assignments, func(taskerID int) *scale.RosterMember {
		t, ok := byID[taskerID]
		if !ok {
			return nil
		}
		return &scale.RosterMember{TaskerID: t.ID, Name: t.FullName()}
	})

	gen := scale.NewFairtableGenerator(s.env.RandomSeed, opts.Today, s.logger)
	tasks, submissions, reviews := gen.Generate(s.customers, projects, rosters, opts.Scale)

	pool, err := repository.Open(ctx, repository.DefaultConfig(s.env.FairtableURL), s.logger.With("db", "fairtable"))
	if err != nil {
		return StepResult{}, fmt.Errorf("open fairtable database: %w", err)
	}
	defer repository.Close(pool, s.logger)

	repo := repository.NewFairtableRepository(pool, s.env.BatchSize, s.logger)
	if err := repo.Replace(ctx, tasks, submissions, reviews); err != nil {
		return StepResult{}, fmt.Errorf("replace fairtable data: %w", err)
	}
	return StepResult{
		Name: "Fairtable (Google/xAI/Anthropic)",
		Metrics: []Metric{
			{"tasks", len(tasks)},
			{"submissions", len(submissions)},
			{"reviews", len(reviews)},
		},
		Elapsed: time.Since(start),
	}, nil
}
