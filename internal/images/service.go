package images

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/peregrine-human-data/datagen/internal/entity"
)

// maxConcurrency bounds in-flight generation requests; the image API rate
// limits aggressively above this.
const maxConcurrency = 3

// photoStyle pairs a prompt template with its share of the population. A
// realistic roster has plenty of taskers with no photo at all.
type photoStyle struct {
	name   string
	weight float64
	prompt string
}

var photoStyles = []photoStyle{
	{"no_image", 0.30, ""},
	{"iphone_selfie", 0.20, "Casual iPhone selfie of %s, slightly off-center framing, natural indoor lighting, looking at camera"},
	{"friend_took_this", 0.15, "Candid photo of %s taken by a friend, relaxed smile, shallow depth of field, everyday clothing"},
	{"cozy_indoor", 0.10, "Warm indoor photo of %s at home, soft lamp lighting, bookshelf in background"},
	{"outside_casual", 0.08, "Outdoor photo of %s in casual clothes, daylight, city street or park background"},
	{"professional_headshot", 0.08, "Professional corporate headshot of %s, neutral background, business casual attire, studio lighting"},
	{"cropped_group_photo", 0.05, "Photo of %s cropped from a larger group photo, slightly grainy, social event background"},
	{"with_friends", 0.04, "Photo of %s with one friend partially visible at the edge of the frame, casual setting"},
}

// Job is one tasker's pre-sampled generation work item.
type Job struct {
	Tasker entity.Tasker
	Style  string
	Prompt string
}

// Result aggregates the outcome of a run.
type Result struct {
	Generated int
	Skipped   int
	Failed    int
}

// URLRecorder persists the uploaded image URL for a tasker.
type URLRecorder interface {
	UpdateTaskerProfileImage(ctx context.Context, taskerID int, url string) error
}

// Service generates and stores profile images for taskers.
type Service struct {
	client *FalClient
	store  *S3Store
	repo   URLRecorder
	logger *slog.Logger
}

func NewService(client *FalClient, store *S3Store, repo URLRecorder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, store: store, repo: repo, logger: logger}
}

// PlanJobs samples a photo style for every tasker up front, so style
// assignment is deterministic in seed regardless of request concurrency.
// Taskers drawn as no_image get an empty prompt and are skipped later.
func PlanJobs(seed int64, taskers []entity.Tasker) []Job {
	rng := rand.New(rand.NewSource(seed))
	jobs := make([]Job, 0, len(taskers))
	for _, t := range taskers {
		style := sampleStyle(rng)
		job := Job{Tasker: t, Style: style.name}
		if style.prompt != "" {
			job.Prompt = fmt.Sprintf(style.prompt, describeTasker(t))
		}
		jobs = append(jobs, job)
	}
	return jobs
}

func sampleStyle(rng *rand.Rand) photoStyle {
	roll := rng.Float64()
	acc := 0.0
	for _, s := range photoStyles {
		acc += s.weight
		if roll < acc {
			return s
		}
	}
	return photoStyles[len(photoStyles)-1]
}

func describeTasker(t entity.Tasker) string {
	return fmt.Sprintf("an adult professional named %s", t.FullName())
}

// Run executes the jobs with bounded concurrency. Individual failures are
// logged and counted but never abort the run.
func (s *Service) Run(ctx context.Context, jobs []Job, dryRun bool) Result {
	var mu sync.Mutex
	var result Result

	p := pool.New().WithMaxGoroutines(maxConcurrency)
	for _, job := range jobs {
		job := job
		if job.Prompt == "" {
			result.Skipped++
			continue
		}
		if dryRun {
			s.logger.Info("dry run: would generate image",
				"tasker", job.Tasker.ID, "style", job.Style)
			result.Skipped++
			continue
		}
		p.Go(func() {
			if err := s.generateOne(ctx, job); err != nil {
				s.logger.Error("image generation failed",
					"tasker", job.Tasker.ID, "style", job.Style, "error", err)
				mu.Lock()
				result.Failed++
				mu.Unlock()
				return
			}
			mu.Lock()
			result.Generated++
			mu.Unlock()
		})
	}
	p.Wait()

	s.logger.Info("profile image run complete",
		"generated", result.Generated, "skipped", result.Skipped, "failed", result.Failed)
	return result
}

func (s *Service) generateOne(ctx context.Context, job Job) error {
	data, err := s.client.GenerateImage(ctx, job.Prompt)
	if err != nil {
		return err
	}
	url, err := s.store.Upload(ctx, job.Tasker.ID, data)
	if err != nil {
		return err
	}
	return s.repo.UpdateTaskerProfileImage(ctx, job.Tasker.ID, url)
}
