package scale

import (
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/peregrine-human-data/datagen/internal/config"
	"github.com/peregrine-human-data/datagen/internal/entity"
)

// FairtableTargets are per-customer task counts at scale 1.0. Fairtable
// hosts three customers in separate bases, so each gets its own volume.
var FairtableTargets = map[int]int{
	config.CustomerGoogle:    900_000,
	config.CustomerXAI:       450_000,
	config.CustomerAnthropic: 450_000,
}

// FairtableTask is one Fairtable task record.
type FairtableTask struct {
	RecordID   string
	BaseID     string
	TaskName   string
	TaskType   string
	AssignedTo int
	Status     string
	CreatedAt  time.Time
	DueDate    *time.Time
}

// FairtableSubmission is one submission record against a task.
type FairtableSubmission struct {
	RecordID     string
	BaseID       string
	TaskRecordID string
	SubmittedBy  int
	SubmittedAt  time.Time
	HoursLogged  float64
	Status       string
}

// FairtableReview is a review record. Fairtable stores the reviewer by
// display name, not by id.
type FairtableReview struct {
	RecordID           string
	BaseID             string
	SubmissionRecordID string
	ReviewedBy         string
	Score              float64
	Status             string
	Comments           string
	ReviewedAt         time.Time
}

// FairtableGenerator produces the Google, xAI, and Anthropic workloads. All
// three customers share one RNG stream, processed in customer-id order.
type FairtableGenerator struct {
	rng    *rand.Rand
	engine *Engine
	logger *slog.Logger
}

func NewFairtableGenerator(seed int64, today time.Time, logger *slog.Logger) *FairtableGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	rng := newRNG(seed + SeedOffsetFairtable)
	return &FairtableGenerator{rng: rng, engine: NewEngine(rng, today, logger), logger: logger}
}

func fairtableTitle(rng *rand.Rand, taskType string) string {
	titles, ok := config.FairtableTaskTitles[taskType]
	if !ok {
		titles = config.FairtableTaskTitles["domain_qa"]
	}
	return choice(rng, titles)
}

// Generate runs the scheduler once per Fairtable customer. Rosters carry raw
// tasker ids and display names; no external mapping exists for Fairtable.
func (g *FairtableGenerator) Generate(customers map[int]config.Customer, projects []entity.Project, rosters map[int][]RosterMember, scaleFactor float64) ([]FairtableTask, []FairtableSubmission, []FairtableReview) {
	var tasks []FairtableTask
	var submissions []FairtableSubmission
	var reviews []FairtableReview

	customerIDs := make([]int, 0, len(FairtableTargets))
	for id := range FairtableTargets {
		customerIDs = append(customerIDs, id)
	}
	sort.Ints(customerIDs)

	for _, customerID := range customerIDs {
		cust, ok := customers[customerID]
		if !ok {
			continue
		}
		baseID := cust.BaseID
		target := int(float64(FairtableTargets[customerID]) * scaleFactor)

		g.engine.Run(cust, projects, target, func(projectID int) []RosterMember {
			return rosters[projectID]
		}, func(slot TaskSlot) {
			rng := slot.Rng

			var status string
			switch roll := rng.Float64(); {
			case roll < 0.05:
				status = "todo"
			case roll < 0.13:
				status = "in_progress"
			case roll < 0.78:
				status = "done"
			default:
				status = "reviewed"
			}

			var dueDate *time.Time
			if rng.Float64() < 0.5 {
				d := capDay(slot.CreatedAt, randInt(rng, 3, 21))
				d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
				dueDate = &d
			}

			task := FairtableTask{
				RecordID:   "rec_" + config.HexID(rng, 12),
				BaseID:     baseID,
				TaskName:   fairtableTitle(rng, slot.TaskType),
				TaskType:   slot.TaskType,
				AssignedTo: slot.Worker.TaskerID,
				Status:     status,
				CreatedAt:  slot.CreatedAt,
				DueDate:    dueDate,
			}
			tasks = append(tasks, task)

			if status != "done" && status != "reviewed" {
				return
			}

			for s := 0; s < submissionCount(rng); s++ {
				submitter := submitterFor(rng, slot, s)

				var subStatus string
				switch roll := rng.Float64(); {
				case roll < 0.10:
					subStatus = "pending"
				case roll < 0.82:
					subStatus = "approved"
				default:
					subStatus = "rejected"
				}

				sub := FairtableSubmission{
					RecordID:     "rec_" + config.HexID(rng, 12),
					BaseID:       baseID,
					TaskRecordID: task.RecordID,
					SubmittedBy:  submitter.TaskerID,
					SubmittedAt:  slot.CreatedAt,
					HoursLogged:  roundTo(clampGauss(rng, 1.5, 0.6, 0.25, 6.0), 2),
					Status:       subStatus,
				}
				submissions = append(submissions, sub)

				for r := 0; r < reviewCount(rng); r++ {
					reviewer := pickReviewer(rng, slot.Roster, submitter.TaskerID)
					score := roundTo(clampGauss(rng, 75.0, 12.0, 0.0, 100.0), 1)

					var revStatus string
					switch {
					case score >= 70:
						revStatus = "pass"
					case score >= 50:
						revStatus = "conditional_pass"
					default:
						revStatus = "fail"
					}

					reviews = append(reviews, FairtableReview{
						RecordID:           "rec_" + config.HexID(rng, 12),
						BaseID:             baseID,
						SubmissionRecordID: sub.RecordID,
						ReviewedBy:         reviewer.Name,
						Score:              score,
						Status:             revStatus,
						Comments:           reviewNote(rng, score >= 70, score >= 50),
						ReviewedAt:         slot.CreatedAt,
					})
				}
			}
		})
	}

	g.logger.Info("generated platform rows",
		"platform", "fairtable",
		"tasks", len(tasks),
		"submissions", len(submissions),
		"reviews", len(reviews))
	return tasks, submissions, reviews
}
