package scale

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/peregrine-human-data/datagen/internal/config"
	"github.com/peregrine-human-data/datagen/internal/entity"
)

// FeatherTarget is the task count at scale 1.0.
const FeatherTarget = 1_500_000

// FeatherTask is one Feather task row.
type FeatherTask struct {
	ID         string
	ProjectID  string
	Title      string
	Type       string
	AssignedTo string
	Status     string
	CreatedAt  time.Time
}

// FeatherSubmission is one submission against a task.
type FeatherSubmission struct {
	ID               string
	TaskID           string
	SubmittedBy      string
	SubmittedAt      time.Time
	TimeSpentSeconds int
	Status           string
}

// FeatherReview is a quality review of a submission.
type FeatherReview struct {
	ID           string
	SubmissionID string
	ReviewerID   string
	Score        float64
	Rating       string
	Feedback     string
	ReviewedAt   time.Time
}

// FeatherGenerator produces the OpenAI workload: tasks with submissions and
// quality reviews under them.
type FeatherGenerator struct {
	rng    *rand.Rand
	engine *Engine
	logger *slog.Logger
}

func NewFeatherGenerator(seed int64, today time.Time, logger *slog.Logger) *FeatherGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	rng := newRNG(seed + SeedOffsetFeather)
	return &FeatherGenerator{rng: rng, engine: NewEngine(rng, today, logger), logger: logger}
}

func featherTitle(rng *rand.Rand, taskType string) string {
	titles, ok := config.FeatherTaskTitles[taskType]
	if !ok {
		titles = config.FeatherTaskTitles["rlhf_ranking"]
	}
	return choice(rng, titles)
}

// Generate schedules task slots for the customer's projects and rolls each
// one into rows. Rosters must already be restricted to taskers with a
// Feather identity.
func (g *FeatherGenerator) Generate(cust config.Customer, projects []entity.Project, rosters map[int][]RosterMember, scaleFactor float64) ([]FeatherTask, []FeatherSubmission, []FeatherReview) {
	var tasks []FeatherTask
	var submissions []FeatherSubmission
	var reviews []FeatherReview

	target := int(FeatherTarget * scaleFactor)
	g.engine.Run(cust, projects, target, func(projectID int) []RosterMember {
		return rosters[projectID]
	}, func(slot TaskSlot) {
		rng := slot.Rng

		var status string
		switch roll := rng.Float64(); {
		case roll < 0.05:
			status = "pending"
		case roll < 0.13:
			status = "in_progress"
		case roll < 0.65:
			status = "submitted"
		case roll < 0.88:
			status = "approved"
		default:
			status = "rejected"
		}

		task := FeatherTask{
			ID:         "task_f_" + config.HexID(rng, 12),
			ProjectID:  slot.Project.ExternalProjectID,
			Title:      featherTitle(rng, slot.TaskType),
			Type:       slot.TaskType,
			AssignedTo: slot.Worker.ExternalID,
			Status:     status,
			CreatedAt:  slot.CreatedAt,
		}
		tasks = append(tasks, task)

		if status != "submitted" && status != "approved" && status != "rejected" {
			return
		}

		for s := 0; s < submissionCount(rng); s++ {
			submitter := submitterFor(rng, slot, s)

			var subStatus string
			switch roll := rng.Float64(); {
			case roll < 0.10:
				subStatus = "pending_review"
			case roll < 0.75:
				subStatus = "approved"
			case roll < 0.90:
				subStatus = "rejected"
			default:
				subStatus = "revision_requested"
			}

			sub := FeatherSubmission{
				ID:               "sub_f_" + config.HexID(rng, 12),
				TaskID:           task.ID,
				SubmittedBy:      submitter.ExternalID,
				SubmittedAt:      slot.CreatedAt,
				TimeSpentSeconds: int(clampGauss(rng, 1800, 600, 300, 7200)),
				Status:           subStatus,
			}
			submissions = append(submissions, sub)

			for r := 0; r < reviewCount(rng); r++ {
				reviewer := pickReviewer(rng, slot.Roster, submitter.TaskerID)
				score := clampGauss(rng, 0.72, 0.15, 0.0, 1.0)
				score = roundTo(score, 2)

				var rating string
				switch {
				case score >= 0.85:
					rating = "excellent"
				case score >= 0.65:
					rating = "acceptable"
				case score >= 0.4:
					rating = "needs_improvement"
				default:
					rating = "unacceptable"
				}

				reviews = append(reviews, FeatherReview{
					ID:           "rev_f_" + config.HexID(rng, 12),
					SubmissionID: sub.ID,
					ReviewerID:   reviewer.ExternalID,
					Score:        score,
					Rating:       rating,
					Feedback:     reviewNote(rng, score >= 0.7, score >= 0.5),
					ReviewedAt:   slot.CreatedAt,
				})
			}
		}
	})

	g.logger.Info("generated platform rows",
		"platform", "feather",
		"tasks", len(tasks),
		"submissions", len(submissions),
		"reviews", len(reviews))
	return tasks, submissions, reviews
}
