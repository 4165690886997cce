package scale

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/peregrine-human-data/datagen/internal/config"
	"github.com/peregrine-human-data/datagen/internal/entity"
)

// SRTTarget is the annotation count at scale 1.0.
const SRTTarget = 2_000_000

// Annotation is one SRT Tool annotation row.
type Annotation struct {
	ID          string
	ProjectID   string
	AnnotatorID string
	Type        string
	Status      string
	CreatedAt   time.Time
	Deadline    *time.Time
}

// Completion is one unit of annotation work by an annotator.
type Completion struct {
	ID              string
	AnnotationID    string
	AnnotatorID     string
	CompletedAt     time.Time
	DurationMinutes float64
	Status          string
	ReworkCount     int
}

// SRTReview is a quality review of a completion.
type SRTReview struct {
	ID           string
	CompletionID string
	ReviewerID   string
	QualityScore int
	QualityTier  string
	Notes        string
	ReviewedAt   time.Time
}

// SRTGenerator produces the Meta workload: annotations with completions and
// reviews under them.
type SRTGenerator struct {
	rng    *rand.Rand
	engine *Engine
	logger *slog.Logger
}

func NewSRTGenerator(seed int64, today time.Time, logger *slog.Logger) *SRTGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	rng := newRNG(seed + SeedOffsetSRT)
	return &SRTGenerator{rng: rng, engine: NewEngine(rng, today, logger), logger: logger}
}

// Generate schedules annotation slots for the customer's projects and rolls
// each one into rows. Rosters must already be restricted to taskers with an
// SRT identity.
func (g *SRTGenerator) Generate(cust config.Customer, projects []entity.Project, rosters map[int][]RosterMember, scaleFactor float64) ([]Annotation, []Completion, []SRTReview) {
	var annotations []Annotation
	var completions []Completion
	var reviews []SRTReview

	target := int(SRTTarget * scaleFactor)
	g.engine.Run(cust, projects, target, func(projectID int) []RosterMember {
		return rosters[projectID]
	}, func(slot TaskSlot) {
		rng := slot.Rng

		var status string
		switch roll := rng.Float64(); {
		case roll < 0.05:
			status = "assigned"
		case roll < 0.13:
			status = "in_progress"
		case roll < 0.78:
			status = "completed"
		case roll < 0.93:
			status = "under_review"
		default:
			status = "rejected"
		}

		var deadline *time.Time
		if rng.Float64() < 0.6 {
			d := capDay(slot.CreatedAt, randInt(rng, 2, 14))
			deadline = &d
		}

		ann := Annotation{
			ID:          "ann_srt_" + config.HexID(rng, 12),
			ProjectID:   slot.Project.ExternalProjectID,
			AnnotatorID: slot.Worker.ExternalID,
			Type:        slot.TaskType,
			Status:      status,
			CreatedAt:   slot.CreatedAt,
			Deadline:    deadline,
		}
		annotations = append(annotations, ann)

		if status != "completed" && status != "under_review" && status != "rejected" {
			return
		}

		for c := 0; c < submissionCount(rng); c++ {
			annotator := submitterFor(rng, slot, c)

			var compStatus string
			switch roll := rng.Float64(); {
			case roll < 0.10:
				compStatus = "submitted"
			case roll < 0.80:
				compStatus = "accepted"
			case roll < 0.92:
				compStatus = "rejected"
			default:
				compStatus = "needs_rework"
			}

			rework := 0
			if compStatus == "needs_rework" {
				rework = weightedChoice(rng, []int{70, 25, 5}) + 1
			} else if rng.Float64() < 0.15 {
				rework = 1
			}

			comp := Completion{
				ID:              "comp_srt_" + config.HexID(rng, 12),
				AnnotationID:    ann.ID,
				AnnotatorID:     annotator.ExternalID,
				CompletedAt:     slot.CreatedAt,
				DurationMinutes: roundTo(clampGauss(rng, 20.0, 8.0, 5.0, 60.0), 1),
				Status:          compStatus,
				ReworkCount:     rework,
			}
			completions = append(completions, comp)

			for r := 0; r < reviewCount(rng); r++ {
				reviewer := pickReviewer(rng, slot.Roster, annotator.TaskerID)
				score := clampRound(rng.NormFloat64()*0.8+3.8, 1, 5)

				var tier string
				switch score {
				case 5:
					tier = "exceptional"
				case 4:
					tier = "meets_expectations"
				case 3:
					tier = "below_expectations"
				default:
					tier = "unacceptable"
				}

				reviews = append(reviews, SRTReview{
					ID:           "rev_srt_" + config.HexID(rng, 12),
					CompletionID: comp.ID,
					ReviewerID:   reviewer.ExternalID,
					QualityScore: score,
					QualityTier:  tier,
					Notes:        reviewNote(rng, score >= 4, score == 3),
					ReviewedAt:   slot.CreatedAt,
				})
			}
		}
	})

	g.logger.Info("generated platform rows",
		"platform", "srt",
		"annotations", len(annotations),
		"completions", len(completions),
		"reviews", len(reviews))
	return annotations, completions, reviews
}

// capDay pushes t forward by days but never past the 28th of its month, so
// deadlines stay inside the month regardless of its length.
func capDay(t time.Time, days int) time.Time {
	d := t.Day() + days
	if d > 28 {
		d = 28
	}
	return time.Date(t.Year(), t.Month(), d, t.Hour(), t.Minute(), t.Second(), 0, t.Location())
}

// clampRound rounds to the nearest integer then clamps to [lo, hi].
func clampRound(x float64, lo, hi int) int {
	v := int(x + 0.5)
	if x < 0 {
		v = int(x - 0.5)
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
