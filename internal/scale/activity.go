package scale

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/peregrine-human-data/datagen/internal/config"
	"github.com/peregrine-human-data/datagen/internal/entity"
)

// RosterMember is one tasker staffed on a project, carrying whichever
// identity the downstream platform records: an external id on SRT and
// Feather, the raw tasker id plus display name on Fairtable.
type RosterMember struct {
	TaskerID     int
	ExternalID   string
	Name         string
	AssignedDate time.Time
	RemovedDate  *time.Time
}

// TaskSlot is one scheduled unit of work handed to a platform profile. The
// profile rolls its own statuses, children, and ids from Rng.
type TaskSlot struct {
	Project   entity.Project
	Worker    RosterMember
	Roster    []RosterMember
	TaskType  string
	CreatedAt time.Time
	Rng       *rand.Rand
}

// EmitFunc materializes one task (and any submissions/reviews under it) for
// a specific platform.
type EmitFunc func(slot TaskSlot)

// Engine walks the growth curve for one customer and schedules task slots
// across that customer's projects, weighted by active roster size. The three
// platform generators differ only in what they emit per slot; the schedule
// itself is identical.
type Engine struct {
	rng    *rand.Rand
	today  time.Time
	logger *slog.Logger
}

// NewEngine builds a scheduler around an already-offset RNG.
func NewEngine(rng *rand.Rand, today time.Time, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{rng: rng, today: today, logger: logger}
}

// monthCounts splits target across months proportionally to the growth
// multiplier, at least one per month, with any rounding shortfall added to
// the final month.
func monthCounts(months []config.Month, target int) []int {
	weights := make([]float64, len(months))
	var total float64
	for i, m := range months {
		weights[i] = config.MonthlyMultiplier(m.Year, m.Month)
		total += weights[i]
	}
	if total == 0 {
		total = 1
	}
	counts := make([]int, len(months))
	sum := 0
	for i, w := range weights {
		c := int(float64(target) * w / total)
		if c < 1 {
			c = 1
		}
		counts[i] = c
		sum += c
	}
	if diff := target - sum; diff > 0 && len(counts) > 0 {
		counts[len(counts)-1] += diff
	}
	return counts
}

// activeInMonth reports whether the member was staffed at any point during
// the month.
func activeInMonth(m RosterMember, year, month int) bool {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	if m.AssignedDate.After(monthEnd) {
		return false
	}
	if m.RemovedDate != nil && m.RemovedDate.Before(monthStart) {
		return false
	}
	return true
}

// Run schedules target slots for one customer and feeds them to emit. The
// rosterFor callback supplies the full project roster; members inactive in a
// given month are filtered here. Projects whose roster is empty in a month
// receive no work that month.
func (e *Engine) Run(cust config.Customer, projects []entity.Project, target int, rosterFor func(projectID int) []RosterMember, emit EmitFunc) int {
	var customerProjects []entity.Project
	for _, p := range projects {
		if p.CustomerID == cust.ID {
			customerProjects = append(customerProjects, p)
		}
	}
	if len(customerProjects) == 0 {
		e.logger.Warn("no projects for customer, skipping", "customer", cust.Name)
		return 0
	}

	var months []config.Month
	for _, m := range config.ActiveMonths() {
		if m.AtOrAfter(cust.StartQuarter) {
			months = append(months, m)
		}
	}
	counts := monthCounts(months, target)

	// Open-ended projects stay schedulable through next month.
	openEnd := e.today.AddDate(0, 1, 0)

	emitted := 0
	for i, month := range months {
		monthStart := time.Date(month.Year, time.Month(month.Month), 1, 0, 0, 0, 0, time.UTC)
		scheduleCutoff := time.Date(month.Year, time.Month(month.Month), 28, 0, 0, 0, 0, time.UTC)

		type activeProject struct {
			project entity.Project
			roster  []RosterMember
		}
		var active []activeProject
		totalWeight := 0
		for _, p := range customerProjects {
			if p.StartDate.After(scheduleCutoff) || p.EndOrDefault(openEnd).Before(monthStart) {
				continue
			}
			var roster []RosterMember
			for _, m := range rosterFor(p.ID) {
				if activeInMonth(m, month.Year, month.Month) {
					roster = append(roster, m)
				}
			}
			if len(roster) == 0 {
				continue
			}
			active = append(active, activeProject{p, roster})
			totalWeight += len(roster)
		}
		if len(active) == 0 {
			continue
		}

		for _, ap := range active {
			projCount := counts[i] * len(ap.roster) / totalWeight
			if projCount < 1 {
				projCount = 1
			}
			primaryType := cust.TaskTypes[ap.project.ID%len(cust.TaskTypes)]

			for t := 0; t < projCount; t++ {
				worker := choice(e.rng, ap.roster)
				taskType := primaryType
				if e.rng.Float64() >= 0.70 {
					taskType = choice(e.rng, cust.TaskTypes)
				}
				emit(TaskSlot{
					Project:   ap.project,
					Worker:    worker,
					Roster:    ap.roster,
					TaskType:  taskType,
					CreatedAt: config.DatetimeInMonth(e.rng, month.Year, month.Month, e.today),
					Rng:       e.rng,
				})
				emitted++
			}
		}
	}
	e.logger.Info("scheduled task slots", "customer", cust.Name, "target", target, "emitted", emitted)
	return emitted
}

// submissionCount rolls the shared multi-worker pattern: mostly one
// submission, occasionally two or three.
func submissionCount(rng *rand.Rand) int {
	if rng.Float64() < 0.90 {
		return 1
	}
	return randInt(rng, 2, 3)
}

// reviewCount rolls how many reviews a submission receives.
func reviewCount(rng *rand.Rand) int {
	switch roll := rng.Float64(); {
	case roll < 0.15:
		return 0
	case roll < 0.80:
		return 1
	case roll < 0.95:
		return 2
	default:
		return 3
	}
}

// pickReviewer chooses a reviewer who is not the submitter. When the roster
// is a single person, self-review is unavoidable and allowed.
func pickReviewer(rng *rand.Rand, roster []RosterMember, submitterID int) RosterMember {
	candidates := make([]RosterMember, 0, len(roster))
	for _, m := range roster {
		if m.TaskerID != submitterID {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		candidates = roster
	}
	return choice(rng, candidates)
}

// submitterFor returns the worker for the first submission and a random
// roster member for subsequent ones.
func submitterFor(rng *rand.Rand, slot TaskSlot, idx int) RosterMember {
	if idx == 0 {
		return slot.Worker
	}
	return choice(rng, slot.Roster)
}

// reviewNote picks a canned note for the given sentiment bucket. Empty
// strings become SQL NULLs downstream.
func reviewNote(rng *rand.Rand, positive, neutral bool) string {
	switch {
	case positive:
		return choice(rng, config.ReviewNotesPositive)
	case neutral:
		return choice(rng, config.ReviewNotesNeutral)
	default:
		return choice(rng, config.ReviewNotesNegative)
	}
}

// BuildRosters indexes assignments by project, resolving each tasker through
// resolve; assignments whose tasker resolves to nil are dropped (e.g. no
// platform mapping exists).
func BuildRosters(assignments []entity.Assignment, resolve func(taskerID int) *RosterMember) map[int][]RosterMember {
	rosters := make(map[int][]RosterMember)
	for _, a := range assignments {
		m := resolve(a.TaskerID)
		if m == nil {
			continue
		}
		member := *m
		member.AssignedDate = a.AssignedDate
		member.RemovedDate = a.RemovedDate
		rosters[a.ProjectID] = append(rosters[a.ProjectID], member)
	}
	return rosters
}
