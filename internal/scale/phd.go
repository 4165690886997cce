package scale

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/peregrine-human-data/datagen/internal/config"
	"github.com/peregrine-human-data/datagen/internal/entity"
)

// Contracts per customer. History was tuned by hand, so the counts are a
// fixed table rather than a function of revenue share.
var contractCounts = map[int]int{
	config.CustomerMeta:      8,
	config.CustomerOpenAI:    7,
	config.CustomerGoogle:    7,
	config.CustomerXAI:       6,
	config.CustomerAnthropic: 7,
}

const (
	// Assumed number of concurrently active contracts per customer when
	// sizing active-contract budgets against the ARR target.
	activeContractsPerCustomer = 3
	// Assumed productive hours per tasker per month when staffing projects.
	monthlyHoursPerTasker = 120
)

// PHDGenerator produces contracts, projects, and assignments for the core
// database. It owns its RNG; two generators built with the same seed, scale,
// and today produce identical output.
type PHDGenerator struct {
	rng       *rand.Rand
	customers map[int]config.Customer
	seed      int64
	scale     float64
	today     time.Time
	logger    *slog.Logger
}

// NewPHDGenerator builds a generator seeded at seed + SeedOffsetPHD.
func NewPHDGenerator(seed int64, scale float64, customers map[int]config.Customer, today time.Time, logger *slog.Logger) *PHDGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &PHDGenerator{
		rng:       newRNG(seed + SeedOffsetPHD),
		customers: customers,
		seed:      seed,
		scale:     scale,
		today:     today,
		logger:    logger,
	}
}

func sortedCustomerIDs(customers map[int]config.Customer) []int {
	ids := make([]int, 0, len(customers))
	for id := range customers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// periodLabel renders a contract period like "Q3 2024", "H1 2025", or
// "2024-2025" depending on duration.
func periodLabel(startYear, startMonth, durationMonths int) string {
	switch {
	case durationMonths <= 4:
		return fmt.Sprintf("Q%d %d", (startMonth-1)/3+1, startYear)
	case durationMonths <= 7:
		half := 1
		if startMonth > 6 {
			half = 2
		}
		return fmt.Sprintf("H%d %d", half, startYear)
	default:
		endYear := startYear + (startMonth+durationMonths-1)/12
		if endYear > startYear {
			return fmt.Sprintf("%d-%d", startYear, endYear)
		}
		return fmt.Sprintf("%d", startYear)
	}
}

// externalProjectID derives the platform-facing project id. SRT and Feather
// get a stable hash of (seed, customer, project); Fairtable has no
// per-project namespace, so those customers reuse their base id.
func externalProjectID(seed int64, cust config.Customer, projectID int) string {
	if cust.BaseID != "" {
		return cust.BaseID
	}
	h := config.HashHex(fmt.Sprintf("project_%d_%d_%d", seed, cust.ID, projectID), 8)
	switch cust.ID {
	case config.CustomerMeta:
		return "proj_srt_" + h
	case config.CustomerOpenAI:
		return "proj_f_" + h
	default:
		return "proj_ext_" + h
	}
}

// Contracts generates every customer's contract history along the growth
// curve. Active contracts are sized so their collective annualized gross ×
// take rate lands on the customer's share of peak ARR; historical contracts
// scale with the curve at their start month instead.
func (g *PHDGenerator) Contracts() []entity.Contract {
	var contracts []entity.Contract
	contractID := 1

	for _, customerID := range sortedCustomerIDs(g.customers) {
		cust := g.customers[customerID]
		templates := config.ContractTemplates[customerID]
		if len(templates) == 0 {
			templates = []string{cust.Name + " Services {period}"}
		}
		numContracts, ok := contractCounts[customerID]
		if !ok {
			numContracts = 7
		}

		var monthsAvailable []config.Month
		for _, m := range config.ActiveMonths() {
			if m.AtOrAfter(cust.StartQuarter) {
				monthsAvailable = append(monthsAvailable, m)
			}
		}
		spacing := len(monthsAvailable) / numContracts
		if spacing < 1 {
			spacing = 1
		}

		templateIdx := 0
		for i := 0; i < numContracts; i++ {
			monthIdx := i * spacing
			if monthIdx > len(monthsAvailable)-1 {
				monthIdx = len(monthsAvailable) - 1
			}
			start := monthsAvailable[monthIdx]

			duration := randInt(g.rng, 4, 14)
			endYear := start.Year + (start.Month+duration-1)/12
			endMonth := (start.Month+duration-1)%12 + 1
			contractEnd := time.Date(endYear, time.Month(endMonth), 28, 0, 0, 0, 0, time.UTC)

			takeRate := roundTo(uniform(g.rng, cust.TakeRateLo, cust.TakeRateHi), 2)
			multiplier := config.MonthlyMultiplier(start.Year, start.Month)

			var status string
			var endDate *time.Time
			switch {
			case contractEnd.Before(g.today) && i < numContracts-activeContractsPerCustomer:
				if g.rng.Float64() < 0.08 {
					status = entity.ContractCanceled
				} else {
					status = entity.ContractCompleted
				}
				e := contractEnd
				endDate = &e
			case i >= numContracts-activeContractsPerCustomer:
				status = entity.ContractActive
			default:
				if g.rng.Float64() < 0.1 {
					status = entity.ContractInactive
				} else {
					status = entity.ContractCompleted
				}
				e := contractEnd
				endDate = &e
			}

			// Active contracts carry ~12 months of gross billing sized to
			// the customer's net ARR target split across the assumed number
			// of concurrent contracts; historical ones follow the curve.
			var budget float64
			if status == entity.ContractActive {
				perContractAnnualGross := cust.RevenueShare * config.PeakARR * 1_000_000 /
					activeContractsPerCustomer / takeRate
				budget = roundToStep(perContractAnnualGross*uniform(g.rng, 0.85, 1.15), 1000)
			} else {
				peakGross := cust.RevenueShare * config.PeakARR * 1_000_000 / 0.30
				m := multiplier
				if m < 0.03 {
					m = 0.03
				}
				monthlyGross := peakGross / 12 * m
				budget = roundToStep(monthlyGross*float64(duration)*uniform(g.rng, 0.5, 1.2), 1000)
				if budget < 200_000 {
					budget = 200_000
				}
			}

			period := periodLabel(start.Year, start.Month, duration)
			name := strings.Replace(templates[templateIdx%len(templates)], "{period}", period, 1)
			templateIdx++

			contracts = append(contracts, entity.Contract{
				ID:             contractID,
				CustomerID:     customerID,
				BillingCycleID: cust.BillingCycleID,
				Name:           name,
				StartDate:      time.Date(start.Year, time.Month(start.Month), 1, 0, 0, 0, 0, time.UTC),
				EndDate:        endDate,
				TakeRate:       takeRate,
				Budget:         budget,
				Status:         status,
			})
			contractID++
		}
	}

	g.logger.Info("generated contracts", "count", len(contracts))
	return contracts
}

// Projects generates 2-4 projects per contract, each scoped to a subset of
// the customer's domain focus.
func (g *PHDGenerator) Projects(contracts []entity.Contract) []entity.Project {
	var projects []entity.Project
	projectID := 1

	for _, contract := range contracts {
		cust := g.customers[contract.CustomerID]
		extTemplates := config.ProjectExternalTemplates[contract.CustomerID]
		if len(extTemplates) == 0 {
			extTemplates = []string{cust.Name + "-Project-v{v}"}
		}

		numProjects := randInt(g.rng, 2, 3)
		if contract.Budget > 20_000_000 {
			numProjects = randInt(g.rng, 3, 4)
		}

		for j := 0; j < numProjects; j++ {
			projStart := contract.StartDate.AddDate(0, 0, randInt(g.rng, 0, 21))

			var projEnd *time.Time
			if contract.EndDate != nil {
				e := contract.EndDate.AddDate(0, 0, -randInt(g.rng, 0, 14))
				projEnd = &e
			}

			projBudget := roundToStep(contract.Budget/float64(numProjects)*uniform(g.rng, 0.7, 1.3), 100)
			billingRate := roundTo(uniform(g.rng, cust.BillingRateLo, cust.BillingRateHi), 2)

			numSubs := randInt(g.rng, 2, 5)
			if numSubs > len(cust.DomainFocus) {
				numSubs = len(cust.DomainFocus)
			}
			subdomainIDs := sample(g.rng, cust.DomainFocus, numSubs)
			sort.Ints(subdomainIDs)

			extTemplate := extTemplates[j%len(extTemplates)]
			externalName := strings.NewReplacer(
				"{v}", fmt.Sprintf("%d", randInt(g.rng, 1, 12)),
				"{yr}", fmt.Sprintf("%d", projStart.Year()),
			).Replace(extTemplate)

			internalName := strings.Replace(
				choice(g.rng, config.ProjectInternalTemplates),
				"{domain}", choice(g.rng, config.DomainLabels), 1)

			var status string
			switch contract.Status {
			case entity.ContractActive:
				roll := g.rng.Intn(10)
				switch {
				case roll < 8:
					status = "active"
				case roll == 8:
					status = "staffing"
				default:
					status = "paused"
				}
			case entity.ContractCompleted:
				status = "completed"
			case entity.ContractCanceled:
				status = "cancelled"
			default:
				status = choice(g.rng, []string{"completed", "paused"})
			}

			splID := choice(g.rng, config.ExistingSPLIDs[:15])

			projects = append(projects, entity.Project{
				ID:                projectID,
				CustomerID:        contract.CustomerID,
				ContractID:        contract.ID,
				SPLID:             splID,
				ExternalName:      externalName,
				InternalName:      internalName,
				StartDate:         projStart,
				EndDate:           projEnd,
				Budget:            projBudget,
				BillingRate:       billingRate,
				SubdomainIDs:      subdomainIDs,
				Status:            status,
				ExternalProjectID: externalProjectID(g.seed, cust, projectID),
			})
			projectID++
		}
	}

	g.logger.Info("generated projects", "count", len(projects))
	return projects
}

// Assignments staffs each project from the taskers whose subdomains overlap
// the project's. Projects with an empty eligible pool are skipped without
// error. Headcount derives from budget, billing rate, and duration, scaled
// by the global scale factor.
func (g *PHDGenerator) Assignments(projects []entity.Project, taskers []entity.Tasker) []entity.Assignment {
	var assignments []entity.Assignment
	assignmentID := 1

	// subdomain id → eligible tasker ids
	bySubdomain := make(map[int][]int)
	for _, t := range taskers {
		if t.Status != "active" {
			continue
		}
		for _, sid := range t.SubdomainIDs {
			bySubdomain[sid] = append(bySubdomain[sid], t.ID)
		}
	}

	for _, project := range projects {
		projEnd := project.EndOrDefault(g.today)

		seen := make(map[int]bool)
		var eligible []int
		for _, sid := range project.SubdomainIDs {
			for _, taskerID := range bySubdomain[sid] {
				if !seen[taskerID] {
					seen[taskerID] = true
					eligible = append(eligible, taskerID)
				}
			}
		}
		if len(eligible) == 0 {
			continue
		}
		sort.Ints(eligible)

		totalHours := project.Budget / project.BillingRate
		projectMonths := projEnd.Sub(project.StartDate).Hours() / 24 / 30
		if projectMonths < 1 {
			projectMonths = 1
		}
		monthlyHours := totalHours / projectMonths
		idealTaskers := int(monthlyHours / monthlyHoursPerTasker)
		if idealTaskers < 3 {
			idealTaskers = 3
		}
		numTaskers := int(float64(idealTaskers) * g.scale)
		if numTaskers < 3 {
			numTaskers = 3
		}
		if numTaskers > len(eligible) {
			numTaskers = len(eligible)
		}

		projectDays := int(projEnd.Sub(project.StartDate).Hours() / 24)

		for _, taskerID := range sample(g.rng, eligible, numTaskers) {
			maxOffset := projectDays - 1
			if maxOffset > 30 {
				maxOffset = 30
			}
			if maxOffset < 0 {
				maxOffset = 0
			}
			assignedDate := project.StartDate.AddDate(0, 0, randInt(g.rng, 0, maxOffset))

			status := "active"
			var removedDate *time.Time
			var removalReason string
			if g.rng.Float64() < 0.12 {
				remainingDays := int(projEnd.Sub(assignedDate).Hours() / 24)
				if remainingDays < 1 {
					remainingDays = 1
				}
				hi := remainingDays
				if hi < 14 {
					hi = 14
				}
				// Clamp after sampling; the offset may overshoot short
				// projects and land exactly on the project end.
				removed := assignedDate.AddDate(0, 0, randInt(g.rng, 14, hi))
				if removed.After(projEnd) {
					removed = projEnd
				}
				removedDate = &removed
				removalReason = choice(g.rng, config.RemovalReasons)
				status = "removed"
			}

			var roles []string
			switch roll := g.rng.Float64(); {
			case roll < 0.70:
				roles = []string{"tasker"}
			case roll < 0.90:
				roles = []string{"tasker", "reviewer"}
			case roll < 0.98:
				roles = []string{"reviewer"}
			default:
				// team_lead lives in taskers.internal_roles, not here
				roles = []string{"tasker", "reviewer"}
			}

			assignments = append(assignments, entity.Assignment{
				ID:            assignmentID,
				TaskerID:      taskerID,
				ProjectID:     project.ID,
				AssignedDate:  assignedDate,
				RemovedDate:   removedDate,
				Status:        status,
				RemovalReason: removalReason,
				Roles:         roles,
			})
			assignmentID++
		}
	}

	g.logger.Info("generated assignments", "count", len(assignments))
	return assignments
}
