package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peregrine-human-data/datagen/internal/entity"
)

// PHDRepository reads and replaces the synthetic slice of the core database.
// Customers, billing cycles, domains, subdomains, taskers, and SPLs are
// pre-existing and never touched; contracts, projects, and assignments are
// wholly regenerated.
type PHDRepository struct {
	pool   *pgxpool.Pool
	loader *BulkLoader
	logger *slog.Logger
}

func NewPHDRepository(pool *pgxpool.Pool, batchSize int, logger *slog.Logger) *PHDRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &PHDRepository{
		pool:   pool,
		loader: NewBulkLoader(pool, batchSize, logger),
		logger: logger,
	}
}

// FetchTaskers loads the full tasker roster in id order.
func (r *PHDRepository) FetchTaskers(ctx context.Context) ([]entity.Tasker, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, subdomain_ids, hours_available, hourly_rate, status
		FROM taskers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("fetch taskers: %w", err)
	}
	defer rows.Close()

	var taskers []entity.Tasker
	for rows.Next() {
		var t entity.Tasker
		var subdomains []int32
		var hours, rate *float64
		if err := rows.Scan(&t.ID, &t.FirstName, &t.LastName, &subdomains, &hours, &rate, &t.Status); err != nil {
			return nil, fmt.Errorf("scan tasker: %w", err)
		}
		t.SubdomainIDs = toInts(subdomains)
		if hours != nil {
			t.HoursAvailable = *hours
		}
		if rate != nil {
			t.HourlyRate = *rate
		}
		taskers = append(taskers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch taskers: %w", err)
	}
	r.logger.Info("fetched taskers", "count", len(taskers))
	return taskers, nil
}

// FetchProjects loads previously generated projects, for runs that skip the
// core regeneration step but still need to drive the platforms.
func (r *PHDRepository) FetchProjects(ctx context.Context) ([]entity.Project, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, customer_id, contract_id, spl_id, external_name, internal_name,
		       start_date, end_date, budget, billing_rate, subdomain_ids, status,
		       external_project_id
		FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}
	defer rows.Close()

	var projects []entity.Project
	for rows.Next() {
		var p entity.Project
		var subdomains []int32
		var extID *string
		if err := rows.Scan(&p.ID, &p.CustomerID, &p.ContractID, &p.SPLID,
			&p.ExternalName, &p.InternalName, &p.StartDate, &p.EndDate,
			&p.Budget, &p.BillingRate, &subdomains, &p.Status, &extID); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		p.SubdomainIDs = toInts(subdomains)
		if extID != nil {
			p.ExternalProjectID = *extID
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}
	r.logger.Info("fetched projects", "count", len(projects))
	return projects, nil
}

// FetchAssignments loads previously generated assignments in id order.
func (r *PHDRepository) FetchAssignments(ctx context.Context) ([]entity.Assignment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, tasker_id, project_id, assigned_date, removed_date, status,
		       removal_reason, roles
		FROM assignments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("fetch assignments: %w", err)
	}
	defer rows.Close()

	var assignments []entity.Assignment
	for rows.Next() {
		var a entity.Assignment
		var reason *string
		if err := rows.Scan(&a.ID, &a.TaskerID, &a.ProjectID, &a.AssignedDate,
			&a.RemovedDate, &a.Status, &reason, &a.Roles); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		if reason != nil {
			a.RemovalReason = *reason
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch assignments: %w", err)
	}
	r.logger.Info("fetched assignments", "count", len(assignments))
	return assignments, nil
}

// UpdateTaskerProfileImage records the stored image URL for one tasker.
func (r *PHDRepository) UpdateTaskerProfileImage(ctx context.Context, taskerID int, url string) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE taskers SET profile_image_url = $1 WHERE id = $2", url, taskerID)
	if err != nil {
		return fmt.Errorf("update tasker %d profile image: %w", taskerID, err)
	}
	return nil
}

// EnsureExternalProjectColumn adds projects.external_project_id when the
// target schema predates platform linkage.
func (r *PHDRepository) EnsureExternalProjectColumn(ctx context.Context) error {
	_, err := r.pool.Exec(ctx,
		"ALTER TABLE projects ADD COLUMN IF NOT EXISTS external_project_id VARCHAR(255)")
	if err != nil {
		return fmt.Errorf("ensure external_project_id column: %w", err)
	}
	return nil
}

// Replace swaps the generated slice of the core database: deletes
// assignments, projects, and contracts in dependency order, bulk loads the
// new rows, and moves the id sequences past the new maxima.
func (r *PHDRepository) Replace(ctx context.Context, contracts []entity.Contract, projects []entity.Project, assignments []entity.Assignment) error {
	if err := r.EnsureExternalProjectColumn(ctx); err != nil {
		return err
	}

	r.logger.Info("clearing existing contracts, projects, assignments")
	for _, table := range []string{"assignments", "projects", "contracts"} {
		if _, err := r.pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if err := r.loader.Load(ctx, contractDataset(contracts)); err != nil {
		return err
	}
	if err := r.loader.Load(ctx, projectDataset(projects)); err != nil {
		return err
	}
	if err := r.loader.Load(ctx, assignmentDataset(assignments)); err != nil {
		return err
	}

	sequences := []struct {
		name string
		max  int
	}{
		{"contracts_id_seq", maxContractID(contracts)},
		{"projects_id_seq", maxProjectID(projects)},
		{"assignments_id_seq", maxAssignmentID(assignments)},
	}
	for _, s := range sequences {
		if s.max == 0 {
			continue
		}
		if err := r.loader.ResetSequence(ctx, s.name, s.max); err != nil {
			return err
		}
	}
	return nil
}

func contractDataset(contracts []entity.Contract) Dataset {
	rows := make([][]any, 0, len(contracts))
	for _, c := range contracts {
		rows = append(rows, []any{
			c.ID, c.CustomerID, c.BillingCycleID, c.Name,
			c.StartDate, nullableTime(c.EndDate), c.TakeRate, c.Budget, c.Status,
		})
	}
	return Dataset{
		Table: "contracts",
		Columns: []string{"id", "customer_id", "billing_cycle_id", "contract_name",
			"start_date", "end_date", "take_rate", "contract_budget", "status"},
		Rows: rows,
	}
}

func projectDataset(projects []entity.Project) Dataset {
	rows := make([][]any, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []any{
			p.ID, p.CustomerID, p.ContractID, p.SPLID, p.ExternalName,
			p.InternalName, p.StartDate, nullableTime(p.EndDate), p.Budget,
			p.BillingRate, toInt32s(p.SubdomainIDs), p.Status, p.ExternalProjectID,
		})
	}
	return Dataset{
		Table: "projects",
		Columns: []string{"id", "customer_id", "contract_id", "spl_id", "external_name",
			"internal_name", "start_date", "end_date", "budget", "billing_rate",
			"subdomain_ids", "status", "external_project_id"},
		Rows: rows,
	}
}

func assignmentDataset(assignments []entity.Assignment) Dataset {
	rows := make([][]any, 0, len(assignments))
	for _, a := range assignments {
		roles := a.Roles
		if len(roles) == 0 {
			roles = []string{"tasker"}
		}
		rows = append(rows, []any{
			a.ID, a.TaskerID, a.ProjectID, a.AssignedDate,
			nullableTime(a.RemovedDate), a.Status, nullableString(a.RemovalReason), roles,
		})
	}
	return Dataset{
		Table: "assignments",
		Columns: []string{"id", "tasker_id", "project_id", "assigned_date",
			"removed_date", "status", "removal_reason", "roles"},
		Rows: rows,
	}
}

func maxContractID(contracts []entity.Contract) int {
	m := 0
	for _, c := range contracts {
		if c.ID > m {
			m = c.ID
		}
	}
	return m
}

func maxProjectID(projects []entity.Project) int {
	m := 0
	for _, p := range projects {
		if p.ID > m {
			m = p.ID
		}
	}
	return m
}

func maxAssignmentID(assignments []entity.Assignment) int {
	m := 0
	for _, a := range assignments {
		if a.ID > m {
			m = a.ID
		}
	}
	return m
}

func toInts(in []int32) []int {
	if in == nil {
		return nil
	}
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

func toInt32s(in []int) []int32 {
	if in == nil {
		return nil
	}
	out := make([]int32, len(in))
	for i, v := range in {
		out[i] = int32(v)
	}
	return out
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
