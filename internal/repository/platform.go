package repository

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peregrine-human-data/datagen/internal/scale"
)

// SRTRepository replaces the annotation workload in the SRT Tool database.
type SRTRepository struct {
	loader *BulkLoader
}

func NewSRTRepository(pool *pgxpool.Pool, batchSize int, logger *slog.Logger) *SRTRepository {
	return &SRTRepository{loader: NewBulkLoader(pool, batchSize, logger)}
}

// Replace truncates and reloads annotations, completions, and reviews.
func (r *SRTRepository) Replace(ctx context.Context, annotations []scale.Annotation, completions []scale.Completion, reviews []scale.SRTReview) error {
	if err := r.loader.Truncate(ctx, "reviews", "completions", "annotations"); err != nil {
		return err
	}

	annRows := make([][]any, 0, len(annotations))
	for _, a := range annotations {
		annRows = append(annRows, []any{
			a.ID, a.ProjectID, a.AnnotatorID, a.Type, a.Status,
			a.CreatedAt, nullableTime(a.Deadline),
		})
	}
	if err := r.loader.Load(ctx, Dataset{
		Table: "annotations",
		Columns: []string{"annotation_id", "project_id", "annotator_id",
			"annotation_type", "status", "created_at", "deadline"},
		Rows: annRows,
	}); err != nil {
		return err
	}

	compRows := make([][]any, 0, len(completions))
	for _, c := range completions {
		compRows = append(compRows, []any{
			c.ID, c.AnnotationID, c.AnnotatorID, c.CompletedAt,
			c.DurationMinutes, c.Status, c.ReworkCount,
		})
	}
	if err := r.loader.Load(ctx, Dataset{
		Table: "completions",
		Columns: []string{"completion_id", "annotation_id", "annotator_id",
			"completed_at", "duration_minutes", "status", "rework_count"},
		Rows: compRows,
	}); err != nil {
		return err
	}

	revRows := make([][]any, 0, len(reviews))
	for _, v := range reviews {
		revRows = append(revRows, []any{
			v.ID, v.CompletionID, v.ReviewerID, v.QualityScore,
			v.QualityTier, nullableString(v.Notes), v.ReviewedAt,
		})
	}
	return r.loader.Load(ctx, Dataset{
		Table: "reviews",
		Columns: []string{"review_id", "completion_id", "reviewer_id",
			"quality_score", "quality_tier", "notes", "reviewed_at"},
		Rows: revRows,
	})
}

// FeatherRepository replaces the task workload in the Feather database.
type FeatherRepository struct {
	loader *BulkLoader
}

func NewFeatherRepository(pool *pgxpool.Pool, batchSize int, logger *slog.Logger) *FeatherRepository {
	return &FeatherRepository{loader: NewBulkLoader(pool, batchSize, logger)}
}

// Replace truncates and reloads tasks, submissions, and quality reviews.
func (r *FeatherRepository) Replace(ctx context.Context, tasks []scale.FeatherTask, submissions []scale.FeatherSubmission, reviews []scale.FeatherReview) error {
	if err := r.loader.Truncate(ctx, "quality_reviews", "submissions", "tasks"); err != nil {
		return err
	}

	taskRows := make([][]any, 0, len(tasks))
	for _, t := range tasks {
		taskRows = append(taskRows, []any{
			t.ID, t.ProjectID, t.Title, t.Type, t.AssignedTo, t.Status, t.CreatedAt,
		})
	}
	if err := r.loader.Load(ctx, Dataset{
		Table: "tasks",
		Columns: []string{"task_id", "project_id", "title", "type",
			"assigned_to", "status", "created_at"},
		Rows: taskRows,
	}); err != nil {
		return err
	}

	subRows := make([][]any, 0, len(submissions))
	for _, s := range submissions {
		subRows = append(subRows, []any{
			s.ID, s.TaskID, s.SubmittedBy, s.SubmittedAt, s.TimeSpentSeconds, s.Status,
		})
	}
	if err := r.loader.Load(ctx, Dataset{
		Table: "submissions",
		Columns: []string{"submission_id", "task_id", "submitted_by",
			"submitted_at", "time_spent_seconds", "status"},
		Rows: subRows,
	}); err != nil {
		return err
	}

	revRows := make([][]any, 0, len(reviews))
	for _, v := range reviews {
		revRows = append(revRows, []any{
			v.ID, v.SubmissionID, v.ReviewerID, v.Score, v.Rating,
			nullableString(v.Feedback), v.ReviewedAt,
		})
	}
	return r.loader.Load(ctx, Dataset{
		Table: "quality_reviews",
		Columns: []string{"review_id", "submission_id", "reviewer_id",
			"score", "rating", "feedback", "reviewed_at"},
		Rows: revRows,
	})
}

// FairtableRepository replaces the record workload in the Fairtable database.
type FairtableRepository struct {
	loader *BulkLoader
}

func NewFairtableRepository(pool *pgxpool.Pool, batchSize int, logger *slog.Logger) *FairtableRepository {
	return &FairtableRepository{loader: NewBulkLoader(pool, batchSize, logger)}
}

// Replace truncates and reloads tasks, submissions, and reviews across all
// bases.
func (r *FairtableRepository) Replace(ctx context.Context, tasks []scale.FairtableTask, submissions []scale.FairtableSubmission, reviews []scale.FairtableReview) error {
	if err := r.loader.Truncate(ctx, "reviews", "submissions", "tasks"); err != nil {
		return err
	}

	taskRows := make([][]any, 0, len(tasks))
	for _, t := range tasks {
		taskRows = append(taskRows, []any{
			t.RecordID, t.BaseID, t.TaskName, t.TaskType, t.AssignedTo,
			t.Status, t.CreatedAt, nullableTime(t.DueDate),
		})
	}
	if err := r.loader.Load(ctx, Dataset{
		Table: "tasks",
		Columns: []string{"record_id", "base_id", "task_name", "task_type",
			"assigned_to", "status", "created_at", "due_date"},
		Rows: taskRows,
	}); err != nil {
		return err
	}

	subRows := make([][]any, 0, len(submissions))
	for _, s := range submissions {
		subRows = append(subRows, []any{
			s.RecordID, s.BaseID, s.TaskRecordID, s.SubmittedBy,
			s.SubmittedAt, s.HoursLogged, s.Status,
		})
	}
	if err := r.loader.Load(ctx, Dataset{
		Table: "submissions",
		Columns: []string{"record_id", "base_id", "task_record_id",
			"submitted_by", "submitted_at", "hours_logged", "status"},
		Rows: subRows,
	}); err != nil {
		return err
	}

	revRows := make([][]any, 0, len(reviews))
	for _, v := range reviews {
		revRows = append(revRows, []any{
			v.RecordID, v.BaseID, v.SubmissionRecordID, v.ReviewedBy,
			v.Score, v.Status, nullableString(v.Comments), v.ReviewedAt,
		})
	}
	return r.loader.Load(ctx, Dataset{
		Table: "reviews",
		Columns: []string{"record_id", "base_id", "submission_record_id",
			"reviewed_by", "score", "status", "comments", "reviewed_at"},
		Rows: revRows,
	})
}
