package instructions

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/peregrine-human-data/datagen/internal/config"
	"github.com/peregrine-human-data/datagen/internal/entity"
)

// Builder produces the instruction workbook handed to taskers before they
// start on a project: an overview sheet, the task workflow, and the scoring
// rubric for the project's platform.
type Builder struct {
	customers map[int]config.Customer
	logger    *slog.Logger
}

func NewBuilder(customers map[int]config.Customer, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{customers: customers, logger: logger}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

type step struct {
	Name        string
	Description string
	Estimate    string
}

type rubricRow struct {
	Dimension   string
	Score       string
	Label       string
	Description string
}

// BuildWorkbook renders one project's instruction document as XLSX bytes.
func (b *Builder) BuildWorkbook(project entity.Project) ([]byte, error) {
	cust, ok := b.customers[project.CustomerID]
	if !ok {
		return nil, fmt.Errorf("project %d references unknown customer %d", project.ID, project.CustomerID)
	}

	f := excelize.NewFile()
	defer f.Close()

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "2F5496"},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2F5496"}},
	})
	if err != nil {
		return nil, err
	}

	if err := b.buildOverview(f, titleStyle, headerStyle, project, cust); err != nil {
		return nil, err
	}
	if err := b.buildSteps(f, titleStyle, headerStyle, cust); err != nil {
		return nil, err
	}
	if err := b.buildRubric(f, titleStyle, headerStyle, cust); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	b.logger.Info("built instruction workbook", "project", project.ID, "customer", cust.Name)
	return buf.Bytes(), nil
}

func (b *Builder) buildOverview(f *excelize.File, titleStyle, headerStyle int, project entity.Project, cust config.Customer) error {
	const sheet = "Overview"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	// Drop the default sheet.
	_ = f.DeleteSheet("Sheet1")

	_ = f.MergeCell(sheet, "A1", "B1")
	_ = f.SetCellValue(sheet, "A1", "PROJECT OVERVIEW")
	_ = f.SetCellStyle(sheet, "A1", "B1", titleStyle)

	_ = f.SetCellValue(sheet, "A3", "Field")
	_ = f.SetCellValue(sheet, "B3", "Value")
	_ = f.SetCellStyle(sheet, "A3", "B3", headerStyle)

	endDate := "Open"
	if project.EndDate != nil {
		endDate = project.EndDate.Format("2006-01-02")
	}

	subdomains := make([]string, len(project.SubdomainIDs))
	for i, sid := range project.SubdomainIDs {
		subdomains[i] = fmt.Sprintf("%d", sid)
	}

	fields := [][2]string{
		{"Project Name (External)", project.ExternalName},
		{"Project Name (Internal)", project.InternalName},
		{"Client", cust.Name},
		{"Platform", cust.Platform},
		{"Start Date", project.StartDate.Format("2006-01-02")},
		{"End Date", endDate},
		{"Status", titleCase(project.Status)},
		{"Subdomain IDs", strings.Join(subdomains, ", ")},
		{"Billing Rate", fmt.Sprintf("$%.2f / hour", project.BillingRate)},
		{"Project Budget", fmt.Sprintf("$%.2f", project.Budget)},
		{"Required Languages", "English (Native or Fluent)"},
	}
	for i, field := range fields {
		row := i + 4
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), field[0])
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), field[1])
	}

	_ = f.SetColWidth(sheet, "A", "A", 30)
	_ = f.SetColWidth(sheet, "B", "B", 60)
	return nil
}

func (b *Builder) buildSteps(f *excelize.File, titleStyle, headerStyle int, cust config.Customer) error {
	const sheet = "Task Steps"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	_ = f.MergeCell(sheet, "A1", "D1")
	_ = f.SetCellValue(sheet, "A1", "TASK WORKFLOW")
	_ = f.SetCellStyle(sheet, "A1", "D1", titleStyle)

	headers := []string{"Step #", "Step Name", "Description", "Estimated Time"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		_ = f.SetCellValue(sheet, cell, h)
	}
	_ = f.SetCellStyle(sheet, "A3", "D3", headerStyle)

	for i, s := range platformSteps(cust.Platform) {
		row := i + 4
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), s.Name)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), s.Description)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), s.Estimate)
	}

	_ = f.SetColWidth(sheet, "A", "A", 10)
	_ = f.SetColWidth(sheet, "B", "B", 22)
	_ = f.SetColWidth(sheet, "C", "C", 65)
	_ = f.SetColWidth(sheet, "D", "D", 18)
	return nil
}

func (b *Builder) buildRubric(f *excelize.File, titleStyle, headerStyle int, cust config.Customer) error {
	const sheet = "Rubric"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	_ = f.MergeCell(sheet, "A1", "D1")
	_ = f.SetCellValue(sheet, "A1", "SCORING RUBRIC")
	_ = f.SetCellStyle(sheet, "A1", "D1", titleStyle)

	headers := []string{"Dimension", "Score", "Label", "Description"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		_ = f.SetCellValue(sheet, cell, h)
	}
	_ = f.SetCellStyle(sheet, "A3", "D3", headerStyle)

	for i, r := range platformRubric(cust.Platform) {
		row := i + 4
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.Dimension)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Score)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Label)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Description)
	}

	_ = f.SetColWidth(sheet, "A", "A", 16)
	_ = f.SetColWidth(sheet, "B", "B", 10)
	_ = f.SetColWidth(sheet, "C", "C", 22)
	_ = f.SetColWidth(sheet, "D", "D", 60)
	return nil
}

func platformSteps(platform string) []step {
	switch platform {
	case config.PlatformSRT:
		return []step{
			{"Read the Prompt", "Read the user prompt that was given to the model. Understand what the user is asking for and note the programming language or domain involved.", "1-2 min"},
			{"Review the Output", "Read the model output carefully. Check whether it correctly and completely addresses the prompt, and whether it contains logic flaws or missing edge cases.", "5-10 min"},
			{"Assess Safety", "Evaluate the output for security and safety concerns: injection patterns, unsafe operations, hardcoded secrets, or content that could cause harm if acted on.", "3-5 min"},
			{"Score Each Dimension", "Fill in the scoring rubric for each dimension and provide a brief justification for each score.", "3-5 min"},
			{"Submit", "Review all ratings and comments for consistency, ensure no fields are blank, and submit through the SRT Tool interface.", "1 min"},
		}
	case config.PlatformFeather:
		return []step{
			{"Open the Task", "Open the assigned task in Feather and read the full task description, including any attached context or conversation history.", "1-2 min"},
			{"Complete the Work", "Perform the requested ranking, review, or generation work according to the task type guidelines.", "10-25 min"},
			{"Self-Check", "Re-read your submission against the task requirements. Verify formatting, completeness, and that your rationale is clear.", "2-4 min"},
			{"Submit", "Submit through Feather. Revision requests appear in your queue; address them within 48 hours.", "1 min"},
		}
	default:
		return []step{
			{"Claim the Record", "Open your assigned record in the base and change its status to In Progress.", "1 min"},
			{"Complete the Evaluation", "Perform the domain evaluation described in the task record. Apply your professional expertise; cite sources where the guidelines ask for them.", "15-45 min"},
			{"Log Hours", "Record time spent in the hours field, rounded to the nearest quarter hour.", "1 min"},
			{"Mark Done", "Set the record status to Done. A reviewer will score your submission against the rubric.", "1 min"},
		}
	}
}

func platformRubric(platform string) []rubricRow {
	switch platform {
	case config.PlatformSRT:
		return []rubricRow{
			{"Quality", "5", "Exceptional", "Thorough, accurate work that exceeds the task requirements."},
			{"Quality", "4", "Meets Expectations", "Accurate work covering all requirements with at most trivial omissions."},
			{"Quality", "3", "Below Expectations", "Usable work with noticeable gaps or one significant error."},
			{"Quality", "2", "Poor", "Multiple significant errors; requires rework before use."},
			{"Quality", "1", "Unacceptable", "Work does not address the task or is fundamentally wrong."},
		}
	case config.PlatformFeather:
		return []rubricRow{
			{"Score", "0.85-1.00", "Excellent", "Submission is accurate, complete, and well-reasoned."},
			{"Score", "0.65-0.84", "Acceptable", "Submission is usable with minor issues."},
			{"Score", "0.40-0.64", "Needs Improvement", "Submission has significant gaps; revision likely."},
			{"Score", "0.00-0.39", "Unacceptable", "Submission cannot be used."},
		}
	default:
		return []rubricRow{
			{"Score", "70-100", "Pass", "Evaluation meets the quality bar and is accepted as-is."},
			{"Score", "50-69", "Conditional Pass", "Evaluation is accepted after reviewer corrections."},
			{"Score", "0-49", "Fail", "Evaluation is rejected and reassigned."},
		}
	}
}
