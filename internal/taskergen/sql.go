package taskergen

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Migration files are plain SQL applied outside this program, so values are
// embedded as literals with standard quote doubling rather than bind
// parameters.

// SQLString quotes s as a SQL string literal, doubling embedded quotes.
// An empty string becomes NULL; tasker text columns treat the two the same.
func SQLString(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// SQLIntArray renders ids as a Postgres integer array literal.
func SQLIntArray(ids []int) string {
	if len(ids) == 0 {
		return "NULL"
	}
	parts := make([]string, len(ids))
	for i, v := range ids {
		parts[i] = strconv.Itoa(v)
	}
	return "'{" + strings.Join(parts, ",") + "}'"
}

// SQLTextArray renders items as a Postgres text array literal with each
// element double-quoted.
func SQLTextArray(items []string) string {
	if len(items) == 0 {
		return "NULL"
	}
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = `"` + v + `"`
	}
	return "'{" + strings.Join(parts, ",") + "}'"
}

const insertHeader = "INSERT INTO taskers (id, first_name, middle_name, last_name, email, " +
	"hire_date, address_line1, address_line2, city, state_province, postal_code, " +
	"location_country, location_timezone, status, external_job_title, subdomain_ids, " +
	"hours_available, hourly_rate, languages, language_proficiency, internal_roles) VALUES"

// insertRow renders one tasker as a VALUES tuple.
func insertRow(t TaskerProfile) (string, error) {
	profJSON, err := json.Marshal(t.LanguageProficiency)
	if err != nil {
		return "", fmt.Errorf("marshal language proficiency for tasker %d: %w", t.ID, err)
	}
	parts := []string{
		strconv.Itoa(t.ID),
		SQLString(t.FirstName),
		SQLString(t.MiddleName),
		SQLString(t.LastName),
		SQLString(t.Email),
		SQLString(t.HireDate.Format("2006-01-02")),
		SQLString(t.AddressLine1),
		SQLString(t.AddressLine2),
		SQLString(t.City),
		SQLString(t.StateProvince),
		SQLString(t.PostalCode),
		SQLString(t.Country),
		SQLString(t.Timezone),
		SQLString(t.Status),
		SQLString(t.ExternalJobTitle),
		SQLIntArray(t.SubdomainIDs),
		strconv.FormatFloat(t.HoursAvailable, 'f', 1, 64),
		strconv.FormatFloat(t.HourlyRate, 'f', 2, 64),
		SQLTextArray(t.Languages),
		SQLString(string(profJSON)),
		SQLString(t.InternalRoles),
	}
	return "(" + strings.Join(parts, ", ") + ")", nil
}

// WriteMigration emits an idempotent-ish SQL migration inserting the given
// taskers in statements of batchSize rows, ending with a sequence reset.
func WriteMigration(w io.Writer, taskers []TaskerProfile, batchSize int) error {
	if batchSize <= 0 {
		batchSize = 100
	}
	if len(taskers) == 0 {
		return fmt.Errorf("no taskers to write")
	}

	fmt.Fprintf(w, "-- Auto-generated: %d additional taskers (IDs %d-%d)\n",
		len(taskers), taskers[0].ID, taskers[len(taskers)-1].ID)

	for off := 0; off < len(taskers); off += batchSize {
		end := off + batchSize
		if end > len(taskers) {
			end = len(taskers)
		}
		if off > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, insertHeader)
		for i := off; i < end; i++ {
			row, err := insertRow(taskers[i])
			if err != nil {
				return err
			}
			sep := ","
			if i == end-1 {
				sep = ";"
			}
			fmt.Fprintln(w, row+sep)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "-- Reset sequence")
	fmt.Fprintln(w, "SELECT setval('taskers_id_seq', (SELECT MAX(id) FROM taskers));")
	return nil
}
