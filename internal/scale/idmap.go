package scale

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/peregrine-human-data/datagen/internal/config"
	"github.com/peregrine-human-data/datagen/internal/entity"
)

// IDMapping pairs a PHD tasker with their external identity on one platform.
type IDMapping struct {
	TaskerID   int
	ExternalID string
}

// platformTaskerIDs collects the distinct taskers assigned to any project of
// the given customer, in first-assignment order.
func platformTaskerIDs(projects []entity.Project, assignments []entity.Assignment, customerID int) []int {
	projectCustomer := make(map[int]int, len(projects))
	for _, p := range projects {
		projectCustomer[p.ID] = p.CustomerID
	}
	seen := make(map[int]bool)
	var ids []int
	for _, a := range assignments {
		if projectCustomer[a.ProjectID] != customerID || seen[a.TaskerID] {
			continue
		}
		seen[a.TaskerID] = true
		ids = append(ids, a.TaskerID)
	}
	return ids
}

// SRTMappings derives the SRT-side identity for every tasker staffed on a
// Meta project. External ids are a pure hash of (seed, tasker), so reruns
// with the same seed reproduce them even if staffing changes.
func SRTMappings(seed int64, projects []entity.Project, assignments []entity.Assignment) []IDMapping {
	var out []IDMapping
	for _, tid := range platformTaskerIDs(projects, assignments, config.CustomerMeta) {
		out = append(out, IDMapping{
			TaskerID:   tid,
			ExternalID: "srt_meta_" + config.Hash36(fmt.Sprintf("meta_%d_%d", seed, tid), 8),
		})
	}
	return out
}

// FeatherMappings derives the Feather-side identity for every tasker staffed
// on an OpenAI project.
func FeatherMappings(seed int64, projects []entity.Project, assignments []entity.Assignment) []IDMapping {
	var out []IDMapping
	for _, tid := range platformTaskerIDs(projects, assignments, config.CustomerOpenAI) {
		out = append(out, IDMapping{
			TaskerID:   tid,
			ExternalID: "usr_" + config.Hash36(fmt.Sprintf("feather_%d_%d", seed, tid), 8),
		})
	}
	return out
}

// WriteMappingCSV writes one pairing file sorted by tasker id. The platform
// name feeds the second column header, e.g. "srt_external_id".
func WriteMappingCSV(dir, filename, platform string, mappings []IDMapping) error {
	sorted := make([]IDMapping, len(mappings))
	copy(sorted, mappings)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].TaskerID < sorted[j].TaskerID })

	path := filepath.Join(dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"peregrine_tasker_id", platform + "_external_id"}); err != nil {
		return fmt.Errorf("write %s header: %w", path, err)
	}
	for _, m := range sorted {
		if err := w.Write([]string{strconv.Itoa(m.TaskerID), m.ExternalID}); err != nil {
			return fmt.Errorf("write %s row: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

// WriteMappingFiles emits both pairing CSVs under dir.
func WriteMappingFiles(dir string, srt, feather []IDMapping) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := WriteMappingCSV(dir, "meta_id_pairing.csv", "srt", srt); err != nil {
		return err
	}
	return WriteMappingCSV(dir, "feather_id_pairing.csv", "feather", feather)
}
