package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"kcet-predictor/config"
	apperrors "kcet-predictor/errors"
)

// masterFile is the current dataset shape: a flat cutoff list plus metadata.
type masterFile struct {
	Metadata map[string]interface{} `json:"metadata"`
	Cutoffs  []masterEntry          `json:"cutoffs"`
}

type masterEntry struct {
	Year          string `json:"year"`
	Round         string `json:"round"`
	Institute     string `json:"institute"`
	InstituteCode string `json:"institute_code"`
	Course        string `json:"course"`
	Category      string `json:"category"`
	CutoffRank    int    `json:"cutoff_rank"`
}

// legacyFile is the original nested shape:
// year -> round -> college -> courses -> course -> category -> rank.
type legacyFile struct {
	KCETCutoff map[string]map[string]map[string]legacyCollege `json:"kcet_cutoff"`
}

type legacyCollege struct {
	InstituteName string                    `json:"institute_name"`
	InstituteCode string                    `json:"institute_code"`
	Courses       map[string]map[string]int `json:"courses"`
}

// Load reads the cutoff dataset from disk and collapses it into a single
// record shape, so the engine never branches on file format. The master file
// is preferred; the legacy nested file is a fallback for older deployments.
func Load(cfg *config.Config, logger *zap.Logger) (*Catalog, error) {
	records, err := loadMaster(cfg.DataFile)
	if err == nil {
		logger.Info("Loaded master cutoff file",
			zap.String("path", cfg.DataFile),
			zap.Int("records", len(records)))
		return New(records), nil
	}
	if !os.IsNotExist(err) {
		return nil, apperrors.WrapErrorf(err, "loading %s", cfg.DataFile)
	}

	logger.Warn("Master cutoff file not found, trying legacy file",
		zap.String("master", cfg.DataFile),
		zap.String("legacy", cfg.LegacyDataFile))

	records, err = loadLegacy(cfg.LegacyDataFile)
	if err != nil {
		return nil, apperrors.WrapErrorf(err, "loading %s", cfg.LegacyDataFile)
	}
	logger.Info("Loaded legacy cutoff file",
		zap.String("path", cfg.LegacyDataFile),
		zap.Int("records", len(records)))
	return New(records), nil
}

func loadMaster(path string) ([]CutoffRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file masterFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}
	if file.Cutoffs == nil {
		return nil, fmt.Errorf("invalid structure: missing cutoffs key")
	}

	records := make([]CutoffRecord, 0, len(file.Cutoffs))
	for _, e := range file.Cutoffs {
		records = append(records, CutoffRecord{
			Year:          e.Year,
			Round:         e.Round,
			InstituteCode: e.InstituteCode,
			InstituteName: e.Institute,
			CourseCode:    e.Course,
			Category:      e.Category,
			CutoffRank:    e.CutoffRank,
		})
	}
	return records, nil
}

func loadLegacy(path string) ([]CutoffRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file legacyFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}
	if file.KCETCutoff == nil {
		return nil, fmt.Errorf("invalid structure: missing kcet_cutoff key")
	}

	var records []CutoffRecord
	// Map iteration order is random; sort each level so the catalog's
	// encounter order (and with it result tie-breaking) is deterministic.
	for _, year := range sortedMapKeys(file.KCETCutoff) {
		roundData := file.KCETCutoff[year]
		for _, roundKey := range sortedMapKeys(roundData) {
			colleges := roundData[roundKey]
			round := roundLabel(roundKey)
			for _, collegeKey := range sortedMapKeys(colleges) {
				college := colleges[collegeKey]
				for _, course := range sortedMapKeys(college.Courses) {
					categories := college.Courses[course]
					for _, category := range sortedMapKeys(categories) {
						records = append(records, CutoffRecord{
							Year:          year,
							Round:         round,
							InstituteCode: college.InstituteCode,
							InstituteName: college.InstituteName,
							CourseCode:    course,
							Category:      category,
							CutoffRank:    categories[category],
						})
					}
				}
			}
		}
	}
	return records, nil
}

// roundLabel converts a legacy round key like "round_1" or "mock_round"
// back to its display form ("Round 1", "Mock Round").
func roundLabel(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func sortedMapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
