package engine

import (
	"sort"

	"go.uber.org/zap"

	"kcet-predictor/catalog"
)

// CollegeMatch is one enriched result row.
type CollegeMatch struct {
	Institute     string  `json:"institute"`
	InstituteCode string  `json:"institute_code"`
	CutoffRank    int     `json:"cutoff_rank"`
	Course        string  `json:"course"`
	CourseCode    string  `json:"course_code"`
	Category      string  `json:"category"`
	Round         string  `json:"round"`
	Year          string  `json:"year"`
	Likely        bool    `json:"likely"`
	RankDiff      float64 `json:"rank_diff"`
}

type dedupeKey struct {
	instituteCode string
	courseCode    string
	category      string
	cutoffRank    int
	year          string
	round         string
}

// Match runs the resolved query against the catalog: filter, rank window,
// dedupe, enrich, order. Returns *NoDataError when the year/category/course
// filters alone select nothing, and *NoRankMatchError when records exist but
// none admit the rank.
func (e *Engine) Match(q *ResolvedQuery) ([]CollegeMatch, error) {
	roundKey := Normalize(q.Round)
	prefiltered := 0
	seen := make(map[dedupeKey]struct{})
	var matches []CollegeMatch

	for _, rec := range e.catalog.Records() {
		if rec.Year != q.Year {
			continue
		}
		if rec.Category != q.Category {
			continue
		}
		if q.Course != "" && rec.CourseCode != q.Course {
			continue
		}
		prefiltered++

		if q.Institute != "" && rec.InstituteKey() != q.Institute {
			continue
		}
		if !q.AllRounds && Normalize(rec.Round) != roundKey {
			continue
		}

		if q.IncludeNearby {
			if rec.CutoffRank < q.MinRank || rec.CutoffRank > q.MaxRank+e.cfg.NearbyRankSlack {
				continue
			}
		} else {
			if rec.CutoffRank < q.Rank-e.cfg.DirectRankSlack {
				continue
			}
		}

		// First occurrence wins; duplicates are a data-quality condition.
		key := dedupeKey{rec.InstituteCode, rec.CourseCode, rec.Category, rec.CutoffRank, rec.Year, rec.Round}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if m, ok := e.enrich(rec, q); ok {
			matches = append(matches, m)
		}
	}

	if prefiltered == 0 {
		return nil, &NoDataError{
			Years:      e.catalog.Years(),
			Categories: e.catalog.Categories(),
			Courses:    e.catalog.Courses(),
			Rounds:     e.catalog.Rounds(),
		}
	}
	if len(matches) == 0 {
		return nil, &NoRankMatchError{Rank: q.Rank, IncludeNearby: q.IncludeNearby}
	}

	// Likely matches first, then by cutoff rank; SliceStable keeps catalog
	// encounter order for ties.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Likely != matches[j].Likely {
			return matches[i].Likely
		}
		return matches[i].CutoffRank < matches[j].CutoffRank
	})

	return matches, nil
}

// enrich builds the result row for one record. A failure here is logged and
// the record skipped so one malformed entry cannot fail the whole response.
func (e *Engine) enrich(rec catalog.CutoffRecord, q *ResolvedQuery) (m CollegeMatch, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Skipping record after enrichment failure",
				zap.Any("panic", r),
				zap.String("institute_code", rec.InstituteCode),
				zap.String("course_code", rec.CourseCode),
				zap.String("year", rec.Year))
			ok = false
		}
	}()

	round := rec.Round
	if q.AllRounds {
		round = rec.Year + " " + rec.Round
	}

	m = CollegeMatch{
		Institute:     rec.InstituteName,
		InstituteCode: rec.InstituteCode,
		CutoffRank:    rec.CutoffRank,
		Course:        catalog.CourseFullName(rec.CourseCode),
		CourseCode:    rec.CourseCode,
		Category:      rec.Category,
		Round:         round,
		Year:          rec.Year,
		Likely:        rec.CutoffRank >= q.Rank,
		RankDiff:      float64(rec.CutoffRank-q.Rank) / float64(q.Rank) * 100,
	}
	return m, true
}
