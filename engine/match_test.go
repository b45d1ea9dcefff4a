package engine

import (
	"errors"
	"testing"

	"kcet-predictor/catalog"
)

func predict(t *testing.T, e *Engine, raw RawQuery) []CollegeMatch {
	t.Helper()
	matches, err := e.Predict(raw)
	if err != nil {
		t.Fatalf("Predict error: %v", err)
	}
	return matches
}

func TestMatchExactRank(t *testing.T) {
	e := testEngine(singleRecord())

	matches := predict(t, e, RawQuery{
		Rank:      float64(5000),
		Category:  strPtr("gm"),
		Course:    "cse",
		RoundName: strPtr("2024 round1"),
	})

	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	m := matches[0]
	if !m.Likely {
		t.Error("Likely = false, want true")
	}
	if m.RankDiff != 0 {
		t.Errorf("RankDiff = %v, want 0", m.RankDiff)
	}
	if m.InstituteCode != "E001" || m.CourseCode != "CSE" || m.Category != "GM" {
		t.Errorf("unexpected match identity: %+v", m)
	}
	if m.Course != "Computer Science & Engineering" {
		t.Errorf("Course = %q, want full name", m.Course)
	}
	if m.Round != "Round 1" {
		t.Errorf("Round = %q, want \"Round 1\"", m.Round)
	}
}

func TestMatchRankOutOfReach(t *testing.T) {
	e := testEngine(singleRecord())

	// 5000 >= 10000 - 1000 does not hold, so the only record is excluded.
	_, err := e.Predict(RawQuery{
		Rank:      float64(10000),
		Category:  strPtr("gm"),
		Course:    "cs",
		RoundName: strPtr("2024 round1"),
	})
	var noRank *NoRankMatchError
	if !errors.As(err, &noRank) {
		t.Fatalf("expected *NoRankMatchError, got %v", err)
	}
	if noRank.Rank != 10000 {
		t.Errorf("Rank = %d, want 10000", noRank.Rank)
	}
}

func TestMatchDirectSlack(t *testing.T) {
	e := testEngine(singleRecord())

	// 5000 >= 5800 - 1000 holds: the record survives but is not likely.
	matches := predict(t, e, RawQuery{
		Rank:      float64(5800),
		Category:  strPtr("GM"),
		RoundName: strPtr("2024 Round 1"),
	})

	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Likely {
		t.Error("Likely = true, want false for cutoff below rank")
	}
	if matches[0].RankDiff >= 0 {
		t.Errorf("RankDiff = %v, want negative", matches[0].RankDiff)
	}
}

func TestMatchUnknownCategory(t *testing.T) {
	e := testEngine(singleRecord())

	_, err := e.Predict(RawQuery{
		Rank:      float64(5000),
		Category:  strPtr("xyz123"),
		RoundName: strPtr("2024 Round 1"),
	})
	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("expected *ResolutionError, got %v", err)
	}
	if resErr.Field != "category" {
		t.Errorf("Field = %q, want \"category\"", resErr.Field)
	}
	if len(resErr.Suggestions) != 1 || resErr.Suggestions[0] != "gm" {
		t.Errorf("Suggestions = %v, want [gm]", resErr.Suggestions)
	}
}

func TestMatchNearbyWindow(t *testing.T) {
	records := []catalog.CutoffRecord{
		{Year: "2024", Round: "Round 1", InstituteCode: "E001", InstituteName: "UVCE", CourseCode: "CS", Category: "GM", CutoffRank: 3000},
		{Year: "2024", Round: "Round 1", InstituteCode: "E002", InstituteName: "BMSCE", CourseCode: "CS", Category: "GM", CutoffRank: 9500},
		{Year: "2024", Round: "Round 1", InstituteCode: "E003", InstituteName: "RVCE", CourseCode: "CS", Category: "GM", CutoffRank: 80000},
		{Year: "2024", Round: "Round 1", InstituteCode: "E004", InstituteName: "MSRIT", CourseCode: "CS", Category: "GM", CutoffRank: 95000},
	}
	e := testEngine(records)

	// rank 10000 nearby: window [8500, 11500+75000]. 3000 is below min,
	// 95000 is above max+slack.
	matches := predict(t, e, RawQuery{
		Rank:          float64(10000),
		Category:      strPtr("GM"),
		RoundName:     strPtr("2024 Round 1"),
		IncludeNearby: true,
	})

	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(matches), matches)
	}
	for _, m := range matches {
		if m.CutoffRank < 8500 || m.CutoffRank > 11500+75000 {
			t.Errorf("cutoff %d outside nearby window", m.CutoffRank)
		}
	}
}

func TestMatchDeduplicates(t *testing.T) {
	rec := singleRecord()[0]
	e := testEngine([]catalog.CutoffRecord{rec, rec, rec})

	matches := predict(t, e, RawQuery{
		Rank:      float64(5000),
		Category:  strPtr("GM"),
		RoundName: strPtr("2024 Round 1"),
	})

	if len(matches) != 1 {
		t.Fatalf("got %d matches after dedup, want 1", len(matches))
	}
}

func TestMatchOrdering(t *testing.T) {
	records := []catalog.CutoffRecord{
		{Year: "2024", Round: "Round 1", InstituteCode: "E001", InstituteName: "UVCE", CourseCode: "CS", Category: "GM", CutoffRank: 7000},
		{Year: "2024", Round: "Round 1", InstituteCode: "E002", InstituteName: "BMSCE", CourseCode: "CS", Category: "GM", CutoffRank: 5500},
		{Year: "2024", Round: "Round 1", InstituteCode: "E003", InstituteName: "RVCE", CourseCode: "EC", Category: "GM", CutoffRank: 9000},
		{Year: "2024", Round: "Round 1", InstituteCode: "E004", InstituteName: "MSRIT", CourseCode: "CS", Category: "GM", CutoffRank: 6500},
	}
	e := testEngine(records)

	// rank 6000: cutoffs 6500, 7000, 9000 are likely; 5500 survives via the
	// downward slack but is unlikely and must sort last.
	matches := predict(t, e, RawQuery{
		Rank:      float64(6000),
		Category:  strPtr("GM"),
		RoundName: strPtr("2024 Round 1"),
	})

	if len(matches) != 4 {
		t.Fatalf("got %d matches, want 4", len(matches))
	}
	wantOrder := []int{6500, 7000, 9000, 5500}
	for i, want := range wantOrder {
		if matches[i].CutoffRank != want {
			t.Errorf("matches[%d].CutoffRank = %d, want %d", i, matches[i].CutoffRank, want)
		}
	}
	for i := 1; i < len(matches); i++ {
		a, b := matches[i-1], matches[i]
		if !a.Likely && b.Likely {
			t.Errorf("unlikely match at %d sorted before likely match", i-1)
		}
		if a.Likely == b.Likely && a.CutoffRank > b.CutoffRank {
			t.Errorf("matches[%d] and [%d] out of cutoff order", i-1, i)
		}
	}
}

func TestMatchAllRounds(t *testing.T) {
	records := []catalog.CutoffRecord{
		{Year: "2024", Round: "Round 1", InstituteCode: "E001", InstituteName: "UVCE", CourseCode: "CS", Category: "GM", CutoffRank: 5000},
		{Year: "2024", Round: "Round 2", InstituteCode: "E001", InstituteName: "UVCE", CourseCode: "CS", Category: "GM", CutoffRank: 6200},
		{Year: "2023", Round: "Round 1", InstituteCode: "E001", InstituteName: "UVCE", CourseCode: "CS", Category: "GM", CutoffRank: 4800},
	}
	e := testEngine(records)

	matches := predict(t, e, RawQuery{
		Rank:      float64(5000),
		Category:  strPtr("GM"),
		RoundName: strPtr("2024 All Rounds"),
	})

	// Spans both 2024 rounds, never the 2023 record.
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	for _, m := range matches {
		if m.Year != "2024" {
			t.Errorf("match from year %q leaked into all-rounds query", m.Year)
		}
		wantRound := m.Year + " "
		if len(m.Round) <= len(wantRound) || m.Round[:len(wantRound)] != wantRound {
			t.Errorf("Round = %q, want year-prefixed label", m.Round)
		}
	}
}

func TestMatchInstituteFilter(t *testing.T) {
	records := []catalog.CutoffRecord{
		{Year: "2024", Round: "Round 1", InstituteCode: "E001", InstituteName: "UVCE", CourseCode: "CS", Category: "GM", CutoffRank: 5000},
		{Year: "2024", Round: "Round 1", InstituteCode: "E002", InstituteName: "BMSCE", CourseCode: "CS", Category: "GM", CutoffRank: 6000},
	}
	e := testEngine(records)

	matches := predict(t, e, RawQuery{
		Rank:      float64(5000),
		Category:  strPtr("GM"),
		RoundName: strPtr("2024 Round 1"),
		Institute: "E002_BMSCE",
	})

	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].InstituteCode != "E002" {
		t.Errorf("InstituteCode = %q, want E002", matches[0].InstituteCode)
	}
}

func TestMatchNoDataForFilters(t *testing.T) {
	records := []catalog.CutoffRecord{
		{Year: "2024", Round: "Round 1", InstituteCode: "E001", InstituteName: "UVCE", CourseCode: "CS", Category: "GM", CutoffRank: 5000},
		{Year: "2023", Round: "Round 1", InstituteCode: "E001", InstituteName: "UVCE", CourseCode: "EC", Category: "2AG", CutoffRank: 7000},
	}
	e := testEngine(records)

	// GM exists in the catalog but not in 2023, so the pre-filter is empty.
	_, err := e.Predict(RawQuery{
		Rank:      float64(5000),
		Category:  strPtr("GM"),
		RoundName: strPtr("2023 Round 1"),
	})
	var noData *NoDataError
	if !errors.As(err, &noData) {
		t.Fatalf("expected *NoDataError, got %v", err)
	}
	if len(noData.Years) != 2 || noData.Years[0] != "2024" {
		t.Errorf("Years = %v, want [2024 2023]", noData.Years)
	}
	if len(noData.Categories) != 2 {
		t.Errorf("Categories = %v, want two entries", noData.Categories)
	}
	if len(noData.Courses) != 2 {
		t.Errorf("Courses = %v, want two entries", noData.Courses)
	}
}

func TestMatchCourseFallbackName(t *testing.T) {
	records := []catalog.CutoffRecord{
		{Year: "2024", Round: "Round 1", InstituteCode: "E001", InstituteName: "UVCE", CourseCode: "QQ", Category: "GM", CutoffRank: 5000},
	}
	e := testEngine(records)

	matches := predict(t, e, RawQuery{
		Rank:      float64(5000),
		Category:  strPtr("GM"),
		RoundName: strPtr("2024 Round 1"),
	})

	if matches[0].Course != "QQ" {
		t.Errorf("Course = %q, want raw code fallback \"QQ\"", matches[0].Course)
	}
}
