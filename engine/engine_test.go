package engine

import (
	"go.uber.org/zap"

	"kcet-predictor/catalog"
	"kcet-predictor/config"
)

func testConfig() *config.Config {
	return &config.Config{
		NearbyRankMargin:    0.15,
		NearbyRankSlack:     75000,
		DirectRankSlack:     1000,
		FuzzyMatchThreshold: 0.6,
		ResolverCacheSize:   16,
	}
}

func testEngine(records []catalog.CutoffRecord) *Engine {
	logger, _ := zap.NewDevelopment()
	return New(testConfig(), catalog.New(records), logger)
}

func strPtr(s string) *string { return &s }

// singleRecord is the one-line catalog used by the scenario tests.
func singleRecord() []catalog.CutoffRecord {
	return []catalog.CutoffRecord{
		{
			Year:          "2024",
			Round:         "Round 1",
			InstituteCode: "E001",
			InstituteName: "University Visvesvaraya College of Engineering",
			CourseCode:    "CSE",
			Category:      "GM",
			CutoffRank:    5000,
		},
	}
}
