package engine

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RawQuery is the unvalidated request handed over by the HTTP layer. Rank is
// left untyped because callers send it as either a number or a string; the
// pointer fields distinguish absent/null from empty.
type RawQuery struct {
	Rank          interface{}
	Category      *string
	Course        string
	RoundName     *string
	IncludeNearby bool
	Institute     string
}

// ResolvedQuery is a fully typed query bound to exact catalog values. Built
// fresh per request and discarded with the response.
type ResolvedQuery struct {
	Rank          int
	Category      string
	Course        string
	Year          string
	Round         string
	AllRounds     bool
	IncludeNearby bool
	Institute     string
	MinRank       int
	MaxRank       int
}

// ResolveQuery validates the raw request and resolves category, course, and
// round/year against the catalog. Each step short-circuits on failure.
func (e *Engine) ResolveQuery(raw RawQuery) (*ResolvedQuery, error) {
	var missing []string
	if raw.Rank == nil {
		missing = append(missing, "rank")
	}
	if raw.Category == nil {
		missing = append(missing, "category")
	}
	if raw.RoundName == nil {
		missing = append(missing, "round_name")
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	rank, err := parseRank(raw.Rank)
	if err != nil {
		return nil, err
	}

	category, err := e.categories.Resolve(*raw.Category)
	if err != nil {
		return nil, err
	}

	// An empty course means "any course" and is never forced through
	// resolution; only a supplied value can fail as unknown.
	course := ""
	if strings.TrimSpace(raw.Course) != "" {
		course, err = e.courses.Resolve(raw.Course)
		if err != nil {
			return nil, err
		}
	}

	year, roundText := splitRoundName(*raw.RoundName, e.catalog.LatestYear())
	allRounds := strings.Contains(strings.ToLower(roundText), "all rounds")

	round := ""
	if !allRounds {
		resolver, ok := e.rounds[year]
		if !ok {
			// Unknown year: no rounds exist to resolve against.
			return nil, &ResolutionError{Field: "round", Input: roundText, Suggestions: nil}
		}
		round, err = resolver.Resolve(roundText)
		if err != nil {
			return nil, err
		}
	}

	margin := 0.0
	if raw.IncludeNearby {
		margin = e.cfg.NearbyRankMargin
	}

	return &ResolvedQuery{
		Rank:          rank,
		Category:      category,
		Course:        course,
		Year:          year,
		Round:         round,
		AllRounds:     allRounds,
		IncludeNearby: raw.IncludeNearby,
		Institute:     raw.Institute,
		MinRank:       int(float64(rank) * (1 - margin)),
		MaxRank:       int(float64(rank) * (1 + margin)),
	}, nil
}

// splitRoundName splits on the first whitespace: "2024 Round 1" yields year
// "2024" and round text "Round 1". Without a space the whole string is the
// round text and the year defaults to the latest in the catalog.
func splitRoundName(roundName, latestYear string) (year, roundText string) {
	trimmed := strings.TrimSpace(roundName)
	first, rest, found := strings.Cut(trimmed, " ")
	if !found {
		return latestYear, trimmed
	}
	return first, strings.TrimSpace(rest)
}

func parseRank(value interface{}) (int, error) {
	var rank int
	switch v := value.(type) {
	case float64:
		rank = int(v)
	case int:
		rank = v
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, &InvalidRankError{Value: v.String()}
		}
		rank = int(f)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, &InvalidRankError{Value: v}
		}
		rank = n
	default:
		return 0, &InvalidRankError{Value: fmt.Sprintf("%v", value)}
	}

	if rank <= 0 {
		return 0, &InvalidRankError{Value: fmt.Sprintf("%v", value)}
	}
	return rank, nil
}
