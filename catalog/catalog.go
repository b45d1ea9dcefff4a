// Package catalog holds the immutable in-memory cutoff dataset and the
// derived index sets the matching engine queries against.
package catalog

import "sort"

// CutoffRecord is one historical admission line. The tuple
// (year, round, institute code, course code, category) is expected unique
// within the catalog; duplicates are a data-quality condition handled
// downstream, not an error here.
type CutoffRecord struct {
	Year          string
	Round         string
	InstituteCode string
	InstituteName string
	CourseCode    string
	Category      string
	CutoffRank    int
}

// InstituteKey returns the stable identity used for institute filtering.
func (r CutoffRecord) InstituteKey() string {
	return r.InstituteCode + "_" + r.InstituteName
}

// Institute is a distinct institute entry for the selection form.
type Institute struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Catalog is read-only after construction and safe for concurrent reads.
type Catalog struct {
	records      []CutoffRecord
	years        []string
	categories   []string
	courses      []string
	rounds       []string
	roundsByYear map[string][]string
	institutes   []Institute
}

// New builds a catalog and its derived index sets from the given records.
// Record order is preserved; the engine relies on it for stable tie-breaks.
func New(records []CutoffRecord) *Catalog {
	c := &Catalog{
		records:      records,
		roundsByYear: make(map[string][]string),
	}

	yearSet := make(map[string]struct{})
	categorySet := make(map[string]struct{})
	courseSet := make(map[string]struct{})
	roundSet := make(map[string]struct{})
	roundsSeen := make(map[string]map[string]struct{})
	instituteSet := make(map[string]struct{})

	for _, rec := range records {
		yearSet[rec.Year] = struct{}{}
		categorySet[rec.Category] = struct{}{}
		if rec.CourseCode != "" {
			courseSet[rec.CourseCode] = struct{}{}
		}
		roundSet[rec.Round] = struct{}{}

		if _, ok := roundsSeen[rec.Year]; !ok {
			roundsSeen[rec.Year] = make(map[string]struct{})
		}
		if _, ok := roundsSeen[rec.Year][rec.Round]; !ok {
			roundsSeen[rec.Year][rec.Round] = struct{}{}
			c.roundsByYear[rec.Year] = append(c.roundsByYear[rec.Year], rec.Round)
		}

		key := rec.InstituteKey()
		if _, ok := instituteSet[key]; !ok {
			instituteSet[key] = struct{}{}
			c.institutes = append(c.institutes, Institute{
				Key:  key,
				Name: rec.InstituteName,
				Code: rec.InstituteCode,
			})
		}
	}

	c.years = sortedKeys(yearSet)
	// Newest year first, matching how the selection form presents them.
	sort.Sort(sort.Reverse(sort.StringSlice(c.years)))
	c.categories = sortedKeys(categorySet)
	c.courses = sortedKeys(courseSet)
	c.rounds = sortedKeys(roundSet)
	sort.Slice(c.institutes, func(i, j int) bool {
		return c.institutes[i].Name < c.institutes[j].Name
	})

	return c
}

// Records returns the catalog records in load order.
func (c *Catalog) Records() []CutoffRecord { return c.records }

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int { return len(c.records) }

// Years returns the distinct years, newest first.
func (c *Catalog) Years() []string { return c.years }

// LatestYear returns the most recent year present, or "" for an empty catalog.
func (c *Catalog) LatestYear() string {
	if len(c.years) == 0 {
		return ""
	}
	return c.years[0]
}

// Categories returns the distinct category codes, sorted.
func (c *Catalog) Categories() []string { return c.categories }

// Courses returns the distinct course codes, sorted.
func (c *Catalog) Courses() []string { return c.courses }

// Rounds returns the distinct round labels across all years, sorted.
func (c *Catalog) Rounds() []string { return c.rounds }

// RoundsForYear returns the round labels seen in the given year, in
// encounter order. Unknown years yield an empty slice.
func (c *Catalog) RoundsForYear(year string) []string {
	return c.roundsByYear[year]
}

// Institutes returns the distinct institutes sorted by name.
func (c *Catalog) Institutes() []Institute { return c.institutes }

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
