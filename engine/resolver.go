package engine

import (
	"sort"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Resolver maps free-form input for one field (category, course, round) to
// the exact value present in the catalog. Normalized exact matches hit a map;
// everything else falls back to best-similarity scanning with a threshold
// gate. Accepted fuzzy resolutions are memoized in an LRU cache so repeated
// misspellings do not rescan the candidate set.
type Resolver struct {
	field     string
	byKey     map[string]string
	options   []string
	threshold float64
	cache     *lru.Cache
}

// NewResolver builds a resolver for the given catalog values. cacheSize <= 0
// disables memoization.
func NewResolver(field string, values []string, threshold float64, cacheSize int) *Resolver {
	r := &Resolver{
		field:     field,
		byKey:     make(map[string]string, len(values)),
		threshold: threshold,
	}
	for _, v := range values {
		r.byKey[Normalize(v)] = v
	}
	r.options = make([]string, 0, len(r.byKey))
	for k := range r.byKey {
		r.options = append(r.options, k)
	}
	sort.Strings(r.options)

	if cacheSize > 0 {
		// lru.New only fails on a non-positive size, which is guarded above.
		r.cache, _ = lru.New(cacheSize)
	}
	return r
}

// Resolve returns the original catalog value closest to input, or a
// *ResolutionError carrying the sorted normalized options when no candidate
// clears the threshold.
func (r *Resolver) Resolve(input string) (string, error) {
	key := Normalize(input)
	if v, ok := r.byKey[key]; ok {
		return v, nil
	}

	if r.cache != nil {
		if v, ok := r.cache.Get(key); ok {
			return v.(string), nil
		}
	}

	best := ""
	bestScore := 0.0
	// options is sorted, so ties resolve to the lexicographically first key.
	for _, candidate := range r.options {
		score := similarity(key, candidate)
		if score > bestScore {
			bestScore = score
			best = r.byKey[candidate]
		}
	}

	if bestScore >= r.threshold && best != "" {
		if r.cache != nil {
			r.cache.Add(key, best)
		}
		return best, nil
	}

	return "", &ResolutionError{Field: r.field, Input: input, Suggestions: r.options}
}

// Options returns the sorted normalized keys for every catalog value.
func (r *Resolver) Options() []string { return r.options }

// similarity scores two normalized keys on a 0-1 scale as the Levenshtein
// edit agreement ratio: 1 - distance/maxLen.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1
	}
	dist := fuzzy.LevenshteinDistance(a, b)
	return 1 - float64(dist)/float64(maxLen)
}
