// Package engine implements the cutoff matching flow: resolving a raw user
// query against the catalog's actual values and filtering, deduplicating,
// enriching, and ordering the matching records.
package engine

import (
	"go.uber.org/zap"

	"kcet-predictor/catalog"
	"kcet-predictor/config"
)

// Engine answers prediction queries against a read-only catalog. Safe for
// concurrent use; nothing here mutates catalog state after construction.
type Engine struct {
	cfg        *config.Config
	catalog    *catalog.Catalog
	logger     *zap.Logger
	categories *Resolver
	courses    *Resolver
	rounds     map[string]*Resolver
}

// New builds the engine and its per-field resolvers from the catalog's
// derived value sets.
func New(cfg *config.Config, cat *catalog.Catalog, logger *zap.Logger) *Engine {
	e := &Engine{
		cfg:        cfg,
		catalog:    cat,
		logger:     logger,
		categories: NewResolver("category", cat.Categories(), cfg.FuzzyMatchThreshold, cfg.ResolverCacheSize),
		courses:    NewResolver("course", cat.Courses(), cfg.FuzzyMatchThreshold, cfg.ResolverCacheSize),
		rounds:     make(map[string]*Resolver),
	}
	for _, year := range cat.Years() {
		e.rounds[year] = NewResolver("round", cat.RoundsForYear(year), cfg.FuzzyMatchThreshold, cfg.ResolverCacheSize)
	}
	return e
}

// Predict resolves the raw query and runs the matching pipeline.
func (e *Engine) Predict(raw RawQuery) ([]CollegeMatch, error) {
	query, err := e.ResolveQuery(raw)
	if err != nil {
		return nil, err
	}

	matches, err := e.Match(query)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("Prediction completed",
		zap.Int("rank", query.Rank),
		zap.String("category", query.Category),
		zap.String("year", query.Year),
		zap.Bool("all_rounds", query.AllRounds),
		zap.Int("matches", len(matches)))
	return matches, nil
}
