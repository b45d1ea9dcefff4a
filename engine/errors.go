package engine

import (
	"fmt"
	"strings"

	apperrors "kcet-predictor/errors"
)

// MissingFieldsError reports which required request fields were absent or null.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Unwrap() error { return apperrors.ErrMissingFields }

// InvalidRankError reports a rank that is not a positive integer.
type InvalidRankError struct {
	Value string
}

func (e *InvalidRankError) Error() string {
	return fmt.Sprintf("invalid rank %q: must be a positive integer", e.Value)
}

func (e *InvalidRankError) Unwrap() error { return apperrors.ErrInvalidRank }

// ResolutionError reports a fuzzy match below the acceptance threshold for a
// single field, carrying the sorted normalized catalog options as suggestions.
type ResolutionError struct {
	Field       string
	Input       string
	Suggestions []string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no close match for %s %q", e.Field, e.Input)
}

func (e *ResolutionError) Unwrap() error { return apperrors.ErrResolution }

// NoDataError reports that the resolved filters have no records at all,
// carrying the full set of valid filter values for the caller to present.
type NoDataError struct {
	Years      []string
	Categories []string
	Courses    []string
	Rounds     []string
}

func (e *NoDataError) Error() string {
	return "no cutoff data exists for the given filters"
}

func (e *NoDataError) Unwrap() error { return apperrors.ErrNoData }

// NoRankMatchError reports that records exist for the filters but none admit
// the caller's rank.
type NoRankMatchError struct {
	Rank          int
	IncludeNearby bool
}

func (e *NoRankMatchError) Error() string {
	return fmt.Sprintf("no colleges within rank window for rank %d", e.Rank)
}

func (e *NoRankMatchError) Unwrap() error { return apperrors.ErrNoRankMatch }
