package errors

import (
	"errors"
	"fmt"
)

// Common error types for categorization and handling

var (
	// ErrMissingFields indicates required request fields were absent or null
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidRank indicates the rank could not be parsed as a positive integer
	ErrInvalidRank = errors.New("invalid rank")

	// ErrResolution indicates a fuzzy match fell below the acceptance threshold
	ErrResolution = errors.New("no close match found")

	// ErrNoData indicates the resolved filters have no records in the catalog
	ErrNoData = errors.New("no data for the given filters")

	// ErrNoRankMatch indicates records exist for the filters but none admit the rank
	ErrNoRankMatch = errors.New("no colleges within rank window")
)

// WrapError wraps an error with context message and stack
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf wraps an error with formatted context message
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsMissingFields checks if error is a missing fields error
func IsMissingFields(err error) bool {
	return errors.Is(err, ErrMissingFields)
}

// IsInvalidRank checks if error is an invalid rank error
func IsInvalidRank(err error) bool {
	return errors.Is(err, ErrInvalidRank)
}

// IsResolution checks if error is a failed fuzzy resolution
func IsResolution(err error) bool {
	return errors.Is(err, ErrResolution)
}

// IsNoData checks if error is a no data error
func IsNoData(err error) bool {
	return errors.Is(err, ErrNoData)
}

// IsNoRankMatch checks if error is an empty-after-rank-filter condition
func IsNoRankMatch(err error) bool {
	return errors.Is(err, ErrNoRankMatch)
}
