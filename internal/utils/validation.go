package utils

import (
	"errors"
	"regexp"
	"time"
)

// Allow alphanumeric, underscore, hyphen, dot - common in system IDs
var validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateID validates that a system ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateWindow validates a rolling or lookback window in samples
func ValidateWindow(window int) error {
	if window < 1 {
		return errors.New("window must be at least 1 sample")
	}

	// A week of one-minute samples is as far back as any view looks.
	if window > 10080 {
		return errors.New("window too large (max 10080 samples)")
	}

	return nil
}

// ValidateThreshold validates a z-score threshold
func ValidateThreshold(threshold float64) error {
	if threshold <= 0 {
		return errors.New("threshold must be positive")
	}

	if threshold > 100 {
		return errors.New("threshold too large (max 100)")
	}

	return nil
}

// ValidateContamination validates an isolation forest contamination rate
func ValidateContamination(contamination float64) error {
	if contamination <= 0 {
		return errors.New("contamination must be positive")
	}

	if contamination > 0.5 {
		return errors.New("contamination too large (max 0.5)")
	}

	return nil
}

// ValidateTrees validates an isolation forest ensemble size
func ValidateTrees(trees int) error {
	if trees < 1 {
		return errors.New("trees must be at least 1")
	}

	if trees > 1000 {
		return errors.New("too many trees (max 1000)")
	}

	return nil
}

// ValidateDate validates date strings in YYYY-MM-DD format. Empty dates
// are allowed and leave the bound open.
func ValidateDate(date string) error {
	if date == "" {
		return nil
	}

	_, err := time.Parse("2006-01-02", date)
	if err != nil {
		return errors.New("invalid date format, use YYYY-MM-DD")
	}

	return nil
}

// ParseDate parses a YYYY-MM-DD date, returning the zero time for an
// empty string.
func ParseDate(date string) (time.Time, error) {
	if date == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", date)
}
