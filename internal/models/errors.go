package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation.
var (
	ErrMissingGene    = errors.New("gene identifier is required")
	ErrEmptyGeneList  = errors.New("gene list is empty")
	ErrInvalidQuality = errors.New("quality must be between 0 and 1")
)

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("run not found")

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}
