// Package domain defines domain-level errors for the gaps feature.
package domain

import "errors"

var (
	// ErrDatasetUnavailable indicates the gap dataset file is absent.
	// Distinct from a filter that simply matches nothing.
	ErrDatasetUnavailable = errors.New("gap dataset unavailable")

	// ErrInvalidSchema indicates the dataset is missing required columns.
	ErrInvalidSchema = errors.New("invalid gap dataset format")
)
