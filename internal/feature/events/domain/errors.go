// Package domain defines domain-level errors for the events feature.
package domain

import "errors"

var (
	// ErrDatasetUnavailable indicates an events dataset file is absent.
	ErrDatasetUnavailable = errors.New("events dataset unavailable")

	// ErrInvalidSchema indicates a dataset is missing required columns.
	ErrInvalidSchema = errors.New("invalid events data format")

	// ErrInvalidYear indicates the year filter was not a valid integer.
	ErrInvalidYear = errors.New("invalid year format")
)
