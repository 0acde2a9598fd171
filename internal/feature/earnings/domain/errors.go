// Package domain defines domain-level errors for the earnings feature.
package domain

import "errors"

var (
	// ErrDatasetUnavailable indicates the earnings dataset file is absent.
	ErrDatasetUnavailable = errors.New("earnings dataset unavailable")

	// ErrInvalidSchema indicates the dataset is missing required columns.
	ErrInvalidSchema = errors.New("invalid earnings data format")

	// ErrMissingTicker is returned when the required ticker parameter is absent.
	ErrMissingTicker = errors.New("ticker is required")

	// ErrMissingBin is returned when the required bin parameter is absent.
	ErrMissingBin = errors.New("bin is required")

	// ErrInvalidBin is returned for a bin outside the closed surprise set.
	ErrInvalidBin = errors.New("invalid earnings bin")

	// ErrUnknownTicker indicates the requested ticker is not on the allow-list.
	ErrUnknownTicker = errors.New("unknown ticker")
)
