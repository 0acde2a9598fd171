// Package domain defines domain-level errors for the candles feature.
package domain

import "errors"

var (
	// ErrUnknownTicker indicates the requested ticker is not on the allow-list.
	ErrUnknownTicker = errors.New("unknown ticker")

	// ErrInvalidDate indicates the date parameter was not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date format")

	// ErrNoBackingData indicates the ticker has no shard files at all.
	ErrNoBackingData = errors.New("no backing data for ticker")

	// ErrNoDataForDate indicates the shards hold no candles for the request.
	ErrNoDataForDate = errors.New("no data for the selected date")
)
