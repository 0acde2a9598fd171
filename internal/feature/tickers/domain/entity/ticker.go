// Package entity defines the domain models for the tickers feature.
package entity

// Ticker is one symbol of the fixed universe served by this backend.
type Ticker struct {
	Symbol string // canonical upper-case symbol (e.g., "QQQ")
	Valid  bool   // true once backing shard data was confirmed present
}
