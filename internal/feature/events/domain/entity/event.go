// Package entity defines the domain models for the events feature.
package entity

// EventRecord is one dated entry of the news-event dataset.
type EventRecord struct {
	Date      string // normalized YYYY-MM-DD
	Year      int    // calendar year, precomputed at load
	EventType string // categorical type (e.g., "FOMC")
}

// EconomicEventRecord is one entry of the binned economic-data dataset.
type EconomicEventRecord struct {
	Date      string
	EventType string
	Bin       string // outcome classification (e.g., "Beat", "Miss")
}
