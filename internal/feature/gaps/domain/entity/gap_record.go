// Package entity defines the domain models for the gaps feature.
package entity

// GapRecord is one trading day's gap classification from the historical
// gap dataset. Records are immutable once loaded.
type GapRecord struct {
	Date              string  // trading day, YYYY-MM-DD
	GapSizeBin        string  // categorical size bin (e.g., "Large")
	DayOfWeek         string  // e.g., "Monday"
	GapDirection      string  // "Up" or "Down"
	Filled            bool    // whether price traded back through the prior close
	ReversalAfterFill bool    // whether price reversed after filling
	MoveBeforeFillPct float64 // move in fill direction before reversal, percent
	MaxMove30MinPct   float64 // max move in gap direction in the first 30 minutes, percent
	TimeToFillMinutes float64 // minutes until fill, meaningful only when Filled
	TimeOfLow         string  // "HH:MM", may be blank or unparseable
	TimeOfHigh        string  // "HH:MM", may be blank or unparseable
}
