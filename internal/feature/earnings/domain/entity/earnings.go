// Package entity defines the domain models for the earnings feature.
package entity

// EarningsRecord is one earnings announcement with its surprise bin.
type EarningsRecord struct {
	Ticker string // canonical upper-case symbol
	Date   string // earnings date, normalized YYYY-MM-DD
	Bin    string // surprise classification, one of the ValidBins set
}

// ValidBins is the closed set of earnings surprise classifications.
var ValidBins = map[string]struct{}{
	"Beat":        {},
	"Slight Beat": {},
	"Miss":        {},
	"Slight Miss": {},
	"Unknown":     {},
}
