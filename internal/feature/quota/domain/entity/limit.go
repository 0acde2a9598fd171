// Package entity defines the domain models for the quota feature.
package entity

import "time"

// Operation classes tracked independently per session.
const (
	ClassDefault  = "default"
	ClassInsights = "insights"
)

// Limit caps one operation class: at most Max admissions per Window.
type Limit struct {
	Max    int
	Window time.Duration
}
