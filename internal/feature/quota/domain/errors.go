// Package domain defines domain-level errors for the quota feature.
package domain

import (
	"fmt"
	"time"
)

// QuotaExceededError is returned when a session has used up its allowance
// for an operation class. It carries the limit so the HTTP layer can tell
// the client what the allowance actually is.
type QuotaExceededError struct {
	Class  string
	Max    int
	Window time.Duration
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded for class %s: %d per %s", e.Class, e.Max, e.Window)
}
