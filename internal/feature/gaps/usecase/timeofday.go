package usecase

import (
	"fmt"
	"strconv"
	"strings"
)

// timeToMinutes parses an "HH:MM" clock string into minutes since midnight.
// The second return value reports whether the input was parseable; callers
// exclude unparseable values from aggregates rather than counting them as 0.
func timeToMinutes(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, false
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, false
	}
	return hh*60 + mm, true
}

// minutesToTime formats minutes since midnight back into zero-padded "HH:MM".
func minutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
