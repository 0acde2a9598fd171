package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"09:35", 575, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{" 10:15 ", 615, true},
		{"", 0, false},
		{"N/A", 0, false},
		{"9:35:00", 0, false},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"-1:30", 0, false},
		{"ab:cd", 0, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			got, ok := timeToMinutes(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "09:35", minutesToTime(575))
	assert.Equal(t, "00:00", minutesToTime(0))
	assert.Equal(t, "23:59", minutesToTime(1439))
}

// TestClockRoundTrip verifies time_to_minutes/minutes_to_time round-trips
// for every valid minute of the day.
func TestClockRoundTrip(t *testing.T) {
	for m := 0; m < 24*60; m++ {
		s := minutesToTime(m)
		back, ok := timeToMinutes(s)
		assert.True(t, ok, "formatted value %q must parse", s)
		assert.Equal(t, m, back)
	}
}
