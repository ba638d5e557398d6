package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var refNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func TestTrailingWindow(t *testing.T) {
	w := TrailingWindow(refNow, 7)
	assert.Equal(t, "2026-10-12", w.Start)
	assert.Equal(t, "2026-10-18", w.End)

	w = TrailingWindow(refNow, 28)
	assert.Equal(t, "2026-09-21", w.Start)

	// non-positive lengths collapse to today only
	w = TrailingWindow(refNow, 0)
	assert.Equal(t, w.Start, w.End)
}

func TestWindowContains(t *testing.T) {
	w := TrailingWindow(refNow, 7)
	tests := []struct {
		date string
		want bool
	}{
		{"2026-10-18", true},
		{"2026-10-12", true},
		{"2026-10-11", false},
		{"2026-10-19", false},
		{"2026-10-18T23:59:59+05:00", true},
		{"2026-10-12T00:00:00Z", true},
		{"2026-10-11T23:59:59Z", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, w.Contains(tt.date), tt.date)
	}
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2026-10-18", DayKey("2026-10-18"))
	assert.Equal(t, "2026-10-18", DayKey("2026-10-18T00:00:00.000Z"))
	assert.Equal(t, "", DayKey(""))
}
