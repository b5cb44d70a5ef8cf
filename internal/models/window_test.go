package models

import (
	"testing"
	"time"
)

func TestWindowCoversIsHalfOpen(t *testing.T) {
	window := WeeklyPreferenceWindow{
		StartDate: time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC),
	}

	if !window.Covers(window.StartDate) {
		t.Fatal("start instant must be covered")
	}
	if !window.Covers(time.Date(2026, 2, 21, 23, 59, 59, 0, time.UTC)) {
		t.Fatal("last second of the week must be covered")
	}
	if window.Covers(window.EndDate) {
		t.Fatal("end instant belongs to the next window")
	}
	if window.Covers(window.StartDate.Add(-time.Nanosecond)) {
		t.Fatal("instants before start are not covered")
	}
}
