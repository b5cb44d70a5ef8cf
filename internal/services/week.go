package services

import "time"

// DateAtLocation truncates a moment to local midnight in the given location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// StartOfWeek returns the most recent Sunday at local midnight. A Sunday is its
// own week start.
func StartOfWeek(value time.Time, location *time.Location) time.Time {
	day := DateAtLocation(value, location)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// WeekRange returns the half-open calendar week [start, end) covering value.
// AddDate keeps the window 7 wall-clock days across DST shifts and month or
// year boundaries.
func WeekRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := StartOfWeek(value, location)
	return start, start.AddDate(0, 0, 7)
}
