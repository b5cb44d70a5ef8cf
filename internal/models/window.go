package models

import "time"

// WeeklyPreferenceWindow binds a Preferences snapshot to one calendar week,
// [StartDate, EndDate). Accepted distinguishes a user-reviewed window from a
// system-generated default. Windows never overlap; at most one covers "now".
type WeeklyPreferenceWindow struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Preferences Preferences `gorm:"serializer:json;not null" json:"preferences"`
	StartDate   time.Time   `gorm:"not null;index" json:"startDate"`
	EndDate     time.Time   `gorm:"not null" json:"endDate"`
	Accepted    bool        `gorm:"not null;default:false" json:"accepted"`
}

// Covers reports whether now falls inside the half-open window range.
func (window WeeklyPreferenceWindow) Covers(now time.Time) bool {
	return !now.Before(window.StartDate) && now.Before(window.EndDate)
}

// Snapshot is the full persisted state: four independent, order-insensitive
// record sets, each serializable as plain JSON-compatible data.
type Snapshot struct {
	Recipes                 []Recipe                 `json:"recipes"`
	EatenEvents             []EatenEvent             `json:"eatenEvents"`
	Preferences             Preferences              `json:"preferences"`
	WeeklyPreferenceWindows []WeeklyPreferenceWindow `json:"weeklyPreferenceWindows"`
}
