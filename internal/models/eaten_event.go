package models

import "time"

// EatenEvent is one append-only ledger entry per mark-as-eaten action.
// RecipeID is a weak reference: deleting a recipe leaves its events in place,
// so readers must tolerate ids that no longer resolve.
type EatenEvent struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	RecipeID  string    `gorm:"not null;index" json:"recipeId"`
	DateEaten time.Time `gorm:"not null" json:"dateEaten"`
}
