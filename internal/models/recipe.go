package models

import "time"

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Ingredient amounts stay free text ("1/2", "a pinch"); no unit arithmetic.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// Recipe is immutable after creation: there is no edit flow, only add and delete.
// Seq is the storage insertion order; listings are newest-first (seq DESC).
type Recipe struct {
	Seq             uint         `gorm:"primaryKey;autoIncrement" json:"-"`
	ID              string       `gorm:"uniqueIndex;not null" json:"id"`
	Name            string       `gorm:"not null" json:"name"`
	Description     string       `json:"description"`
	Ingredients     []Ingredient `gorm:"serializer:json" json:"ingredients"`
	Instructions    []string     `gorm:"serializer:json" json:"instructions"`
	PrepTimeMinutes int          `gorm:"not null;default:0" json:"prepTimeMinutes"`
	CookTimeMinutes int          `gorm:"not null;default:0" json:"cookTimeMinutes"`
	NumOfServings   int          `gorm:"not null;default:0" json:"numOfServings"`
	Difficulty      string       `gorm:"not null;default:Easy" json:"difficulty"`
	ProteinTypes    []string     `gorm:"serializer:json" json:"proteinTypes"`
	MealTypes       []string     `gorm:"serializer:json" json:"mealTypes"`
	CookingMethods  []string     `gorm:"serializer:json" json:"cookingMethods"`
	DietaryTags     []string     `gorm:"serializer:json" json:"dietaryTags"`
	Tags            []string     `gorm:"serializer:json" json:"tags"`
	ImageURL        string       `json:"imageUrl,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
}

func Difficulties() []string {
	return []string{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

func MealTypes() []string {
	return []string{"breakfast", "lunch", "dinner", "snack", "dessert"}
}

func ProteinTypes() []string {
	return []string{"chicken", "beef", "pork", "fish", "seafood", "tofu", "legumes", "eggs"}
}

func CookingMethods() []string {
	return []string{"bake", "grill", "roast", "fry", "stir-fry", "steam", "slow-cook", "no-cook"}
}

func IsKnownDifficulty(value string) bool {
	return containsString(Difficulties(), value)
}

func containsString(values []string, needle string) bool {
	for _, value := range values {
		if value == needle {
			return true
		}
	}
	return false
}
