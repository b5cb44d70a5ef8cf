package models

import "errors"

var (
	ErrPreferencesRecipeCountInvalid = errors.New("preferences recipe count invalid")
	ErrPreferencesServingsInvalid    = errors.New("preferences servings range invalid")
	ErrPreferencesTimeLimitNegative  = errors.New("preferences time limit negative")
	ErrPreferencesUnknownMealType    = errors.New("preferences unknown meal type")
	ErrPreferencesUnknownProteinType = errors.New("preferences unknown protein type")
	ErrPreferencesUnknownMethod      = errors.New("preferences unknown cooking method")
	ErrPreferencesUnknownDifficulty  = errors.New("preferences unknown difficulty")
)

const (
	DefaultRecipesPerWeek = 2
	DefaultServingsMin    = 5
	DefaultServingsMax    = 8
)

type ServingsRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Preferences is the committed set of weekly meal-planning constraints. An empty
// set on any closed-vocabulary axis means "no restriction, show all"; nil time
// limits mean unlimited. DietaryTags is open, drawn from tags on current recipes.
type Preferences struct {
	NumberOfRecipesPerWeek int           `json:"numberOfRecipesPerWeek"`
	NumOfServingsPerWeek   ServingsRange `json:"numOfServingsPerWeek"`
	MealType               []string      `json:"mealType"`
	ProteinType            []string      `json:"proteinType"`
	CookingMethod          []string      `json:"cookingMethod"`
	MaxPrepTime            *int          `json:"maxPrepTime"`
	MaxCookTime            *int          `json:"maxCookTime"`
	DifficultyLevels       []string      `json:"difficultyLevels"`
	DietaryTags            []string      `json:"dietaryTags"`
}

// PreferenceRecord is the single committed Preferences row.
type PreferenceRecord struct {
	ID          uint        `gorm:"primaryKey"`
	Preferences Preferences `gorm:"serializer:json;not null"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		NumberOfRecipesPerWeek: DefaultRecipesPerWeek,
		NumOfServingsPerWeek:   ServingsRange{Min: DefaultServingsMin, Max: DefaultServingsMax},
		MealType:               MealTypes(),
		ProteinType:            ProteinTypes(),
		CookingMethod:          CookingMethods(),
		MaxPrepTime:            nil,
		MaxCookTime:            nil,
		DifficultyLevels:       Difficulties(),
		DietaryTags:            []string{},
	}
}

func (preferences Preferences) Validate() error {
	if preferences.NumberOfRecipesPerWeek < 1 {
		return ErrPreferencesRecipeCountInvalid
	}
	servings := preferences.NumOfServingsPerWeek
	if servings.Min < 0 || servings.Max < 0 || servings.Min > servings.Max {
		return ErrPreferencesServingsInvalid
	}
	if preferences.MaxPrepTime != nil && *preferences.MaxPrepTime < 0 {
		return ErrPreferencesTimeLimitNegative
	}
	if preferences.MaxCookTime != nil && *preferences.MaxCookTime < 0 {
		return ErrPreferencesTimeLimitNegative
	}
	for _, value := range preferences.MealType {
		if !containsString(MealTypes(), value) {
			return ErrPreferencesUnknownMealType
		}
	}
	for _, value := range preferences.ProteinType {
		if !containsString(ProteinTypes(), value) {
			return ErrPreferencesUnknownProteinType
		}
	}
	for _, value := range preferences.CookingMethod {
		if !containsString(CookingMethods(), value) {
			return ErrPreferencesUnknownMethod
		}
	}
	for _, value := range preferences.DifficultyLevels {
		if !IsKnownDifficulty(value) {
			return ErrPreferencesUnknownDifficulty
		}
	}
	return nil
}

// Clone returns a copy that shares no slice storage with the receiver, so a
// draft can be edited without mutating the committed value.
func (preferences Preferences) Clone() Preferences {
	cloned := preferences
	cloned.MealType = cloneStrings(preferences.MealType)
	cloned.ProteinType = cloneStrings(preferences.ProteinType)
	cloned.CookingMethod = cloneStrings(preferences.CookingMethod)
	cloned.DifficultyLevels = cloneStrings(preferences.DifficultyLevels)
	cloned.DietaryTags = cloneStrings(preferences.DietaryTags)
	if preferences.MaxPrepTime != nil {
		value := *preferences.MaxPrepTime
		cloned.MaxPrepTime = &value
	}
	if preferences.MaxCookTime != nil {
		value := *preferences.MaxCookTime
		cloned.MaxCookTime = &value
	}
	return cloned
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	cloned := make([]string, len(values))
	copy(cloned, values)
	return cloned
}
