package services

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/harperlin/homecook/internal/models"
)

// Three preference schemas exist in the wild. The oldest kept a flat meal count
// plus free-text categories; the middle one introduced the servings range and
// per-axis sets under misspelled keys; the canonical one is what this code
// writes. Loaded payloads are never trusted to be canonical: they are detected
// by their discriminating keys and rebuilt, with unknown axes defaulted and
// out-of-range numbers clamped.

type legacyPreferencesV1 struct {
	NumberOfMeals       int      `json:"numberOfMeals"`
	PreferredCategories []string `json:"preferredCategories"`
	MaxPrepTime         *int     `json:"maxPrepTime"`
	MaxCookTime         *int     `json:"maxCookTime"`
	DifficultyLevels    []string `json:"difficultyLevels"`
}

type legacyPreferencesV2 struct {
	NumberOfReceipesPerWeek int                   `json:"numberOfReceipesPerWeek"`
	NumOfServingsPerWeek    *models.ServingsRange `json:"numOfServingsPerWeek"`
	MealType                []string              `json:"mealType"`
	ProteinType             []string              `json:"proteinType"`
	MaxPrepTime             *int                  `json:"maxPrepTime"`
	MaxCookTime             *int                  `json:"maxCookTime"`
	DifficultyLevels        []string              `json:"difficultyLevels"`
	DietaryTags             []string              `json:"dietaryTags"`
}

// NormalizePreferencesPayload turns any historical preferences payload into a
// valid canonical Preferences value.
func NormalizePreferencesPayload(raw []byte) (models.Preferences, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return models.DefaultPreferences(), nil
	}

	keys := make(map[string]json.RawMessage)
	if err := json.Unmarshal(trimmed, &keys); err != nil {
		return models.Preferences{}, fmt.Errorf("decode preferences payload: %w", err)
	}

	switch {
	case hasKey(keys, "numberOfRecipesPerWeek"):
		preferences := models.DefaultPreferences()
		if err := json.Unmarshal(trimmed, &preferences); err != nil {
			return models.Preferences{}, fmt.Errorf("decode canonical preferences: %w", err)
		}
		return sanitizePreferences(preferences), nil

	case hasKey(keys, "numberOfReceipesPerWeek"):
		var legacy legacyPreferencesV2
		if err := json.Unmarshal(trimmed, &legacy); err != nil {
			return models.Preferences{}, fmt.Errorf("decode legacy v2 preferences: %w", err)
		}
		preferences := models.DefaultPreferences()
		preferences.NumberOfRecipesPerWeek = legacy.NumberOfReceipesPerWeek
		if legacy.NumOfServingsPerWeek != nil {
			preferences.NumOfServingsPerWeek = *legacy.NumOfServingsPerWeek
		}
		if legacy.MealType != nil {
			preferences.MealType = legacy.MealType
		}
		if legacy.ProteinType != nil {
			preferences.ProteinType = legacy.ProteinType
		}
		if legacy.DifficultyLevels != nil {
			preferences.DifficultyLevels = legacy.DifficultyLevels
		}
		if legacy.DietaryTags != nil {
			preferences.DietaryTags = legacy.DietaryTags
		}
		preferences.MaxPrepTime = legacy.MaxPrepTime
		preferences.MaxCookTime = legacy.MaxCookTime
		return sanitizePreferences(preferences), nil

	case hasKey(keys, "numberOfMeals"):
		var legacy legacyPreferencesV1
		if err := json.Unmarshal(trimmed, &legacy); err != nil {
			return models.Preferences{}, fmt.Errorf("decode legacy v1 preferences: %w", err)
		}
		preferences := models.DefaultPreferences()
		preferences.NumberOfRecipesPerWeek = legacy.NumberOfMeals
		if legacy.DifficultyLevels != nil {
			preferences.DifficultyLevels = legacy.DifficultyLevels
		}
		preferences.MaxPrepTime = legacy.MaxPrepTime
		preferences.MaxCookTime = legacy.MaxCookTime
		// Free-text categories predate the closed vocabularies; they survive on
		// the only remaining open axis.
		preferences.DietaryTags = append([]string{}, legacy.PreferredCategories...)
		return sanitizePreferences(preferences), nil

	default:
		return models.Preferences{}, fmt.Errorf("unrecognized preferences payload shape")
	}
}

// sanitizePreferences clamps numbers into range and drops set values that are
// no longer part of the closed vocabularies.
func sanitizePreferences(preferences models.Preferences) models.Preferences {
	if preferences.NumberOfRecipesPerWeek < 1 {
		preferences.NumberOfRecipesPerWeek = models.DefaultRecipesPerWeek
	}
	servings := preferences.NumOfServingsPerWeek
	if servings.Min < 0 {
		servings.Min = 0
	}
	if servings.Max < servings.Min {
		servings.Max = servings.Min
	}
	preferences.NumOfServingsPerWeek = servings

	if preferences.MaxPrepTime != nil && *preferences.MaxPrepTime < 0 {
		preferences.MaxPrepTime = nil
	}
	if preferences.MaxCookTime != nil && *preferences.MaxCookTime < 0 {
		preferences.MaxCookTime = nil
	}

	preferences.MealType = keepKnown(preferences.MealType, models.MealTypes())
	preferences.ProteinType = keepKnown(preferences.ProteinType, models.ProteinTypes())
	preferences.CookingMethod = keepKnown(preferences.CookingMethod, models.CookingMethods())
	preferences.DifficultyLevels = keepKnown(preferences.DifficultyLevels, models.Difficulties())
	preferences.DietaryTags = normalizeTags(preferences.DietaryTags)
	return preferences
}

func keepKnown(values []string, vocabulary []string) []string {
	kept := make([]string, 0, len(values))
	for _, value := range normalizeTags(values) {
		for _, allowed := range vocabulary {
			if allowed == value {
				kept = append(kept, value)
				break
			}
		}
	}
	return kept
}

func hasKey(keys map[string]json.RawMessage, name string) bool {
	_, exists := keys[name]
	return exists
}
