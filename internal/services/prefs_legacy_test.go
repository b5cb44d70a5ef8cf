package services

import (
	"strings"
	"testing"

	"github.com/harperlin/homecook/internal/models"
)

func TestNormalizePreferencesPayloadEmptyAndNull(t *testing.T) {
	for _, raw := range []string{"", "  ", "null"} {
		preferences, err := NormalizePreferencesPayload([]byte(raw))
		if err != nil {
			t.Fatalf("payload %q: %v", raw, err)
		}
		if preferences.NumberOfRecipesPerWeek != models.DefaultRecipesPerWeek {
			t.Fatalf("payload %q: recipes/week = %d, want defaults", raw, preferences.NumberOfRecipesPerWeek)
		}
	}
}

func TestNormalizePreferencesPayloadCanonical(t *testing.T) {
	raw := []byte(`{
		"numberOfRecipesPerWeek": 4,
		"numOfServingsPerWeek": {"min": 2, "max": 6},
		"mealType": ["dinner", "lunch"],
		"proteinType": ["tofu"],
		"cookingMethod": ["bake"],
		"difficultyLevels": ["Easy", "Hard"],
		"dietaryTags": ["vegan"]
	}`)

	preferences, err := NormalizePreferencesPayload(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if preferences.NumberOfRecipesPerWeek != 4 {
		t.Fatalf("recipes/week = %d, want 4", preferences.NumberOfRecipesPerWeek)
	}
	if preferences.NumOfServingsPerWeek.Min != 2 || preferences.NumOfServingsPerWeek.Max != 6 {
		t.Fatalf("servings = %+v", preferences.NumOfServingsPerWeek)
	}
	if len(preferences.MealType) != 2 || len(preferences.ProteinType) != 1 {
		t.Fatalf("sets = %v / %v", preferences.MealType, preferences.ProteinType)
	}
}

func TestNormalizePreferencesPayloadLegacyV2(t *testing.T) {
	raw := []byte(`{
		"numberOfReceipesPerWeek": 3,
		"numOfServingsPerWeek": {"min": 4, "max": 10},
		"mealType": ["dinner"],
		"proteinType": ["chicken", "venison"],
		"maxPrepTime": 45,
		"dietaryTags": ["dairy-free"]
	}`)

	preferences, err := NormalizePreferencesPayload(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if preferences.NumberOfRecipesPerWeek != 3 {
		t.Fatalf("recipes/week = %d, want 3", preferences.NumberOfRecipesPerWeek)
	}
	if preferences.NumOfServingsPerWeek.Min != 4 || preferences.NumOfServingsPerWeek.Max != 10 {
		t.Fatalf("servings = %+v", preferences.NumOfServingsPerWeek)
	}
	// The v2 schema had no cookingMethod axis; it defaults to everything enabled.
	if len(preferences.CookingMethod) != len(models.CookingMethods()) {
		t.Fatalf("cookingMethod = %v, want full vocabulary", preferences.CookingMethod)
	}
	// Unknown protein dropped, known kept.
	if len(preferences.ProteinType) != 1 || preferences.ProteinType[0] != "chicken" {
		t.Fatalf("proteinType = %v, want [chicken]", preferences.ProteinType)
	}
	if preferences.MaxPrepTime == nil || *preferences.MaxPrepTime != 45 {
		t.Fatalf("maxPrepTime = %v, want 45", preferences.MaxPrepTime)
	}
	if preferences.MaxCookTime != nil {
		t.Fatalf("maxCookTime = %v, want nil", preferences.MaxCookTime)
	}
}

func TestNormalizePreferencesPayloadLegacyV1(t *testing.T) {
	raw := []byte(`{
		"numberOfMeals": 5,
		"preferredCategories": ["italian", "comfort food"],
		"maxCookTime": 60
	}`)

	preferences, err := NormalizePreferencesPayload(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if preferences.NumberOfRecipesPerWeek != 5 {
		t.Fatalf("recipes/week = %d, want 5", preferences.NumberOfRecipesPerWeek)
	}
	if len(preferences.DietaryTags) != 2 || preferences.DietaryTags[0] != "italian" {
		t.Fatalf("dietaryTags = %v, want categories carried over", preferences.DietaryTags)
	}
	if preferences.MaxCookTime == nil || *preferences.MaxCookTime != 60 {
		t.Fatalf("maxCookTime = %v, want 60", preferences.MaxCookTime)
	}
	if len(preferences.MealType) != len(models.MealTypes()) {
		t.Fatalf("mealType = %v, want full vocabulary", preferences.MealType)
	}
}

func TestNormalizePreferencesPayloadClampsOutOfRange(t *testing.T) {
	raw := []byte(`{
		"numberOfRecipesPerWeek": 0,
		"numOfServingsPerWeek": {"min": -2, "max": -5},
		"maxPrepTime": -10,
		"difficultyLevels": ["Easy", "Nightmare"]
	}`)

	preferences, err := NormalizePreferencesPayload(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if preferences.NumberOfRecipesPerWeek != models.DefaultRecipesPerWeek {
		t.Fatalf("recipes/week = %d, want clamped default", preferences.NumberOfRecipesPerWeek)
	}
	if preferences.NumOfServingsPerWeek.Min != 0 || preferences.NumOfServingsPerWeek.Max != 0 {
		t.Fatalf("servings = %+v, want clamped to zero", preferences.NumOfServingsPerWeek)
	}
	if preferences.MaxPrepTime != nil {
		t.Fatalf("maxPrepTime = %v, want negative ceiling dropped", preferences.MaxPrepTime)
	}
	if len(preferences.DifficultyLevels) != 1 || preferences.DifficultyLevels[0] != "Easy" {
		t.Fatalf("difficultyLevels = %v, want unknown dropped", preferences.DifficultyLevels)
	}
}

func TestNormalizePreferencesPayloadUnrecognizedShape(t *testing.T) {
	_, err := NormalizePreferencesPayload([]byte(`{"theme": "dark"}`))
	if err == nil || !strings.Contains(err.Error(), "unrecognized") {
		t.Fatalf("err = %v, want unrecognized shape", err)
	}
}
