package api

import "github.com/harperlin/homecook/internal/models"

type createRecipeRequest struct {
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	Ingredients     []models.Ingredient `json:"ingredients"`
	Instructions    []string            `json:"instructions"`
	PrepTimeMinutes int                 `json:"prepTimeMinutes"`
	CookTimeMinutes int                 `json:"cookTimeMinutes"`
	NumOfServings   int                 `json:"numOfServings"`
	Difficulty      string              `json:"difficulty"`
	ProteinTypes    []string            `json:"proteinTypes"`
	MealTypes       []string            `json:"mealTypes"`
	CookingMethods  []string            `json:"cookingMethods"`
	DietaryTags     []string            `json:"dietaryTags"`
	Tags            []string            `json:"tags"`
	ImageURL        string              `json:"imageUrl"`
}

// editDraftRequest mirrors the preference editor's field patches. Omitted
// fields are untouched; the clear flags set a time ceiling back to unlimited.
type editDraftRequest struct {
	NumberOfRecipesPerWeek *int     `json:"numberOfRecipesPerWeek"`
	ServingsMin            *int     `json:"servingsMin"`
	ServingsMax            *int     `json:"servingsMax"`
	MealType               []string `json:"mealType"`
	ProteinType            []string `json:"proteinType"`
	CookingMethod          []string `json:"cookingMethod"`
	DifficultyLevels       []string `json:"difficultyLevels"`
	DietaryTags            []string `json:"dietaryTags"`
	MaxPrepTime            *int     `json:"maxPrepTime"`
	ClearMaxPrepTime       bool     `json:"clearMaxPrepTime"`
	MaxCookTime            *int     `json:"maxCookTime"`
	ClearMaxCookTime       bool     `json:"clearMaxCookTime"`
}

type toggleDraftRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type cancelDraftRequest struct {
	Confirmed bool `json:"confirmed"`
}
