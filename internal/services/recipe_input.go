package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperlin/homecook/internal/models"
)

var (
	ErrRecipeNameRequired        = errors.New("recipe name required")
	ErrRecipeIngredientsRequired = errors.New("recipe needs at least one ingredient")
	ErrRecipeTimesNegative       = errors.New("recipe times must be non-negative")
	ErrRecipeServingsNegative    = errors.New("recipe servings must be non-negative")
	ErrRecipeDifficultyUnknown   = errors.New("recipe difficulty unknown")
	ErrRecipeMealTypeUnknown     = errors.New("recipe meal type unknown")
	ErrRecipeProteinTypeUnknown  = errors.New("recipe protein type unknown")
	ErrRecipeMethodUnknown       = errors.New("recipe cooking method unknown")
)

// RecipeInput is the add-recipe form payload before validation.
type RecipeInput struct {
	Name            string
	Description     string
	Ingredients     []models.Ingredient
	Instructions    []string
	PrepTimeMinutes int
	CookTimeMinutes int
	NumOfServings   int
	Difficulty      string
	ProteinTypes    []string
	MealTypes       []string
	CookingMethods  []string
	DietaryTags     []string
	Tags            []string
	ImageURL        string
}

// NewRecipeFromInput validates the form and builds the immutable recipe:
// blank ingredient and instruction rows are dropped, the id is a fresh uuid.
// Validation never partially applies; the first violation rejects the input.
func NewRecipeFromInput(input RecipeInput, now time.Time) (models.Recipe, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Recipe{}, ErrRecipeNameRequired
	}

	ingredients := filterIngredients(input.Ingredients)
	if len(ingredients) == 0 {
		return models.Recipe{}, ErrRecipeIngredientsRequired
	}

	if input.PrepTimeMinutes < 0 || input.CookTimeMinutes < 0 {
		return models.Recipe{}, ErrRecipeTimesNegative
	}
	if input.NumOfServings < 0 {
		return models.Recipe{}, ErrRecipeServingsNegative
	}

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyEasy
	}
	if !models.IsKnownDifficulty(difficulty) {
		return models.Recipe{}, ErrRecipeDifficultyUnknown
	}
	if err := requireKnown(input.MealTypes, models.MealTypes(), ErrRecipeMealTypeUnknown); err != nil {
		return models.Recipe{}, err
	}
	if err := requireKnown(input.ProteinTypes, models.ProteinTypes(), ErrRecipeProteinTypeUnknown); err != nil {
		return models.Recipe{}, err
	}
	if err := requireKnown(input.CookingMethods, models.CookingMethods(), ErrRecipeMethodUnknown); err != nil {
		return models.Recipe{}, err
	}

	return models.Recipe{
		ID:              uuid.NewString(),
		Name:            name,
		Description:     strings.TrimSpace(input.Description),
		Ingredients:     ingredients,
		Instructions:    filterInstructions(input.Instructions),
		PrepTimeMinutes: input.PrepTimeMinutes,
		CookTimeMinutes: input.CookTimeMinutes,
		NumOfServings:   input.NumOfServings,
		Difficulty:      difficulty,
		ProteinTypes:    normalizeTags(input.ProteinTypes),
		MealTypes:       normalizeTags(input.MealTypes),
		CookingMethods:  normalizeTags(input.CookingMethods),
		DietaryTags:     normalizeTags(input.DietaryTags),
		Tags:            normalizeTags(input.Tags),
		ImageURL:        strings.TrimSpace(input.ImageURL),
		CreatedAt:       now,
	}, nil
}

// filterIngredients keeps rows with both a name and an amount, matching the
// add-recipe form which always carries trailing blank rows.
func filterIngredients(rows []models.Ingredient) []models.Ingredient {
	filtered := make([]models.Ingredient, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		amount := strings.TrimSpace(row.Amount)
		if name == "" || amount == "" {
			continue
		}
		filtered = append(filtered, models.Ingredient{
			Name:   name,
			Amount: amount,
			Unit:   strings.TrimSpace(row.Unit),
		})
	}
	return filtered
}

func filterInstructions(steps []string) []string {
	filtered := make([]string, 0, len(steps))
	for _, step := range steps {
		trimmed := strings.TrimSpace(step)
		if trimmed == "" {
			continue
		}
		filtered = append(filtered, trimmed)
	}
	return filtered
}

func normalizeTags(values []string) []string {
	normalized := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, duplicate := seen[trimmed]; duplicate {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	return normalized
}

func requireKnown(values []string, vocabulary []string, unknownErr error) error {
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		known := false
		for _, allowed := range vocabulary {
			if allowed == trimmed {
				known = true
				break
			}
		}
		if !known {
			return unknownErr
		}
	}
	return nil
}
