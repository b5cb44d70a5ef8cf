package services

import (
	"sort"
	"time"

	"github.com/harperlin/homecook/internal/models"
)

// RecipeOfTheWeek is the head of the newest-first recipe list. Selection is
// purely positional; the weekly preference window is not consulted. That is a
// known product limitation, not a planning algorithm.
func RecipeOfTheWeek(recipes []models.Recipe) (models.Recipe, bool) {
	if len(recipes) == 0 {
		return models.Recipe{}, false
	}
	return recipes[0], true
}

// AllOtherRecipes is everything but the featured head, order preserved.
func AllOtherRecipes(recipes []models.Recipe) []models.Recipe {
	if len(recipes) <= 1 {
		return []models.Recipe{}
	}
	return append([]models.Recipe{}, recipes[1:]...)
}

type HistoryEntry struct {
	Recipe      models.Recipe `json:"recipe"`
	LastEatenAt time.Time     `json:"lastEatenAt"`
}

// EatenHistory joins the event ledger to the recipes that still exist: one
// entry per recipe carrying its most recent eaten date, sorted newest first.
// Events whose recipe has been deleted are skipped, not an error.
func EatenHistory(recipes []models.Recipe, events []models.EatenEvent) []HistoryEntry {
	byID := make(map[string]models.Recipe, len(recipes))
	for _, recipe := range recipes {
		byID[recipe.ID] = recipe
	}

	latest := make(map[string]time.Time, len(events))
	for _, event := range events {
		if _, exists := byID[event.RecipeID]; !exists {
			continue
		}
		if current, seen := latest[event.RecipeID]; !seen || event.DateEaten.After(current) {
			latest[event.RecipeID] = event.DateEaten
		}
	}

	entries := make([]HistoryEntry, 0, len(latest))
	for recipeID, eatenAt := range latest {
		entries = append(entries, HistoryEntry{Recipe: byID[recipeID], LastEatenAt: eatenAt})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].LastEatenAt.Equal(entries[j].LastEatenAt) {
			return entries[i].Recipe.ID < entries[j].Recipe.ID
		}
		return entries[i].LastEatenAt.After(entries[j].LastEatenAt)
	})
	return entries
}

// LatestEatenAt returns the most recent eaten date for one recipe.
func LatestEatenAt(events []models.EatenEvent, recipeID string) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, event := range events {
		if event.RecipeID != recipeID {
			continue
		}
		if !found || event.DateEaten.After(latest) {
			latest = event.DateEaten
			found = true
		}
	}
	return latest, found
}

// AvailableDietaryTags collects the distinct tags across current recipes,
// sorted. The preference editor offers these instead of a fixed vocabulary.
func AvailableDietaryTags(recipes []models.Recipe) []string {
	seen := make(map[string]struct{})
	for _, recipe := range recipes {
		for _, tag := range recipe.Tags {
			seen[tag] = struct{}{}
		}
		for _, tag := range recipe.DietaryTags {
			seen[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
