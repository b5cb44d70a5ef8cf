// Package store owns all persistent entity state: recipes, the eaten-event
// ledger, committed preferences and weekly preference windows. State lives in
// memory and is written through to SQLite after every mutation, so the durable
// snapshot is never more than one user action stale.
package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/harperlin/homecook/internal/db"
	"github.com/harperlin/homecook/internal/models"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrWindowNotFound = errors.New("window not found")
)

type Store struct {
	mu    sync.Mutex
	now   func() time.Time
	repos *db.Repositories

	recipes     []models.Recipe // newest-first, display order
	events      []models.EatenEvent
	preferences models.Preferences
	windows     []models.WeeklyPreferenceWindow // ascending by start date
}

// Open restores the last persisted snapshot, falling back to defaults on first
// run (no recipes, no events, default preferences). The first current-week
// window is created lazily by the window resolver on first access.
func Open(repos *db.Repositories, now func() time.Time) (*Store, error) {
	if now == nil {
		now = time.Now
	}

	recipes, err := repos.Recipes.ListNewestFirst()
	if err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}
	events, err := repos.EatenEvents.List()
	if err != nil {
		return nil, fmt.Errorf("load eaten events: %w", err)
	}
	windows, err := repos.Windows.List()
	if err != nil {
		return nil, fmt.Errorf("load preference windows: %w", err)
	}
	preferences, found, err := repos.Preferences.Load()
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	if !found {
		preferences = models.DefaultPreferences()
		if err := repos.Preferences.Save(preferences); err != nil {
			return nil, fmt.Errorf("seed default preferences: %w", err)
		}
	}

	return &Store{
		now:         now,
		repos:       repos,
		recipes:     recipes,
		events:      events,
		preferences: preferences,
		windows:     windows,
	}, nil
}

func (store *Store) Recipes() []models.Recipe {
	store.mu.Lock()
	defer store.mu.Unlock()
	return append([]models.Recipe(nil), store.recipes...)
}

func (store *Store) Events() []models.EatenEvent {
	store.mu.Lock()
	defer store.mu.Unlock()
	return append([]models.EatenEvent(nil), store.events...)
}

func (store *Store) Preferences() models.Preferences {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.preferences.Clone()
}

func (store *Store) Windows() []models.WeeklyPreferenceWindow {
	store.mu.Lock()
	defer store.mu.Unlock()
	return append([]models.WeeklyPreferenceWindow(nil), store.windows...)
}

// Snapshot captures the full current state as plain serializable data.
func (store *Store) Snapshot() models.Snapshot {
	store.mu.Lock()
	defer store.mu.Unlock()
	return models.Snapshot{
		Recipes:                 append([]models.Recipe(nil), store.recipes...),
		EatenEvents:             append([]models.EatenEvent(nil), store.events...),
		Preferences:             store.preferences.Clone(),
		WeeklyPreferenceWindows: append([]models.WeeklyPreferenceWindow(nil), store.windows...),
	}
}

// AddRecipe prepends an already-validated recipe. Newest-first position is the
// display order and also decides recipe of the week.
func (store *Store) AddRecipe(recipe models.Recipe) (models.Recipe, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	persisted := recipe
	if err := store.repos.Recipes.Create(&persisted); err != nil {
		store.recipes = append([]models.Recipe{recipe}, store.recipes...)
		return recipe, &PersistenceWarning{Op: "recipe", Err: err}
	}
	store.recipes = append([]models.Recipe{persisted}, store.recipes...)
	return persisted, nil
}

// DeleteRecipe removes the recipe only; its eaten events stay in the ledger and
// dangle on purpose.
func (store *Store) DeleteRecipe(recipeID string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	index := store.indexOfRecipe(recipeID)
	if index < 0 {
		return ErrRecipeNotFound
	}
	store.recipes = append(store.recipes[:index], store.recipes[index+1:]...)

	if err := store.repos.Recipes.DeleteByID(recipeID); err != nil {
		return &PersistenceWarning{Op: "recipe delete", Err: err}
	}
	return nil
}

// RecordEaten appends one ledger event at the current time. An id that does not
// resolve to a current recipe is a silent no-op: nothing is recorded, recorded
// is false and no error is returned.
func (store *Store) RecordEaten(recipeID string) (models.EatenEvent, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.indexOfRecipe(recipeID) < 0 {
		return models.EatenEvent{}, false, nil
	}

	event := models.EatenEvent{RecipeID: recipeID, DateEaten: store.now()}
	persisted := event
	if err := store.repos.EatenEvents.Create(&persisted); err != nil {
		store.events = append(store.events, event)
		return event, true, &PersistenceWarning{Op: "eaten event", Err: err}
	}
	store.events = append(store.events, persisted)
	return persisted, true, nil
}

// CommitPreferences replaces the committed copy after validating it. Invalid
// preferences leave both memory and storage untouched.
func (store *Store) CommitPreferences(preferences models.Preferences) error {
	if err := preferences.Validate(); err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	store.preferences = preferences.Clone()
	if err := store.repos.Preferences.Save(store.preferences); err != nil {
		return &PersistenceWarning{Op: "preferences", Err: err}
	}
	return nil
}

// AppendWindow inserts a new weekly preference window keeping the collection
// sorted by start date. The returned window carries its assigned id.
func (store *Store) AppendWindow(window models.WeeklyPreferenceWindow) (models.WeeklyPreferenceWindow, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	persisted := window
	err := store.repos.Windows.Create(&persisted)
	if err != nil {
		persisted = window
		persisted.ID = store.nextLocalWindowID()
	}

	store.windows = append(store.windows, persisted)
	sort.SliceStable(store.windows, func(i, j int) bool {
		return store.windows[i].StartDate.Before(store.windows[j].StartDate)
	})

	if err != nil {
		return persisted, &PersistenceWarning{Op: "window", Err: err}
	}
	return persisted, nil
}

func (store *Store) MarkWindowAccepted(windowID uint) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for index := range store.windows {
		if store.windows[index].ID != windowID {
			continue
		}
		store.windows[index].Accepted = true
		if err := store.repos.Windows.UpdateAccepted(windowID, true); err != nil {
			return &PersistenceWarning{Op: "window accepted", Err: err}
		}
		return nil
	}
	return ErrWindowNotFound
}

// ReplaceAll swaps the entire state for an imported snapshot. The caller has
// already validated and normalized it. Each entity type persists independently;
// failures are reported together as one warning.
func (store *Store) ReplaceAll(snapshot models.Snapshot) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	windows := append([]models.WeeklyPreferenceWindow(nil), snapshot.WeeklyPreferenceWindows...)
	sort.SliceStable(windows, func(i, j int) bool {
		return windows[i].StartDate.Before(windows[j].StartDate)
	})
	for index := range windows {
		windows[index].ID = uint(index + 1)
	}

	store.recipes = append([]models.Recipe(nil), snapshot.Recipes...)
	store.events = append([]models.EatenEvent(nil), snapshot.EatenEvents...)
	store.preferences = snapshot.Preferences.Clone()
	store.windows = windows

	var failures []error
	if err := store.repos.Recipes.ReplaceAll(store.recipes); err != nil {
		failures = append(failures, fmt.Errorf("recipes: %w", err))
	}
	if err := store.repos.EatenEvents.ReplaceAll(store.events); err != nil {
		failures = append(failures, fmt.Errorf("eaten events: %w", err))
	}
	if err := store.repos.Preferences.Save(store.preferences); err != nil {
		failures = append(failures, fmt.Errorf("preferences: %w", err))
	}
	if err := store.repos.Windows.ReplaceAll(store.windows); err != nil {
		failures = append(failures, fmt.Errorf("windows: %w", err))
	}
	if len(failures) > 0 {
		return &PersistenceWarning{Op: "snapshot", Err: errors.Join(failures...)}
	}
	return nil
}

func (store *Store) indexOfRecipe(recipeID string) int {
	for index := range store.recipes {
		if store.recipes[index].ID == recipeID {
			return index
		}
	}
	return -1
}

func (store *Store) nextLocalWindowID() uint {
	var maxID uint
	for _, window := range store.windows {
		if window.ID > maxID {
			maxID = window.ID
		}
	}
	return maxID + 1
}
