package services

import (
	"errors"
	"sync"

	"github.com/harperlin/homecook/internal/models"
)

const unsavedChangesPrompt = "You have unsaved changes. Are you sure you want to cancel?"

var ErrDraftUnknownField = errors.New("draft field unknown")

// Draft field names accepted by Toggle.
const (
	DraftFieldMealType      = "mealType"
	DraftFieldProteinType   = "proteinType"
	DraftFieldCookingMethod = "cookingMethod"
	DraftFieldDifficulty    = "difficultyLevels"
	DraftFieldDietaryTags   = "dietaryTags"
)

// PreferenceCommitter is the slice of the entity store the draft controller
// needs: read the committed copy and replace it on save.
type PreferenceCommitter interface {
	Preferences() models.Preferences
	CommitPreferences(models.Preferences) error
}

// PreferencePatch carries partial edits. Nil fields are untouched; an empty
// non-nil slice clears that set. The time ceilings follow the set-flag pattern
// so "set to unlimited" is distinguishable from "leave alone".
type PreferencePatch struct {
	NumberOfRecipesPerWeek *int
	NumOfServingsPerWeek   *models.ServingsRange
	MealType               []string
	ProteinType            []string
	CookingMethod          []string
	DifficultyLevels       []string
	DietaryTags            []string
	MaxPrepTimeSet         bool
	MaxPrepTime            *int
	MaxCookTimeSet         bool
	MaxCookTime            *int
}

// PreferenceDraft is the editable working copy of Preferences, kept apart from
// the committed value. Dirtiness is patch-driven: any edit marks the draft
// dirty, even one that happens to restore the committed content. Only Save,
// Reset and Cancel return it to clean; there is no auto-save.
type PreferenceDraft struct {
	mu        sync.Mutex
	store     PreferenceCommitter
	committed models.Preferences
	draft     models.Preferences
	dirty     bool
}

func NewPreferenceDraft(store PreferenceCommitter) *PreferenceDraft {
	controller := &PreferenceDraft{store: store}
	controller.Load(store.Preferences())
	return controller
}

// Load resets the draft to a fresh committed value. Must be re-run whenever the
// committed copy changes outside this controller (e.g. a snapshot import).
func (controller *PreferenceDraft) Load(committed models.Preferences) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.committed = committed.Clone()
	controller.draft = committed.Clone()
	controller.dirty = false
}

func (controller *PreferenceDraft) Draft() models.Preferences {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.draft.Clone()
}

func (controller *PreferenceDraft) Dirty() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.dirty
}

// Edit merges the patch into the draft and marks it dirty.
func (controller *PreferenceDraft) Edit(patch PreferencePatch) {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if patch.NumberOfRecipesPerWeek != nil {
		controller.draft.NumberOfRecipesPerWeek = *patch.NumberOfRecipesPerWeek
	}
	if patch.NumOfServingsPerWeek != nil {
		controller.draft.NumOfServingsPerWeek = *patch.NumOfServingsPerWeek
	}
	if patch.MealType != nil {
		controller.draft.MealType = append([]string{}, patch.MealType...)
	}
	if patch.ProteinType != nil {
		controller.draft.ProteinType = append([]string{}, patch.ProteinType...)
	}
	if patch.CookingMethod != nil {
		controller.draft.CookingMethod = append([]string{}, patch.CookingMethod...)
	}
	if patch.DifficultyLevels != nil {
		controller.draft.DifficultyLevels = append([]string{}, patch.DifficultyLevels...)
	}
	if patch.DietaryTags != nil {
		controller.draft.DietaryTags = append([]string{}, patch.DietaryTags...)
	}
	if patch.MaxPrepTimeSet {
		controller.draft.MaxPrepTime = clonedInt(patch.MaxPrepTime)
	}
	if patch.MaxCookTimeSet {
		controller.draft.MaxCookTime = clonedInt(patch.MaxCookTime)
	}
	controller.dirty = true
}

// Toggle applies symmetric-difference semantics to a set-valued field: a value
// already present is removed, a missing one is added. Either way the draft is
// dirty afterwards.
func (controller *PreferenceDraft) Toggle(field string, value string) error {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	var target *[]string
	switch field {
	case DraftFieldMealType:
		target = &controller.draft.MealType
	case DraftFieldProteinType:
		target = &controller.draft.ProteinType
	case DraftFieldCookingMethod:
		target = &controller.draft.CookingMethod
	case DraftFieldDifficulty:
		target = &controller.draft.DifficultyLevels
	case DraftFieldDietaryTags:
		target = &controller.draft.DietaryTags
	default:
		return ErrDraftUnknownField
	}

	*target = toggleValue(*target, value)
	controller.dirty = true
	return nil
}

// Save commits the draft. A clean draft is a no-op. Validation failures keep
// the draft dirty and the committed copy untouched; a persistence warning still
// counts as a successful commit and is passed through to the caller.
func (controller *PreferenceDraft) Save() error {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if !controller.dirty {
		return nil
	}

	err := controller.store.CommitPreferences(controller.draft.Clone())
	if err != nil && !isPersistenceWarning(err) {
		return err
	}
	controller.committed = controller.draft.Clone()
	controller.dirty = false
	return err
}

// Reset discards edits without committing.
func (controller *PreferenceDraft) Reset() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.draft = controller.committed.Clone()
	controller.dirty = false
}

// Cancel navigates away, guarding unsaved edits behind an explicit user
// confirmation. A refused confirmation changes nothing and does not navigate.
// Returns whether navigation happened.
func (controller *PreferenceDraft) Cancel(confirm func(message string) bool, navigate func()) bool {
	if controller.Dirty() {
		if confirm == nil || !confirm(unsavedChangesPrompt) {
			return false
		}
		controller.Reset()
	}
	if navigate != nil {
		navigate()
	}
	return true
}

func toggleValue(values []string, needle string) []string {
	for index, value := range values {
		if value == needle {
			return append(append([]string{}, values[:index]...), values[index+1:]...)
		}
	}
	return append(append([]string{}, values...), needle)
}

func clonedInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
