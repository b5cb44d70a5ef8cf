package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/harperlin/homecook/internal/models"
)

var (
	ErrSnapshotRecipeInvalid   = errors.New("snapshot recipe missing id or name")
	ErrSnapshotRecipeDuplicate = errors.New("snapshot recipe id duplicated")
	ErrSnapshotWindowInvalid   = errors.New("snapshot window range invalid")
	ErrSnapshotWindowsOverlap  = errors.New("snapshot windows overlap")
)

// SnapshotStore is the slice of the entity store the exporter needs.
type SnapshotStore interface {
	Snapshot() models.Snapshot
	ReplaceAll(models.Snapshot) error
}

// ExportService round-trips the full persisted state as JSON. Import accepts
// snapshots written under older preference schemas and normalizes them.
type ExportService struct {
	store SnapshotStore
}

func NewExportService(store SnapshotStore) *ExportService {
	return &ExportService{store: store}
}

func (service *ExportService) Export() ([]byte, error) {
	return json.MarshalIndent(service.store.Snapshot(), "", "  ")
}

// importEnvelope defers preference decoding so legacy shapes can be detected.
type importEnvelope struct {
	Recipes                 []models.Recipe                 `json:"recipes"`
	EatenEvents             []models.EatenEvent             `json:"eatenEvents"`
	Preferences             json.RawMessage                 `json:"preferences"`
	WeeklyPreferenceWindows []models.WeeklyPreferenceWindow `json:"weeklyPreferenceWindows"`
}

// Import replaces the whole store state with the decoded snapshot. Invalid
// payloads reject before any state changes; persistence warnings from the
// store pass through after memory has been replaced.
func (service *ExportService) Import(data []byte) error {
	var envelope importEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	if err := validateSnapshotRecipes(envelope.Recipes); err != nil {
		return err
	}
	if err := validateSnapshotWindows(envelope.WeeklyPreferenceWindows); err != nil {
		return err
	}

	preferences, err := NormalizePreferencesPayload(envelope.Preferences)
	if err != nil {
		return err
	}

	snapshot := models.Snapshot{
		Recipes:                 envelope.Recipes,
		EatenEvents:             envelope.EatenEvents,
		Preferences:             preferences,
		WeeklyPreferenceWindows: envelope.WeeklyPreferenceWindows,
	}
	if snapshot.Recipes == nil {
		snapshot.Recipes = []models.Recipe{}
	}
	if snapshot.EatenEvents == nil {
		snapshot.EatenEvents = []models.EatenEvent{}
	}
	if snapshot.WeeklyPreferenceWindows == nil {
		snapshot.WeeklyPreferenceWindows = []models.WeeklyPreferenceWindow{}
	}

	return service.store.ReplaceAll(snapshot)
}

func validateSnapshotRecipes(recipes []models.Recipe) error {
	seen := make(map[string]struct{}, len(recipes))
	for _, recipe := range recipes {
		if strings.TrimSpace(recipe.ID) == "" || strings.TrimSpace(recipe.Name) == "" {
			return ErrSnapshotRecipeInvalid
		}
		if _, duplicate := seen[recipe.ID]; duplicate {
			return ErrSnapshotRecipeDuplicate
		}
		seen[recipe.ID] = struct{}{}
	}
	return nil
}

func validateSnapshotWindows(windows []models.WeeklyPreferenceWindow) error {
	for _, window := range windows {
		if !window.EndDate.After(window.StartDate) {
			return ErrSnapshotWindowInvalid
		}
	}

	sorted := append([]models.WeeklyPreferenceWindow(nil), windows...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})
	for index := 1; index < len(sorted); index++ {
		if sorted[index].StartDate.Before(sorted[index-1].EndDate) {
			return ErrSnapshotWindowsOverlap
		}
	}
	return nil
}
