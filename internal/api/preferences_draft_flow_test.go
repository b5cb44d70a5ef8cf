package api

import (
	"net/http"
	"testing"
)

func TestPreferenceDraftEditSaveFlow(t *testing.T) {
	app, _ := newTestApp(t)

	// Fresh draft is clean and mirrors the committed defaults.
	response, payload := doJSON(t, app, http.MethodGet, "/api/preferences/draft", nil)
	if response.StatusCode != http.StatusOK || payload["dirty"] != false {
		t.Fatalf("fresh draft: status %d, payload %v", response.StatusCode, payload)
	}

	// Edit the recipe count; committed copy stays put until save.
	_, payload = doJSON(t, app, http.MethodPost, "/api/preferences/draft/edit", map[string]any{
		"numberOfRecipesPerWeek": 5,
	})
	if payload["dirty"] != true {
		t.Fatalf("edit must dirty the draft, payload %v", payload)
	}
	draft := payload["draft"].(map[string]any)
	if draft["numberOfRecipesPerWeek"] != float64(5) {
		t.Fatalf("draft count = %v, want 5", draft["numberOfRecipesPerWeek"])
	}

	_, payload = doJSON(t, app, http.MethodGet, "/api/preferences", nil)
	committed := payload["preferences"].(map[string]any)
	if committed["numberOfRecipesPerWeek"] != float64(2) {
		t.Fatalf("committed count changed before save: %v", committed["numberOfRecipesPerWeek"])
	}

	// Save commits the edit while untouched fields keep their defaults.
	response, payload = doJSON(t, app, http.MethodPost, "/api/preferences/draft/save", nil)
	if response.StatusCode != http.StatusOK || payload["dirty"] != false {
		t.Fatalf("save: status %d, payload %v", response.StatusCode, payload)
	}
	committed = payload["preferences"].(map[string]any)
	if committed["numberOfRecipesPerWeek"] != float64(5) {
		t.Fatalf("committed count = %v, want 5", committed["numberOfRecipesPerWeek"])
	}
	servings := committed["numOfServingsPerWeek"].(map[string]any)
	if servings["min"] != float64(5) || servings["max"] != float64(8) {
		t.Fatalf("servings = %v, want default 5..8 preserved", servings)
	}
}

func TestPreferenceDraftToggleFlow(t *testing.T) {
	app, _ := newTestApp(t)

	// Toggle a default meal type off, then back on.
	_, payload := doJSON(t, app, http.MethodPost, "/api/preferences/draft/toggle", map[string]any{
		"field": "mealType",
		"value": "dinner",
	})
	draft := payload["draft"].(map[string]any)
	mealTypes := draft["mealType"].([]any)
	for _, value := range mealTypes {
		if value == "dinner" {
			t.Fatalf("dinner must be toggled off, got %v", mealTypes)
		}
	}

	_, payload = doJSON(t, app, http.MethodPost, "/api/preferences/draft/toggle", map[string]any{
		"field": "mealType",
		"value": "dinner",
	})
	if payload["dirty"] != true {
		t.Fatal("double toggle must leave the draft dirty")
	}

	// Unknown field rejects.
	response, _ := doJSON(t, app, http.MethodPost, "/api/preferences/draft/toggle", map[string]any{
		"field": "servings",
		"value": "6",
	})
	if response.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("unknown field: status %d, want 422", response.StatusCode)
	}
}

func TestPreferenceDraftSaveRejectsInvalidDraft(t *testing.T) {
	app, handler := newTestApp(t)

	_, _ = doJSON(t, app, http.MethodPost, "/api/preferences/draft/edit", map[string]any{
		"numberOfRecipesPerWeek": 0,
	})

	response, _ := doJSON(t, app, http.MethodPost, "/api/preferences/draft/save", nil)
	if response.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("invalid save: status %d, want 422", response.StatusCode)
	}
	if !handler.draft.Dirty() {
		t.Fatal("failed save must leave the draft dirty")
	}
	if got := handler.store.Preferences().NumberOfRecipesPerWeek; got != 2 {
		t.Fatalf("committed count = %d, want untouched default", got)
	}
}

func TestPreferenceDraftCancelFlow(t *testing.T) {
	app, _ := newTestApp(t)

	_, _ = doJSON(t, app, http.MethodPost, "/api/preferences/draft/edit", map[string]any{
		"numberOfRecipesPerWeek": 7,
	})

	// Refused confirmation keeps the draft dirty and does not navigate.
	_, payload := doJSON(t, app, http.MethodPost, "/api/preferences/draft/cancel", map[string]any{
		"confirmed": false,
	})
	if payload["prompted"] != true || payload["navigated"] != false || payload["dirty"] != true {
		t.Fatalf("refused cancel payload %v", payload)
	}

	// Confirmed cancel resets and navigates.
	_, payload = doJSON(t, app, http.MethodPost, "/api/preferences/draft/cancel", map[string]any{
		"confirmed": true,
	})
	if payload["prompted"] != true || payload["navigated"] != true || payload["dirty"] != false {
		t.Fatalf("confirmed cancel payload %v", payload)
	}

	// Draft is back at committed defaults.
	_, payload = doJSON(t, app, http.MethodGet, "/api/preferences/draft", nil)
	draft := payload["draft"].(map[string]any)
	if draft["numberOfRecipesPerWeek"] != float64(2) {
		t.Fatalf("draft count = %v, want committed default", draft["numberOfRecipesPerWeek"])
	}

	// A clean draft cancels without a prompt.
	_, payload = doJSON(t, app, http.MethodPost, "/api/preferences/draft/cancel", map[string]any{
		"confirmed": false,
	})
	if payload["prompted"] != false || payload["navigated"] != true {
		t.Fatalf("clean cancel payload %v", payload)
	}
}
