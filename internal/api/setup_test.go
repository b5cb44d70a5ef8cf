package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/harperlin/homecook/internal/db"
)

func testNow() time.Time {
	return time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)
}

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "homecook.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	handler, err := NewHandler(database, time.UTC, testNow)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() { _ = response.Body.Close() })

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read %s %s response: %v", method, path, err)
	}

	decoded := make(map[string]any)
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode %s %s response %q: %v", method, path, raw, err)
		}
	}
	return response, decoded
}

func createTestRecipe(t *testing.T, app *fiber.App, name string) string {
	t.Helper()

	response, payload := doJSON(t, app, http.MethodPost, "/api/recipes", fiber.Map{
		"name": name,
		"ingredients": []fiber.Map{
			{"name": "thing", "amount": "1", "unit": ""},
		},
		"instructions": []string{"Cook it."},
		"mealTypes":    []string{"dinner"},
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create recipe %q: status %d, body %v", name, response.StatusCode, payload)
	}

	recipe, ok := payload["recipe"].(map[string]any)
	if !ok {
		t.Fatalf("create recipe %q: unexpected payload %v", name, payload)
	}
	recipeID, ok := recipe["id"].(string)
	if !ok || recipeID == "" {
		t.Fatalf("create recipe %q: missing id in %v", name, recipe)
	}
	return recipeID
}
