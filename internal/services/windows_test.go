package services

import (
	"testing"
	"time"

	"github.com/harperlin/homecook/internal/models"
)

type fakeWindowStore struct {
	preferences models.Preferences
	windows     []models.WeeklyPreferenceWindow
	nextID      uint
	appendCalls int
}

func newFakeWindowStore() *fakeWindowStore {
	return &fakeWindowStore{preferences: models.DefaultPreferences(), nextID: 1}
}

func (fake *fakeWindowStore) Windows() []models.WeeklyPreferenceWindow {
	return append([]models.WeeklyPreferenceWindow(nil), fake.windows...)
}

func (fake *fakeWindowStore) Preferences() models.Preferences {
	return fake.preferences.Clone()
}

func (fake *fakeWindowStore) AppendWindow(window models.WeeklyPreferenceWindow) (models.WeeklyPreferenceWindow, error) {
	fake.appendCalls++
	window.ID = fake.nextID
	fake.nextID++
	fake.windows = append(fake.windows, window)
	return window, nil
}

func (fake *fakeWindowStore) MarkWindowAccepted(windowID uint) error {
	for index := range fake.windows {
		if fake.windows[index].ID == windowID {
			fake.windows[index].Accepted = true
			return nil
		}
	}
	return nil
}

func TestResolveCurrentCreatesWindowOnceForSameInstant(t *testing.T) {
	fake := newFakeWindowStore()
	resolver := NewWindowResolver(fake, time.UTC)
	now := time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)

	first, err := resolver.ResolveCurrent(now)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	second, err := resolver.ResolveCurrent(now)
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected same window identity, got %d and %d", first.ID, second.ID)
	}
	if fake.appendCalls != 1 {
		t.Fatalf("expected exactly one synthesized window, got %d", fake.appendCalls)
	}
	if len(fake.windows) != 1 {
		t.Fatalf("expected window collection of 1, got %d", len(fake.windows))
	}
}

func TestResolveCurrentSynthesizesCalendarWeek(t *testing.T) {
	fake := newFakeWindowStore()
	resolver := NewWindowResolver(fake, time.UTC)
	now := time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)

	window, err := resolver.ResolveCurrent(now)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	wantStart := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	if !window.StartDate.Equal(wantStart) {
		t.Fatalf("start = %s, want %s", window.StartDate, wantStart)
	}
	if !window.EndDate.Equal(wantStart.AddDate(0, 0, 7)) {
		t.Fatalf("end = %s, want %s", window.EndDate, wantStart.AddDate(0, 0, 7))
	}
	if window.Accepted {
		t.Fatal("synthesized window must start unaccepted")
	}
	if window.Preferences.NumberOfRecipesPerWeek != models.DefaultRecipesPerWeek {
		t.Fatalf("window must be seeded from committed preferences, got %d recipes/week", window.Preferences.NumberOfRecipesPerWeek)
	}
	if !window.Covers(now) {
		t.Fatal("synthesized window must cover now")
	}
}

func TestResolveCurrentReusesExistingCoveringWindow(t *testing.T) {
	fake := newFakeWindowStore()
	existing, _ := fake.AppendWindow(models.WeeklyPreferenceWindow{
		Preferences: fake.Preferences(),
		StartDate:   time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC),
		Accepted:    true,
	})
	fake.appendCalls = 0

	resolver := NewWindowResolver(fake, time.UTC)
	window, err := resolver.ResolveCurrent(time.Date(2026, 2, 21, 23, 59, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if window.ID != existing.ID {
		t.Fatalf("expected existing window %d, got %d", existing.ID, window.ID)
	}
	if fake.appendCalls != 0 {
		t.Fatalf("expected no synthesis, got %d appends", fake.appendCalls)
	}
}

func TestResolveNextSynthesizesFollowingWeek(t *testing.T) {
	fake := newFakeWindowStore()
	resolver := NewWindowResolver(fake, time.UTC)
	now := time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)

	next, err := resolver.ResolveNext(now)
	if err != nil {
		t.Fatalf("resolve next: %v", err)
	}

	wantStart := time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC)
	if !next.StartDate.Equal(wantStart) {
		t.Fatalf("next start = %s, want %s", next.StartDate, wantStart)
	}
	if !next.EndDate.Equal(wantStart.AddDate(0, 0, 7)) {
		t.Fatalf("next end = %s, want %s", next.EndDate, wantStart.AddDate(0, 0, 7))
	}

	again, err := resolver.ResolveNext(now)
	if err != nil {
		t.Fatalf("resolve next again: %v", err)
	}
	if again.ID != next.ID {
		t.Fatalf("expected same next window identity, got %d and %d", next.ID, again.ID)
	}
	if fake.appendCalls != 1 {
		t.Fatalf("expected one synthesized next window, got %d", fake.appendCalls)
	}
}

func TestAcceptCurrentMarksWindowAccepted(t *testing.T) {
	fake := newFakeWindowStore()
	resolver := NewWindowResolver(fake, time.UTC)
	now := time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)

	window, err := resolver.AcceptCurrent(now)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if !window.Accepted {
		t.Fatal("expected accepted window")
	}
	if !fake.windows[0].Accepted {
		t.Fatal("expected store window marked accepted")
	}

	// Accepting again stays idempotent.
	again, err := resolver.AcceptCurrent(now)
	if err != nil {
		t.Fatalf("accept again: %v", err)
	}
	if again.ID != window.ID || !again.Accepted {
		t.Fatalf("expected same accepted window, got %+v", again)
	}
}
