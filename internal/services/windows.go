package services

import (
	"sync"
	"time"

	"github.com/harperlin/homecook/internal/models"
)

// WindowStore is the slice of the entity store the resolver needs: read the
// window collection and committed preferences, insert a window, flip accepted.
type WindowStore interface {
	Windows() []models.WeeklyPreferenceWindow
	Preferences() models.Preferences
	AppendWindow(models.WeeklyPreferenceWindow) (models.WeeklyPreferenceWindow, error)
	MarkWindowAccepted(windowID uint) error
}

// WindowResolver maps "now" to the weekly preference window covering it,
// creating one seeded from the committed preferences when none exists. The
// mutex makes check-then-create a single logical step, so resolving the same
// instant twice can never synthesize two windows.
type WindowResolver struct {
	mu       sync.Mutex
	store    WindowStore
	location *time.Location
}

func NewWindowResolver(store WindowStore, location *time.Location) *WindowResolver {
	if location == nil {
		location = time.UTC
	}
	return &WindowResolver{store: store, location: location}
}

// ResolveCurrent returns the window with start <= now < end, synthesizing an
// unaccepted one spanning the current calendar week when absent. Repeated calls
// within the same week return the same window identity.
func (resolver *WindowResolver) ResolveCurrent(now time.Time) (models.WeeklyPreferenceWindow, error) {
	resolver.mu.Lock()
	defer resolver.mu.Unlock()

	for _, window := range resolver.store.Windows() {
		if window.Covers(now) {
			return window, nil
		}
	}

	start, end := WeekRange(now, resolver.location)
	return resolver.store.AppendWindow(models.WeeklyPreferenceWindow{
		Preferences: resolver.store.Preferences(),
		StartDate:   start,
		EndDate:     end,
		Accepted:    false,
	})
}

// ResolveNext returns the earliest window starting after now, synthesizing one
// for the week immediately following the current one when absent.
func (resolver *WindowResolver) ResolveNext(now time.Time) (models.WeeklyPreferenceWindow, error) {
	resolver.mu.Lock()
	defer resolver.mu.Unlock()

	for _, window := range resolver.store.Windows() {
		if window.StartDate.After(now) {
			return window, nil
		}
	}

	currentStart := StartOfWeek(now, resolver.location)
	start := currentStart.AddDate(0, 0, 7)
	return resolver.store.AppendWindow(models.WeeklyPreferenceWindow{
		Preferences: resolver.store.Preferences(),
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 7),
		Accepted:    false,
	})
}

// AcceptCurrent marks the window covering now as user-reviewed, creating it
// first if needed.
func (resolver *WindowResolver) AcceptCurrent(now time.Time) (models.WeeklyPreferenceWindow, error) {
	window, err := resolver.ResolveCurrent(now)
	if err != nil && !isPersistenceWarning(err) {
		return window, err
	}
	if window.Accepted {
		return window, err
	}
	if markErr := resolver.store.MarkWindowAccepted(window.ID); markErr != nil {
		return window, markErr
	}
	window.Accepted = true
	return window, err
}
