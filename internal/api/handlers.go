package api

import (
	"time"

	"github.com/harperlin/homecook/internal/db"
	"github.com/harperlin/homecook/internal/services"
	"github.com/harperlin/homecook/internal/store"
	"gorm.io/gorm"
)

// Handler wires the entity store, window resolver, preference draft and
// exporter behind the local JSON API. There is exactly one user and one draft.
type Handler struct {
	store    *store.Store
	resolver *services.WindowResolver
	draft    *services.PreferenceDraft
	exporter *services.ExportService
	location *time.Location
	now      func() time.Time
}

func NewHandler(database *gorm.DB, location *time.Location, now func() time.Time) (*Handler, error) {
	if location == nil {
		location = time.UTC
	}
	if now == nil {
		now = time.Now
	}

	repositories := db.NewRepositories(database)
	entityStore, err := store.Open(repositories, now)
	if err != nil {
		return nil, err
	}

	resolver := services.NewWindowResolver(entityStore, location)
	if _, err := resolver.ResolveCurrent(now()); err != nil && !store.IsPersistenceWarning(err) {
		return nil, err
	}

	return &Handler{
		store:    entityStore,
		resolver: resolver,
		draft:    services.NewPreferenceDraft(entityStore),
		exporter: services.NewExportService(entityStore),
		location: location,
		now:      now,
	}, nil
}
