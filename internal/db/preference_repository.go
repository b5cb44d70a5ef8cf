package db

import (
	"github.com/harperlin/homecook/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// committedPreferencesID is the only row preference_records ever holds.
const committedPreferencesID = 1

type PreferenceRepository struct {
	database *gorm.DB
}

func NewPreferenceRepository(database *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{database: database}
}

// Load returns the committed Preferences and whether a row existed.
func (repo *PreferenceRepository) Load() (models.Preferences, bool, error) {
	record := models.PreferenceRecord{}
	result := repo.database.Where("id = ?", committedPreferencesID).Limit(1).Find(&record)
	if result.Error != nil {
		return models.Preferences{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Preferences{}, false, nil
	}
	return record.Preferences, true, nil
}

func (repo *PreferenceRepository) Save(preferences models.Preferences) error {
	record := models.PreferenceRecord{ID: committedPreferencesID, Preferences: preferences}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&record).Error
}
