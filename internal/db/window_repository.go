package db

import (
	"github.com/harperlin/homecook/internal/models"
	"gorm.io/gorm"
)

type WindowRepository struct {
	database *gorm.DB
}

func NewWindowRepository(database *gorm.DB) *WindowRepository {
	return &WindowRepository{database: database}
}

func (repo *WindowRepository) List() ([]models.WeeklyPreferenceWindow, error) {
	windows := make([]models.WeeklyPreferenceWindow, 0)
	if err := repo.database.Order("start_date ASC, id ASC").Find(&windows).Error; err != nil {
		return nil, err
	}
	return windows, nil
}

func (repo *WindowRepository) Create(window *models.WeeklyPreferenceWindow) error {
	return repo.database.Create(window).Error
}

func (repo *WindowRepository) UpdateAccepted(windowID uint, accepted bool) error {
	return repo.database.Model(&models.WeeklyPreferenceWindow{}).
		Where("id = ?", windowID).
		Update("accepted", accepted).Error
}

// ReplaceAll swaps the whole table for an imported snapshot. Window IDs are
// preserved as given; the caller is responsible for keeping them unique.
func (repo *WindowRepository) ReplaceAll(windows []models.WeeklyPreferenceWindow) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.WeeklyPreferenceWindow{}).Error; err != nil {
			return err
		}
		for _, window := range windows {
			if err := tx.Create(&window).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
