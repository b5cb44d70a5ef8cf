package db

import (
	"github.com/harperlin/homecook/internal/models"
	"gorm.io/gorm"
)

type EatenEventRepository struct {
	database *gorm.DB
}

func NewEatenEventRepository(database *gorm.DB) *EatenEventRepository {
	return &EatenEventRepository{database: database}
}

func (repo *EatenEventRepository) List() ([]models.EatenEvent, error) {
	events := make([]models.EatenEvent, 0)
	if err := repo.database.Order("date_eaten ASC, id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *EatenEventRepository) Create(event *models.EatenEvent) error {
	return repo.database.Create(event).Error
}

func (repo *EatenEventRepository) ReplaceAll(events []models.EatenEvent) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.EatenEvent{}).Error; err != nil {
			return err
		}
		for _, event := range events {
			event.ID = 0
			if err := tx.Create(&event).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
