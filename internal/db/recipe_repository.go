package db

import (
	"github.com/harperlin/homecook/internal/models"
	"gorm.io/gorm"
)

type RecipeRepository struct {
	database *gorm.DB
}

func NewRecipeRepository(database *gorm.DB) *RecipeRepository {
	return &RecipeRepository{database: database}
}

// ListNewestFirst returns recipes in display order: most recently added first.
func (repo *RecipeRepository) ListNewestFirst() ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	if err := repo.database.Order("seq DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (repo *RecipeRepository) Create(recipe *models.Recipe) error {
	return repo.database.Create(recipe).Error
}

func (repo *RecipeRepository) DeleteByID(recipeID string) error {
	return repo.database.Where("id = ?", recipeID).Delete(&models.Recipe{}).Error
}

// ReplaceAll swaps the whole table for an imported snapshot. The input is in
// display order (newest first); rows are inserted oldest first so that seq
// reproduces the same order on the next load.
func (repo *RecipeRepository) ReplaceAll(recipes []models.Recipe) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Recipe{}).Error; err != nil {
			return err
		}
		for index := len(recipes) - 1; index >= 0; index-- {
			recipe := recipes[index]
			recipe.Seq = 0
			if err := tx.Create(&recipe).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
