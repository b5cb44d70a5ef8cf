package db

import "gorm.io/gorm"

type Repositories struct {
	Recipes     *RecipeRepository
	EatenEvents *EatenEventRepository
	Preferences *PreferenceRepository
	Windows     *WindowRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Recipes:     NewRecipeRepository(database),
		EatenEvents: NewEatenEventRepository(database),
		Preferences: NewPreferenceRepository(database),
		Windows:     NewWindowRepository(database),
	}
}
