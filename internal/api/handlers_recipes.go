package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/harperlin/homecook/internal/services"
	"github.com/harperlin/homecook/internal/store"
)

func (handler *Handler) ListRecipes(c *fiber.Ctx) error {
	recipes := handler.store.Recipes()

	payload := fiber.Map{
		"recipes":     services.AllOtherRecipes(recipes),
		"dietaryTags": services.AvailableDietaryTags(recipes),
	}
	if featured, ok := services.RecipeOfTheWeek(recipes); ok {
		payload["recipeOfTheWeek"] = featured
	} else {
		payload["recipeOfTheWeek"] = nil
	}
	return c.JSON(payload)
}

func (handler *Handler) CreateRecipe(c *fiber.Ctx) error {
	var request createRecipeRequest
	if err := c.BodyParser(&request); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	recipe, err := services.NewRecipeFromInput(services.RecipeInput{
		Name:            request.Name,
		Description:     request.Description,
		Ingredients:     request.Ingredients,
		Instructions:    request.Instructions,
		PrepTimeMinutes: request.PrepTimeMinutes,
		CookTimeMinutes: request.CookTimeMinutes,
		NumOfServings:   request.NumOfServings,
		Difficulty:      request.Difficulty,
		ProteinTypes:    request.ProteinTypes,
		MealTypes:       request.MealTypes,
		CookingMethods:  request.CookingMethods,
		DietaryTags:     request.DietaryTags,
		Tags:            request.Tags,
		ImageURL:        request.ImageURL,
	}, handler.now())
	if err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	stored, err := handler.store.AddRecipe(recipe)
	if err != nil && !store.IsPersistenceWarning(err) {
		return jsonError(c, fiber.StatusInternalServerError, "failed to add recipe")
	}
	return c.Status(fiber.StatusCreated).JSON(withWarning(fiber.Map{"recipe": stored}, err))
}

func (handler *Handler) DeleteRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	err := handler.store.DeleteRecipe(recipeID)
	if errors.Is(err, store.ErrRecipeNotFound) {
		return jsonError(c, fiber.StatusNotFound, "recipe not found")
	}
	if err != nil && !store.IsPersistenceWarning(err) {
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete recipe")
	}
	return c.JSON(withWarning(fiber.Map{"deleted": true}, err))
}

func (handler *Handler) MarkEaten(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	event, recorded, err := handler.store.RecordEaten(recipeID)
	if err != nil && !store.IsPersistenceWarning(err) {
		return jsonError(c, fiber.StatusInternalServerError, "failed to record eaten event")
	}

	payload := fiber.Map{"recorded": recorded}
	if recorded {
		payload["event"] = event
	}
	return c.JSON(withWarning(payload, err))
}

func (handler *Handler) EatenHistory(c *fiber.Ctx) error {
	entries := services.EatenHistory(handler.store.Recipes(), handler.store.Events())
	if entries == nil {
		entries = []services.HistoryEntry{}
	}
	return c.JSON(fiber.Map{"history": entries})
}
