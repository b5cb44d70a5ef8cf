package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/harperlin/homecook/internal/services"
)

func (handler *Handler) GetPreferences(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"preferences":          handler.store.Preferences(),
		"availableDietaryTags": services.AvailableDietaryTags(handler.store.Recipes()),
	})
}

func (handler *Handler) GetDraft(c *fiber.Ctx) error {
	return handler.draftState(c)
}

func (handler *Handler) EditDraft(c *fiber.Ctx) error {
	var request editDraftRequest
	if err := c.BodyParser(&request); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	patch := services.PreferencePatch{
		NumberOfRecipesPerWeek: request.NumberOfRecipesPerWeek,
		MealType:               request.MealType,
		ProteinType:            request.ProteinType,
		CookingMethod:          request.CookingMethod,
		DifficultyLevels:       request.DifficultyLevels,
		DietaryTags:            request.DietaryTags,
	}
	if request.ServingsMin != nil || request.ServingsMax != nil {
		servings := handler.draft.Draft().NumOfServingsPerWeek
		if request.ServingsMin != nil {
			servings.Min = *request.ServingsMin
		}
		if request.ServingsMax != nil {
			servings.Max = *request.ServingsMax
		}
		patch.NumOfServingsPerWeek = &servings
	}
	if request.ClearMaxPrepTime || request.MaxPrepTime != nil {
		patch.MaxPrepTimeSet = true
		if !request.ClearMaxPrepTime {
			patch.MaxPrepTime = request.MaxPrepTime
		}
	}
	if request.ClearMaxCookTime || request.MaxCookTime != nil {
		patch.MaxCookTimeSet = true
		if !request.ClearMaxCookTime {
			patch.MaxCookTime = request.MaxCookTime
		}
	}

	handler.draft.Edit(patch)
	return handler.draftState(c)
}

func (handler *Handler) ToggleDraft(c *fiber.Ctx) error {
	var request toggleDraftRequest
	if err := c.BodyParser(&request); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := handler.draft.Toggle(request.Field, request.Value); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	return handler.draftState(c)
}

func (handler *Handler) SaveDraft(c *fiber.Ctx) error {
	err := handler.draft.Save()
	if err != nil && isValidationError(err) {
		return jsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err != nil && warningMessage(err) == "" {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save preferences")
	}
	return c.JSON(withWarning(fiber.Map{
		"preferences": handler.store.Preferences(),
		"dirty":       handler.draft.Dirty(),
	}, err))
}

func (handler *Handler) ResetDraft(c *fiber.Ctx) error {
	handler.draft.Reset()
	return handler.draftState(c)
}

// CancelDraft carries the user's confirmation answer in the request body; the
// confirm collaborator replays it when the draft is dirty.
func (handler *Handler) CancelDraft(c *fiber.Ctx) error {
	var request cancelDraftRequest
	if err := c.BodyParser(&request); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	prompted := false
	navigated := handler.draft.Cancel(func(message string) bool {
		prompted = true
		return request.Confirmed
	}, nil)

	return c.JSON(fiber.Map{
		"navigated": navigated,
		"prompted":  prompted,
		"dirty":     handler.draft.Dirty(),
	})
}

func (handler *Handler) draftState(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"draft": handler.draft.Draft(),
		"dirty": handler.draft.Dirty(),
	})
}
