package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/harperlin/homecook/internal/models"
	"github.com/harperlin/homecook/internal/services"
	"github.com/harperlin/homecook/internal/store"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// warningMessage extracts a persistence warning for the response payload;
// the mutation itself has already applied.
func warningMessage(err error) string {
	if err == nil || !store.IsPersistenceWarning(err) {
		return ""
	}
	return err.Error()
}

func withWarning(payload fiber.Map, err error) fiber.Map {
	if message := warningMessage(err); message != "" {
		payload["warning"] = message
	}
	return payload
}

var validationErrors = []error{
	services.ErrRecipeNameRequired,
	services.ErrRecipeIngredientsRequired,
	services.ErrRecipeTimesNegative,
	services.ErrRecipeServingsNegative,
	services.ErrRecipeDifficultyUnknown,
	services.ErrRecipeMealTypeUnknown,
	services.ErrRecipeProteinTypeUnknown,
	services.ErrRecipeMethodUnknown,
	services.ErrDraftUnknownField,
	services.ErrSnapshotRecipeInvalid,
	services.ErrSnapshotRecipeDuplicate,
	services.ErrSnapshotWindowInvalid,
	services.ErrSnapshotWindowsOverlap,
	models.ErrPreferencesRecipeCountInvalid,
	models.ErrPreferencesServingsInvalid,
	models.ErrPreferencesTimeLimitNegative,
	models.ErrPreferencesUnknownMealType,
	models.ErrPreferencesUnknownProteinType,
	models.ErrPreferencesUnknownMethod,
	models.ErrPreferencesUnknownDifficulty,
}

func isValidationError(err error) bool {
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
