package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/harperlin/homecook/internal/store"
)

func (handler *Handler) ExportSnapshot(c *fiber.Ctx) error {
	payload, err := handler.exporter.Export()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to export snapshot")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="homecook-export.json"`)
	return c.Send(payload)
}

func (handler *Handler) ImportSnapshot(c *fiber.Ctx) error {
	err := handler.exporter.Import(c.Body())
	if err != nil && !store.IsPersistenceWarning(err) {
		if isValidationError(err) {
			return jsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// The committed copy may have changed under the draft; reload it.
	handler.draft.Load(handler.store.Preferences())

	return c.JSON(withWarning(fiber.Map{"imported": true}, err))
}
