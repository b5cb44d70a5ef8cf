package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/harperlin/homecook/internal/store"
)

func (handler *Handler) CurrentWeek(c *fiber.Ctx) error {
	window, err := handler.resolver.ResolveCurrent(handler.now())
	if err != nil && !store.IsPersistenceWarning(err) {
		return jsonError(c, fiber.StatusInternalServerError, "failed to resolve current week")
	}
	return c.JSON(withWarning(fiber.Map{"window": window}, err))
}

func (handler *Handler) NextWeek(c *fiber.Ctx) error {
	window, err := handler.resolver.ResolveNext(handler.now())
	if err != nil && !store.IsPersistenceWarning(err) {
		return jsonError(c, fiber.StatusInternalServerError, "failed to resolve next week")
	}
	return c.JSON(withWarning(fiber.Map{"window": window}, err))
}

func (handler *Handler) AcceptCurrentWeek(c *fiber.Ctx) error {
	window, err := handler.resolver.AcceptCurrent(handler.now())
	if errors.Is(err, store.ErrWindowNotFound) {
		return jsonError(c, fiber.StatusNotFound, "window not found")
	}
	if err != nil && !store.IsPersistenceWarning(err) {
		return jsonError(c, fiber.StatusInternalServerError, "failed to accept current week")
	}
	return c.JSON(withWarning(fiber.Map{"window": window}, err))
}
