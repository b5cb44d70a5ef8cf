package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	recipes := api.Group("/recipes")
	recipes.Get("", handler.ListRecipes)
	recipes.Post("", handler.CreateRecipe)
	recipes.Delete("/:id", handler.DeleteRecipe)
	recipes.Post("/:id/eaten", handler.MarkEaten)

	api.Get("/history", handler.EatenHistory)

	week := api.Group("/week")
	week.Get("/current", handler.CurrentWeek)
	week.Get("/next", handler.NextWeek)
	week.Post("/current/accept", handler.AcceptCurrentWeek)

	preferences := api.Group("/preferences")
	preferences.Get("", handler.GetPreferences)

	draft := preferences.Group("/draft")
	draft.Get("", handler.GetDraft)
	draft.Post("/edit", handler.EditDraft)
	draft.Post("/toggle", handler.ToggleDraft)
	draft.Post("/save", handler.SaveDraft)
	draft.Post("/reset", handler.ResetDraft)
	draft.Post("/cancel", handler.CancelDraft)

	api.Get("/export", handler.ExportSnapshot)
	api.Post("/import", handler.ImportSnapshot)
}
