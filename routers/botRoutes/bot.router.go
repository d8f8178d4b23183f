package botRoutes

import (
	botController "botapi/controllers/bot"
	"botapi/middleware"
	botValidator "botapi/validators/bot"

	"github.com/gofiber/fiber/v2"
)

func SetupBotRoutes(app *fiber.App) {
	botGroup := app.Group("/api/bots")

	// Public reads
	botGroup.Get("/", botValidator.ListBots(), botController.ListBots)
	botGroup.Get("/:id", botController.GetBot)

	// Admin mutations
	botGroup.Post("/", botValidator.CreateBot(), middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), botController.CreateBot)
	botGroup.Put("/:id", botValidator.UpdateBot(), middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), botController.UpdateBot)
	botGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), botController.DeleteBot)
}
