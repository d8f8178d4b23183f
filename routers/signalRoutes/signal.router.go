package signalRoutes

import (
	signalController "botapi/controllers/signal"
	"botapi/middleware"
	signalValidator "botapi/validators/signal"

	"github.com/gofiber/fiber/v2"
)

func SetupSignalRoutes(app *fiber.App) {
	signalGroup := app.Group("/api/signals")

	signalGroup.Post("/", signalValidator.CreateSignal(), middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), signalController.CreateSignal)
	signalGroup.Patch("/:id/close", signalValidator.CloseSignal(), middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), signalController.CloseSignal)
	signalGroup.Get("/bot/:botId", signalValidator.ListSignals(), middleware.JWTMiddleware, signalController.ListBotSignals)
}
