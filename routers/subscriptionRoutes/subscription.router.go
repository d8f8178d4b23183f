package subscriptionRoutes

import (
	subscriptionController "botapi/controllers/subscription"
	"botapi/middleware"
	subscriptionValidator "botapi/validators/subscription"

	"github.com/gofiber/fiber/v2"
)

func SetupSubscriptionRoutes(app *fiber.App) {
	subGroup := app.Group("/api/subscriptions")

	subGroup.Post("/", subscriptionValidator.Subscribe(), middleware.JWTMiddleware, subscriptionController.Subscribe)
	subGroup.Get("/", subscriptionValidator.ListSubscriptions(), middleware.JWTMiddleware, subscriptionController.MySubscriptions)
	subGroup.Get("/all", subscriptionValidator.ListSubscriptions(), middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), subscriptionController.ListAllSubscriptions)
	subGroup.Delete("/:botId", middleware.JWTMiddleware, subscriptionController.Cancel)
}
