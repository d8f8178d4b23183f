package userRoutes

import (
	userController "botapi/controllers/user"
	"botapi/middleware"
	userValidator "botapi/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	profileGroup := app.Group("/api/profile")

	profileGroup.Get("/", middleware.JWTMiddleware, userController.GetProfile)
	profileGroup.Put("/", userValidator.UpdateProfile(), middleware.JWTMiddleware, userController.UpdateProfile)
	profileGroup.Post("/pin", userValidator.SetPin(), middleware.JWTMiddleware, userController.SetPin)
	profileGroup.Post("/pin/verify", userValidator.VerifyPin(), middleware.JWTMiddleware, userController.VerifyPin)
	profileGroup.Put("/pin", userValidator.ChangePin(), middleware.JWTMiddleware, userController.ChangePin)
}
