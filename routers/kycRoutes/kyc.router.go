package kycRoutes

import (
	kycController "botapi/controllers/kyc"
	"botapi/middleware"
	kycValidator "botapi/validators/kyc"

	"github.com/gofiber/fiber/v2"
)

func SetupKYCRoutes(app *fiber.App) {
	kycGroup := app.Group("/api/kyc")

	kycGroup.Post("/", kycValidator.SubmitKYC(), middleware.JWTMiddleware, kycController.SubmitKYC)
	kycGroup.Get("/", middleware.JWTMiddleware, kycController.GetMyKYC)

	// Admin review surface
	kycGroup.Get("/list", kycValidator.ListKYC(), middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), kycController.ListKYC)
	kycGroup.Patch("/verify", kycValidator.VerifySection(), middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), kycController.VerifySection)
}
