package authRoutes

import (
	authController "botapi/controllers/auth"
	"botapi/middleware"
	authValidator "botapi/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/google", authValidator.GoogleLogin(), authController.GoogleLogin)
	authGroup.Get("/login/history", authValidator.LoginHistory(), middleware.JWTMiddleware, authController.LoginHistoryList)
	authGroup.Post("/send/otp", authValidator.SendOTP(), authController.SendOTP)
	authGroup.Patch("/verify/otp", authValidator.VerifyOTP(), authController.VerifyOTP)
	authGroup.Post("/forgot/password", authValidator.ForgotPassword(), authController.ForgotPassword)
	authGroup.Patch("/reset/password", authValidator.ResetPassword(), authController.ResetPassword)
	authGroup.Put("/change/password", authValidator.ChangePassword(), middleware.JWTMiddleware, authController.ChangePassword)
}
