package authController

import (
	"botapi/config"
	"botapi/database"
	"botapi/middleware"
	"botapi/models"
	authValidator "botapi/validators/auth"
	"log"

	"github.com/gofiber/fiber/v2"
	"google.golang.org/api/idtoken"
)

// verifyGoogleToken validates an ID token against the configured client
// IDs and returns the payload of the first audience that accepts it.
func verifyGoogleToken(c *fiber.Ctx, token string) (*idtoken.Payload, error) {
	var lastErr error
	for _, clientID := range config.AppConfig.GoogleClientIDs {
		payload, err := idtoken.Validate(c.Context(), token, clientID)
		if err == nil {
			return payload, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func GoogleLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGoogleLogin").(*authValidator.GoogleLoginRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	if len(config.AppConfig.GoogleClientIDs) == 0 {
		return middleware.Fail(c, fiber.StatusServiceUnavailable, "GOOGLE_LOGIN_DISABLED", "Google login is not configured!")
	}

	payload, err := verifyGoogleToken(c, reqData.IDToken)
	if err != nil {
		log.Printf("Google ID token rejected: %v", err)
		return middleware.Fail(c, fiber.StatusUnauthorized, "GOOGLE_TOKEN_INVALID", "Invalid Google ID token!")
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return middleware.Fail(c, fiber.StatusUnauthorized, "GOOGLE_TOKEN_INVALID", "Google token carries no email!")
	}

	db := database.Database.Db

	var user models.User
	err = db.Where("google_id = ? AND is_deleted = ?", payload.Subject, false).First(&user).Error
	if err != nil {
		// Fall back to email so an existing password account gets linked
		err = db.Where("email = ? AND is_deleted = ?", email, false).First(&user).Error
	}

	if err != nil {
		// First Google sign-in: Google asserts the email, so it counts
		// as verified
		user = models.User{
			Name:            name,
			Email:           email,
			GoogleID:        payload.Subject,
			IsEmailVerified: true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Error creating google user: %v", err)
			return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to create user!")
		}
	} else if user.GoogleID == "" {
		user.GoogleID = payload.Subject
		user.IsEmailVerified = true
		if err := db.Save(&user).Error; err != nil {
			log.Printf("Error linking google account: %v", err)
		}
	}

	recordLogin(c, &user)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email, user.Mobile)
	if err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to generate token!")
	}

	return middleware.Success(c, fiber.StatusOK, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}
