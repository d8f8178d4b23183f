package userController

import (
	"botapi/config"
	"botapi/database"
	"botapi/middleware"
	"botapi/models"
	userValidator "botapi/validators/user"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// currentUser loads the authenticated user from the JWT context
func currentUser(c *fiber.Ctx) (*models.User, error) {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return middleware.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "User not found!")
	}

	var kyc models.UserKYC
	kycStatus := "NOT_SUBMITTED"
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", user.ID, false).First(&kyc).Error; err == nil {
		if kyc.IsVerified {
			kycStatus = models.KycVerified
		} else {
			kycStatus = models.KycPending
		}
	}

	return middleware.Success(c, fiber.StatusOK, "Profile fetched.", fiber.Map{
		"user":      user,
		"hasPin":    user.PinHash != "",
		"kycStatus": kycStatus,
	})
}

func UpdateProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return middleware.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "User not found!")
	}

	reqData, ok := c.Locals("validatedUpdateProfile").(*userValidator.UpdateProfileRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db

	if reqData.Name != "" {
		user.Name = reqData.Name
	}

	if reqData.Mobile != "" && reqData.Mobile != user.Mobile {
		// New number must not belong to someone else, and needs fresh
		// verification
		var existing models.User
		if err := db.Where("mobile = ? AND id <> ?", reqData.Mobile, user.ID).First(&existing).Error; err == nil {
			return middleware.Fail(c, fiber.StatusConflict, "MOBILE_EXISTS", "Mobile number is already registered!")
		}
		user.Mobile = reqData.Mobile
		user.IsMobileVerified = false
	}

	if err := db.Save(user).Error; err != nil {
		log.Printf("Error updating profile: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to update profile!")
	}

	return middleware.Success(c, fiber.StatusOK, "Profile updated.", user)
}

func SetPin(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return middleware.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "User not found!")
	}

	reqData, ok := c.Locals("validatedSetPin").(*userValidator.SetPinRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	if user.PinHash != "" {
		return middleware.Fail(c, fiber.StatusConflict, "PIN_ALREADY_SET", "PIN is already set. Use change PIN instead.")
	}

	hashedPin, err := bcrypt.GenerateFromPassword([]byte(reqData.Pin), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to set PIN!")
	}

	user.PinHash = string(hashedPin)
	if err := database.Database.Db.Save(user).Error; err != nil {
		log.Printf("Error saving PIN: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to set PIN!")
	}

	return middleware.Success(c, fiber.StatusOK, "PIN set successfully.", nil)
}

func VerifyPin(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return middleware.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "User not found!")
	}

	reqData, ok := c.Locals("validatedVerifyPin").(*userValidator.VerifyPinRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	if user.PinHash == "" {
		return middleware.Fail(c, fiber.StatusBadRequest, "PIN_NOT_SET", "No PIN set for this account!")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PinHash), []byte(reqData.Pin)); err != nil {
		return middleware.Fail(c, fiber.StatusUnauthorized, "PIN_INVALID", "Incorrect PIN!")
	}

	return middleware.Success(c, fiber.StatusOK, "PIN verified.", nil)
}

func ChangePin(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return middleware.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "User not found!")
	}

	reqData, ok := c.Locals("validatedChangePin").(*userValidator.ChangePinRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	if user.PinHash == "" {
		return middleware.Fail(c, fiber.StatusBadRequest, "PIN_NOT_SET", "No PIN set for this account!")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PinHash), []byte(reqData.CurrentPin)); err != nil {
		return middleware.Fail(c, fiber.StatusUnauthorized, "PIN_INVALID", "Current PIN is incorrect!")
	}

	hashedPin, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPin), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to change PIN!")
	}

	user.PinHash = string(hashedPin)
	if err := database.Database.Db.Save(user).Error; err != nil {
		log.Printf("Error saving PIN: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to change PIN!")
	}

	return middleware.Success(c, fiber.StatusOK, "PIN changed successfully.", nil)
}
