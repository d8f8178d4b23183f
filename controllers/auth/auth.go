package authController

import (
	"botapi/config"
	"botapi/database"
	"botapi/middleware"
	"botapi/models"
	"botapi/utils"
	authValidator "botapi/validators/auth"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.Fail(c, fiber.StatusConflict, "EMAIL_EXISTS", "Email is already registered!")
	}

	// Check if mobile already exists
	if reqData.Mobile != "" {
		if err := db.Where("mobile = ?", reqData.Mobile).First(&models.User{}).Error; err == nil {
			return middleware.Fail(c, fiber.StatusConflict, "MOBILE_EXISTS", "Mobile number is already registered!")
		}
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to process your request!")
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Mobile:   reqData.Mobile,
		Password: string(hashedPassword),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to signup user!")
	}

	utils.SendWelcomeEmail(newUser.Email, newUser.Name)

	// Issue the first email verification code right away
	if otpRecord, err := utils.IssueOTP(db, newUser.ID, newUser.Email, models.OTPEmailVerify); err == nil {
		utils.SendOTPEmail(otpRecord.Code, newUser.Email)
	} else {
		log.Printf("Error issuing signup OTP: %v", err)
	}

	return middleware.Success(c, fiber.StatusCreated, "User registered successfully. Verify your email with the OTP we sent.", newUser)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db

	var user models.User
	var result *gorm.DB

	// Retrieve user by email or mobile
	if reqData.Email != "" {
		result = db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user)
	} else {
		result = db.Where("mobile = ? AND is_deleted = ?", reqData.Mobile, false).First(&user)
	}

	if result.Error != nil {
		return middleware.Fail(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials!")
	}

	if !user.IsEmailVerified {
		return middleware.Fail(c, fiber.StatusUnauthorized, "EMAIL_NOT_VERIFIED", "Email not verified!")
	}

	// Check if the user is blocked
	if user.IsBlocked && user.BlockedUntil != nil && user.BlockedUntil.After(time.Now()) {
		return middleware.Fail(c, fiber.StatusUnauthorized, "ACCOUNT_BLOCKED", "Your account is temporarily blocked. Try again later.")
	}

	if user.LastFailedLogin != nil && time.Since(*user.LastFailedLogin) > 15*time.Minute {
		user.FailedLoginAttempts = 0
		user.LastFailedLogin = nil
		db.Save(&user)
	}

	// Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		user.FailedLoginAttempts++
		now := time.Now()
		user.LastFailedLogin = &now

		// Block user after 3 failed attempts
		if user.FailedLoginAttempts >= 3 {
			user.IsBlocked = true
			unblockTime := now.Add(15 * time.Minute)
			user.BlockedUntil = &unblockTime
		}

		if err := db.Save(&user).Error; err != nil {
			log.Printf("Error saving failed login state: %v", err)
		}

		return middleware.Fail(c, fiber.StatusUnauthorized, "WRONG_PASSWORD", "Wrong password!")
	}

	// Update last login time
	user.LastLogin = time.Now()
	user.FailedLoginAttempts = 0
	user.IsBlocked = false
	user.BlockedUntil = nil
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
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

// recordLogin stores login tracking details and notifies the user
func recordLogin(c *fiber.Ctx, user *models.User) {
	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = forwarded
	}
	userAgent := c.Get("User-Agent")

	loginTracking := models.LoginTracking{
		UserID:    user.ID,
		IPAddress: ip,
		Device:    userAgent,
		Timestamp: time.Now(),
	}

	if err := database.Database.Db.Create(&loginTracking).Error; err != nil {
		log.Printf("Error saving login tracking details: %v", err)
	}

	utils.SendLoginNotificationEmail(user.Email, user.Name, ip, userAgent, loginTracking.Timestamp.Format(time.RFC1123))
}

func LoginHistoryList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized!")
	}

	reqData, ok := c.Locals("validatedLoginHistory").(*authValidator.LoginHistoryRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db
	offset := (reqData.Page - 1) * reqData.Limit

	var loginTracking []models.LoginTracking
	var total int64

	if err := db.Where("user_id = ? AND is_deleted = ?", userId, false).
		Order("timestamp DESC").
		Offset(offset).
		Limit(reqData.Limit).
		Find(&loginTracking).Error; err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to fetch login history!")
	}

	db.Model(&models.LoginTracking{}).Where("user_id = ? AND is_deleted = ?", userId, false).Count(&total)

	return middleware.Success(c, fiber.StatusOK, "Login history list.", fiber.Map{
		"loginHistory": loginTracking,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

func SendOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSendOTP").(*authValidator.SendOTPRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db

	var user models.User
	var subject, purpose string

	if reqData.Email != "" {
		if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
			return middleware.Fail(c, fiber.StatusNotFound, "USER_NOT_FOUND", "No account found for this email!")
		}
		if user.IsEmailVerified {
			return middleware.Fail(c, fiber.StatusConflict, "ALREADY_VERIFIED", "Email already verified!")
		}
		subject, purpose = reqData.Email, models.OTPEmailVerify
	} else {
		if err := db.Where("mobile = ? AND is_deleted = ?", reqData.Mobile, false).First(&user).Error; err != nil {
			return middleware.Fail(c, fiber.StatusNotFound, "USER_NOT_FOUND", "No account found for this mobile!")
		}
		if user.IsMobileVerified {
			return middleware.Fail(c, fiber.StatusConflict, "ALREADY_VERIFIED", "Mobile already verified!")
		}
		subject, purpose = reqData.Mobile, models.OTPPhoneVerify
	}

	otpRecord, err := utils.IssueOTP(db, user.ID, subject, purpose)
	if err != nil {
		if errors.Is(err, utils.ErrOTPCooldown) {
			return middleware.Fail(c, fiber.StatusTooManyRequests, "OTP_COOLDOWN", "An OTP was sent recently. Please wait before requesting another.")
		}
		log.Printf("Error issuing OTP: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to create OTP!")
	}

	if purpose == models.OTPEmailVerify {
		utils.SendOTPEmail(otpRecord.Code, subject)
	} else {
		if err := utils.SendOTPToMobile(subject, otpRecord.Code); err != nil {
			return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to send OTP to mobile!")
		}
	}

	return middleware.Success(c, fiber.StatusOK, "OTP sent successfully.", nil)
}

func VerifyOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVerifyOTP").(*authValidator.VerifyOTPRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db

	var user models.User
	var subject, purpose string

	if reqData.Email != "" {
		if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
			return middleware.Fail(c, fiber.StatusNotFound, "USER_NOT_FOUND", "User not found!")
		}
		subject, purpose = reqData.Email, models.OTPEmailVerify
	} else {
		if err := db.Where("mobile = ? AND is_deleted = ?", reqData.Mobile, false).First(&user).Error; err != nil {
			return middleware.Fail(c, fiber.StatusNotFound, "USER_NOT_FOUND", "User not found!")
		}
		subject, purpose = reqData.Mobile, models.OTPPhoneVerify
	}

	if err := utils.ConsumeOTP(db, subject, purpose, reqData.Code); err != nil {
		switch {
		case errors.Is(err, utils.ErrOTPExpired):
			return middleware.Fail(c, fiber.StatusUnauthorized, "OTP_EXPIRED", "OTP has expired!")
		case errors.Is(err, utils.ErrOTPInvalid):
			return middleware.Fail(c, fiber.StatusUnauthorized, "OTP_INVALID", "Invalid OTP!")
		default:
			log.Printf("Error consuming OTP: %v", err)
			return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to verify OTP!")
		}
	}

	// Update the matching verification flag
	if purpose == models.OTPEmailVerify {
		user.IsEmailVerified = true
	} else {
		user.IsMobileVerified = true
	}

	if err := db.Save(&user).Error; err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to update verification status!")
	}

	return middleware.Success(c, fiber.StatusOK, "OTP verified successfully!", nil)
}

func ForgotPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedForgotPassword").(*authValidator.ForgotPasswordRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db

	// Always answer success so the endpoint cannot be used to probe for
	// registered emails
	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.Success(c, fiber.StatusOK, "If the email is registered, a reset link has been sent.", nil)
	}

	token, hash, err := utils.GenerateResetToken()
	if err != nil {
		log.Printf("Error generating reset token: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to process your request!")
	}

	expiresAt := time.Now().Add(30 * time.Minute)
	user.ResetTokenHash = hash
	user.ResetTokenExpiresAt = &expiresAt
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error saving reset token: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to process your request!")
	}

	link := config.AppConfig.AppBaseURL + "/reset-password.html?token=" + token
	utils.SendPasswordResetEmail(user.Email, user.Name, link)

	return middleware.Success(c, fiber.StatusOK, "If the email is registered, a reset link has been sent.", nil)
}

func ResetPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetPassword").(*authValidator.ResetPasswordRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db

	var user models.User
	hash := utils.HashToken(reqData.Token)
	if err := db.Where("reset_token_hash = ? AND is_deleted = ?", hash, false).First(&user).Error; err != nil {
		return middleware.Fail(c, fiber.StatusUnauthorized, "RESET_TOKEN_INVALID", "Invalid or already used reset token!")
	}

	if user.ResetTokenExpiresAt == nil || user.ResetTokenExpiresAt.Before(time.Now()) {
		// Burn the stale token
		user.ResetTokenHash = ""
		user.ResetTokenExpiresAt = nil
		db.Save(&user)
		return middleware.Fail(c, fiber.StatusUnauthorized, "RESET_TOKEN_EXPIRED", "Reset token has expired!")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to hash password!")
	}

	// Single use: clear the token with the password update
	user.Password = string(hashedPassword)
	user.ResetTokenHash = ""
	user.ResetTokenExpiresAt = nil
	user.FailedLoginAttempts = 0
	user.IsBlocked = false
	user.BlockedUntil = nil
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating user password: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to update password!")
	}

	return middleware.Success(c, fiber.StatusOK, "Password reset successfully.", nil)
}

func ChangePassword(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.Fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid user session!")
	}

	reqData, ok := c.Locals("validatedChangePassword").(*authValidator.ChangePasswordRequest)
	if !ok {
		return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request data!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.Fail(c, fiber.StatusUnauthorized, "USER_NOT_FOUND", "User not found!")
	}

	// Validate current password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.CurrentPassword)); err != nil {
		return middleware.Fail(c, fiber.StatusUnauthorized, "WRONG_PASSWORD", "Current password is incorrect!")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to hash password!")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&user).Update("password", string(hashedPassword)).Error
	})
	if err != nil {
		log.Printf("Error updating user password: %v", err)
		return middleware.Fail(c, fiber.StatusInternalServerError, "INTERNAL", "Failed to update password!")
	}

	return middleware.Success(c, fiber.StatusOK, "Password changed successfully.", nil)
}
