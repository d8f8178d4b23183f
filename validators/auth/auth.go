package authValidator

import (
	"botapi/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile" validate:"omitempty,len=10,numeric"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Mobile   string `json:"mobile" validate:"omitempty,len=10,numeric"`
	Password string `json:"password" validate:"required,min=8"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type SendOTPRequest struct {
	Email  string `json:"email" validate:"omitempty,email"`
	Mobile string `json:"mobile" validate:"omitempty,len=10,numeric"`
}

type VerifyOTPRequest struct {
	Email  string `json:"email" validate:"omitempty,email"`
	Mobile string `json:"mobile" validate:"omitempty,len=10,numeric"`
	Code   string `json:"code" validate:"required,len=6,numeric"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required,len=64,hexadecimal"`
	Password string `json:"password" validate:"required,min=8"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,min=8"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
	CnfPassword     string `json:"cnfPassword" validate:"required,eqfield=NewPassword"`
}

type LoginHistoryRequest struct {
	Page  int `query:"page" validate:"required,min=1"`
	Limit int `query:"limit" validate:"required,min=1,max=100"`
}

// requireOneSubject enforces that exactly one of email or mobile is set
func requireOneSubject(email, mobile string, errs map[string]string) {
	if (email == "" && mobile == "") || (email != "" && mobile != "") {
		errs["credentials"] = "Provide either email or mobile (only one)."
	}
}

// Signup validator middleware
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrors(err))
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		errs := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			errs = middleware.ValidatorErrors(err)
		}
		if reqData.Email == "" && reqData.Mobile == "" {
			errs["credentials"] = "Either email or mobile number is required!"
		}

		if len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// GoogleLogin validator middleware
func GoogleLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(GoogleLoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrors(err))
		}

		c.Locals("validatedGoogleLogin", reqData)
		return c.Next()
	}
}

// SendOTP validator middleware
func SendOTP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SendOTPRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		errs := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			errs = middleware.ValidatorErrors(err)
		}
		requireOneSubject(reqData.Email, reqData.Mobile, errs)

		if len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedSendOTP", reqData)
		return c.Next()
	}
}

// VerifyOTP validator middleware
func VerifyOTP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifyOTPRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		errs := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			errs = middleware.ValidatorErrors(err)
		}
		requireOneSubject(reqData.Email, reqData.Mobile, errs)

		if len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedVerifyOTP", reqData)
		return c.Next()
	}
}

// ForgotPassword validator middleware
func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ForgotPasswordRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrors(err))
		}

		c.Locals("validatedForgotPassword", reqData)
		return c.Next()
	}
}

// ResetPassword validator middleware
func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ResetPasswordRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrors(err))
		}

		c.Locals("validatedResetPassword", reqData)
		return c.Next()
	}
}

// ChangePassword validator middleware
func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChangePasswordRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrors(err))
		}

		c.Locals("validatedChangePassword", reqData)
		return c.Next()
	}
}

// LoginHistory validator middleware
func LoginHistory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginHistoryRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid query parameters!")
		}

		if reqData.Page == 0 {
			reqData.Page = 1
		}
		if reqData.Limit == 0 {
			reqData.Limit = 20
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrors(err))
		}

		c.Locals("validatedLoginHistory", reqData)
		return c.Next()
	}
}
