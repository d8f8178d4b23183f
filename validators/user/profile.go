package userValidator

import (
	"botapi/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type UpdateProfileRequest struct {
	Name   string `json:"name" validate:"omitempty,min=3,max=100"`
	Mobile string `json:"mobile" validate:"omitempty,len=10,numeric"`
}

type SetPinRequest struct {
	Pin string `json:"pin" validate:"required,min=4,max=6,numeric"`
}

type VerifyPinRequest struct {
	Pin string `json:"pin" validate:"required,min=4,max=6,numeric"`
}

type ChangePinRequest struct {
	CurrentPin string `json:"currentPin" validate:"required,min=4,max=6,numeric"`
	NewPin     string `json:"newPin" validate:"required,min=4,max=6,numeric"`
}

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		errs := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			errs = middleware.ValidatorErrors(err)
		}
		if reqData.Name == "" && reqData.Mobile == "" {
			errs["request"] = "Nothing to update!"
		}

		if len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedUpdateProfile", reqData)
		return c.Next()
	}
}

// SetPin validator middleware
func SetPin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SetPinRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrors(err))
		}

		c.Locals("validatedSetPin", reqData)
		return c.Next()
	}
}

// VerifyPin validator middleware
func VerifyPin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifyPinRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrors(err))
		}

		c.Locals("validatedVerifyPin", reqData)
		return c.Next()
	}
}

// ChangePin validator middleware
func ChangePin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChangePinRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrors(err))
		}

		c.Locals("validatedChangePin", reqData)
		return c.Next()
	}
}
