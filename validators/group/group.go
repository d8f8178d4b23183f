package groupValidator

import (
	"botapi/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateGroupRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type UpdateGroupRequest struct {
	Name        string `json:"name" validate:"omitempty,min=3,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// CreateGroup validator middleware
func CreateGroup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateGroupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrors(err))
		}

		c.Locals("validatedCreateGroup", reqData)
		return c.Next()
	}
}

// UpdateGroup validator middleware
func UpdateGroup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateGroupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		errs := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			errs = middleware.ValidatorErrors(err)
		}
		if reqData.Name == "" && reqData.Description == "" {
			errs["request"] = "Nothing to update!"
		}

		if len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedUpdateGroup", reqData)
		return c.Next()
	}
}
