package botValidator

import (
	"botapi/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateBotRequest struct {
	Name         string  `json:"name" validate:"required,min=3,max=100"`
	Description  string  `json:"description" validate:"omitempty,max=1000"`
	Strategy     string  `json:"strategy" validate:"omitempty,max=100"`
	RiskLevel    string  `json:"riskLevel" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	MonthlyPrice float64 `json:"monthlyPrice" validate:"min=0"`
	GroupID      uint    `json:"groupId" validate:"required"`
}

type UpdateBotRequest struct {
	Name         string   `json:"name" validate:"omitempty,min=3,max=100"`
	Description  *string  `json:"description" validate:"omitempty,max=1000"`
	Strategy     *string  `json:"strategy" validate:"omitempty,max=100"`
	RiskLevel    string   `json:"riskLevel" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	MonthlyPrice *float64 `json:"monthlyPrice" validate:"omitempty,min=0"`
	GroupID      uint     `json:"groupId"`
	IsActive     *bool    `json:"isActive"`
}

type ListBotsRequest struct {
	Page      int    `query:"page" validate:"min=0"`
	Limit     int    `query:"limit" validate:"min=0,max=100"`
	Search    string `query:"search" validate:"omitempty,max=100"`
	GroupID   uint   `query:"groupId"`
	RiskLevel string `query:"riskLevel" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
}

// CreateBot validator middleware
func CreateBot() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateBotRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrors(err))
		}

		c.Locals("validatedCreateBot", reqData)
		return c.Next()
	}
}

// UpdateBot validator middleware
func UpdateBot() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateBotRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrors(err))
		}

		c.Locals("validatedUpdateBot", reqData)
		return c.Next()
	}
}

// ListBots validator middleware
func ListBots() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListBotsRequest)
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

		c.Locals("validatedListBots", reqData)
		return c.Next()
	}
}
