package subscriptionValidator

import (
	"botapi/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type SubscribeRequest struct {
	BotID uint `json:"botId" validate:"required"`
}

type ListSubscriptionsRequest struct {
	Page   int    `query:"page" validate:"min=0"`
	Limit  int    `query:"limit" validate:"min=0,max=100"`
	Status string `query:"status" validate:"omitempty,oneof=ACTIVE CANCELLED"`
}

// Subscribe validator middleware
func Subscribe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubscribeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrors(err))
		}

		c.Locals("validatedSubscribe", reqData)
		return c.Next()
	}
}

// ListSubscriptions validator middleware
func ListSubscriptions() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListSubscriptionsRequest)
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

		c.Locals("validatedListSubscriptions", reqData)
		return c.Next()
	}
}
