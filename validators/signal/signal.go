package signalValidator

import (
	"botapi/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateSignalRequest struct {
	BotID       uint    `json:"botId" validate:"required"`
	Symbol      string  `json:"symbol" validate:"required,min=1,max=30"`
	Side        string  `json:"side" validate:"required,oneof=BUY SELL"`
	EntryPrice  float64 `json:"entryPrice" validate:"required,gt=0"`
	TargetPrice float64 `json:"targetPrice" validate:"omitempty,gt=0"`
	StopLoss    float64 `json:"stopLoss" validate:"omitempty,gt=0"`
}

type CloseSignalRequest struct {
	Result float64 `json:"result"` // realized pnl percent
}

type ListSignalsRequest struct {
	Page   int    `query:"page" validate:"min=0"`
	Limit  int    `query:"limit" validate:"min=0,max=100"`
	Status string `query:"status" validate:"omitempty,oneof=OPEN CLOSED"`
}

// CreateSignal validator middleware
func CreateSignal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSignalRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrors(err))
		}

		c.Locals("validatedCreateSignal", reqData)
		return c.Next()
	}
}

// CloseSignal validator middleware
func CloseSignal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CloseSignalRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		c.Locals("validatedCloseSignal", reqData)
		return c.Next()
	}
}

// ListSignals validator middleware
func ListSignals() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListSignalsRequest)
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

		c.Locals("validatedListSignals", reqData)
		return c.Next()
	}
}
