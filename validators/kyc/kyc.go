package kycValidator

import (
	"botapi/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type PanSection struct {
	PanNumber string `json:"panNumber" validate:"required,len=10,alphanum"`
	Name      string `json:"name" validate:"required,min=3"`
}

type AadharSection struct {
	AadharNumber string `json:"aadharNumber" validate:"required,len=12,numeric"`
	Name         string `json:"name" validate:"required,min=3"`
	DOB          string `json:"dob" validate:"required,datetime=2006-01-02"`
	Address      string `json:"address" validate:"required,min=5"`
}

type BankSection struct {
	AccountNumber string `json:"accountNumber" validate:"required,min=9,max=18,numeric"`
	IFSC          string `json:"ifsc" validate:"required,len=11,alphanum"`
}

type SubmitKYCRequest struct {
	Country   string                 `json:"country" validate:"omitempty,min=2"`
	Pan       *PanSection            `json:"pan" validate:"omitempty"`
	Aadhar    *AadharSection         `json:"aadhar" validate:"omitempty"`
	Bank      *BankSection           `json:"bank" validate:"omitempty"`
	Documents map[string]interface{} `json:"documents"`
}

type ListKYCRequest struct {
	Page   int    `query:"page" validate:"min=0"`
	Limit  int    `query:"limit" validate:"min=0,max=100"`
	Status string `query:"status" validate:"omitempty,oneof=PENDING VERIFIED REJECTED"`
}

type VerifySectionRequest struct {
	UserID  uint   `json:"userId" validate:"required"`
	Section string `json:"section" validate:"required,oneof=PAN AADHAR BANK"`
	Approve *bool  `json:"approve" validate:"required"`
	Remarks string `json:"remarks" validate:"omitempty,max=255"`
}

// SubmitKYC validator middleware
func SubmitKYC() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitKYCRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		errs := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			errs = middleware.ValidatorErrors(err)
		}
		if reqData.Pan == nil && reqData.Aadhar == nil && reqData.Bank == nil {
			errs["sections"] = "At least one KYC section is required!"
		}

		if len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedSubmitKYC", reqData)
		return c.Next()
	}
}

// ListKYC validator middleware
func ListKYC() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListKYCRequest)
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

		c.Locals("validatedListKYC", reqData)
		return c.Next()
	}
}

// VerifySection validator middleware
func VerifySection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifySectionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "BAD_REQUEST", "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrors(err))
		}

		c.Locals("validatedVerifySection", reqData)
		return c.Next()
	}
}
