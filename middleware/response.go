package middleware

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response envelope status values
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Success writes a success envelope
func Success(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  StatusSuccess,
		"message": message,
		"data":    data,
	})
}

// Fail writes an operational failure envelope with a machine readable
// code (cataloged in ERROR_CODES.md)
func Fail(c *fiber.Ctx, statusCode int, code, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  StatusFail,
		"code":    code,
		"message": message,
	})
}

// FailData is Fail with an extra data payload (e.g. field errors)
func FailData(c *fiber.Ctx, statusCode int, code, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  StatusFail,
		"code":    code,
		"message": message,
		"data":    data,
	})
}

// ValidationErrorResponse writes the standard validation failure envelope
func ValidationErrorResponse(c *fiber.Ctx, errs map[string]string) error {
	return FailData(c, fiber.StatusUnprocessableEntity, "VALIDATION_FAILED", "Validation failed!", errs)
}

// ValidatorErrors flattens validator.v10 errors into a field->message map
func ValidatorErrors(err error) map[string]string {
	fields := make(map[string]string)
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		for _, fe := range vErrs {
			fields[fe.Field()] = "Failed on rule: " + fe.Tag()
		}
		return fields
	}
	fields["request"] = err.Error()
	return fields
}

// ErrorHandler is the app level fiber error handler. Operational
// fiber.Errors become fail envelopes; anything else is logged and
// returned as a generic 500 error envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return Fail(c, fe.Code, "REQUEST_FAILED", fe.Message)
	}

	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":  StatusError,
		"message": "Something went wrong!",
	})
}
