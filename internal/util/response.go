package util

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/yohanvishvajith/sintravels-sub000/internal/config"
)

// ValidationError names the first offending field of a request payload.
// Handlers map it to a 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// MissingField builds the canonical "field is required" validation error.
func MissingField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
}

// SuccessResponse sends the standard {ok:true, ...} JSON envelope. Extra
// keys are merged in beside "ok".
func SuccessResponse(c *fiber.Ctx, code int, data fiber.Map) error {
	body := fiber.Map{"ok": true}
	for k, v := range data {
		body[k] = v
	}
	return c.Status(code).JSON(body)
}

// ErrorResponse sends the standard {ok:false, error} JSON envelope. The
// underlying error is surfaced as dev_message outside production.
func ErrorResponse(c *fiber.Ctx, code int, message string, errs ...error) error {
	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	body := fiber.Map{"ok": false, "error": message}
	if config.LoadAppConfig().Env != "production" && len(errs) > 0 && errs[0] != nil {
		body["dev_message"] = errs[0].Error()
	}
	return c.Status(code).JSON(body)
}

// FailFromError maps a domain error to its response: validation errors
// become 400s naming the field, everything else a 500.
func FailFromError(c *fiber.Ctx, err error) error {
	if ve, ok := err.(*ValidationError); ok {
		return ErrorResponse(c, fiber.StatusBadRequest, ve.Message)
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, err.Error(), err)
}
