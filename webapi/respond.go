package webapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Machine-readable error codes carried by the coded error envelope.
const (
	ErrCodeMissingParam     = "ERR_MISSING_PARAM"
	ErrCodeInvalidParam     = "ERR_INVALID_PARAM"
	ErrCodeAccountNotFound  = "ERR_ACCOUNT_NOT_FOUND"
	ErrCodeCustomerNotFound = "ERR_CUSTOMER_NOT_FOUND"
	ErrCodeInternal         = "ERR_INTERNAL"
	ErrCodeUnauthorized     = "ERR_UNAUTHORIZED"
	ErrCodeForbidden        = "ERR_FORBIDDEN"
)

// CodedError is the error envelope of the listing path and the API-key gate:
// a stable machine-readable code plus a human message.
type CodedError struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

// SimpleError is the error envelope of the create and delete paths and of
// the app-level error handler. The two envelopes are distinct contracts;
// external callers may depend on either, so they are not unified.
type SimpleError struct {
	Error string `json:"error"`
}

// ErrorResponseJSON writes a CodedError with the given status.
func ErrorResponseJSON(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(CodedError{ErrorCode: code, Message: message})
}

// SimpleErrorJSON writes a SimpleError with the given status.
func SimpleErrorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(SimpleError{Error: message})
}

// BindAndValidate parses the request body into T and validates it with
// go-playground/validator. On failure it writes a 400 SimpleError carrying
// errMessage and returns nil.
func BindAndValidate[T any](c *fiber.Ctx, errMessage string) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, SimpleErrorJSON(c, fiber.StatusBadRequest, errMessage)
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return nil, SimpleErrorJSON(c, fiber.StatusBadRequest, errMessage)
	}
	return &input, nil
}
