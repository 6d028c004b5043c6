package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the inner payload of every error response.
type ErrorBody struct {
	Message string `json:"message"`
}

// ErrorResponse is the envelope every failed request returns:
// { "error": { "message": "..." } }
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error writes a JSON error response with the given status.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Error: ErrorBody{Message: message}})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func ServerError(c *fiber.Ctx) error {
	return Error(c, fiber.StatusInternalServerError, "Server error")
}
