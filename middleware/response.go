package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// JsonResponse writes the standard response envelope. The authentication
// endpoints always pass fiber.StatusOK and put the logical outcome in the
// success field; callers branch on the body, not the status line.
func JsonResponse(c *fiber.Ctx, statusCode int, success bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": success,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed!",
		"errors":  errors,
	})
}
