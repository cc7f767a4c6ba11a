package appointmentValidator

import (
	"strings"

	"hms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateRequest struct {
	PatientID uint   `json:"patient_id" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Duration  int    `json:"duration" validate:"omitempty,gt=0"`
	Notes     string `json:"notes"`
	Status    string `json:"status"`
}

// UpdateRequest enumerates the updatable columns; absent fields stay nil.
type UpdateRequest struct {
	Date     *string `json:"date"`
	Time     *string `json:"time"`
	Duration *int    `json:"duration" validate:"omitempty,gt=0"`
	Notes    *string `json:"notes"`
	Status   *string `json:"status"`
}

func (r *UpdateRequest) HasChanges() bool {
	return r.Date != nil || r.Time != nil || r.Duration != nil ||
		r.Notes != nil || r.Status != nil
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := collectErrors(validate.Struct(reqData)); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAppointment", reqData)
		return c.Next()
	}
}

// Update validator middleware
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := collectErrors(validate.Struct(reqData)); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAppointmentUpdate", reqData)
		return c.Next()
	}
}

func collectErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["request"] = "Invalid request data!"
		return errors
	}

	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			errors[field] = "Missing required field: " + field
		default:
			errors[field] = "Invalid value for field: " + field
		}
	}
	return errors
}
