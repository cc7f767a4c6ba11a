package patientValidator

import (
	"strings"

	"hms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateRequest struct {
	SerialNumber  string `json:"serial_number" validate:"required"`
	PatientName   string `json:"patient_name" validate:"required"`
	PhoneNumber   string `json:"phone_number" validate:"required"`
	Age           int    `json:"age" validate:"required,gt=0"`
	Sex           string `json:"sex" validate:"required"`
	MaritalStatus string `json:"marital_status" validate:"required"`
	Problem       string `json:"problem" validate:"required"`
	TimesOfVisit  int    `json:"times_of_visit"`
}

// UpdateRequest enumerates every updatable column explicitly; absent fields
// stay nil and untouched. No column list is ever assembled from request keys.
type UpdateRequest struct {
	SerialNumber  *string `json:"serial_number"`
	PatientName   *string `json:"patient_name"`
	PhoneNumber   *string `json:"phone_number"`
	Age           *int    `json:"age" validate:"omitempty,gt=0"`
	Sex           *string `json:"sex"`
	MaritalStatus *string `json:"marital_status"`
	Problem       *string `json:"problem"`
	TimesOfVisit  *int    `json:"times_of_visit" validate:"omitempty,gte=0"`
}

// HasChanges reports whether any field was provided.
func (r *UpdateRequest) HasChanges() bool {
	return r.SerialNumber != nil || r.PatientName != nil || r.PhoneNumber != nil ||
		r.Age != nil || r.Sex != nil || r.MaritalStatus != nil ||
		r.Problem != nil || r.TimesOfVisit != nil
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

		c.Locals("validatedPatient", reqData)
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

		c.Locals("validatedPatientUpdate", reqData)
		return c.Next()
	}
}

// collectErrors turns validator failures into the field->message map used by
// ValidationErrorResponse.
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
