package authController

import (
	"hms/verification"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the authentication surface. Every endpoint answers
// 200 OK and reports the logical outcome in the success field; clients
// branch on the body, not the status line.
type Handler struct {
	Workflow *verification.Workflow
}

func New(workflow *verification.Workflow) *Handler {
	return &Handler{Workflow: workflow}
}

func respond(c *fiber.Ctx, res verification.Result) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": res.OK(),
		"message": res.Message,
	})
}

// Register starts the signup flow: profile collection plus OTP issuance.
func (h *Handler) Register(c *fiber.Ctx) error {
	reqData := new(struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		Designation string `json:"designation"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return respond(c, verification.Result{Status: verification.StatusValidation, Message: "Invalid request body"})
	}

	return respond(c, h.Workflow.BeginRegistration(reqData.Name, reqData.Email, reqData.Phone, reqData.Designation))
}

// SendOTP re-issues a registration code for the email.
func (h *Handler) SendOTP(c *fiber.Ctx) error {
	reqData := new(struct {
		Email string `json:"email"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return respond(c, verification.Result{Status: verification.StatusValidation, Message: "Invalid request body"})
	}

	return respond(c, h.Workflow.ResendRegistrationOTP(reqData.Email))
}

func (h *Handler) VerifyOTP(c *fiber.Ctx) error {
	reqData := new(struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return respond(c, verification.Result{Status: verification.StatusValidation, Message: "Invalid request body"})
	}

	return respond(c, h.Workflow.VerifyRegistrationOTP(reqData.Email, reqData.OTP))
}

func (h *Handler) CompleteRegistration(c *fiber.Ctx) error {
	reqData := new(struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		Designation string `json:"designation"`
		Password    string `json:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return respond(c, verification.Result{Status: verification.StatusValidation, Message: "Invalid request body"})
	}

	return respond(c, h.Workflow.CompleteRegistration(
		reqData.Name, reqData.Email, reqData.Phone, reqData.Designation, reqData.Password))
}

// Login accepts email, phone or name as the username.
func (h *Handler) Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Username string `json:"username"`
		Password string `json:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return respond(c, verification.Result{Status: verification.StatusValidation, Message: "Invalid request body"})
	}

	identity, res := h.Workflow.Login(reqData.Username, reqData.Password)
	if !res.OK() {
		return respond(c, res)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    identity,
		"message": res.Message,
	})
}

func (h *Handler) SendResetOTP(c *fiber.Ctx) error {
	reqData := new(struct {
		Email string `json:"email"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return respond(c, verification.Result{Status: verification.StatusValidation, Message: "Invalid request body"})
	}

	return respond(c, h.Workflow.BeginReset(reqData.Email))
}

func (h *Handler) VerifyResetOTP(c *fiber.Ctx) error {
	reqData := new(struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return respond(c, verification.Result{Status: verification.StatusValidation, Message: "Invalid request body"})
	}

	return respond(c, h.Workflow.VerifyResetOTP(reqData.Email, reqData.OTP))
}

func (h *Handler) ResetPassword(c *fiber.Ctx) error {
	reqData := new(struct {
		Email       string `json:"email"`
		OTP         string `json:"otp"`
		NewPassword string `json:"new_password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return respond(c, verification.Result{Status: verification.StatusValidation, Message: "Invalid request body"})
	}

	return respond(c, h.Workflow.ResetPassword(reqData.Email, reqData.OTP, reqData.NewPassword))
}
