package handlers

import (
	"errors"

	"userdesk/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	msgFieldsRequired     = "All fields are required!"
	msgInvalidCredentials = "Invalid email or password!"
)

// AdminHandler handles HTTP requests for admin accounts.
type AdminHandler struct {
	service  *services.AdminService
	validate *validator.Validate
	log      *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *services.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service:  service,
		validate: validator.New(),
		log:      log,
	}
}

// RegisterRoutes registers the admin routes.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminRoutes := router.Group("/admin")
	adminRoutes.Post("/register", h.HandleRegister)
	adminRoutes.Post("/login", h.HandleLogin)
}

// RegisterRequest represents the request body for admin registration.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents the request body for admin login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleRegister creates a new admin account.
func (h *AdminHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("register rejected", zap.Error(err))
		return message(c, fiber.StatusBadRequest, msgFieldsRequired)
	}

	if _, err := h.service.Register(c.UserContext(), req.Username, req.Email, req.Password); err != nil {
		if errors.Is(err, services.ErrValidation) {
			return message(c, fiber.StatusBadRequest, msgFieldsRequired)
		}
		h.log.Error("failed to register admin", zap.String("email", req.Email), zap.Error(err))
		return serverError(c, "Error registering admin", err)
	}

	return message(c, fiber.StatusCreated, "Admin registered successfully!")
}

// HandleLogin checks admin credentials. No token or session is issued.
func (h *AdminHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("login rejected", zap.Error(err))
		return message(c, fiber.StatusBadRequest, msgFieldsRequired)
	}

	identity, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return message(c, fiber.StatusBadRequest, msgFieldsRequired)
		case errors.Is(err, services.ErrAuthentication):
			h.log.Debug("login failed", zap.String("email", req.Email))
			return message(c, fiber.StatusBadRequest, msgInvalidCredentials)
		default:
			h.log.Error("failed to log in admin", zap.String("email", req.Email), zap.Error(err))
			return serverError(c, "Server error", err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful!",
		"admin":   identity,
	})
}
