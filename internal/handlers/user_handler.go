package handlers

import (
	"errors"

	"userdesk/internal/models"
	"userdesk/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for the user directory.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
	log      *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
		log:      log,
	}
}

// RegisterRoutes registers the user directory routes.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleListUsers)
	userRoutes.Post("/", h.HandleCreateUser)
}

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Birthday string `json:"birthday"`
	Address  string `json:"address"`
	Contact  string `json:"contact"`
	Email    string `json:"email" validate:"required,email"`
}

// HandleListUsers lists users, filtered by the optional search query.
func (h *UserHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.service.Search(c.UserContext(), c.Query("search"))
	if err != nil {
		h.log.Error("failed to fetch users", zap.Error(err))
		return serverError(c, "Error fetching users", err)
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// HandleCreateUser adds a user to the directory.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("create user rejected", zap.Error(err))
		return message(c, fiber.StatusBadRequest, "Name and a valid email are required!")
	}

	user, err := h.service.Create(c.UserContext(), models.User{
		Name:     req.Name,
		Birthday: req.Birthday,
		Address:  req.Address,
		Contact:  req.Contact,
		Email:    req.Email,
	})
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return message(c, fiber.StatusBadRequest, "Name and a valid email are required!")
		}
		h.log.Error("failed to create user", zap.String("email", req.Email), zap.Error(err))
		return serverError(c, "Error creating user", err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}
