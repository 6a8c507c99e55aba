package signup

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/users/errors"
	"github.com/qolzam/jobly/users/models"
	"github.com/qolzam/jobly/users/services"
	"github.com/qolzam/jobly/users/validation"
)

// Handler registers non-admin users and returns a token for them.
type Handler struct {
	users  services.UserService
	issuer *tokens.Issuer
}

func NewHandler(users services.UserService, issuer *tokens.Issuer) *Handler {
	return &Handler{users: users, issuer: issuer}
}

// Handle answers POST /auth/register
// Body: {username, password, firstName, lastName, email}
func (h *Handler) Handle(c *fiber.Ctx) error {
	if _, err := validation.Register.ValidateJSON(c.Body()); err != nil {
		return errors.HandleValidationError(c, err)
	}

	var model models.NewUser
	if err := json.Unmarshal(c.Body(), &model); err != nil {
		return errors.HandleValidationError(c, err)
	}
	model.IsAdmin = false

	user, err := h.users.Register(c.UserContext(), &model)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	token, err := h.issuer.Issue(user.Identity())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"token": token})
}
