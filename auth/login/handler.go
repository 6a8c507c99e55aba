package login

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/users/errors"
	"github.com/qolzam/jobly/users/services"
	"github.com/qolzam/jobly/users/validation"
)

// Handler exchanges a username and password for a token.
type Handler struct {
	users  services.UserService
	issuer *tokens.Issuer
}

func NewHandler(users services.UserService, issuer *tokens.Issuer) *Handler {
	return &Handler{users: users, issuer: issuer}
}

// Handle answers POST /auth/token
// Body: {username, password}
func (h *Handler) Handle(c *fiber.Ctx) error {
	if _, err := validation.Auth.ValidateJSON(c.Body()); err != nil {
		return errors.HandleValidationError(c, err)
	}

	var model LoginModel
	if err := json.Unmarshal(c.Body(), &model); err != nil {
		return errors.HandleValidationError(c, err)
	}

	user, err := h.users.Authenticate(c.UserContext(), model.Username, model.Password)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	token, err := h.issuer.Issue(user.Identity())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"token": token})
}
