// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/internal/middleware/authjwt"
	"github.com/qolzam/jobly/users/errors"
	"github.com/qolzam/jobly/users/models"
	"github.com/qolzam/jobly/users/services"
	"github.com/qolzam/jobly/users/validation"
)

// UserHandler handles all user-related HTTP requests
type UserHandler struct {
	userService services.UserService
	issuer      *tokens.Issuer
}

// NewUserHandler creates a new UserHandler with injected dependencies
func NewUserHandler(userService services.UserService, issuer *tokens.Issuer) *UserHandler {
	return &UserHandler{userService: userService, issuer: issuer}
}

// Create handles POST /users
// Admins add users, optionally admins. Returns the user and a token for it.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	if _, err := validation.NewUser.ValidateJSON(c.Body()); err != nil {
		return errors.HandleValidationError(c, err)
	}

	var req models.NewUser
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return errors.HandleValidationError(c, err)
	}

	user, err := h.userService.Register(c.UserContext(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	token, err := h.issuer.Issue(user.Identity())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"user": user, "token": token})
}

// FindAll handles GET /users
func (h *UserHandler) FindAll(c *fiber.Ctx) error {
	users, err := h.userService.FindAll(c.UserContext())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// Get handles GET /users/:username
func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.userService.Get(c.UserContext(), c.Params("username"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// Update handles PATCH /users/:username
// Body: any of {firstName, lastName, password, email}; admins may also set isAdmin.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	caller, _ := authjwt.GetUser(c)
	payload, err := validation.ForUpdate(caller.IsAdmin).ValidateJSON(c.Body())
	if err != nil {
		return errors.HandleValidationError(c, err)
	}

	user, err := h.userService.Update(c.UserContext(), c.Params("username"), payload)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// Remove handles DELETE /users/:username
func (h *UserHandler) Remove(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := h.userService.Remove(c.UserContext(), username); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": username})
}

// Apply handles POST /users/:username/jobs/:id
func (h *UserHandler) Apply(c *fiber.Ctx) error {
	jobID, err := c.ParamsInt("id")
	if err != nil {
		return errors.HandleValidationError(c, err)
	}

	if err := h.userService.Apply(c.UserContext(), c.Params("username"), jobID); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"applied": jobID})
}
