// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/companies/errors"
	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/companies/services"
	"github.com/qolzam/jobly/companies/validation"
	"github.com/qolzam/jobly/internal/database/utils"
	"github.com/qolzam/jobly/internal/pkg/parser"
)

// CompanyHandler handles all company-related HTTP requests
type CompanyHandler struct {
	companyService services.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler with injected dependencies
func NewCompanyHandler(companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Create handles POST /companies
// Body: {handle, name, description, numEmployees?, logoUrl?}
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	if _, err := validation.NewCompany.ValidateJSON(c.Body()); err != nil {
		return errors.HandleValidationError(c, err)
	}

	var req models.NewCompany
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return errors.HandleValidationError(c, err)
	}

	company, err := h.companyService.Create(c.UserContext(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"company": company})
}

// FindAll handles GET /companies?name=&minEmployees=&maxEmployees=
func (h *CompanyHandler) FindAll(c *fiber.Ctx) error {
	var filter utils.CompanyFilter
	if err := parser.Query(c, &filter); err != nil {
		return errors.HandleValidationError(c, err)
	}
	if err := validation.ValidateSearch(filter); err != nil {
		return errors.HandleValidationError(c, err)
	}

	companies, err := h.companyService.FindAll(c.UserContext(), filter)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"companies": companies})
}

// Get handles GET /companies/:handle
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	company, err := h.companyService.Get(c.UserContext(), c.Params("handle"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"company": company})
}

// Update handles PATCH /companies/:handle
// Body: any of {name, description, numEmployees, logoUrl}
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	payload, err := validation.UpdateCompany.ValidateJSON(c.Body())
	if err != nil {
		return errors.HandleValidationError(c, err)
	}

	company, err := h.companyService.Update(c.UserContext(), c.Params("handle"), payload)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"company": company})
}

// Remove handles DELETE /companies/:handle
func (h *CompanyHandler) Remove(c *fiber.Ctx) error {
	handle := c.Params("handle")
	if err := h.companyService.Remove(c.UserContext(), handle); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": handle})
}
