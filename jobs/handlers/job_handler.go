// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/database/utils"
	"github.com/qolzam/jobly/internal/pkg/parser"
	"github.com/qolzam/jobly/jobs/errors"
	"github.com/qolzam/jobly/jobs/models"
	"github.com/qolzam/jobly/jobs/services"
	"github.com/qolzam/jobly/jobs/validation"
)

// JobHandler handles all job-related HTTP requests
type JobHandler struct {
	jobService services.JobService
}

// NewJobHandler creates a new JobHandler with injected dependencies
func NewJobHandler(jobService services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// Create handles POST /jobs
// Body: {title, salary?, equity?, companyHandle}
func (h *JobHandler) Create(c *fiber.Ctx) error {
	if _, err := validation.NewJob.ValidateJSON(c.Body()); err != nil {
		return errors.HandleValidationError(c, err)
	}

	var req models.NewJob
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return errors.HandleValidationError(c, err)
	}

	job, err := h.jobService.Create(c.UserContext(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"job": job})
}

// FindAll handles GET /jobs?title=&minSalary=&hasEquity=
func (h *JobHandler) FindAll(c *fiber.Ctx) error {
	var filter utils.JobFilter
	if err := parser.Query(c, &filter); err != nil {
		return errors.HandleValidationError(c, err)
	}
	if err := validation.ValidateSearch(filter); err != nil {
		return errors.HandleValidationError(c, err)
	}

	jobs, err := h.jobService.FindAll(c.UserContext(), filter)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"jobs": jobs})
}

// Get handles GET /jobs/:id
func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrJobNotFound)
	}

	job, err := h.jobService.Get(c.UserContext(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"job": job})
}

// Update handles PATCH /jobs/:id
// Body: any of {title, salary, equity}
func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrJobNotFound)
	}

	payload, err := validation.UpdateJob.ValidateJSON(c.Body())
	if err != nil {
		return errors.HandleValidationError(c, err)
	}

	job, err := h.jobService.Update(c.UserContext(), id, payload)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"job": job})
}

// Remove handles DELETE /jobs/:id and answers with the deleted job.
func (h *JobHandler) Remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errors.HandleServiceError(c, errors.ErrJobNotFound)
	}

	job, err := h.jobService.Remove(c.UserContext(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": job})
}
