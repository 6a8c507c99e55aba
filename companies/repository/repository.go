// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/internal/database/utils"
)

// CompanyRepository defines the database operations on companies.
// Errors are mapped through postgres.MapError so callers can match
// postgres.ErrNotFound and postgres.ErrDuplicateKey.
type CompanyRepository interface {
	Create(ctx context.Context, company *models.NewCompany) (*models.Company, error)

	// FindAll returns the companies matching where, ordered by name.
	FindAll(ctx context.Context, where *utils.Where) ([]models.Company, error)

	FindByHandle(ctx context.Context, handle string) (*models.Company, error)

	// FindJobs returns the jobs of a company ordered by id.
	FindJobs(ctx context.Context, handle string) ([]models.CompanyJob, error)

	Update(ctx context.Context, handle string, set *utils.SetClause) (*models.Company, error)

	Delete(ctx context.Context, handle string) error
}
