// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/qolzam/jobly/internal/database/utils"
	"github.com/qolzam/jobly/jobs/models"
)

// JobRepository defines the database operations on jobs.
// Errors are mapped through postgres.MapError.
type JobRepository interface {
	// Create inserts a job. An unknown company surfaces as
	// postgres.ErrForeignKeyViolation.
	Create(ctx context.Context, job *models.NewJob) (*models.Job, error)

	// FindAll returns the jobs matching where, ordered by title.
	FindAll(ctx context.Context, where *utils.Where) ([]models.Job, error)

	FindByID(ctx context.Context, id int) (*models.Job, error)

	Update(ctx context.Context, id int, set *utils.SetClause) (*models.Job, error)

	// Delete removes a job and returns the deleted row.
	Delete(ctx context.Context, id int) (*models.Job, error)
}
