// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/qolzam/jobly/internal/database/postgres"
	"github.com/qolzam/jobly/internal/database/utils"
	"github.com/qolzam/jobly/internal/pkg/log"
	jobErrors "github.com/qolzam/jobly/jobs/errors"
	"github.com/qolzam/jobly/jobs/models"
	"github.com/qolzam/jobly/jobs/repository"
)

// JobService defines the job operations
type JobService interface {
	Create(ctx context.Context, job *models.NewJob) (*models.Job, error)
	FindAll(ctx context.Context, filter utils.JobFilter) ([]models.Job, error)
	Get(ctx context.Context, id int) (*models.Job, error)
	Update(ctx context.Context, id int, payload *utils.UpdatePayload) (*models.Job, error)
	// Remove deletes a job and returns it.
	Remove(ctx context.Context, id int) (*models.Job, error)
}

type jobService struct {
	repo repository.JobRepository
}

// NewJobService creates a new instance of the job service
func NewJobService(repo repository.JobRepository) JobService {
	return &jobService{repo: repo}
}

func (s *jobService) Create(ctx context.Context, job *models.NewJob) (*models.Job, error) {
	created, err := s.repo.Create(ctx, job)
	if err != nil {
		if errors.Is(err, postgres.ErrForeignKeyViolation) {
			return nil, fmt.Errorf("%w: no company %s", jobErrors.ErrCompanyNotFound, job.CompanyHandle)
		}
		return nil, translate(err, 0)
	}
	log.InfoWithContext(ctx, "job %d created for %s", created.ID, created.CompanyHandle)
	return created, nil
}

func (s *jobService) FindAll(ctx context.Context, filter utils.JobFilter) ([]models.Job, error) {
	where := utils.JobWhere(filter)
	log.DebugWithContext(ctx, "job search %s", where)

	jobs, err := s.repo.FindAll(ctx, where)
	if err != nil {
		return nil, translate(err, 0)
	}
	return jobs, nil
}

func (s *jobService) Get(ctx context.Context, id int) (*models.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, id)
	}
	return job, nil
}

func (s *jobService) Update(ctx context.Context, id int, payload *utils.UpdatePayload) (*models.Job, error) {
	if payload.Has("id") || payload.Has("companyHandle") {
		return nil, fmt.Errorf("%w: id and companyHandle cannot be changed", jobErrors.ErrInvalidRequest)
	}

	set, err := utils.SQLForPartialUpdate(payload, models.ColumnNames)
	if err != nil {
		if errors.Is(err, utils.ErrNoData) {
			return nil, fmt.Errorf("%w: %v", jobErrors.ErrInvalidRequest, err)
		}
		return nil, err
	}

	job, err := s.repo.Update(ctx, id, set)
	if err != nil {
		return nil, translate(err, id)
	}
	return job, nil
}

func (s *jobService) Remove(ctx context.Context, id int) (*models.Job, error) {
	job, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, translate(err, id)
	}
	log.InfoWithContext(ctx, "job %d removed", id)
	return job, nil
}

func translate(err error, id int) error {
	switch {
	case errors.Is(err, postgres.ErrNotFound):
		return fmt.Errorf("%w: no job with id of %d", jobErrors.ErrJobNotFound, id)
	case errors.Is(err, postgres.ErrCheckViolation), errors.Is(err, postgres.ErrInvalidValue):
		return fmt.Errorf("%w: %v", jobErrors.ErrValidationFailed, err)
	default:
		return fmt.Errorf("%w: %v", jobErrors.ErrDatabaseOperation, err)
	}
}
