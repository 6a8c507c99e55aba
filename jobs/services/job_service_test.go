// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/qolzam/jobly/internal/database/postgres"
	"github.com/qolzam/jobly/internal/database/utils"
	jobErrors "github.com/qolzam/jobly/jobs/errors"
	"github.com/qolzam/jobly/jobs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dbErr(sentinel error) error {
	return &postgres.DBError{Sentinel: sentinel, Cause: errors.New("driver error")}
}

func TestJobService_Create(t *testing.T) {
	ctx := context.Background()
	newJob := &models.NewJob{Title: "new", CompanyHandle: "c1"}

	t.Run("success", func(t *testing.T) {
		repo := new(MockJobRepository)
		repo.On("Create", ctx, newJob).Return(&models.Job{ID: 1, Title: "new", CompanyHandle: "c1"}, nil)

		job, err := NewJobService(repo).Create(ctx, newJob)
		require.NoError(t, err)
		assert.Equal(t, 1, job.ID)
	})

	t.Run("unknown company", func(t *testing.T) {
		repo := new(MockJobRepository)
		repo.On("Create", ctx, newJob).Return(nil, dbErr(postgres.ErrForeignKeyViolation))

		_, err := NewJobService(repo).Create(ctx, newJob)
		assert.ErrorIs(t, err, jobErrors.ErrCompanyNotFound)
	})

	t.Run("numeric out of range", func(t *testing.T) {
		repo := new(MockJobRepository)
		repo.On("Create", ctx, newJob).Return(nil, dbErr(postgres.ErrInvalidValue))

		_, err := NewJobService(repo).Create(ctx, newJob)
		assert.ErrorIs(t, err, jobErrors.ErrValidationFailed)
	})
}

func TestJobService_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := new(MockJobRepository)
	repo.On("FindAll", ctx, mock.MatchedBy(func(w *utils.Where) bool {
		return w.String() == "WHERE salary > 200 AND equity > 0"
	})).Return([]models.Job{{ID: 1}}, nil)

	jobs, err := NewJobService(repo).FindAll(ctx, utils.JobFilter{MinSalary: 200, HasEquity: true})
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
	repo.AssertExpectations(t)
}

func TestJobService_Get(t *testing.T) {
	ctx := context.Background()
	repo := new(MockJobRepository)
	repo.On("FindByID", ctx, 0).Return(nil, dbErr(postgres.ErrNotFound))

	_, err := NewJobService(repo).Get(ctx, 0)
	assert.ErrorIs(t, err, jobErrors.ErrJobNotFound)
}

func TestJobService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("field names are columns", func(t *testing.T) {
		repo := new(MockJobRepository)
		repo.On("Update", ctx, 5, &utils.SetClause{
			SetCols: `"title"=$1, "salary"=$2`,
			Values:  []any{"renamed", int64(10)},
		}).Return(&models.Job{ID: 5, Title: "renamed"}, nil)

		job, err := NewJobService(repo).Update(ctx, 5, utils.NewUpdatePayload().Set("title", "renamed").Set("salary", int64(10)))
		require.NoError(t, err)
		assert.Equal(t, "renamed", job.Title)
		repo.AssertExpectations(t)
	})

	t.Run("identity fields rejected", func(t *testing.T) {
		repo := new(MockJobRepository)
		svc := NewJobService(repo)

		_, err := svc.Update(ctx, 5, utils.NewUpdatePayload().Set("id", 9))
		assert.ErrorIs(t, err, jobErrors.ErrInvalidRequest)
		_, err = svc.Update(ctx, 5, utils.NewUpdatePayload().Set("companyHandle", "c2"))
		assert.ErrorIs(t, err, jobErrors.ErrInvalidRequest)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no data", func(t *testing.T) {
		_, err := NewJobService(new(MockJobRepository)).Update(ctx, 5, utils.NewUpdatePayload())
		assert.ErrorIs(t, err, jobErrors.ErrInvalidRequest)
	})
}

func TestJobService_Remove(t *testing.T) {
	ctx := context.Background()
	repo := new(MockJobRepository)
	repo.On("Delete", ctx, 3).Return(&models.Job{ID: 3, Title: "j3"}, nil)
	repo.On("Delete", ctx, 4).Return(nil, dbErr(postgres.ErrNotFound))

	svc := NewJobService(repo)
	job, err := svc.Remove(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "j3", job.Title)

	_, err = svc.Remove(ctx, 4)
	assert.ErrorIs(t, err, jobErrors.ErrJobNotFound)
}
