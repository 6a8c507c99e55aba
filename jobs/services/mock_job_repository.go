// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	"github.com/qolzam/jobly/internal/database/utils"
	"github.com/qolzam/jobly/jobs/models"
	"github.com/qolzam/jobly/jobs/repository"
	"github.com/stretchr/testify/mock"
)

// MockJobRepository is a mock implementation of JobRepository for testing
type MockJobRepository struct {
	mock.Mock
}

// Ensure MockJobRepository implements JobRepository
var _ repository.JobRepository = (*MockJobRepository)(nil)

func (m *MockJobRepository) Create(ctx context.Context, job *models.NewJob) (*models.Job, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) FindAll(ctx context.Context, where *utils.Where) ([]models.Job, error) {
	args := m.Called(ctx, where)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobRepository) FindByID(ctx context.Context, id int) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, id int, set *utils.SetClause) (*models.Job, error) {
	args := m.Called(ctx, id, set)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) Delete(ctx context.Context, id int) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}
