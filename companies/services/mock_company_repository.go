// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/companies/repository"
	"github.com/qolzam/jobly/internal/database/utils"
	"github.com/stretchr/testify/mock"
)

// MockCompanyRepository is a mock implementation of CompanyRepository for testing
type MockCompanyRepository struct {
	mock.Mock
}

// Ensure MockCompanyRepository implements CompanyRepository
var _ repository.CompanyRepository = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) Create(ctx context.Context, company *models.NewCompany) (*models.Company, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindAll(ctx context.Context, where *utils.Where) ([]models.Company, error) {
	args := m.Called(ctx, where)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByHandle(ctx context.Context, handle string) (*models.Company, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindJobs(ctx context.Context, handle string) ([]models.CompanyJob, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CompanyJob), args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, handle string, set *utils.SetClause) (*models.Company, error) {
	args := m.Called(ctx, handle, set)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, handle string) error {
	args := m.Called(ctx, handle)
	return args.Error(0)
}
