// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"
	"fmt"

	companyErrors "github.com/qolzam/jobly/companies/errors"
	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/companies/repository"
	"github.com/qolzam/jobly/internal/database/postgres"
	"github.com/qolzam/jobly/internal/database/utils"
	"github.com/qolzam/jobly/internal/pkg/log"
)

// CompanyService defines the company operations
type CompanyService interface {
	Create(ctx context.Context, company *models.NewCompany) (*models.Company, error)
	FindAll(ctx context.Context, filter utils.CompanyFilter) ([]models.Company, error)
	Get(ctx context.Context, handle string) (*models.CompanyDetail, error)
	Update(ctx context.Context, handle string, payload *utils.UpdatePayload) (*models.Company, error)
	Remove(ctx context.Context, handle string) error
}

type companyService struct {
	repo repository.CompanyRepository
}

// NewCompanyService creates a new instance of the company service
func NewCompanyService(repo repository.CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

func (s *companyService) Create(ctx context.Context, company *models.NewCompany) (*models.Company, error) {
	created, err := s.repo.Create(ctx, company)
	if err != nil {
		return nil, s.translate(err, company.Handle)
	}
	log.InfoWithContext(ctx, "company %s created", created.Handle)
	return created, nil
}

func (s *companyService) FindAll(ctx context.Context, filter utils.CompanyFilter) ([]models.Company, error) {
	where := utils.CompanyWhere(filter)
	log.DebugWithContext(ctx, "company search %s", where)

	companies, err := s.repo.FindAll(ctx, where)
	if err != nil {
		return nil, s.translate(err, "")
	}
	return companies, nil
}

func (s *companyService) Get(ctx context.Context, handle string) (*models.CompanyDetail, error) {
	company, err := s.repo.FindByHandle(ctx, handle)
	if err != nil {
		return nil, s.translate(err, handle)
	}

	jobs, err := s.repo.FindJobs(ctx, handle)
	if err != nil {
		return nil, s.translate(err, handle)
	}

	return &models.CompanyDetail{Company: *company, Jobs: jobs}, nil
}

func (s *companyService) Update(ctx context.Context, handle string, payload *utils.UpdatePayload) (*models.Company, error) {
	set, err := utils.SQLForPartialUpdate(payload, models.ColumnNames)
	if err != nil {
		if errors.Is(err, utils.ErrNoData) {
			return nil, fmt.Errorf("%w: %v", companyErrors.ErrInvalidRequest, err)
		}
		return nil, err
	}

	company, err := s.repo.Update(ctx, handle, set)
	if err != nil {
		return nil, s.translate(err, handle)
	}
	return company, nil
}

func (s *companyService) Remove(ctx context.Context, handle string) error {
	if err := s.repo.Delete(ctx, handle); err != nil {
		return s.translate(err, handle)
	}
	log.InfoWithContext(ctx, "company %s removed", handle)
	return nil
}

// translate maps repository errors onto company errors.
func (s *companyService) translate(err error, handle string) error {
	switch {
	case errors.Is(err, postgres.ErrNotFound):
		return fmt.Errorf("%w: no company %s", companyErrors.ErrCompanyNotFound, handle)
	case errors.Is(err, postgres.ErrDuplicateKey):
		return fmt.Errorf("%w: %s", companyErrors.ErrDuplicateCompany, handle)
	case errors.Is(err, postgres.ErrCheckViolation), errors.Is(err, postgres.ErrInvalidValue):
		return fmt.Errorf("%w: %v", companyErrors.ErrValidationFailed, err)
	case errors.Is(err, postgres.ErrTimeout):
		return fmt.Errorf("%w: %v", companyErrors.ErrDatabaseOperation, err)
	default:
		return fmt.Errorf("%w: %v", companyErrors.ErrDatabaseOperation, err)
	}
}
