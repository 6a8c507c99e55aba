// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/internal/database/postgres"
	"github.com/qolzam/jobly/internal/database/utils"
	"github.com/qolzam/jobly/internal/pkg/log"
)

var companyColumns = []string{
	"handle",
	"name",
	"description",
	"num_employees",
	"logo_url",
}

const returningCompany = `RETURNING handle, name, description, num_employees, logo_url`

// postgresCompanyRepository implements CompanyRepository with sqlx and squirrel
type postgresCompanyRepository struct {
	client *postgres.Client
}

// NewPostgresCompanyRepository creates a new PostgreSQL repository for companies
func NewPostgresCompanyRepository(client *postgres.Client) CompanyRepository {
	return &postgresCompanyRepository{client: client}
}

func (r *postgresCompanyRepository) table() string {
	return r.client.Table("companies")
}

func (r *postgresCompanyRepository) Create(ctx context.Context, company *models.NewCompany) (*models.Company, error) {
	query, args, err := sq.Insert(r.table()).
		Columns(companyColumns...).
		Values(company.Handle, company.Name, company.Description, company.NumEmployees, company.LogoURL).
		Suffix(returningCompany).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert: %w", err)
	}

	var created models.Company
	if err := sqlx.GetContext(ctx, r.client.DB(), &created, query, args...); err != nil {
		return nil, fmt.Errorf("failed to insert company: %w", postgres.MapError(err))
	}
	return &created, nil
}

func (r *postgresCompanyRepository) FindAll(ctx context.Context, where *utils.Where) ([]models.Company, error) {
	builder := sq.Select(companyColumns...).From(r.table())
	if !where.Empty() {
		builder = builder.Where(where)
	}
	query, args, err := builder.OrderBy("name").PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build company query: %w", err)
	}
	log.Dump(ctx, "companies.FindAll", query, args)

	companies := []models.Company{}
	if err := sqlx.SelectContext(ctx, r.client.DB(), &companies, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", postgres.MapError(err))
	}
	return companies, nil
}

func (r *postgresCompanyRepository) FindByHandle(ctx context.Context, handle string) (*models.Company, error) {
	query, args, err := sq.Select(companyColumns...).
		From(r.table()).
		Where(sq.Eq{"handle": handle}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build company query: %w", err)
	}

	var company models.Company
	if err := sqlx.GetContext(ctx, r.client.DB(), &company, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find company %q: %w", handle, postgres.MapError(err))
	}
	return &company, nil
}

func (r *postgresCompanyRepository) FindJobs(ctx context.Context, handle string) ([]models.CompanyJob, error) {
	query, args, err := sq.Select("id", "title", "salary", "equity").
		From(r.client.Table("jobs")).
		Where(sq.Eq{"company_handle": handle}).
		OrderBy("id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build jobs query: %w", err)
	}

	jobs := []models.CompanyJob{}
	if err := sqlx.SelectContext(ctx, r.client.DB(), &jobs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query jobs of %q: %w", handle, postgres.MapError(err))
	}
	return jobs, nil
}

// Update applies set to the company. The handle is bound after set's values.
func (r *postgresCompanyRepository) Update(ctx context.Context, handle string, set *utils.SetClause) (*models.Company, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE handle = $%d %s`,
		r.table(), set.SetCols, set.NextPlaceholder(), returningCompany)
	args := append(append([]any{}, set.Values...), handle)
	log.Dump(ctx, "companies.Update", query, args)

	var company models.Company
	if err := sqlx.GetContext(ctx, r.client.DB(), &company, query, args...); err != nil {
		return nil, fmt.Errorf("failed to update company %q: %w", handle, postgres.MapError(err))
	}
	return &company, nil
}

func (r *postgresCompanyRepository) Delete(ctx context.Context, handle string) error {
	query, args, err := sq.Delete(r.table()).
		Where(sq.Eq{"handle": handle}).
		Suffix("RETURNING handle").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}

	var deleted string
	if err := sqlx.GetContext(ctx, r.client.DB(), &deleted, query, args...); err != nil {
		return fmt.Errorf("failed to delete company %q: %w", handle, postgres.MapError(err))
	}
	return nil
}
