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
	"github.com/qolzam/jobly/internal/database/postgres"
	"github.com/qolzam/jobly/internal/database/utils"
	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/jobs/models"
)

var jobColumns = []string{"id", "title", "salary", "equity", "company_handle"}

const returningJob = `RETURNING id, title, salary, equity, company_handle`

// postgresJobRepository implements JobRepository with sqlx and squirrel
type postgresJobRepository struct {
	client *postgres.Client
}

// NewPostgresJobRepository creates a new PostgreSQL repository for jobs
func NewPostgresJobRepository(client *postgres.Client) JobRepository {
	return &postgresJobRepository{client: client}
}

func (r *postgresJobRepository) table() string {
	return r.client.Table("jobs")
}

func (r *postgresJobRepository) Create(ctx context.Context, job *models.NewJob) (*models.Job, error) {
	query, args, err := sq.Insert(r.table()).
		Columns("title", "salary", "equity", "company_handle").
		Values(job.Title, job.Salary, job.Equity, job.CompanyHandle).
		Suffix(returningJob).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert: %w", err)
	}

	var created models.Job
	if err := sqlx.GetContext(ctx, r.client.DB(), &created, query, args...); err != nil {
		return nil, fmt.Errorf("failed to insert job: %w", postgres.MapError(err))
	}
	return &created, nil
}

func (r *postgresJobRepository) FindAll(ctx context.Context, where *utils.Where) ([]models.Job, error) {
	builder := sq.Select(jobColumns...).From(r.table())
	if !where.Empty() {
		builder = builder.Where(where)
	}
	query, args, err := builder.OrderBy("title").PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build job query: %w", err)
	}
	log.Dump(ctx, "jobs.FindAll", query, args)

	jobs := []models.Job{}
	if err := sqlx.SelectContext(ctx, r.client.DB(), &jobs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", postgres.MapError(err))
	}
	return jobs, nil
}

func (r *postgresJobRepository) FindByID(ctx context.Context, id int) (*models.Job, error) {
	query, args, err := sq.Select(jobColumns...).
		From(r.table()).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build job query: %w", err)
	}

	var job models.Job
	if err := sqlx.GetContext(ctx, r.client.DB(), &job, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find job %d: %w", id, postgres.MapError(err))
	}
	return &job, nil
}

// Update applies set to the job. The id is bound after set's values.
func (r *postgresJobRepository) Update(ctx context.Context, id int, set *utils.SetClause) (*models.Job, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d %s`,
		r.table(), set.SetCols, set.NextPlaceholder(), returningJob)
	args := append(append([]any{}, set.Values...), id)
	log.Dump(ctx, "jobs.Update", query, args)

	var job models.Job
	if err := sqlx.GetContext(ctx, r.client.DB(), &job, query, args...); err != nil {
		return nil, fmt.Errorf("failed to update job %d: %w", id, postgres.MapError(err))
	}
	return &job, nil
}

func (r *postgresJobRepository) Delete(ctx context.Context, id int) (*models.Job, error) {
	query, args, err := sq.Delete(r.table()).
		Where(sq.Eq{"id": id}).
		Suffix(returningJob).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build delete: %w", err)
	}

	var job models.Job
	if err := sqlx.GetContext(ctx, r.client.DB(), &job, query, args...); err != nil {
		return nil, fmt.Errorf("failed to delete job %d: %w", id, postgres.MapError(err))
	}
	return &job, nil
}
