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
	"github.com/qolzam/jobly/users/models"
)

var userColumns = []string{"username", "first_name", "last_name", "email", "is_admin"}

const returningUser = `RETURNING username, first_name, last_name, email, is_admin`

// postgresUserRepository implements UserRepository with sqlx and squirrel
type postgresUserRepository struct {
	client *postgres.Client
}

// NewPostgresUserRepository creates a new PostgreSQL repository for users
func NewPostgresUserRepository(client *postgres.Client) UserRepository {
	return &postgresUserRepository{client: client}
}

func (r *postgresUserRepository) table() string {
	return r.client.Table("users")
}

func (r *postgresUserRepository) Create(ctx context.Context, user *models.NewUser) (*models.User, error) {
	query, args, err := sq.Insert(r.table()).
		Columns("username", "password", "first_name", "last_name", "email", "is_admin").
		Values(user.Username, user.Password, user.FirstName, user.LastName, user.Email, user.IsAdmin).
		Suffix(returningUser).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert: %w", err)
	}

	var created models.User
	if err := sqlx.GetContext(ctx, r.client.DB(), &created, query, args...); err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", postgres.MapError(err))
	}
	return &created, nil
}

func (r *postgresUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	query, args, err := sq.Select(userColumns...).
		From(r.table()).
		OrderBy("username").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user query: %w", err)
	}

	users := []models.User{}
	if err := sqlx.SelectContext(ctx, r.client.DB(), &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query users: %w", postgres.MapError(err))
	}
	return users, nil
}

func (r *postgresUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query, args, err := sq.Select(userColumns...).
		From(r.table()).
		Where(sq.Eq{"username": username}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user query: %w", err)
	}

	var user models.User
	if err := sqlx.GetContext(ctx, r.client.DB(), &user, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find user %q: %w", username, postgres.MapError(err))
	}
	return &user, nil
}

func (r *postgresUserRepository) FindCredentials(ctx context.Context, username string) (*models.Credentials, error) {
	query, args, err := sq.Select(append([]string{"password"}, userColumns...)...).
		From(r.table()).
		Where(sq.Eq{"username": username}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build credentials query: %w", err)
	}

	var creds models.Credentials
	if err := sqlx.GetContext(ctx, r.client.DB(), &creds, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find credentials: %w", postgres.MapError(err))
	}
	return &creds, nil
}

func (r *postgresUserRepository) FindJobIDs(ctx context.Context, username string) ([]int, error) {
	query, args, err := sq.Select("job_id").
		From(r.client.Table("applications")).
		Where(sq.Eq{"username": username}).
		OrderBy("job_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build applications query: %w", err)
	}

	ids := []int{}
	if err := sqlx.SelectContext(ctx, r.client.DB(), &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query applications of %q: %w", username, postgres.MapError(err))
	}
	return ids, nil
}

// Update applies set to the user. The username is bound after set's values.
func (r *postgresUserRepository) Update(ctx context.Context, username string, set *utils.SetClause) (*models.User, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE username = $%d %s`,
		r.table(), set.SetCols, set.NextPlaceholder(), returningUser)
	args := append(append([]any{}, set.Values...), username)
	// Values may hold a password hash; log the statement only.
	log.Dump(ctx, "users.Update", query)

	var user models.User
	if err := sqlx.GetContext(ctx, r.client.DB(), &user, query, args...); err != nil {
		return nil, fmt.Errorf("failed to update user %q: %w", username, postgres.MapError(err))
	}
	return &user, nil
}

func (r *postgresUserRepository) Delete(ctx context.Context, username string) error {
	query, args, err := sq.Delete(r.table()).
		Where(sq.Eq{"username": username}).
		Suffix("RETURNING username").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}

	var deleted string
	if err := sqlx.GetContext(ctx, r.client.DB(), &deleted, query, args...); err != nil {
		return fmt.Errorf("failed to delete user %q: %w", username, postgres.MapError(err))
	}
	return nil
}

func (r *postgresUserRepository) Apply(ctx context.Context, username string, jobID int) error {
	query, args, err := sq.Insert(r.client.Table("applications")).
		Columns("username", "job_id").
		Values(username, jobID).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := r.client.DB().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to apply %q to job %d: %w", username, jobID, postgres.MapError(err))
	}
	return nil
}
