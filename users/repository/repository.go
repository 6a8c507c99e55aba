// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/qolzam/jobly/internal/database/utils"
	"github.com/qolzam/jobly/users/models"
)

// UserRepository defines the database operations on users and their
// applications. Errors are mapped through postgres.MapError.
type UserRepository interface {
	// Create inserts a user. The password must already be hashed.
	Create(ctx context.Context, user *models.NewUser) (*models.User, error)

	// FindAll returns every user ordered by username.
	FindAll(ctx context.Context) ([]models.User, error)

	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindCredentials returns the user with its password hash.
	FindCredentials(ctx context.Context, username string) (*models.Credentials, error)

	// FindJobIDs returns the ids of the jobs a user applied to, ordered by id.
	FindJobIDs(ctx context.Context, username string) ([]int, error)

	Update(ctx context.Context, username string, set *utils.SetClause) (*models.User, error)

	Delete(ctx context.Context, username string) error

	// Apply records an application. An unknown user or job surfaces as
	// postgres.ErrForeignKeyViolation, a repeated one as postgres.ErrDuplicateKey.
	Apply(ctx context.Context, username string, jobID int) error
}
