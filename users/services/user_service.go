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
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	passwords "github.com/qolzam/jobly/internal/utils"
	userErrors "github.com/qolzam/jobly/users/errors"
	"github.com/qolzam/jobly/users/models"
	"github.com/qolzam/jobly/users/repository"
)

// UserService defines the user operations
type UserService interface {
	// Authenticate checks a username and password pair.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	// Register creates a user, hashing the password.
	Register(ctx context.Context, user *models.NewUser) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, username string) (*models.UserDetail, error)
	// Update applies a partial update. A password in payload is hashed in place.
	Update(ctx context.Context, username string, payload *utils.UpdatePayload) (*models.User, error)
	Remove(ctx context.Context, username string) error
	// Apply records that username applied to jobID.
	Apply(ctx context.Context, username string, jobID int) error
}

type userService struct {
	repo     repository.UserRepository
	security platformconfig.SecurityConfig
	// dummyHash is compared against when the username is unknown so a
	// failed login costs one bcrypt round either way.
	dummyHash string
}

// NewUserService creates a new instance of the user service
func NewUserService(repo repository.UserRepository, security platformconfig.SecurityConfig) UserService {
	dummy, err := passwords.Hash("jobly-no-such-user", security.BcryptWorkFactor)
	if err != nil {
		log.Warn("dummy password hash: %v", err)
	}
	return &userService{repo: repo, security: security, dummyHash: dummy}
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	creds, err := s.repo.FindCredentials(ctx, username)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			passwords.CompareHash(s.dummyHash, password)
			return nil, userErrors.ErrInvalidCredentials
		}
		return nil, translate(err, username)
	}

	if !passwords.CompareHash(creds.Password, password) {
		log.WarnWithContext(ctx, "failed login for %s", username)
		return nil, userErrors.ErrInvalidCredentials
	}
	return &creds.User, nil
}

func (s *userService) Register(ctx context.Context, user *models.NewUser) (*models.User, error) {
	hashed, err := s.hashPassword(user.Password, user.Username, user.FirstName, user.LastName, user.Email)
	if err != nil {
		return nil, err
	}

	toCreate := *user
	toCreate.Password = hashed

	created, err := s.repo.Create(ctx, &toCreate)
	if err != nil {
		if errors.Is(err, postgres.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", userErrors.ErrDuplicateUsername, user.Username)
		}
		return nil, translate(err, user.Username)
	}
	log.InfoWithContext(ctx, "user %s registered", created.Username)
	return created, nil
}

func (s *userService) FindAll(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, translate(err, "")
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, username string) (*models.UserDetail, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, translate(err, username)
	}

	jobs, err := s.repo.FindJobIDs(ctx, username)
	if err != nil {
		return nil, translate(err, username)
	}
	return &models.UserDetail{User: *user, Jobs: jobs}, nil
}

func (s *userService) Update(ctx context.Context, username string, payload *utils.UpdatePayload) (*models.User, error) {
	if raw, ok := payload.Get("password"); ok {
		plain, _ := raw.(string)
		hashed, err := s.hashPassword(plain, username)
		if err != nil {
			return nil, err
		}
		payload.Set("password", hashed)
	}

	set, err := utils.SQLForPartialUpdate(payload, models.ColumnNames)
	if err != nil {
		if errors.Is(err, utils.ErrNoData) {
			return nil, fmt.Errorf("%w: %v", userErrors.ErrInvalidRequest, err)
		}
		return nil, err
	}

	user, err := s.repo.Update(ctx, username, set)
	if err != nil {
		return nil, translate(err, username)
	}
	return user, nil
}

func (s *userService) Remove(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, username); err != nil {
		return translate(err, username)
	}
	log.InfoWithContext(ctx, "user %s removed", username)
	return nil
}

func (s *userService) Apply(ctx context.Context, username string, jobID int) error {
	err := s.repo.Apply(ctx, username, jobID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, postgres.ErrDuplicateKey):
		return fmt.Errorf("%w: %s to job %d", userErrors.ErrAlreadyApplied, username, jobID)
	case errors.Is(err, postgres.ErrForeignKeyViolation):
		// The constraint names which side is missing.
		var dbErr *postgres.DBError
		if errors.As(err, &dbErr) && dbErr.Constraint == "applications_username_fkey" {
			return fmt.Errorf("%w: no user %s", userErrors.ErrUserNotFound, username)
		}
		return fmt.Errorf("%w: no job with id of %d", userErrors.ErrJobNotFound, jobID)
	default:
		return translate(err, username)
	}
}

func (s *userService) hashPassword(password string, userInputs ...string) (string, error) {
	if err := passwords.CheckPasswordStrength(password, s.security.PasswordMinScore, userInputs...); err != nil {
		return "", fmt.Errorf("%w: %v", userErrors.ErrWeakPassword, err)
	}
	hashed, err := passwords.Hash(password, s.security.BcryptWorkFactor)
	if err != nil {
		return "", err
	}
	return hashed, nil
}

func translate(err error, username string) error {
	switch {
	case errors.Is(err, postgres.ErrNotFound):
		return fmt.Errorf("%w: no user %s", userErrors.ErrUserNotFound, username)
	case errors.Is(err, postgres.ErrDuplicateKey), errors.Is(err, postgres.ErrCheckViolation), errors.Is(err, postgres.ErrInvalidValue):
		return fmt.Errorf("%w: %v", userErrors.ErrValidationFailed, err)
	default:
		return fmt.Errorf("%w: %v", userErrors.ErrDatabaseOperation, err)
	}
}
