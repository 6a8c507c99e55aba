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
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	passwords "github.com/qolzam/jobly/internal/utils"
	userErrors "github.com/qolzam/jobly/users/errors"
	"github.com/qolzam/jobly/users/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testSecurity = platformconfig.SecurityConfig{BcryptWorkFactor: 4}

func dbErr(sentinel error) error {
	return &postgres.DBError{Sentinel: sentinel, Cause: errors.New("driver error")}
}

func newService(repo *MockUserRepository) UserService {
	return NewUserService(repo, testSecurity)
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()
	hashed, err := passwords.Hash("password1", 4)
	require.NoError(t, err)
	creds := &models.Credentials{User: models.User{Username: "u1", FirstName: "U1F"}, Password: hashed}

	t.Run("works", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindCredentials", ctx, "u1").Return(creds, nil)

		user, err := newService(repo).Authenticate(ctx, "u1", "password1")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.Username)
		assert.Equal(t, "U1F", user.FirstName)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindCredentials", ctx, "u1").Return(creds, nil)

		_, err := newService(repo).Authenticate(ctx, "u1", "wrong")
		assert.ErrorIs(t, err, userErrors.ErrInvalidCredentials)
	})

	t.Run("no such user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindCredentials", ctx, "nope").Return(nil, dbErr(postgres.ErrNotFound))

		_, err := newService(repo).Authenticate(ctx, "nope", "password1")
		assert.ErrorIs(t, err, userErrors.ErrInvalidCredentials)
	})

	t.Run("unknown user still pays for a hash compare", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindCredentials", ctx, "nope").Return(nil, dbErr(postgres.ErrNotFound))
		svc := NewUserService(repo, testSecurity).(*userService)

		cost, err := bcrypt.Cost([]byte(svc.dummyHash))
		require.NoError(t, err)
		assert.Equal(t, testSecurity.BcryptWorkFactor, cost)

		_, err = svc.Authenticate(ctx, "nope", "jobly-no-such-user")
		assert.ErrorIs(t, err, userErrors.ErrInvalidCredentials)
	})
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	newUser := &models.NewUser{
		Username:  "new",
		Password:  "password",
		FirstName: "Test",
		LastName:  "Tester",
		Email:     "test@test.com",
	}

	t.Run("hashes the password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(u *models.NewUser) bool {
			return u.Username == "new" && passwords.CompareHash(u.Password, "password")
		})).Return(&models.User{Username: "new"}, nil)

		user, err := newService(repo).Register(ctx, newUser)
		require.NoError(t, err)
		assert.Equal(t, "new", user.Username)
		assert.Equal(t, "password", newUser.Password, "input must not be mutated")
		repo.AssertExpectations(t)
	})

	t.Run("duplicate", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Create", ctx, mock.Anything).Return(nil, dbErr(postgres.ErrDuplicateKey))

		_, err := newService(repo).Register(ctx, newUser)
		assert.ErrorIs(t, err, userErrors.ErrDuplicateUsername)
	})

	t.Run("value does not fit column", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Create", ctx, mock.Anything).Return(nil, dbErr(postgres.ErrInvalidValue))

		_, err := newService(repo).Register(ctx, newUser)
		assert.ErrorIs(t, err, userErrors.ErrValidationFailed)
	})

	t.Run("weak password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, platformconfig.SecurityConfig{BcryptWorkFactor: 4, PasswordMinScore: 3})

		_, err := svc.Register(ctx, newUser)
		assert.ErrorIs(t, err, userErrors.ErrWeakPassword)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("includes job ids", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", ctx, "u1").Return(&models.User{Username: "u1"}, nil)
		repo.On("FindJobIDs", ctx, "u1").Return([]int{1, 3}, nil)

		user, err := newService(repo).Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3}, user.Jobs)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", ctx, "nope").Return(nil, dbErr(postgres.ErrNotFound))

		_, err := newService(repo).Get(ctx, "nope")
		assert.ErrorIs(t, err, userErrors.ErrUserNotFound)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("maps field names", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Update", ctx, "u1", &utils.SetClause{
			SetCols: `"first_name"=$1, "is_admin"=$2`,
			Values:  []any{"New", true},
		}).Return(&models.User{Username: "u1", FirstName: "New", IsAdmin: true}, nil)

		payload := utils.NewUpdatePayload().Set("firstName", "New").Set("isAdmin", true)
		user, err := newService(repo).Update(ctx, "u1", payload)
		require.NoError(t, err)
		assert.True(t, user.IsAdmin)
	})

	t.Run("hashes a new password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Update", ctx, "u1", mock.MatchedBy(func(set *utils.SetClause) bool {
			if set.SetCols != `"password"=$1` || len(set.Values) != 1 {
				return false
			}
			hashed, _ := set.Values[0].(string)
			return passwords.CompareHash(hashed, "new-password")
		})).Return(&models.User{Username: "u1"}, nil)

		_, err := newService(repo).Update(ctx, "u1", utils.NewUpdatePayload().Set("password", "new-password"))
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("empty payload", func(t *testing.T) {
		repo := new(MockUserRepository)
		_, err := newService(repo).Update(ctx, "u1", utils.NewUpdatePayload())
		assert.ErrorIs(t, err, userErrors.ErrInvalidRequest)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Update", ctx, "nope", mock.Anything).Return(nil, dbErr(postgres.ErrNotFound))

		_, err := newService(repo).Update(ctx, "nope", utils.NewUpdatePayload().Set("lastName", "X"))
		assert.ErrorIs(t, err, userErrors.ErrUserNotFound)
	})
}

func TestUserService_Remove(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	repo.On("Delete", ctx, "nope").Return(dbErr(postgres.ErrNotFound))

	err := newService(repo).Remove(ctx, "nope")
	assert.ErrorIs(t, err, userErrors.ErrUserNotFound)
}

func TestUserService_Apply(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		repoErr error
		want    error
	}{
		{"works", nil, nil},
		{"twice", dbErr(postgres.ErrDuplicateKey), userErrors.ErrAlreadyApplied},
		{"no job", &postgres.DBError{Sentinel: postgres.ErrForeignKeyViolation, Constraint: "applications_job_id_fkey"}, userErrors.ErrJobNotFound},
		{"no user", &postgres.DBError{Sentinel: postgres.ErrForeignKeyViolation, Constraint: "applications_username_fkey"}, userErrors.ErrUserNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			repo.On("Apply", ctx, "u1", 7).Return(tc.repoErr)

			err := newService(repo).Apply(ctx, "u1", 7)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
