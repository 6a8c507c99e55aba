// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"no rows", sql.ErrNoRows, ErrNotFound},
		{"wrapped no rows", fmt.Errorf("get company: %w", sql.ErrNoRows), ErrNotFound},
		{"unique", &pq.Error{Code: "23505", Constraint: "companies_pkey"}, ErrDuplicateKey},
		{"foreign key", &pq.Error{Code: "23503", Constraint: "jobs_company_handle_fkey"}, ErrForeignKeyViolation},
		{"check", &pq.Error{Code: "23514"}, ErrCheckViolation},
		{"canceled", &pq.Error{Code: "57014"}, ErrTimeout},
		{"value too long", &pq.Error{Code: "22001"}, ErrInvalidValue},
		{"numeric out of range", &pq.Error{Code: "22003"}, ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.in)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapError_Passthrough(t *testing.T) {
	assert.NoError(t, MapError(nil))

	other := errors.New("boom")
	assert.Equal(t, other, MapError(other))

	syntax := &pq.Error{Code: "42601"}
	assert.Equal(t, error(syntax), MapError(syntax))
}

func TestMapError_KeepsConstraint(t *testing.T) {
	err := MapError(&pq.Error{Code: "23503", Constraint: "applications_job_id_fkey"})

	var dbe *DBError
	assert.True(t, errors.As(err, &dbe))
	assert.Equal(t, "applications_job_id_fkey", dbe.Constraint)

	assert.Same(t, err, MapError(err))
}

func TestQualifiedTable(t *testing.T) {
	assert.Equal(t, "companies", QualifiedTable("", "companies"))
	assert.Equal(t, "test.companies", QualifiedTable("test", "companies"))
}
