// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package utils

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyWhere(t *testing.T) {
	tests := []struct {
		name   string
		filter CompanyFilter
		want   string
	}{
		{"empty", CompanyFilter{}, ""},
		{"only name", CompanyFilter{Name: "test"}, `WHERE name ILIKE '%test%'`},
		{"only minEmployees", CompanyFilter{MinEmployees: 12}, `WHERE num_employees >= 12`},
		{"only maxEmployees includes null", CompanyFilter{MaxEmployees: 12}, `WHERE num_employees <= 12 OR num_employees IS NULL`},
		{
			"multiple filters",
			CompanyFilter{Name: "test", MinEmployees: 1, MaxEmployees: 12},
			`WHERE name ILIKE '%test%' AND num_employees >= 1 AND num_employees <= 12`,
		},
		{
			"name with max groups the OR",
			CompanyFilter{Name: "test", MaxEmployees: 12},
			`WHERE name ILIKE '%test%' AND (num_employees <= 12 OR num_employees IS NULL)`,
		},
		{"quote is escaped", CompanyFilter{Name: "o'neil"}, `WHERE name ILIKE '%o''neil%'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompanyWhere(tt.filter).String())
		})
	}
}

func TestJobWhere(t *testing.T) {
	tests := []struct {
		name   string
		filter JobFilter
		want   string
	}{
		{"empty", JobFilter{}, ""},
		{"only title", JobFilter{Title: "test"}, `WHERE title ILIKE '%test%'`},
		{"only minSalary", JobFilter{MinSalary: 200}, `WHERE salary > 200`},
		{"only hasEquity", JobFilter{HasEquity: true}, `WHERE equity > 0`},
		{"hasEquity false", JobFilter{HasEquity: false}, ""},
		{
			"all filters",
			JobFilter{Title: "test", MinSalary: 200, HasEquity: true},
			`WHERE title ILIKE '%test%' AND salary > 200 AND equity > 0`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JobWhere(tt.filter).String())
		})
	}
}

func TestWhere_Clause(t *testing.T) {
	w := CompanyWhere(CompanyFilter{Name: "net", MaxEmployees: 50})

	clause, args := w.Clause(1)
	assert.Equal(t, "WHERE name ILIKE $1 AND (num_employees <= $2 OR num_employees IS NULL)", clause)
	assert.Equal(t, []any{"%net%", 50}, args)

	clause, _ = w.Clause(3)
	assert.Equal(t, "WHERE name ILIKE $3 AND (num_employees <= $4 OR num_employees IS NULL)", clause)

	clause, args = JobWhere(JobFilter{}).Clause(1)
	assert.Empty(t, clause)
	assert.Empty(t, args)
}

func TestWhere_ConstantConditionTakesNoArgs(t *testing.T) {
	clause, args := JobWhere(JobFilter{MinSalary: 10, HasEquity: true}).Clause(1)
	assert.Equal(t, "WHERE salary > $1 AND equity > 0", clause)
	assert.Equal(t, []any{10}, args)
}

func TestWhere_EscapedQuestionMark(t *testing.T) {
	w := NewWhere().
		Add("tags ?? ?", "remote").
		Add("title ILIKE ?", "%eng%")

	clause, args := w.Clause(1)
	assert.Equal(t, "WHERE tags ? $1 AND title ILIKE $2", clause)
	assert.Equal(t, []any{"remote", "%eng%"}, args)
	assert.Equal(t, "WHERE tags ? 'remote' AND title ILIKE '%eng%'", w.String())

	query, sqArgs, err := sq.Select("id").From("jobs").Where(w).PlaceholderFormat(sq.Dollar).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM jobs WHERE tags ? $1 AND title ILIKE $2", query)
	assert.Equal(t, args, sqArgs)
}

func TestWhere_Sqlizer(t *testing.T) {
	w := JobWhere(JobFilter{Title: "eng", MinSalary: 1000})

	query, args, err := sq.Select("id", "title").
		From("jobs").
		Where(w).
		OrderBy("title").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, title FROM jobs WHERE title ILIKE $1 AND salary > $2 ORDER BY title", query)
	assert.Equal(t, []any{"%eng%", 1000}, args)
}

func TestWhere_Idempotent(t *testing.T) {
	f := CompanyFilter{Name: "a", MinEmployees: 2, MaxEmployees: 3}
	assert.Equal(t, CompanyWhere(f).String(), CompanyWhere(f).String())

	w := CompanyWhere(f)
	s1, a1, _ := w.ToSql()
	s2, a2, _ := w.ToSql()
	assert.Equal(t, s1, s2)
	assert.Equal(t, a1, a2)
}

func TestCompanyWhere_InvertedRangeIsPermissive(t *testing.T) {
	w := CompanyWhere(CompanyFilter{MinEmployees: 10, MaxEmployees: 5})
	assert.Equal(t, "WHERE num_employees >= 10 AND num_employees <= 5", w.String())
}
