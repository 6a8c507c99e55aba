// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package validation

import (
	"testing"

	"github.com/qolzam/jobly/internal/database/utils"
	"github.com/qolzam/jobly/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJob(t *testing.T) {
	p, err := NewJob.ValidateJSON([]byte(`{"title":"new job","salary":1000,"equity":0.5,"companyHandle":"c1"}`))
	require.NoError(t, err)
	equity, _ := p.Get("equity")
	assert.Equal(t, 0.5, equity)
	salary, _ := p.Get("salary")
	assert.Equal(t, int64(1000), salary)

	_, err = NewJob.ValidateJSON([]byte(`{"title":"new job"}`))
	var verr *validator.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{`instance requires property "companyHandle"`}, verr.Errors)

	_, err = NewJob.ValidateJSON([]byte(`{"title":"j","companyHandle":"c1","equity":1.5}`))
	assert.Error(t, err)

	_, err = NewJob.ValidateJSON([]byte(`{"title":"j","companyHandle":"c1","salary":-1}`))
	assert.Error(t, err)

	_, err = NewJob.ValidateJSON([]byte(`{"title":"j","companyHandle":"c1","salary":null,"equity":null}`))
	assert.NoError(t, err)
}

func TestSalary_FitsIntegerColumn(t *testing.T) {
	for _, s := range []validator.Schema{NewJob, UpdateJob} {
		_, err := s.ValidateJSON([]byte(`{"title":"j","salary":3000000000}`))
		var verr *validator.Error
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Errors, "instance.salary must be less than or equal to 2147483647")
	}

	_, err := UpdateJob.ValidateJSON([]byte(`{"salary":2147483647}`))
	assert.NoError(t, err)
}

func TestUpdateJob_RejectsIdentityFields(t *testing.T) {
	_, err := UpdateJob.ValidateJSON([]byte(`{"id":99}`))
	assert.Error(t, err)

	_, err = UpdateJob.ValidateJSON([]byte(`{"companyHandle":"c2"}`))
	assert.Error(t, err)

	_, err = UpdateJob.ValidateJSON([]byte(`{"title":"renamed","equity":0}`))
	assert.NoError(t, err)
}

func TestValidateSearch(t *testing.T) {
	assert.NoError(t, ValidateSearch(utils.JobFilter{MinSalary: 10}))
	assert.Error(t, ValidateSearch(utils.JobFilter{MinSalary: -10}))
	assert.Error(t, ValidateSearch(utils.JobFilter{MinSalary: 3000000000}))
}
