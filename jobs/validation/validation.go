// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package validation

import (
	"fmt"
	"math"

	"github.com/qolzam/jobly/internal/database/utils"
	"github.com/qolzam/jobly/internal/pkg/validator"
)

// NewJob is the body schema for POST /jobs.
var NewJob = validator.Schema{
	Fields: map[string]validator.Field{
		"title":         {Kind: validator.String, MinLength: 1},
		"salary":        {Kind: validator.Integer, Min: validator.Bound(0), Max: validator.Bound(math.MaxInt32), Nullable: true},
		"equity":        {Kind: validator.Number, Min: validator.Bound(0), Max: validator.Bound(1), Nullable: true},
		"companyHandle": {Kind: validator.String, MinLength: 1, MaxLength: 25},
	},
	Required: []string{"title", "companyHandle"},
}

// UpdateJob is the body schema for PATCH /jobs/:id. Neither id nor
// companyHandle can change.
var UpdateJob = validator.Schema{
	Fields: map[string]validator.Field{
		"title":  {Kind: validator.String, MinLength: 1},
		"salary": {Kind: validator.Integer, Min: validator.Bound(0), Max: validator.Bound(math.MaxInt32), Nullable: true},
		"equity": {Kind: validator.Number, Min: validator.Bound(0), Max: validator.Bound(1), Nullable: true},
	},
}

// ValidateSearch checks a decoded job search.
func ValidateSearch(f utils.JobFilter) error {
	var errs []string
	if f.MinSalary < 0 {
		errs = append(errs, "instance.minSalary must be greater than or equal to 0")
	}
	if f.MinSalary > math.MaxInt32 {
		errs = append(errs, fmt.Sprintf("instance.minSalary must be less than or equal to %d", math.MaxInt32))
	}
	if len(errs) > 0 {
		return &validator.Error{Errors: errs}
	}
	return nil
}
