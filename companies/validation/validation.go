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

// NewCompany is the body schema for POST /companies.
var NewCompany = validator.Schema{
	Fields: map[string]validator.Field{
		"handle":       {Kind: validator.String, MinLength: 1, MaxLength: 25},
		"name":         {Kind: validator.String, MinLength: 1},
		"description":  {Kind: validator.String},
		"numEmployees": {Kind: validator.Integer, Min: validator.Bound(0), Max: validator.Bound(math.MaxInt32)},
		"logoUrl":      {Kind: validator.String, Format: validator.FormatURI},
	},
	Required: []string{"handle", "name", "description"},
}

// UpdateCompany is the body schema for PATCH /companies/:handle.
var UpdateCompany = validator.Schema{
	Fields: map[string]validator.Field{
		"name":         {Kind: validator.String, MinLength: 1},
		"description":  {Kind: validator.String},
		"numEmployees": {Kind: validator.Integer, Min: validator.Bound(0), Max: validator.Bound(math.MaxInt32)},
		"logoUrl":      {Kind: validator.String, Format: validator.FormatURI},
	},
}

// ValidateSearch checks a decoded company search.
func ValidateSearch(f utils.CompanyFilter) error {
	var errs []string
	if f.MinEmployees < 0 {
		errs = append(errs, "instance.minEmployees must be greater than or equal to 0")
	}
	if f.MaxEmployees < 0 {
		errs = append(errs, "instance.maxEmployees must be greater than or equal to 0")
	}
	if f.MinEmployees > math.MaxInt32 {
		errs = append(errs, fmt.Sprintf("instance.minEmployees must be less than or equal to %d", math.MaxInt32))
	}
	if f.MaxEmployees > math.MaxInt32 {
		errs = append(errs, fmt.Sprintf("instance.maxEmployees must be less than or equal to %d", math.MaxInt32))
	}
	if f.MinEmployees != 0 && f.MaxEmployees != 0 && f.MinEmployees > f.MaxEmployees {
		errs = append(errs, fmt.Sprintf("minEmployees (%d) cannot be greater than maxEmployees (%d)", f.MinEmployees, f.MaxEmployees))
	}
	if len(errs) > 0 {
		return &validator.Error{Errors: errs}
	}
	return nil
}
