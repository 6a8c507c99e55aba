// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import "github.com/qolzam/jobly/internal/database/utils"

// ColumnNames maps JSON field names to company columns for partial updates.
var ColumnNames = utils.ColumnNameMap{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

// Company is a row of the companies table.
type Company struct {
	Handle       string  `json:"handle" db:"handle"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description" db:"description"`
	NumEmployees *int    `json:"numEmployees" db:"num_employees"`
	LogoURL      *string `json:"logoUrl" db:"logo_url"`
}

// CompanyJob is the short job listing embedded in a company detail.
type CompanyJob struct {
	ID     int      `json:"id" db:"id"`
	Title  string   `json:"title" db:"title"`
	Salary *int     `json:"salary" db:"salary"`
	Equity *float64 `json:"equity" db:"equity"`
}

// CompanyDetail is a company with its jobs.
type CompanyDetail struct {
	Company
	Jobs []CompanyJob `json:"jobs"`
}

// NewCompany is the data required to create a company.
type NewCompany struct {
	Handle       string  `json:"handle" db:"handle"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description" db:"description"`
	NumEmployees *int    `json:"numEmployees" db:"num_employees"`
	LogoURL      *string `json:"logoUrl" db:"logo_url"`
}
