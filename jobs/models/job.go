// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import "github.com/qolzam/jobly/internal/database/utils"

// ColumnNames is empty: updatable job fields share their column names.
var ColumnNames = utils.ColumnNameMap{}

// Job is a row of the jobs table.
type Job struct {
	ID            int      `json:"id" db:"id"`
	Title         string   `json:"title" db:"title"`
	Salary        *int     `json:"salary" db:"salary"`
	Equity        *float64 `json:"equity" db:"equity"`
	CompanyHandle string   `json:"companyHandle" db:"company_handle"`
}

// NewJob is the data required to create a job.
type NewJob struct {
	Title         string   `json:"title"`
	Salary        *int     `json:"salary"`
	Equity        *float64 `json:"equity"`
	CompanyHandle string   `json:"companyHandle"`
}
