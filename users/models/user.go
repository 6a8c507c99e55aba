// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"github.com/qolzam/jobly/internal/database/utils"
	"github.com/qolzam/jobly/internal/types"
)

// ColumnNames maps JSON field names to user columns for partial updates.
var ColumnNames = utils.ColumnNameMap{
	"firstName": "first_name",
	"lastName":  "last_name",
	"isAdmin":   "is_admin",
}

// User is a row of the users table without the password hash.
type User struct {
	Username  string `json:"username" db:"username"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
	IsAdmin   bool   `json:"isAdmin" db:"is_admin"`
}

// Identity is the token subject for u.
func (u *User) Identity() types.UserContext {
	return types.UserContext{Username: u.Username, IsAdmin: u.IsAdmin}
}

// Credentials is a user with the stored password hash.
type Credentials struct {
	User
	Password string `json:"-" db:"password"`
}

// UserDetail is a user with the ids of the jobs applied to.
type UserDetail struct {
	User
	Jobs []int `json:"jobs"`
}

// NewUser is the data required to register a user. Password holds the
// plain text until the service hashes it.
type NewUser struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
}
