// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package validation

import "github.com/qolzam/jobly/internal/pkg/validator"

var (
	username  = validator.Field{Kind: validator.String, MinLength: 1, MaxLength: 25}
	password  = validator.Field{Kind: validator.String, MinLength: 5, MaxLength: 20}
	firstName = validator.Field{Kind: validator.String, MinLength: 1, MaxLength: 30}
	lastName  = validator.Field{Kind: validator.String, MinLength: 1, MaxLength: 30}
	email     = validator.Field{Kind: validator.String, MinLength: 6, MaxLength: 60, Format: validator.FormatEmail}
	isAdmin   = validator.Field{Kind: validator.Boolean}
)

// NewUser is the body schema for POST /users, used by admins to add users.
var NewUser = validator.Schema{
	Fields: map[string]validator.Field{
		"username":  username,
		"password":  password,
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
		"isAdmin":   isAdmin,
	},
	Required: []string{"username", "firstName", "lastName", "password", "email"},
}

// Register is the body schema for self registration.
var Register = validator.Schema{
	Fields: map[string]validator.Field{
		"username":  username,
		"password":  password,
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
	},
	Required: []string{"username", "firstName", "lastName", "password", "email"},
}

// Auth is the body schema for requesting a token.
var Auth = validator.Schema{
	Fields: map[string]validator.Field{
		"username": {Kind: validator.String},
		"password": {Kind: validator.String},
	},
	Required: []string{"username", "password"},
}

// UpdateUser is the body schema for PATCH /users/:username.
var UpdateUser = validator.Schema{
	Fields: map[string]validator.Field{
		"firstName": firstName,
		"lastName":  lastName,
		"password":  password,
		"email":     email,
	},
}

// AdminUpdateUser is UpdateUser plus the admin flag, for admin callers.
var AdminUpdateUser = validator.Schema{
	Fields: map[string]validator.Field{
		"firstName": firstName,
		"lastName":  lastName,
		"password":  password,
		"email":     email,
		"isAdmin":   isAdmin,
	},
}

// ForUpdate picks the update schema for the caller.
func ForUpdate(callerIsAdmin bool) validator.Schema {
	if callerIsAdmin {
		return AdminUpdateUser
	}
	return UpdateUser
}
