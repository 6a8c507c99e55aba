// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrCheckViolation      = errors.New("check constraint violation")
	ErrInvalidValue        = errors.New("value does not fit column")
	ErrTimeout             = errors.New("query timeout")
)

// DBError pairs a sentinel with the driver error that caused it.
type DBError struct {
	Sentinel   error
	Cause      error
	Constraint string
}

func (e *DBError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s on %s (cause: %v)", e.Sentinel, e.Constraint, e.Cause)
	}
	return fmt.Sprintf("%s (cause: %v)", e.Sentinel, e.Cause)
}

func (e *DBError) Is(target error) bool { return errors.Is(e.Sentinel, target) }
func (e *DBError) Unwrap() error        { return e.Cause }

// MapError translates driver errors into package sentinels.
// Unknown errors are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var dbe *DBError
	if errors.As(err, &dbe) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return &DBError{Sentinel: ErrNotFound, Cause: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &DBError{Sentinel: ErrTimeout, Cause: err}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return &DBError{Sentinel: ErrDuplicateKey, Cause: err, Constraint: pqErr.Constraint}
		case "23503": // foreign_key_violation
			return &DBError{Sentinel: ErrForeignKeyViolation, Cause: err, Constraint: pqErr.Constraint}
		case "23514": // check_violation
			return &DBError{Sentinel: ErrCheckViolation, Cause: err, Constraint: pqErr.Constraint}
		case "57014": // query_canceled
			return &DBError{Sentinel: ErrTimeout, Cause: err}
		}
		// Class 22 (data_exception): value too long, numeric out of range...
		if pqErr.Code.Class() == "22" {
			return &DBError{Sentinel: ErrInvalidValue, Cause: err}
		}
	}

	return err
}
