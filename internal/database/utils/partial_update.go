// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package utils

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoData is returned when a partial update has nothing to set.
var ErrNoData = errors.New("no data supplied")

// ColumnNameMap maps payload field names to SQL column names.
// Fields without an entry are used verbatim.
type ColumnNameMap map[string]string

// Column resolves the SQL column for field.
func (m ColumnNameMap) Column(field string) string {
	if col, ok := m[field]; ok && col != "" {
		return col
	}
	return field
}

// SetClause is the SET part of an UPDATE statement and its bind values.
// Placeholders are numbered $1..$len(Values) in the same order as Values.
type SetClause struct {
	SetCols string
	Values  []any
}

// NextPlaceholder returns the index a caller should use for the next bind
// parameter appended after Values, e.g. the WHERE id parameter.
func (s *SetClause) NextPlaceholder() int {
	return len(s.Values) + 1
}

// SQLForPartialUpdate builds the SET clause for updating only the supplied fields.
//
//	{firstName: "Aliya", age: 32} => `"first_name"=$1, "age"=$2`, ["Aliya", 32]
func SQLForPartialUpdate(payload *UpdatePayload, columns ColumnNameMap) (*SetClause, error) {
	if payload.Len() == 0 {
		return nil, ErrNoData
	}

	keys := payload.Keys()
	cols := make([]string, len(keys))
	for idx, key := range keys {
		cols[idx] = fmt.Sprintf(`"%s"=$%d`, columns.Column(key), idx+1)
	}

	return &SetClause{
		SetCols: strings.Join(cols, ", "),
		Values:  payload.Values(),
	}, nil
}
