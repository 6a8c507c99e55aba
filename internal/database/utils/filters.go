// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Condition is a single WHERE predicate with `?` placeholders.
// A literal question mark, such as the jsonb `?` operator, is written `??`,
// matching squirrel's escape.
type Condition struct {
	Template string
	Args     []any
	// Compound marks a predicate with a top-level OR.
	Compound bool
}

// Where is an ordered AND-list of conditions.
// It implements squirrel.Sqlizer.
type Where struct {
	conds []Condition
}

// NewWhere creates an empty condition list.
func NewWhere() *Where {
	return &Where{}
}

// Add appends a condition. Each `?` in template binds the next arg; `??`
// renders a literal `?`.
func (w *Where) Add(template string, args ...any) *Where {
	w.conds = append(w.conds, Condition{Template: template, Args: args})
	return w
}

// AddOr appends a condition whose template contains a top-level OR.
// Placeholders follow Add.
func (w *Where) AddOr(template string, args ...any) *Where {
	w.conds = append(w.conds, Condition{Template: template, Args: args, Compound: true})
	return w
}

// Empty reports whether there are no conditions.
func (w *Where) Empty() bool {
	return w == nil || len(w.conds) == 0
}

// Conditions returns a copy of the condition list.
func (w *Where) Conditions() []Condition {
	if w == nil {
		return nil
	}
	out := make([]Condition, len(w.conds))
	copy(out, w.conds)
	return out
}

// ToSql renders the conditions joined by AND, without the WHERE keyword.
func (w *Where) ToSql() (string, []any, error) {
	if w.Empty() {
		return "", nil, nil
	}
	return w.join(), w.args(), nil
}

// Clause renders `WHERE ...` with Postgres placeholders starting at $startAt.
// An empty list renders as "".
func (w *Where) Clause(startAt int) (string, []any) {
	if w.Empty() {
		return "", nil
	}
	if startAt < 1 {
		startAt = 1
	}
	n := startAt
	body := replacePlaceholders(w.join(), func(int) string {
		s := "$" + strconv.Itoa(n)
		n++
		return s
	})
	return "WHERE " + body, w.args()
}

// String renders the clause with arguments inlined as SQL literals.
// Only for logs and tests; never execute it.
func (w *Where) String() string {
	if w.Empty() {
		return ""
	}
	args := w.args()
	return "WHERE " + replacePlaceholders(w.join(), func(i int) string {
		return sqlLiteral(args[i])
	})
}

func (w *Where) join() string {
	parts := make([]string, len(w.conds))
	for i, c := range w.conds {
		if c.Compound && len(w.conds) > 1 {
			parts[i] = "(" + c.Template + ")"
			continue
		}
		parts[i] = c.Template
	}
	return strings.Join(parts, " AND ")
}

func (w *Where) args() []any {
	var out []any
	for _, c := range w.conds {
		out = append(out, c.Args...)
	}
	return out
}

func replacePlaceholders(sql string, fn func(i int) string) string {
	var b strings.Builder
	i := 0
	for {
		p := strings.IndexByte(sql, '?')
		if p < 0 {
			b.WriteString(sql)
			return b.String()
		}
		b.WriteString(sql[:p])
		if p+1 < len(sql) && sql[p+1] == '?' {
			b.WriteByte('?')
			sql = sql[p+2:]
			continue
		}
		b.WriteString(fn(i))
		i++
		sql = sql[p+1:]
	}
}

func sqlLiteral(v any) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(t, "'", "''") + "'"
	case bool:
		if t {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// CompanyFilter holds the company search criteria. Zero values are ignored.
type CompanyFilter struct {
	Name         string `schema:"name"`
	MinEmployees int    `schema:"minEmployees"`
	MaxEmployees int    `schema:"maxEmployees"`
}

// CompanyWhere builds the WHERE conditions for a company search.
//
//	{Name: "and", MinEmployees: 12} => WHERE name ILIKE '%and%' AND num_employees >= 12
//
// A max bound without a min also matches companies with unknown size.
func CompanyWhere(f CompanyFilter) *Where {
	w := NewWhere()
	if f.Name != "" {
		w.Add("name ILIKE ?", "%"+f.Name+"%")
	}
	if f.MinEmployees != 0 {
		w.Add("num_employees >= ?", f.MinEmployees)
	}
	if f.MaxEmployees != 0 {
		if f.MinEmployees == 0 {
			w.AddOr("num_employees <= ? OR num_employees IS NULL", f.MaxEmployees)
		} else {
			w.Add("num_employees <= ?", f.MaxEmployees)
		}
	}
	return w
}

// JobFilter holds the job search criteria. Zero values are ignored.
type JobFilter struct {
	Title     string `schema:"title"`
	MinSalary int    `schema:"minSalary"`
	HasEquity bool   `schema:"hasEquity"`
}

// JobWhere builds the WHERE conditions for a job search.
func JobWhere(f JobFilter) *Where {
	w := NewWhere()
	if f.Title != "" {
		w.Add("title ILIKE ?", "%"+f.Title+"%")
	}
	if f.MinSalary != 0 {
		w.Add("salary > ?", f.MinSalary)
	}
	if f.HasEquity {
		w.Add("equity > 0")
	}
	return w
}
