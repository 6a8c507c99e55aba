// Package validator checks decoded JSON bodies against per-endpoint field rules.
package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/qolzam/jobly/internal/database/utils"
)

// Kind is the JSON type a field accepts.
type Kind int

const (
	String Kind = iota
	Integer
	Number
	Boolean
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Integer:
		return "integer"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Format names a string format check.
type Format string

const (
	FormatNone  Format = ""
	FormatEmail Format = "email"
	FormatURI   Format = "uri"
)

// Field describes one allowed property.
type Field struct {
	Kind      Kind
	MinLength int
	MaxLength int // 0 means unbounded
	Min       *float64
	Max       *float64
	Format    Format
	Nullable  bool
}

// Bound returns a pointer for Field.Min and Field.Max.
func Bound(v float64) *float64 { return &v }

// Schema is the set of properties an object may carry.
// Properties outside Fields are rejected.
type Schema struct {
	Fields        map[string]Field
	Required      []string
	MinProperties int
}

// Error collects every violation of a schema.
type Error struct {
	Errors []string
}

func (e *Error) Error() string {
	return strings.Join(e.Errors, "; ")
}

// Details returns the individual messages.
func (e *Error) Details() []string { return e.Errors }

// Validate checks p and returns a copy whose numbers are converted to
// int64 (Integer) or float64 (Number). Key order is preserved.
func (s Schema) Validate(p *utils.UpdatePayload) (*utils.UpdatePayload, error) {
	var errs []string
	out := utils.NewUpdatePayload()

	if p.Len() < s.MinProperties {
		errs = append(errs, fmt.Sprintf("instance does not meet minimum property length of %d", s.MinProperties))
	}

	for _, key := range p.Keys() {
		raw, _ := p.Get(key)
		field, ok := s.Fields[key]
		if !ok {
			errs = append(errs, fmt.Sprintf("instance is not allowed to have the additional property %q", key))
			continue
		}
		value, fieldErrs := checkField(key, field, raw)
		if len(fieldErrs) > 0 {
			errs = append(errs, fieldErrs...)
			continue
		}
		out.Set(key, value)
	}

	for _, key := range s.Required {
		if !p.Has(key) {
			errs = append(errs, fmt.Sprintf("instance requires property %q", key))
		}
	}

	if len(errs) > 0 {
		return nil, &Error{Errors: errs}
	}
	return out, nil
}

// ValidateJSON decodes body and validates it.
func (s Schema) ValidateJSON(body []byte) (*utils.UpdatePayload, error) {
	p, err := utils.DecodeUpdatePayload(body)
	if err != nil {
		return nil, &Error{Errors: []string{err.Error()}}
	}
	return s.Validate(p)
}

func checkField(key string, f Field, raw any) (any, []string) {
	path := "instance." + key

	if raw == nil {
		if f.Nullable {
			return nil, nil
		}
		return nil, []string{fmt.Sprintf("%s is not of a type(s) %s", path, f.Kind)}
	}

	switch f.Kind {
	case String:
		s, ok := raw.(string)
		if !ok {
			return nil, []string{fmt.Sprintf("%s is not of a type(s) string", path)}
		}
		return s, checkString(path, f, s)

	case Boolean:
		b, ok := raw.(bool)
		if !ok {
			return nil, []string{fmt.Sprintf("%s is not of a type(s) boolean", path)}
		}
		return b, nil

	case Integer:
		n, ok := raw.(json.Number)
		if !ok {
			return nil, []string{fmt.Sprintf("%s is not of a type(s) integer", path)}
		}
		i, err := n.Int64()
		if err != nil {
			return nil, []string{fmt.Sprintf("%s is not of a type(s) integer", path)}
		}
		return i, checkRange(path, f, float64(i))

	case Number:
		n, ok := raw.(json.Number)
		if !ok {
			return nil, []string{fmt.Sprintf("%s is not of a type(s) number", path)}
		}
		v, err := n.Float64()
		if err != nil || math.IsInf(v, 0) {
			return nil, []string{fmt.Sprintf("%s is not of a type(s) number", path)}
		}
		return v, checkRange(path, f, v)
	}

	return nil, []string{fmt.Sprintf("%s has an unsupported type", path)}
}

func checkString(path string, f Field, s string) []string {
	var errs []string
	n := utf8.RuneCountInString(s)
	if n < f.MinLength {
		errs = append(errs, fmt.Sprintf("%s does not meet minimum length of %d", path, f.MinLength))
	}
	if f.MaxLength > 0 && n > f.MaxLength {
		errs = append(errs, fmt.Sprintf("%s does not meet maximum length of %d", path, f.MaxLength))
	}
	switch f.Format {
	case FormatEmail:
		if addr, err := mail.ParseAddress(s); err != nil || addr.Address != s {
			errs = append(errs, fmt.Sprintf("%s does not conform to the %q format", path, f.Format))
		}
	case FormatURI:
		if u, err := url.ParseRequestURI(s); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("%s does not conform to the %q format", path, f.Format))
		}
	}
	return errs
}

func checkRange(path string, f Field, v float64) []string {
	var errs []string
	if f.Min != nil && v < *f.Min {
		errs = append(errs, fmt.Sprintf("%s must be greater than or equal to %s", path, formatBound(*f.Min)))
	}
	if f.Max != nil && v > *f.Max {
		errs = append(errs, fmt.Sprintf("%s must be less than or equal to %s", path, formatBound(*f.Max)))
	}
	return errs
}

func formatBound(b float64) string {
	return strconv.FormatFloat(b, 'f', -1, 64)
}
