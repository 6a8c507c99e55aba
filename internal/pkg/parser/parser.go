// Package parser decodes query strings into filter structs.
package parser

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/schema"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(false)
	return d
}

// QueryError lists every problem found in a query string.
type QueryError struct {
	Errors []string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("invalid query: %v", e.Errors)
}

// Details returns the individual messages.
func (e *QueryError) Details() []string { return e.Errors }

// Values collects the query arguments of c, keeping repeated keys.
func Values(c *fiber.Ctx) map[string][]string {
	values := make(map[string][]string)
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		values[k] = append(values[k], string(value))
	})
	return values
}

// Query decodes the query string of c into dst using `schema` struct tags.
// Unknown keys and values that do not convert are reported as a *QueryError.
func Query(c *fiber.Ctx, dst interface{}) error {
	return Decode(Values(c), dst)
}

// Decode is Query over an already collected map.
func Decode(values map[string][]string, dst interface{}) error {
	err := decoder.Decode(dst, values)
	if err == nil {
		return nil
	}

	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return &QueryError{Errors: []string{err.Error()}}
	}

	keys := make([]string, 0, len(multi))
	for k := range multi {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	qe := &QueryError{}
	for _, k := range keys {
		qe.Errors = append(qe.Errors, describe(k, multi[k]))
	}
	return qe
}

func describe(key string, err error) string {
	var unknown schema.UnknownKeyError
	if errors.As(err, &unknown) {
		return fmt.Sprintf("instance is not allowed to have the additional property %q", key)
	}
	var conv schema.ConversionError
	if errors.As(err, &conv) {
		return fmt.Sprintf("instance.%s is not of a type(s) %s", key, conv.Type)
	}
	return fmt.Sprintf("instance.%s: %v", key, err)
}
