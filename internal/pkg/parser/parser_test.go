package parser

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type search struct {
	Name      string `schema:"name"`
	Min       int    `schema:"min"`
	HasEquity bool   `schema:"hasEquity"`
}

func TestDecode(t *testing.T) {
	var s search
	require.NoError(t, Decode(map[string][]string{
		"name":      {"net"},
		"min":       {"12"},
		"hasEquity": {"true"},
	}, &s))
	assert.Equal(t, search{Name: "net", Min: 12, HasEquity: true}, s)
}

func TestDecode_UnknownKey(t *testing.T) {
	var s search
	err := Decode(map[string][]string{"nope": {"1"}}, &s)

	var qe *QueryError
	require.ErrorAs(t, err, &qe)
	assert.Contains(t, qe.Errors[0], `additional property "nope"`)
}

func TestDecode_BadNumber(t *testing.T) {
	var s search
	err := Decode(map[string][]string{"min": {"many"}}, &s)

	var qe *QueryError
	require.ErrorAs(t, err, &qe)
	assert.Contains(t, qe.Errors[0], "instance.min")
}

func TestQuery_FromFiber(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		var s search
		if err := Query(c, &s); err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		return c.JSON(s)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/?name=a%20b&min=3", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/?color=red", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
