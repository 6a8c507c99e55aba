package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	color.NoColor = true
	buf := &bytes.Buffer{}
	SetOutput(buf)
	t.Cleanup(func() {
		SetOutput(nil)
		SetDebug(false)
	})
	return buf
}

func TestInfoWithContext_IncludesRequestID(t *testing.T) {
	buf := capture(t)

	ctx := WithRequestID(context.Background(), "abc-123")
	InfoWithContext(ctx, "company %s created", "acme")

	assert.Contains(t, buf.String(), "[INFO]")
	assert.Contains(t, buf.String(), "[req_id=abc-123] company acme created")
}

func TestError_WithoutRequestID(t *testing.T) {
	buf := capture(t)

	Error("boom: %d", 42)

	assert.Contains(t, buf.String(), "[Error]")
	assert.Contains(t, buf.String(), "boom: 42")
	assert.NotContains(t, buf.String(), "req_id")
}

func TestDebug_Toggle(t *testing.T) {
	buf := capture(t)

	Debug("hidden")
	Dump(context.Background(), "sql", "SELECT 1")
	assert.Empty(t, buf.String())

	SetDebug(true)
	Debug("shown")
	Dump(context.Background(), "sql", "SELECT 1", []any{1})
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "SELECT 1")
}

func TestRequestID_Missing(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
}
