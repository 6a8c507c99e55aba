package testutil

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/qolzam/jobly/internal/database/postgres"
	"github.com/qolzam/jobly/internal/database/schema"
	"github.com/stretchr/testify/require"
)

// ShouldRunDatabaseTests reports whether Postgres integration tests are enabled.
func ShouldRunDatabaseTests() bool {
	return os.Getenv("RUN_DB_TESTS") == "1"
}

// NewIsolatedDB returns a client bound to a fresh schema holding the Jobly
// tables. The schema is dropped when the test ends. Skips unless
// RUN_DB_TESTS=1.
func NewIsolatedDB(t *testing.T) *postgres.Client {
	t.Helper()

	if !ShouldRunDatabaseTests() {
		t.Skip("RUN_DB_TESTS not set, skipping database test")
	}

	cfg, err := LoadTestConfig()
	require.NoError(t, err, "Failed to load test config")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	base, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	require.NoError(t, err, "Failed to connect to PostgreSQL")

	// Schema names must start with a letter and contain only letters, numbers, underscores.
	uniqueSuffix := strings.ReplaceAll(uuid.Must(uuid.NewV4()).String(), "-", "")[:16]
	uniqueSchema := fmt.Sprintf("test_%s_%s", SanitizeTestName(t.Name()), uniqueSuffix)

	require.NoError(t, schema.Apply(ctx, base.DB(), uniqueSchema), "Failed to create schema %s", uniqueSchema)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := schema.Drop(ctx, base.DB(), uniqueSchema); err != nil {
			t.Logf("Failed to drop test schema %s: %v", uniqueSchema, err)
		}
		base.Close()
	})

	return postgres.NewClientFromDB(base.DB(), uniqueSchema)
}

var unsafeIdentChars = regexp.MustCompile(`[^a-zA-Z0-9_]+`)

// SanitizeTestName sanitizes a test name for use as a schema identifier
func SanitizeTestName(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ToLower(unsafeIdentChars.ReplaceAllString(name, ""))

	// Postgres identifiers are limited to 63 bytes; leave room for "test_" and the suffix.
	const maxTestNameLength = 41
	if len(name) > maxTestNameLength {
		name = name[:maxTestNameLength]
	}
	return name
}
