package testutil

import (
	"fmt"
	"os"
	"strings"

	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	"github.com/subosito/gotenv"
)

// testEnvFiles are searched from the package directory up to the module root.
var testEnvFiles = []string{
	".env.test",
	"../.env.test",
	"../../.env.test",
	"../../../.env.test",
}

// LoadTestEnv returns the test environment: values from the first .env.test
// found, overridden by the process environment.
func LoadTestEnv() map[string]string {
	env := map[string]string{}
	for _, path := range testEnvFiles {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		values, err := gotenv.StrictParse(f)
		f.Close()
		if err != nil {
			continue
		}
		for k, v := range values {
			env[k] = v
		}
		break
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

// LoadTestConfig builds a platform config for tests. Missing JWT keys are
// generated and bcrypt uses its cheapest cost.
func LoadTestConfig() (*platformconfig.Config, error) {
	env := LoadTestEnv()

	if env["JWT_PUBLIC_KEY"] == "" || env["JWT_PRIVATE_KEY"] == "" {
		pub, priv, err := generateKeyPair()
		if err != nil {
			return nil, fmt.Errorf("generate test keys: %w", err)
		}
		env["JWT_PUBLIC_KEY"] = pub
		env["JWT_PRIVATE_KEY"] = priv
	}
	if _, ok := env["BCRYPT_WORK_FACTOR"]; !ok {
		env["BCRYPT_WORK_FACTOR"] = "4"
	}
	if _, ok := env["POSTGRES_DATABASE"]; !ok {
		env["POSTGRES_DATABASE"] = "jobly_test"
	}

	return platformconfig.LoadFromMap(env)
}
