package testutil

import (
	"os"
	"testing"

	"github.com/m-mizutani/rebranch/pkg/domain/types"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// GitHubTokenOrSkip returns TEST_GITHUB_TOKEN for tests that call the real GitHub API.
func GitHubTokenOrSkip(t *testing.T) types.GitHubToken {
	t.Helper()
	return types.GitHubToken(GetEnvOrSkip(t, "TEST_GITHUB_TOKEN"))
}
