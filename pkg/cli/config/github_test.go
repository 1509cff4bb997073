package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/rebranch/pkg/cli/config"
	"github.com/m-mizutani/rebranch/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// parseGitHub runs a throwaway command so that flag sources are applied to cfg.
func parseGitHub(t *testing.T, cfg *config.GitHub, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:  "test",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func TestGitHubFlags(t *testing.T) {
	cfg := &config.GitHub{}
	flags := cfg.Flags()

	gt.V(t, len(flags)).Equal(2)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["github-token"])
	gt.True(t, flagNames["github-base-url"])
}

func TestGitHubMissingToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("REBRANCH_GITHUB_TOKEN", "")

	var cfg config.GitHub
	parseGitHub(t, &cfg)

	err := cfg.Validate()
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrMissingToken))
	gt.S(t, err.Error()).Contains("https://github.com/settings/tokens")

	client, err := cfg.NewClient()
	gt.Error(t, err)
	gt.V(t, client == nil).Equal(true)
}

func TestGitHubTokenFromEnv(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_from_env")

	var cfg config.GitHub
	parseGitHub(t, &cfg)

	gt.NoError(t, cfg.Validate())
	_, err := cfg.NewClient()
	gt.NoError(t, err)
}

func TestGitHubLogValueHidesToken(t *testing.T) {
	var cfg config.GitHub
	parseGitHub(t, &cfg, "--github-token", "ghp_secret_value", "--github-base-url", "https://github.example.com/api/v3/")

	value := cfg.LogValue().String()
	gt.S(t, value).NotContains("ghp_secret_value")
	gt.S(t, value).Contains("github.example.com")
}
