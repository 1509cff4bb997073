package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rebranch/pkg/domain/types"
	"github.com/m-mizutani/rebranch/pkg/infra/githubapi"
	"github.com/urfave/cli/v3"
)

const tokenHelp = "set GITHUB_TOKEN to a personal access token with the repo scope (generate one at https://github.com/settings/tokens)"

type GitHub struct {
	token   types.GitHubToken `masq:"secret"`
	baseURL string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token with repo scope",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("GITHUB_TOKEN", "REBRANCH_GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL for GitHub Enterprise Server (e.g. https://github.example.com/api/v3/)",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("REBRANCH_GITHUB_BASE_URL"),
		},
	}
}

// Validate fails when no token is configured. It must be called before any network access.
func (x *GitHub) Validate() error {
	if x.token == "" {
		return goerr.Wrap(types.ErrMissingToken, tokenHelp)
	}
	return nil
}

func (x *GitHub) NewClient() (*githubapi.Client, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}

	var opts []githubapi.Option
	if x.baseURL != "" {
		opts = append(opts, githubapi.WithBaseURL(x.baseURL))
	}
	return githubapi.New(x.token, opts...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("baseURL", x.baseURL),
	)
}
