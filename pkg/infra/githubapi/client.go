package githubapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rebranch/pkg/domain/interfaces"
	"github.com/m-mizutani/rebranch/pkg/domain/model"
	"github.com/m-mizutani/rebranch/pkg/domain/types"
	"github.com/m-mizutani/rebranch/pkg/utils/logging"
	"golang.org/x/oauth2"
)

// Client talks to the GitHub REST API on behalf of the token owner.
type Client struct {
	client *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*options)

type options struct {
	baseURL   string
	transport http.RoundTripper
}

// WithBaseURL points the client at a GitHub Enterprise Server API root
// (e.g. https://github.example.com/api/v3/).
func WithBaseURL(baseURL string) Option {
	return func(x *options) {
		x.baseURL = baseURL
	}
}

// WithTransport replaces the underlying transport that the token source wraps.
func WithTransport(tr http.RoundTripper) Option {
	return func(x *options) {
		x.transport = tr
	}
}

func New(token types.GitHubToken, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrMissingToken, "token is empty")
	}

	cfg := &options{transport: http.DefaultTransport}
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)}),
			Base:   cfg.transport,
		},
	}
	client := github.NewClient(httpClient)

	if cfg.baseURL != "" {
		baseURL := cfg.baseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub API base URL", goerr.V("url", cfg.baseURL))
		}
		client.BaseURL = u
	}

	return &Client{client: client}, nil
}

// ListRepositories fetches one page of the repositories of the authenticated user.
// https://docs.github.com/en/rest/repos/repos#list-repositories-for-the-authenticated-user
func (x *Client) ListRepositories(ctx context.Context, opt model.ListRepositoriesOption) (*model.RepositoryPage, error) {
	listOpt := &github.RepositoryListOptions{
		Affiliation: opt.Affiliation,
		ListOptions: github.ListOptions{
			Page:    opt.Page,
			PerPage: opt.PerPage,
		},
	}

	repos, resp, err := x.client.Repositories.List(ctx, "", listOpt)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("page", opt.Page))
	}

	page := &model.RepositoryPage{
		Repositories: make([]*model.Repository, 0, len(repos)),
		LastPage:     resp.LastPage,
	}
	for _, repo := range repos {
		page.Repositories = append(page.Repositories, &model.Repository{
			ID:            types.GitHubRepoID(repo.GetID()),
			Owner:         repo.GetOwner().GetLogin(),
			Name:          repo.GetName(),
			FullName:      repo.GetFullName(),
			DefaultBranch: types.BranchName(repo.GetDefaultBranch()),
			Fork:          repo.GetFork(),
		})
	}

	logging.From(ctx).Debug("Listed repositories",
		slog.Int("page", opt.Page),
		slog.Int("count", len(repos)),
		slog.Int("last_page", resp.LastPage),
	)

	return page, nil
}

// GetBranchRef resolves the commit SHA that the branch points at.
func (x *Client) GetBranchRef(ctx context.Context, repo *model.Repository, branch types.BranchName) (types.CommitSHA, error) {
	ref, _, err := x.client.Git.GetRef(ctx, repo.Owner, repo.Name, branch.HeadRef())
	if err != nil {
		return "", goerr.Wrap(err, "failed to get branch ref",
			goerr.V("repo", repo.FullName),
			goerr.V("ref", branch.HeadRef()),
		)
	}

	sha := ref.GetObject().GetSHA()
	if sha == "" {
		return "", goerr.New("branch ref has no commit",
			goerr.V("repo", repo.FullName),
			goerr.V("ref", branch.HeadRef()),
		)
	}

	return types.CommitSHA(sha), nil
}

func (x *Client) CreateBranchRef(ctx context.Context, repo *model.Repository, branch types.BranchName, sha types.CommitSHA) error {
	ref := &github.Reference{
		Ref: github.String(branch.FullRef()),
		Object: &github.GitObject{
			SHA: github.String(string(sha)),
		},
	}

	if _, _, err := x.client.Git.CreateRef(ctx, repo.Owner, repo.Name, ref); err != nil {
		return goerr.Wrap(err, "failed to create branch ref",
			goerr.V("repo", repo.FullName),
			goerr.V("ref", branch.FullRef()),
			goerr.V("sha", sha),
		)
	}

	return nil
}

func (x *Client) UpdateDefaultBranch(ctx context.Context, repo *model.Repository, branch types.BranchName) error {
	update := &github.Repository{
		DefaultBranch: github.String(string(branch)),
	}

	if _, _, err := x.client.Repositories.Edit(ctx, repo.Owner, repo.Name, update); err != nil {
		return goerr.Wrap(err, "failed to update default branch",
			goerr.V("repo", repo.FullName),
			goerr.V("branch", branch),
		)
	}

	return nil
}

func (x *Client) DeleteBranchRef(ctx context.Context, repo *model.Repository, branch types.BranchName) error {
	if _, err := x.client.Git.DeleteRef(ctx, repo.Owner, repo.Name, branch.HeadRef()); err != nil {
		return goerr.Wrap(err, "failed to delete branch ref",
			goerr.V("repo", repo.FullName),
			goerr.V("ref", branch.HeadRef()),
		)
	}

	return nil
}
