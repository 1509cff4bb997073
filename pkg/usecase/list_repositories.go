package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rebranch/pkg/domain/model"
	"github.com/m-mizutani/rebranch/pkg/domain/types"
	"github.com/m-mizutani/rebranch/pkg/utils/logging"
)

// ListRepositories pages through all repositories visible to the authenticated account.
// The page count is taken from the first response; metadata of later pages is ignored.
func (x *UseCase) ListRepositories(ctx context.Context, perPage int, affiliation string) ([]*model.Repository, error) {
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is required")
	}
	if perPage <= 0 {
		perPage = model.DefaultPerPage
	}

	logger := logging.From(ctx)

	var repos []*model.Repository
	lastPage := 1
	for page := 1; page <= lastPage; page++ {
		resp, err := x.clients.GitHub().ListRepositories(ctx, model.ListRepositoriesOption{
			Page:        page,
			PerPage:     perPage,
			Affiliation: affiliation,
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch repository page", goerr.V("page", page))
		}

		if page == 1 && resp.LastPage > 1 {
			lastPage = resp.LastPage
		}

		logger.Info("Fetched repository page",
			slog.Int("page", page),
			slog.Int("last_page", lastPage),
			slog.Int("count", len(resp.Repositories)),
		)

		repos = append(repos, resp.Repositories...)
	}

	logger.Info("Retrieved repositories from GitHub API",
		slog.Int("total_repos", len(repos)),
		slog.Int("pages", lastPage),
	)

	return repos, nil
}
