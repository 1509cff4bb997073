package model

import (
	"log/slog"

	"github.com/m-mizutani/rebranch/pkg/domain/types"
)

// Repository is a snapshot of a GitHub repository taken once per run.
type Repository struct {
	ID            types.GitHubRepoID
	Owner         string
	Name          string
	FullName      string
	DefaultBranch types.BranchName
	Fork          bool
}

func (x *Repository) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("id", int64(x.ID)),
		slog.String("full_name", x.FullName),
		slog.String("default_branch", string(x.DefaultBranch)),
		slog.Bool("fork", x.Fork),
	)
}

// RepositoryPage is one page of the account's repository listing.
// LastPage is zero when the server did not report a last page.
type RepositoryPage struct {
	Repositories []*Repository
	LastPage     int
}

type ListRepositoriesOption struct {
	Page        int
	PerPage     int
	Affiliation string
}
