package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub Prompter

import (
	"context"

	"github.com/m-mizutani/rebranch/pkg/domain/model"
	"github.com/m-mizutani/rebranch/pkg/domain/types"
)

// GitHub is the subset of the GitHub REST API used to rename default branches.
type GitHub interface {
	ListRepositories(ctx context.Context, opt model.ListRepositoriesOption) (*model.RepositoryPage, error)

	GetBranchRef(ctx context.Context, repo *model.Repository, branch types.BranchName) (types.CommitSHA, error)
	CreateBranchRef(ctx context.Context, repo *model.Repository, branch types.BranchName, sha types.CommitSHA) error
	UpdateDefaultBranch(ctx context.Context, repo *model.Repository, branch types.BranchName) error
	DeleteBranchRef(ctx context.Context, repo *model.Repository, branch types.BranchName) error
}

type Prompter interface {
	Input(ctx context.Context, message string) (string, error)
	// MultiSelect returns indices of the chosen options in display order.
	MultiSelect(ctx context.Context, message string, options []string) ([]int, error)
}
