package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/rebranch/pkg/domain/mock"
	"github.com/m-mizutani/rebranch/pkg/domain/model"
	"github.com/m-mizutani/rebranch/pkg/domain/types"
	"github.com/m-mizutani/rebranch/pkg/infra"
	"github.com/m-mizutani/rebranch/pkg/usecase"
)

func TestNew(t *testing.T) {
	t.Run("create new usecase with all clients", func(t *testing.T) {
		clients := infra.New()
		uc := usecase.New(clients)

		_ = uc.RenameDefaultBranches
		_ = uc.ListCandidates
	})
}

var repoSeq atomic.Int64

func newRepo(owner, name string, defaultBranch types.BranchName, fork bool) *model.Repository {
	return &model.Repository{
		ID:            types.GitHubRepoID(repoSeq.Add(1)),
		Owner:         owner,
		Name:          name,
		FullName:      owner + "/" + name,
		DefaultBranch: defaultBranch,
		Fork:          fork,
	}
}

// callLog records GitHub API calls in the order they were made.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (x *callLog) add(format string, args ...any) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.calls = append(x.calls, fmt.Sprintf(format, args...))
}

func (x *callLog) list() []string {
	x.mu.Lock()
	defer x.mu.Unlock()
	return append([]string{}, x.calls...)
}

// newRenameMock returns a GitHub mock whose rename calls all succeed and are
// recorded in log.
func newRenameMock(log *callLog) *mock.GitHubMock {
	return &mock.GitHubMock{
		GetBranchRefFunc: func(ctx context.Context, repo *model.Repository, branch types.BranchName) (types.CommitSHA, error) {
			log.add("get %s %s", repo.FullName, branch.HeadRef())
			return types.CommitSHA("sha-" + repo.Name), nil
		},
		CreateBranchRefFunc: func(ctx context.Context, repo *model.Repository, branch types.BranchName, sha types.CommitSHA) error {
			log.add("create %s %s %s", repo.FullName, branch.FullRef(), sha)
			return nil
		},
		UpdateDefaultBranchFunc: func(ctx context.Context, repo *model.Repository, branch types.BranchName) error {
			log.add("update %s %s", repo.FullName, branch)
			return nil
		},
		DeleteBranchRefFunc: func(ctx context.Context, repo *model.Repository, branch types.BranchName) error {
			log.add("delete %s %s", repo.FullName, branch.HeadRef())
			return nil
		},
	}
}
