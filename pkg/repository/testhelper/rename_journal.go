package testhelper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/rebranch/pkg/domain/interfaces"
	"github.com/m-mizutani/rebranch/pkg/domain/model"
	"github.com/m-mizutani/rebranch/pkg/repository"
)

// TestAll runs the shared RenameJournal contract against an implementation.
// newJournal must return an empty journal on each call.
func TestAll(t *testing.T, newJournal func() interfaces.RenameJournal) {
	t.Run("Begin and Get", func(t *testing.T) {
		testBeginAndGet(t, newJournal())
	})
	t.Run("Complete and Fail", func(t *testing.T) {
		testCompleteAndFail(t, newJournal())
	})
	t.Run("Unknown repository", func(t *testing.T) {
		testUnknownRepository(t, newJournal())
	})
	t.Run("ListFailed order", func(t *testing.T) {
		testListFailedOrder(t, newJournal())
	})
	t.Run("Concurrent access", func(t *testing.T) {
		testConcurrentAccess(t, newJournal())
	})
}

func newRepo(name string) *model.Repository {
	return &model.Repository{
		Owner:         "octo",
		Name:          name,
		FullName:      "octo/" + name,
		DefaultBranch: "master",
	}
}

func testBeginAndGet(t *testing.T, journal interfaces.RenameJournal) {
	ctx := context.Background()
	repo := newRepo("app")

	gt.NoError(t, journal.Begin(ctx, repo))

	outcome, err := journal.Get(ctx, repo)
	gt.NoError(t, err)
	gt.V(t, outcome.Repo.FullName).Equal("octo/app")
	gt.V(t, outcome.Completed).Equal(model.RenameStepNone)
	gt.V(t, outcome.Failed).Equal(model.RenameStepNone)

	err = journal.Begin(ctx, repo)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrAlreadyExists))

	gt.Error(t, journal.Begin(ctx, &model.Repository{}))
}

func testCompleteAndFail(t *testing.T, journal interfaces.RenameJournal) {
	ctx := context.Background()
	repo := newRepo("app")

	gt.NoError(t, journal.Begin(ctx, repo))
	gt.NoError(t, journal.Complete(ctx, repo, model.RenameStepResolveRef))
	gt.NoError(t, journal.Complete(ctx, repo, model.RenameStepCreateRef))
	gt.NoError(t, journal.Fail(ctx, repo, model.RenameStepUpdateDefaultBranch, errors.New("forbidden")))

	outcome, err := journal.Get(ctx, repo)
	gt.NoError(t, err)
	gt.V(t, outcome.Completed).Equal(model.RenameStepCreateRef)
	gt.V(t, outcome.Failed).Equal(model.RenameStepUpdateDefaultBranch)
	gt.V(t, outcome.Error).Equal("forbidden")
	gt.True(t, outcome.Inconsistent())

	// returned outcome is a copy
	outcome.Completed = model.RenameStepDeleteRef
	again, err := journal.Get(ctx, repo)
	gt.NoError(t, err)
	gt.V(t, again.Completed).Equal(model.RenameStepCreateRef)

	failed, err := journal.ListFailed(ctx)
	gt.NoError(t, err)
	gt.A(t, failed).Length(1)
}

func testUnknownRepository(t *testing.T, journal interfaces.RenameJournal) {
	ctx := context.Background()
	repo := newRepo("missing")

	_, err := journal.Get(ctx, repo)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
	gt.True(t, errors.Is(journal.Complete(ctx, repo, model.RenameStepResolveRef), repository.ErrNotFound))
	gt.True(t, errors.Is(journal.Fail(ctx, repo, model.RenameStepResolveRef, nil), repository.ErrNotFound))
}

func testListFailedOrder(t *testing.T, journal interfaces.RenameJournal) {
	ctx := context.Background()

	names := []string{"zeta", "alpha", "mid", "ok"}
	for _, name := range names {
		gt.NoError(t, journal.Begin(ctx, newRepo(name)))
	}
	for _, name := range []string{"mid", "zeta", "alpha"} {
		gt.NoError(t, journal.Fail(ctx, newRepo(name), model.RenameStepResolveRef, errors.New("not found")))
	}
	gt.NoError(t, journal.Complete(ctx, newRepo("ok"), model.RenameStepDeleteRef))

	failed, err := journal.ListFailed(ctx)
	gt.NoError(t, err)
	gt.A(t, failed).Length(3)
	gt.V(t, failed[0].Repo.Name).Equal("zeta")
	gt.V(t, failed[1].Repo.Name).Equal("alpha")
	gt.V(t, failed[2].Repo.Name).Equal("mid")
}

func testConcurrentAccess(t *testing.T, journal interfaces.RenameJournal) {
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			repo := newRepo(fmt.Sprintf("repo-%02d", i))
			if err := journal.Begin(ctx, repo); err != nil {
				return
			}
			for _, step := range model.RenameSteps {
				_ = journal.Complete(ctx, repo, step)
			}
			if i%2 == 0 {
				_ = journal.Fail(ctx, repo, model.RenameStepDeleteRef, errors.New("conflict"))
			}
		}(i)
	}
	wg.Wait()

	failed, err := journal.ListFailed(ctx)
	gt.NoError(t, err)
	gt.A(t, failed).Length(10)
}
