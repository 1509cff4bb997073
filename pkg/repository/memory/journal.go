package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rebranch/pkg/domain/model"
	"github.com/m-mizutani/rebranch/pkg/repository"
)

type entry struct {
	seq     int
	outcome model.RenameOutcome
}

type renameJournal struct {
	mu      sync.RWMutex
	seq     int
	entries map[string]*entry
}

func (r *renameJournal) Begin(ctx context.Context, repo *model.Repository) error {
	if repo == nil || repo.FullName == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "repository full name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[repo.FullName]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "rename already started",
			goerr.V("repo", repo.FullName),
		)
	}

	r.seq++
	r.entries[repo.FullName] = &entry{
		seq:     r.seq,
		outcome: model.RenameOutcome{Repo: repo},
	}

	return nil
}

func (r *renameJournal) Complete(ctx context.Context, repo *model.Repository, step model.RenameStep) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.lookup(repo)
	if err != nil {
		return err
	}
	e.outcome.Completed = step

	return nil
}

func (r *renameJournal) Fail(ctx context.Context, repo *model.Repository, step model.RenameStep, cause error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.lookup(repo)
	if err != nil {
		return err
	}
	e.outcome.Failed = step
	if cause != nil {
		e.outcome.Error = cause.Error()
	}

	return nil
}

func (r *renameJournal) Get(ctx context.Context, repo *model.Repository) (*model.RenameOutcome, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, err := r.lookup(repo)
	if err != nil {
		return nil, err
	}

	return copyOutcome(&e.outcome), nil
}

// ListFailed returns failed outcomes in the order the renames began.
func (r *renameJournal) ListFailed(ctx context.Context) ([]*model.RenameOutcome, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var failed []*entry
	for _, e := range r.entries {
		if e.outcome.Failed != model.RenameStepNone {
			failed = append(failed, e)
		}
	}
	sort.Slice(failed, func(i, j int) bool {
		return failed[i].seq < failed[j].seq
	})

	outcomes := make([]*model.RenameOutcome, len(failed))
	for i, e := range failed {
		outcomes[i] = copyOutcome(&e.outcome)
	}

	return outcomes, nil
}

func (r *renameJournal) lookup(repo *model.Repository) (*entry, error) {
	if repo == nil {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "repository is nil")
	}

	e, exists := r.entries[repo.FullName]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "rename not started",
			goerr.V("repo", repo.FullName),
		)
	}

	return e, nil
}

func copyOutcome(src *model.RenameOutcome) *model.RenameOutcome {
	dst := *src
	return &dst
}
