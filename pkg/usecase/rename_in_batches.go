package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rebranch/pkg/domain/model"
	"github.com/m-mizutani/rebranch/pkg/domain/types"
	"github.com/m-mizutani/rebranch/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// partition splits items into consecutive groups of at most size elements.
func partition[T any](items []T, size int) [][]T {
	var groups [][]T
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		groups = append(groups, items[start:end])
	}
	return groups
}

// RenameInBatches renames repos in sequential batches of batchSize concurrent
// renames. A failing rename lets the rest of its batch finish but no later
// batch is started. It returns the repositories renamed successfully.
func (x *UseCase) RenameInBatches(ctx context.Context, repos []*model.Repository, from, to types.BranchName, batchSize int) ([]*model.Repository, error) {
	if batchSize <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "batch size must be positive", goerr.V("batch_size", batchSize))
	}

	logger := logging.From(ctx)
	batches := partition(repos, batchSize)

	var renamed []*model.Repository
	for i, batch := range batches {
		logger.Info("Processing batch",
			slog.Int("batch", i+1),
			slog.Int("total", len(batches)),
			slog.Int("size", len(batch)),
		)

		succeeded := make([]bool, len(batch))
		var eg errgroup.Group
		for j, repo := range batch {
			eg.Go(func() error {
				if err := x.RenameBranch(ctx, repo, from, to); err != nil {
					return err
				}
				succeeded[j] = true
				return nil
			})
		}
		err := eg.Wait()

		for j, ok := range succeeded {
			if ok {
				renamed = append(renamed, batch[j])
			}
		}

		if err != nil {
			return renamed, goerr.Wrap(err, "batch failed, remaining batches skipped",
				goerr.V("batch", i+1),
				goerr.V("total", len(batches)),
			)
		}
	}

	return renamed, nil
}
