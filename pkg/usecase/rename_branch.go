package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rebranch/pkg/domain/model"
	"github.com/m-mizutani/rebranch/pkg/domain/types"
	"github.com/m-mizutani/rebranch/pkg/utils/logging"
)

// RenameBranch moves the default branch of repo from one name to another with
// four dependent API calls. It stops at the first failing call and returns a
// *model.RenameError; calls that already succeeded are not rolled back.
func (x *UseCase) RenameBranch(ctx context.Context, repo *model.Repository, from, to types.BranchName) error {
	gh := x.clients.GitHub()
	if gh == nil {
		return goerr.Wrap(types.ErrInvalidOption, "GitHub client is required")
	}

	journal := x.clients.Journal()
	logger := logging.From(ctx).With(slog.String("repo", repo.FullName))

	if err := journal.Begin(ctx, repo); err != nil {
		return goerr.Wrap(err, "failed to start rename", goerr.V("repo", repo.FullName))
	}

	completed := model.RenameStepNone

	done := func(step model.RenameStep) {
		completed = step
		if err := journal.Complete(ctx, repo, step); err != nil {
			logger.Warn("Failed to record rename step", slog.String("step", string(step)), slog.Any("error", err))
		}
		logger.Debug("Rename step completed", slog.String("step", string(step)))
	}

	fail := func(step model.RenameStep, cause error) error {
		if err := journal.Fail(ctx, repo, step, cause); err != nil {
			logger.Warn("Failed to record rename failure", slog.String("step", string(step)), slog.Any("error", err))
		}
		logger.Error("Failed to rename default branch",
			slog.String("step", string(step)),
			slog.String("state", completed.Consequence()),
			slog.Any("error", cause),
		)
		return &model.RenameError{
			Repo:      repo.FullName,
			Step:      step,
			Completed: completed,
			Err:       cause,
		}
	}

	sha, err := gh.GetBranchRef(ctx, repo, from)
	if err != nil {
		return fail(model.RenameStepResolveRef, err)
	}
	done(model.RenameStepResolveRef)

	if err := gh.CreateBranchRef(ctx, repo, to, sha); err != nil {
		return fail(model.RenameStepCreateRef, err)
	}
	done(model.RenameStepCreateRef)

	if err := gh.UpdateDefaultBranch(ctx, repo, to); err != nil {
		return fail(model.RenameStepUpdateDefaultBranch, err)
	}
	done(model.RenameStepUpdateDefaultBranch)

	if err := gh.DeleteBranchRef(ctx, repo, from); err != nil {
		return fail(model.RenameStepDeleteRef, err)
	}
	done(model.RenameStepDeleteRef)

	logger.Info("Renamed default branch",
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.String("sha", string(sha)),
	)

	return nil
}
