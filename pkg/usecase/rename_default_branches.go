package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rebranch/pkg/domain/model"
	"github.com/m-mizutani/rebranch/pkg/domain/types"
	"github.com/m-mizutani/rebranch/pkg/utils/logging"
)

// RenameDefaultBranches runs the whole flow: ask for branch names, list and
// filter repositories, let the operator pick, then rename in batches.
func (x *UseCase) RenameDefaultBranches(ctx context.Context, input *model.RenameDefaultBranchesInput) (*model.RenameReport, error) {
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.From == "" {
		from, err := x.promptBranch(ctx, "Name of the current default branch to rename")
		if err != nil {
			return nil, err
		}
		input.From = from
	}
	if input.To == "" {
		to, err := x.promptBranch(ctx, fmt.Sprintf("New name for %q", input.From))
		if err != nil {
			return nil, err
		}
		input.To = to
	}
	if err := input.ValidateBranches(); err != nil {
		return nil, err
	}

	logger := logging.From(ctx)
	logger.Info("Starting default branch rename", slog.Any("input", input))

	repos, err := x.ListRepositories(ctx, input.PerPage, input.Affiliation)
	if err != nil {
		return nil, err
	}

	candidates := FilterCandidates(repos, input.From)
	report := &model.RenameReport{Candidates: candidates}

	logger.Info("Filtered repositories by default branch",
		slog.String("from", string(input.From)),
		slog.Int("candidates", len(candidates)),
		slog.Int("skipped_repos", len(repos)-len(candidates)),
	)

	if len(candidates) == 0 {
		logger.Info("No repositories found with the given default branch",
			slog.String("from", string(input.From)),
		)
		return report, nil
	}

	selected, err := x.selectRepositories(ctx, candidates, input)
	if err != nil {
		return nil, err
	}
	report.Selected = selected

	if len(selected) == 0 {
		logger.Info("No repositories selected, nothing to do")
		return report, nil
	}

	if input.DryRun {
		for _, repo := range selected {
			logger.Info("Would rename default branch",
				slog.String("repo", repo.FullName),
				slog.String("from", string(input.From)),
				slog.String("to", string(input.To)),
			)
		}
		return report, nil
	}

	renamed, renameErr := x.RenameInBatches(ctx, selected, input.From, input.To, input.BatchSize)
	report.Renamed = renamed

	failed, err := x.clients.Journal().ListFailed(ctx)
	if err != nil {
		logger.Warn("Failed to read rename journal", slog.Any("error", err))
	}
	report.Failed = failed

	logger.Info("Completed default branch rename",
		slog.Int("selected", len(selected)),
		slog.Int("renamed", len(renamed)),
		slog.Int("failed", len(failed)),
	)

	if renameErr != nil {
		return report, renameErr
	}

	return report, nil
}

// ListCandidates lists repositories whose default branch can be renamed from input.From.
func (x *UseCase) ListCandidates(ctx context.Context, input *model.ListCandidatesInput) ([]*model.Repository, error) {
	if err := input.From.Validate(); err != nil {
		return nil, goerr.Wrap(err, "source branch name is invalid")
	}

	repos, err := x.ListRepositories(ctx, input.PerPage, input.Affiliation)
	if err != nil {
		return nil, err
	}

	return FilterCandidates(repos, input.From), nil
}

func (x *UseCase) promptBranch(ctx context.Context, message string) (types.BranchName, error) {
	if x.clients.Prompter() == nil {
		return "", goerr.Wrap(types.ErrInvalidOption, "branch name is not given and prompt is not available")
	}

	value, err := x.clients.Prompter().Input(ctx, message)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read branch name")
	}

	return types.BranchName(strings.TrimSpace(value)), nil
}

func (x *UseCase) selectRepositories(ctx context.Context, candidates []*model.Repository, input *model.RenameDefaultBranchesInput) ([]*model.Repository, error) {
	if input.SelectAll {
		return candidates, nil
	}
	if x.clients.Prompter() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "prompt is not available, use --all to select every candidate")
	}

	options := make([]string, len(candidates))
	for i, repo := range candidates {
		options[i] = repo.FullName
	}

	message := fmt.Sprintf("Select repositories to rename %q to %q", input.From, input.To)
	indices, err := x.clients.Prompter().MultiSelect(ctx, message, options)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to select repositories")
	}

	selected := make([]*model.Repository, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(candidates) {
			return nil, goerr.New("selected index out of range",
				goerr.V("index", idx),
				goerr.V("candidates", len(candidates)),
			)
		}
		selected = append(selected, candidates[idx])
	}

	return selected, nil
}
