package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/rebranch/pkg/cli/config"
	"github.com/m-mizutani/rebranch/pkg/domain/model"
	"github.com/m-mizutani/rebranch/pkg/domain/types"
	"github.com/m-mizutani/rebranch/pkg/infra"
	"github.com/m-mizutani/rebranch/pkg/infra/prompt"
	"github.com/m-mizutani/rebranch/pkg/usecase"
	"github.com/m-mizutani/rebranch/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func renameCommand() *cli.Command {
	var (
		input = model.RenameDefaultBranchesInput{
			PerPage:   model.DefaultPerPage,
			BatchSize: model.DefaultBatchSize,
		}
		from      string
		to        string
		perPage   int64
		batchSize int64

		githubCfg config.GitHub
	)

	flags := slice.Flatten([]cli.Flag{
		&cli.StringFlag{
			Name:        "from",
			Usage:       "Current default branch name. Prompted if not given",
			Destination: &from,
			Sources:     cli.EnvVars("REBRANCH_FROM"),
		},
		&cli.StringFlag{
			Name:        "to",
			Usage:       "New default branch name. Prompted if not given",
			Destination: &to,
			Sources:     cli.EnvVars("REBRANCH_TO"),
		},
		&cli.Int64Flag{
			Name:        "batch-size",
			Usage:       "Number of repositories renamed concurrently",
			Destination: &batchSize,
			Value:       model.DefaultBatchSize,
			Sources:     cli.EnvVars("REBRANCH_BATCH_SIZE"),
		},
		&cli.Int64Flag{
			Name:        "per-page",
			Usage:       "Page size of repository listing (1-100)",
			Destination: &perPage,
			Value:       model.DefaultPerPage,
			Sources:     cli.EnvVars("REBRANCH_PER_PAGE"),
		},
		&cli.StringFlag{
			Name:        "affiliation",
			Usage:       "Repository affiliation filter [owner,collaborator,organization_member]",
			Destination: &input.Affiliation,
			Sources:     cli.EnvVars("REBRANCH_AFFILIATION"),
		},
		&cli.BoolFlag{
			Name:        "all",
			Usage:       "Select every candidate repository without prompting",
			Destination: &input.SelectAll,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "List and select repositories, but do not change anything",
			Destination: &input.DryRun,
		},
	}, githubCfg.Flags())

	return &cli.Command{
		Name:    "rename",
		Aliases: []string{"r"},
		Usage:   "Rename default branch of selected repositories",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.From(ctx).Info("starting rename",
				slog.Any("github", githubCfg),
			)

			ghClient, err := githubCfg.NewClient()
			if err != nil {
				return err
			}

			input.From = types.BranchName(from)
			input.To = types.BranchName(to)
			input.PerPage = int(perPage)
			input.BatchSize = int(batchSize)

			clients := infra.New(
				infra.WithGitHub(ghClient),
				infra.WithPrompter(prompt.New()),
			)
			uc := usecase.New(clients)

			report, runErr := uc.RenameDefaultBranches(ctx, &input)
			if report != nil {
				printReport(ctx, os.Stdout, &input, report)
			}
			if runErr != nil {
				return goerr.Wrap(runErr, "failed to rename default branches")
			}
			return nil
		},
	}
}

func printReport(ctx context.Context, w io.Writer, input *model.RenameDefaultBranchesInput, report *model.RenameReport) {
	logger := logging.From(ctx)

	for _, outcome := range report.Failed {
		attrs := []any{
			slog.String("repo", outcome.Repo.FullName),
			slog.String("failed_step", string(outcome.Failed)),
			slog.String("completed_step", string(outcome.Completed)),
			slog.String("error", outcome.Error),
		}
		if outcome.Inconsistent() {
			logger.Warn("Repository left in inconsistent state, fix it manually",
				append(attrs, slog.String("state", outcome.Completed.Consequence()))...)
		} else {
			logger.Error("Repository was not renamed", attrs...)
		}
	}

	switch {
	case len(report.Candidates) == 0:
		fmt.Fprintf(w, "No repository has default branch %q\n", input.From)
	case input.DryRun:
		fmt.Fprintf(w, "Dry run: %d of %d candidate(s) would be renamed from %q to %q\n",
			len(report.Selected), len(report.Candidates), input.From, input.To)
		for _, repo := range report.Selected {
			fmt.Fprintf(w, "  %s\n", repo.FullName)
		}
	default:
		fmt.Fprintf(w, "Renamed %d of %d selected repositories from %q to %q\n",
			len(report.Renamed), len(report.Selected), input.From, input.To)
		for _, repo := range report.Renamed {
			fmt.Fprintf(w, "  %s\n", repo.FullName)
		}
	}
}
