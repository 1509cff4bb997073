package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/rebranch/pkg/cli/config"
	"github.com/m-mizutani/rebranch/pkg/domain/model"
	"github.com/m-mizutani/rebranch/pkg/domain/types"
	"github.com/m-mizutani/rebranch/pkg/infra"
	"github.com/m-mizutani/rebranch/pkg/usecase"
	"github.com/m-mizutani/rebranch/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

type candidateRecord struct {
	ID            types.GitHubRepoID `json:"id"`
	FullName      string             `json:"full_name"`
	DefaultBranch string             `json:"default_branch"`
}

func listCommand() *cli.Command {
	var (
		input = model.ListCandidatesInput{
			PerPage: model.DefaultPerPage,
		}
		from    string
		perPage int64
		format  string
		output  string

		githubCfg config.GitHub
	)

	flags := slice.Flatten([]cli.Flag{
		&cli.StringFlag{
			Name:        "from",
			Usage:       "Default branch name to look for",
			Destination: &from,
			Required:    true,
			Sources:     cli.EnvVars("REBRANCH_FROM"),
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
		&cli.StringFlag{
			Name:        "format",
			Usage:       "Output format [text|json]",
			Destination: &format,
			Value:       "text",
		},
		&cli.StringFlag{
			Name:        "output",
			Usage:       "Output file path, '-' for stdout",
			Destination: &output,
			Value:       "-",
		},
	}, githubCfg.Flags())

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List non-fork repositories whose default branch matches --from",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if format != "text" && format != "json" {
				return goerr.Wrap(types.ErrInvalidOption, "invalid output format", goerr.V("format", format))
			}
			if perPage < 1 || perPage > 100 {
				return goerr.Wrap(types.ErrInvalidOption, "per page must be between 1 and 100", goerr.V("per_page", perPage))
			}

			ghClient, err := githubCfg.NewClient()
			if err != nil {
				return err
			}

			input.From = types.BranchName(from)
			input.PerPage = int(perPage)

			uc := usecase.New(infra.New(infra.WithGitHub(ghClient)))
			repos, err := uc.ListCandidates(ctx, &input)
			if err != nil {
				return err
			}

			var w io.Writer = os.Stdout
			if output != "-" {
				fd, err := os.Create(filepath.Clean(output))
				if err != nil {
					return goerr.Wrap(err, "failed to create output file", goerr.V("path", output))
				}
				defer safe.Close(fd)
				w = fd
			}

			return writeCandidates(w, format, repos)
		},
	}
}

func writeCandidates(w io.Writer, format string, repos []*model.Repository) error {
	if format == "json" {
		records := make([]candidateRecord, len(repos))
		for i, repo := range repos {
			records[i] = candidateRecord{
				ID:            repo.ID,
				FullName:      repo.FullName,
				DefaultBranch: string(repo.DefaultBranch),
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return goerr.Wrap(err, "failed to write candidates")
		}
		return nil
	}

	for _, repo := range repos {
		if _, err := fmt.Fprintln(w, repo.FullName); err != nil {
			return goerr.Wrap(err, "failed to write candidates")
		}
	}
	return nil
}
