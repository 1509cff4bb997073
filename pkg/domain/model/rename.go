package model

import (
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rebranch/pkg/domain/types"
)

const (
	DefaultPerPage   = 100
	DefaultBatchSize = 10
)

// RenameStep identifies one remote call of the branch rename procedure.
type RenameStep string

const (
	RenameStepNone                RenameStep = ""
	RenameStepResolveRef          RenameStep = "resolve_ref"
	RenameStepCreateRef           RenameStep = "create_ref"
	RenameStepUpdateDefaultBranch RenameStep = "update_default_branch"
	RenameStepDeleteRef           RenameStep = "delete_ref"
)

// RenameSteps lists the procedure steps in execution order.
var RenameSteps = []RenameStep{
	RenameStepResolveRef,
	RenameStepCreateRef,
	RenameStepUpdateDefaultBranch,
	RenameStepDeleteRef,
}

// Consequence describes the remote state left behind when the procedure
// stopped after this step completed.
func (x RenameStep) Consequence() string {
	switch x {
	case RenameStepNone, RenameStepResolveRef:
		return "unchanged"
	case RenameStepCreateRef:
		return "both branches present, default branch unchanged"
	case RenameStepUpdateDefaultBranch:
		return "both branches present, default branch switched"
	case RenameStepDeleteRef:
		return "renamed"
	default:
		return "unknown"
	}
}

// RenameError reports the step at which the rename procedure stopped.
type RenameError struct {
	Repo      string
	Step      RenameStep
	Completed RenameStep
	Err       error
}

func (x *RenameError) Error() string {
	return fmt.Sprintf("rename %s failed at %s: %v", x.Repo, x.Step, x.Err)
}

func (x *RenameError) Unwrap() error {
	return x.Err
}

type RenameDefaultBranchesInput struct {
	From        types.BranchName
	To          types.BranchName
	PerPage     int
	BatchSize   int
	Affiliation string
	SelectAll   bool
	DryRun      bool
}

// Validate checks the parameters that do not depend on operator input.
// Branch names are validated by ValidateBranches once prompted.
func (x *RenameDefaultBranchesInput) Validate() error {
	if x.PerPage <= 0 || x.PerPage > 100 {
		return goerr.Wrap(types.ErrInvalidOption, "per page must be between 1 and 100", goerr.V("per_page", x.PerPage))
	}
	if x.BatchSize <= 0 {
		return goerr.Wrap(types.ErrInvalidOption, "batch size must be positive", goerr.V("batch_size", x.BatchSize))
	}
	return nil
}

func (x *RenameDefaultBranchesInput) ValidateBranches() error {
	if err := x.From.Validate(); err != nil {
		return goerr.Wrap(err, "source branch name is invalid")
	}
	if err := x.To.Validate(); err != nil {
		return goerr.Wrap(err, "target branch name is invalid")
	}
	if x.From == x.To {
		return goerr.Wrap(types.ErrInvalidOption, "source and target branch names are identical", goerr.V("branch", x.From))
	}
	return nil
}

func (x *RenameDefaultBranchesInput) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("from", string(x.From)),
		slog.String("to", string(x.To)),
		slog.Int("per_page", x.PerPage),
		slog.Int("batch_size", x.BatchSize),
		slog.String("affiliation", x.Affiliation),
		slog.Bool("select_all", x.SelectAll),
		slog.Bool("dry_run", x.DryRun),
	)
}

type ListCandidatesInput struct {
	From        types.BranchName
	PerPage     int
	Affiliation string
}

// RenameOutcome is the journal entry for one repository.
type RenameOutcome struct {
	Repo      *Repository
	Completed RenameStep
	Failed    RenameStep
	Error     string
}

// Inconsistent reports whether the repository was left half-renamed.
func (x *RenameOutcome) Inconsistent() bool {
	return x.Completed == RenameStepCreateRef || x.Completed == RenameStepUpdateDefaultBranch
}

type RenameReport struct {
	Candidates []*Repository
	Selected   []*Repository
	Renamed    []*Repository
	Failed     []*RenameOutcome
}
