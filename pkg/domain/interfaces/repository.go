package interfaces

import (
	"context"

	"github.com/m-mizutani/rebranch/pkg/domain/model"
)

// RenameJournal tracks per-repository progress of the rename procedure for the current run.
type RenameJournal interface {
	Begin(ctx context.Context, repo *model.Repository) error
	Complete(ctx context.Context, repo *model.Repository, step model.RenameStep) error
	Fail(ctx context.Context, repo *model.Repository, step model.RenameStep, cause error) error

	Get(ctx context.Context, repo *model.Repository) (*model.RenameOutcome, error)
	ListFailed(ctx context.Context) ([]*model.RenameOutcome, error)
}
