package interfaces

import (
	"context"

	"github.com/m-mizutani/rebranch/pkg/domain/model"
)

type UseCase interface {
	RenameDefaultBranches(ctx context.Context, input *model.RenameDefaultBranchesInput) (*model.RenameReport, error)
	ListCandidates(ctx context.Context, input *model.ListCandidatesInput) ([]*model.Repository, error)
}
