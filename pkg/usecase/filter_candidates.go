package usecase

import (
	"sort"

	"github.com/m-mizutani/rebranch/pkg/domain/model"
	"github.com/m-mizutani/rebranch/pkg/domain/types"
)

// FilterCandidates keeps non-fork repositories whose default branch is exactly
// from, sorted by full name.
func FilterCandidates(repos []*model.Repository, from types.BranchName) []*model.Repository {
	var candidates []*model.Repository
	for _, repo := range repos {
		if repo.Fork || repo.DefaultBranch != from {
			continue
		}
		candidates = append(candidates, repo)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].FullName < candidates[j].FullName
	})

	return candidates
}
