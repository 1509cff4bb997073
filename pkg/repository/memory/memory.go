package memory

import "github.com/m-mizutani/rebranch/pkg/domain/interfaces"

// New creates a new in-memory rename journal
func New() interfaces.RenameJournal {
	return &renameJournal{
		entries: make(map[string]*entry),
	}
}
