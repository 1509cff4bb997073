package types

import "github.com/google/uuid"

type RunID string

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (x RunID) String() string {
	return string(x)
}
