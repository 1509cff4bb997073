package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")
	ErrMissingToken  = goerr.New("GitHub token is not set")
	ErrCancelled     = goerr.New("cancelled by operator")
)
