package repository

import "github.com/m-mizutani/goerr/v2"

var (
	ErrNotFound      = goerr.New("journal entry not found")
	ErrAlreadyExists = goerr.New("journal entry already exists")
	ErrInvalidInput  = goerr.New("invalid journal input")
)
