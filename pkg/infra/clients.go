package infra

import (
	"github.com/m-mizutani/rebranch/pkg/domain/interfaces"
	"github.com/m-mizutani/rebranch/pkg/repository/memory"
)

type Clients struct {
	github   interfaces.GitHub
	prompter interfaces.Prompter
	journal  interfaces.RenameJournal
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		journal: memory.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) Prompter() interfaces.Prompter {
	return x.prompter
}
func (x *Clients) Journal() interfaces.RenameJournal {
	return x.journal
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithPrompter(prompter interfaces.Prompter) Option {
	return func(x *Clients) {
		x.prompter = prompter
	}
}

func WithJournal(journal interfaces.RenameJournal) Option {
	return func(x *Clients) {
		x.journal = journal
	}
}
