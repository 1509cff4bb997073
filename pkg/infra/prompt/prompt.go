package prompt

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rebranch/pkg/domain/interfaces"
	"github.com/m-mizutani/rebranch/pkg/domain/types"
)

// Prompt asks the operator for input on the terminal.
type Prompt struct {
	input  io.Reader
	output io.Writer
}

var _ interfaces.Prompter = (*Prompt)(nil)

type Option func(*Prompt)

func WithInput(r io.Reader) Option {
	return func(x *Prompt) {
		x.input = r
	}
}

func WithOutput(w io.Writer) Option {
	return func(x *Prompt) {
		x.output = w
	}
}

func New(opts ...Option) *Prompt {
	p := &Prompt{
		input:  os.Stdin,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (x *Prompt) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(x.input),
		tea.WithOutput(x.output),
	)
	final, err := p.Run()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to run prompt")
	}
	return final, nil
}

// Input asks for a single line of text. Blank answers are not accepted.
func (x *Prompt) Input(ctx context.Context, message string) (string, error) {
	final, err := x.run(ctx, newTextModel(message))
	if err != nil {
		return "", err
	}

	m := final.(textModel)
	if m.cancelled {
		return "", goerr.Wrap(types.ErrCancelled, "input prompt cancelled", goerr.V("message", message))
	}
	return m.value, nil
}

// MultiSelect shows a checkbox list with nothing selected.
func (x *Prompt) MultiSelect(ctx context.Context, message string, options []string) ([]int, error) {
	if len(options) == 0 {
		return nil, nil
	}

	final, err := x.run(ctx, newMultiSelectModel(message, options))
	if err != nil {
		return nil, err
	}

	m := final.(multiSelectModel)
	if m.cancelled {
		return nil, goerr.Wrap(types.ErrCancelled, "selection prompt cancelled", goerr.V("message", message))
	}
	return m.selectedIndices(), nil
}
