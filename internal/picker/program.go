package picker

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Program runs a Picker inline on a terminal.
type Program[T Item] struct {
	Options Options

	// Input and Output default to the process stdin and stderr, so stdout
	// stays free for the caller's result.
	Input  io.Reader
	Output io.Writer
}

// Pick shows items and blocks until the user accepts, deletes or cancels.
func (pr Program[T]) Pick(items []T) (Result[T], error) {
	out := pr.Output
	if out == nil {
		out = os.Stderr
	}

	opts := []tea.ProgramOption{tea.WithOutput(out)}
	if pr.Input != nil {
		opts = append(opts, tea.WithInput(pr.Input))
	}

	final, err := tea.NewProgram(New(items, pr.Options), opts...).Run()
	if err != nil {
		return Result[T]{}, fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(Picker[T])
	if !ok {
		return Result[T]{}, fmt.Errorf("run picker: unexpected model %T", final)
	}
	return m.Result(), nil
}
