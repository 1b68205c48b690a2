package tui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TaskDoneMsg is sent when the task behind a SpinnerModel has returned.
// It is exported so that tests can inject it directly into SpinnerModel.Update.
type TaskDoneMsg struct {
	Err error
}

// SpinnerModel shows a spinner next to a label until its task returns.
type SpinnerModel struct {
	spinner spinner.Model
	label   string
	task    func() error
	done    bool
	err     error
}

// NewSpinnerModel creates a spinner model that runs task when started.
func NewSpinnerModel(label string, style lipgloss.Style, task func() error) SpinnerModel {
	return SpinnerModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(style)),
		label:   label,
		task:    task,
	}
}

// Init starts the spinner animation and the task.
func (m SpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runTask)
}

func (m SpinnerModel) runTask() tea.Msg {
	return TaskDoneMsg{Err: m.task()}
}

// Update handles spinner ticks and task completion.
func (m SpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TaskDoneMsg:
		m.done = true
		m.err = msg.Err
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the spinner line, or nothing once the task has returned so
// that the line is cleared from the terminal.
func (m SpinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.label
}

// Done reports whether the task has returned.
func (m SpinnerModel) Done() bool {
	return m.done
}

// Err returns the task's error once Done is true.
func (m SpinnerModel) Err() error {
	return m.err
}

// RunTask runs task while drawing a spinner on out. It returns the task's
// error, or the context error if ctx is cancelled first.
func RunTask(ctx context.Context, out io.Writer, label string, style lipgloss.Style, task func() error) error {
	p := tea.NewProgram(
		NewSpinnerModel(label, style, task),
		tea.WithOutput(out),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if errors.Is(err, tea.ErrInterrupted) {
			return context.Canceled
		}
		return err
	}
	m, ok := final.(SpinnerModel)
	if !ok || !m.Done() {
		return errors.New("spinner exited before the task finished")
	}
	return m.Err()
}
