// Package report writes hacknow's user-facing output. Progress and
// diagnostics go to the diagnostic stream so that the standard output
// carries nothing but the resolved path (or "." on failure), which keeps
// `cd "$(hacknow owner/name)"` working.
package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/waabox/hacknow/internal/tui"
)

// Marker prefixes a progress line.
type Marker string

const (
	MarkerDownload Marker = "⬇️"
	MarkerDone     Marker = "✅"
	MarkerWarning  Marker = "⚠️"
)

// FailureMarker is printed on the standard output when a run fails.
const FailureMarker = "."

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorInfo    = lipgloss.Color("#3B82F6")
)

// Reporter writes progress to a diagnostic stream and results to an
// output stream.
type Reporter struct {
	out         io.Writer
	diag        io.Writer
	interactive bool

	styleInfo    lipgloss.Style
	styleSuccess lipgloss.Style
	styleWarning lipgloss.Style
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithSpinner overrides whether a spinner is drawn while tasks run. By
// default a spinner is drawn only when the diagnostic stream is a terminal.
func WithSpinner(enabled bool) Option {
	return func(r *Reporter) {
		r.interactive = enabled
	}
}

// New returns a Reporter writing results to out and progress to diag.
func New(out, diag io.Writer, options ...Option) *Reporter {
	renderer := lipgloss.NewRenderer(diag)
	r := &Reporter{
		out:          out,
		diag:         diag,
		interactive:  isTerminal(diag),
		styleInfo:    renderer.NewStyle().Foreground(colorInfo),
		styleSuccess: renderer.NewStyle().Foreground(colorSuccess).Bold(true),
		styleWarning: renderer.NewStyle().Foreground(colorWarning).Bold(true),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *Reporter) style(m Marker) lipgloss.Style {
	switch m {
	case MarkerDone:
		return r.styleSuccess
	case MarkerWarning:
		return r.styleWarning
	default:
		return r.styleInfo
	}
}

// Step writes a progress line prefixed with marker. Only the first line of
// the message is styled; any further lines (git output) are written as is.
func (r *Reporter) Step(m Marker, format string, v ...interface{}) {
	head, rest, multiline := strings.Cut(fmt.Sprintf(format, v...), "\n")
	fmt.Fprintf(r.diag, "%s  %s\n", m, r.style(m).Render(head))
	if multiline {
		r.Status(rest)
	}
}

// Warn writes a warning line.
func (r *Reporter) Warn(format string, v ...interface{}) {
	r.Step(MarkerWarning, format, v...)
}

// Status writes free-form text, such as git status output, verbatim.
func (r *Reporter) Status(text string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}
	fmt.Fprintln(r.diag, text)
}

// Wait runs task, drawing a spinner labelled label while it runs when the
// reporter is interactive.
func (r *Reporter) Wait(ctx context.Context, label string, task func() error) error {
	if !r.interactive {
		return task()
	}
	return tui.RunTask(ctx, r.diag, label, r.styleInfo, task)
}

// Success writes path as the sole line of the output stream.
func (r *Reporter) Success(path string) {
	fmt.Fprintln(r.out, path)
}

// Failure writes err to the diagnostic stream and the failure marker to the
// output stream.
func (r *Reporter) Failure(err error) {
	r.Warn("%v", err)
	fmt.Fprintln(r.out, FailureMarker)
}
