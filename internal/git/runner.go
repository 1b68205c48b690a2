package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/cli/safeexec"

	"github.com/waabox/hacknow/internal/domain"
)

// Runner executes git subcommands. Implementations return the command's
// standard output; failures are reported as *CommandError.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// CommandError describes a git invocation that could not be launched or
// exited unsuccessfully. It matches domain.ErrExternalTool under errors.Is.
type CommandError struct {
	Args   []string
	Dir    string
	Output string
	Err    error
	// Launch is set when the git executable could not be started at all.
	Launch bool
}

func (e *CommandError) Error() string {
	if e.Launch {
		return fmt.Sprintf("launching git failed: %v", e.Err)
	}
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("%s: %v", ToString(e.Args), e.Err)
	}
	return fmt.Sprintf("%s: %v\n%s", ToString(e.Args), e.Err, out)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func (e *CommandError) Is(target error) bool {
	return target == domain.ErrExternalTool
}

// ToString renders a git invocation the way a user would type it.
func ToString(args []string) string {
	return strings.Join(append([]string{"git"}, args...), " ")
}

// CLI runs the git executable found on PATH.
type CLI struct {
	trace io.Writer
}

// NewCLI returns a Runner backed by the git executable. When trace is
// non-nil every invocation is echoed to it before running.
func NewCLI(trace io.Writer) *CLI {
	return &CLI{trace: trace}
}

// Run executes git with args in dir (the current directory when empty) and
// waits for it to finish. The diagnostic output attached to a failure is
// git's stderr, or its stdout when stderr is empty.
func (c *CLI) Run(ctx context.Context, dir string, args ...string) (string, error) {
	bin, err := safeexec.LookPath("git")
	if err != nil {
		return "", &CommandError{Args: args, Dir: dir, Err: err, Launch: true}
	}

	if c.trace != nil {
		if dir != "" {
			fmt.Fprintf(c.trace, "[DEBUG] %s (in %s)\n", ToString(args), dir)
		} else {
			fmt.Fprintf(c.trace, "[DEBUG] %s\n", ToString(args))
		}
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		output := stderr.String()
		if strings.TrimSpace(output) == "" {
			output = stdout.String()
		}
		var exitErr *exec.ExitError
		return stdout.String(), &CommandError{
			Args:   args,
			Dir:    dir,
			Output: output,
			Err:    err,
			Launch: !errors.As(err, &exitErr),
		}
	}
	return stdout.String(), nil
}
