package workspace_test

import (
	"context"
	"strings"

	"github.com/waabox/hacknow/internal/git"
)

type call struct {
	dir  string
	args []string
}

// fakeRunner records git invocations instead of running them.
type fakeRunner struct {
	calls   []call
	outputs map[string]string
	fail    map[string]error
}

func (f *fakeRunner) Run(_ context.Context, dir string, args ...string) (string, error) {
	f.calls = append(f.calls, call{dir: dir, args: args})
	key := strings.Join(args, " ")
	if err, ok := f.fail[args[0]]; ok {
		return "", &git.CommandError{Args: args, Dir: dir, Output: "fatal: " + args[0] + " failed", Err: err}
	}
	return f.outputs[key], nil
}

func (f *fakeRunner) subcommands() []string {
	var out []string
	for _, c := range f.calls {
		out = append(out, c.args[0])
	}
	return out
}
