package workspace

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/waabox/hacknow/internal/domain"
	"github.com/waabox/hacknow/internal/git"
	"github.com/waabox/hacknow/internal/report"
)

// Action records which branch a synchronization took.
type Action int

const (
	ActionCloned Action = iota
	ActionFetched
)

func (a Action) String() string {
	switch a {
	case ActionCloned:
		return "cloned"
	case ActionFetched:
		return "fetched"
	default:
		return "unknown"
	}
}

// Target describes the repository to synchronize and where it lives.
type Target struct {
	Repository domain.Repository
	Path       string
	RemoteURL  string
}

// Result describes a completed synchronization.
type Result struct {
	Path   string
	Action Action
	// Status is the output of git status; empty after a clone.
	Status string
}

// Progress receives human-readable progress from a Synchronizer.
// *report.Reporter satisfies it.
type Progress interface {
	Step(m report.Marker, format string, v ...interface{})
	Warn(format string, v ...interface{})
	Status(text string)
	Wait(ctx context.Context, label string, task func() error) error
}

// Synchronizer clones or fetches repositories through a git.Runner.
// It should be created by calling workspace.New.
type Synchronizer struct {
	runner   git.Runner
	progress Progress
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithProgress returns an option that sets the progress output.
func WithProgress(p Progress) Option {
	return func(s *Synchronizer) {
		s.progress = p
	}
}

// New returns a Synchronizer that runs git through runner.
func New(runner git.Runner, options ...Option) *Synchronizer {
	s := &Synchronizer{runner: runner, progress: discard{}}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Sync makes sure target.Path holds a checkout of target.Repository.
//
// If target.Path is a directory, Sync runs git fetch --all followed by git
// status inside it and never clones. If nothing exists at target.Path, Sync
// clones target.RemoteURL into it. If target.Path is occupied by anything
// other than a directory, Sync fails with domain.ErrPathConflict before
// running git. The first git failure aborts the remaining steps.
func (s *Synchronizer) Sync(ctx context.Context, target Target) (Result, error) {
	exists, err := directoryExists(target.Path)
	if err != nil {
		return Result{}, err
	}
	if exists {
		return s.update(ctx, target)
	}
	return s.clone(ctx, target)
}

func directoryExists(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil:
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("%w: unable to access path \"%s\": %v", domain.ErrPathConflict, path, err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%w: on the desired path \"%s\" is a file, therefore we can not create a directory there", domain.ErrPathConflict, path)
	}
	return true, nil
}

func (s *Synchronizer) update(ctx context.Context, target Target) (Result, error) {
	s.checkOrigin(target)

	s.progress.Step(report.MarkerDownload, "Fetching from origin...")
	err := s.progress.Wait(ctx, "git fetch --all", func() error {
		_, err := s.runner.Run(ctx, target.Path, "fetch", "--all")
		return err
	})
	if err != nil {
		return Result{}, err
	}

	s.progress.Step(report.MarkerDone, "Repository overview:")
	var status string
	err = s.progress.Wait(ctx, "git status", func() error {
		var err error
		status, err = s.runner.Run(ctx, target.Path, "status")
		return err
	})
	if err != nil {
		return Result{}, err
	}
	s.progress.Status(status)

	return Result{Path: target.Path, Action: ActionFetched, Status: status}, nil
}

// checkOrigin warns when an existing checkout's origin names a different
// repository than the one requested. It never fails the run.
func (s *Synchronizer) checkOrigin(target Target) {
	if target.Repository == (domain.Repository{}) {
		return
	}
	found, err := git.DetectRepository(target.Path)
	if err != nil {
		return
	}
	if !strings.EqualFold(found.String(), target.Repository.String()) {
		s.progress.Warn("Origin of %s points to %s, not %s", target.Path, found, target.Repository)
	}
}

func (s *Synchronizer) clone(ctx context.Context, target Target) (Result, error) {
	s.progress.Step(report.MarkerDownload, "Cloning into new directory...")
	err := s.progress.Wait(ctx, "git clone "+target.RemoteURL, func() error {
		_, err := s.runner.Run(ctx, "", "clone", target.RemoteURL, target.Path)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	s.progress.Step(report.MarkerDone, "Repository ready")

	return Result{Path: target.Path, Action: ActionCloned}, nil
}

type discard struct{}

func (discard) Step(report.Marker, string, ...interface{}) {}
func (discard) Warn(string, ...interface{})                {}
func (discard) Status(string)                              {}
func (discard) Wait(_ context.Context, _ string, task func() error) error {
	return task()
}
