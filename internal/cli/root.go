package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/waabox/hacknow/internal/config"
	"github.com/waabox/hacknow/internal/domain"
	"github.com/waabox/hacknow/internal/git"
	"github.com/waabox/hacknow/internal/report"
	"github.com/waabox/hacknow/internal/workspace"
)

// Options holds the process-level collaborators of a run. Zero values fall
// back to the real environment.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// Runner executes git. Defaults to the git executable on PATH.
	Runner git.Runner
	// HomeDir returns the user's home directory. Defaults to os.UserHomeDir.
	HomeDir func() (string, error)
	// ConfigPath is the TOML config file. Defaults to config.DefaultConfigPath.
	ConfigPath string
	Version    string
}

func (o Options) withDefaults() Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.HomeDir == nil {
		o.HomeDir = os.UserHomeDir
	}
	if o.ConfigPath == "" {
		o.ConfigPath = config.DefaultConfigPath()
	}
	if o.Version == "" {
		o.Version = "dev"
	}
	return o
}

type flags struct {
	projectDir  string
	ssh         bool
	verbose     bool
	noSpinner   bool
	showVersion bool
}

// Execute runs hacknow with the given arguments and returns the process
// exit code: 0 on success, 1 on any failure.
func Execute(ctx context.Context, args []string, opts Options) int {
	opts = opts.withDefaults()

	cmd := NewRootCmd(opts)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		report.New(opts.Stdout, opts.Stderr).Failure(err)
		return 1
	}
	return 0
}

// NewRootCmd returns the hacknow cobra command.
func NewRootCmd(opts Options) *cobra.Command {
	opts = opts.withDefaults()
	var f flags

	cmd := &cobra.Command{
		Use:   "hacknow [flags] <owner/name>",
		Short: "A utility for managing workspaces and project directories",
		Long: "Clone a GitHub repository below the project directory, or fetch it if it is already there,\n" +
			"and print its local path. Use it as: cd \"$(hacknow owner/name)\"",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.showVersion {
				fmt.Fprintln(opts.Stdout, "hacknow", opts.Version)
				return nil
			}
			return run(cmd, args, f, opts)
		},
	}
	cmd.SetOut(opts.Stderr)
	cmd.SetErr(opts.Stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	})

	cmd.Flags().StringVarP(&f.projectDir, "project-dir", "d", "", "the directory to clone the project to (default: home directory)")
	cmd.Flags().BoolVar(&f.ssh, "ssh", false, "use SSH for cloning (HTTPS is the default)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "print every git command before running it")
	cmd.Flags().BoolVar(&f.noSpinner, "no-spinner", false, "never draw a progress spinner")
	cmd.Flags().BoolVar(&f.showVersion, "version", false, "print version and exit")

	return cmd
}

func run(cmd *cobra.Command, args []string, f flags, opts Options) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no repo specified", domain.ErrInvalidInput)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: expected one repo, got %d arguments", domain.ErrInvalidInput, len(args))
	}
	repo, err := domain.ParseRepository(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.LoadFrom(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", opts.ConfigPath, err)
	}

	base, err := baseDir(cmd, f, cfg, opts.HomeDir)
	if err != nil {
		return err
	}
	path, err := workspace.Path(base, repo)
	if err != nil {
		return err
	}

	transport := domain.TransportHTTPS
	useSSH := cfg.SSH
	if cmd.Flags().Changed("ssh") {
		useSSH = f.ssh
	}
	if useSSH {
		transport = domain.TransportSSH
	}

	runner := opts.Runner
	if runner == nil {
		var trace io.Writer
		if f.verbose {
			trace = opts.Stderr
		}
		runner = git.NewCLI(trace)
	}

	var reporterOpts []report.Option
	if f.noSpinner || f.verbose {
		reporterOpts = append(reporterOpts, report.WithSpinner(false))
	}
	reporter := report.New(opts.Stdout, opts.Stderr, reporterOpts...)

	synchronizer := workspace.New(runner, workspace.WithProgress(reporter))
	result, err := synchronizer.Sync(cmd.Context(), workspace.Target{
		Repository: repo,
		Path:       path,
		RemoteURL:  git.RemoteURL(cfg.HostOrDefault(), repo, transport),
	})
	if err != nil {
		return err
	}

	reporter.Success(result.Path)
	return nil
}

// baseDir picks the directory repositories are placed under: the
// --project-dir flag, then the configured project directory, then home.
func baseDir(cmd *cobra.Command, f flags, cfg config.Config, homeDir func() (string, error)) (string, error) {
	home, homeErr := homeDir()

	base := cfg.ProjectDirOrDefault(home)
	if cmd.Flags().Changed("project-dir") {
		if f.projectDir == "" {
			return "", fmt.Errorf("%w: --project-dir must not be empty", domain.ErrInvalidInput)
		}
		base = config.ExpandHome(f.projectDir, home)
	}
	if base == "" {
		if homeErr == nil {
			homeErr = errors.New("empty home directory")
		}
		return "", fmt.Errorf("missing home directory: %w", homeErr)
	}
	return base, nil
}
