// Package cli implements the miaudota command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/miaudota/internal/adapter/shelterapi"
	"github.com/heartmarshall/miaudota/internal/app"
	"github.com/heartmarshall/miaudota/internal/config"
	"github.com/heartmarshall/miaudota/internal/domain"
	"github.com/heartmarshall/miaudota/internal/session"
)

// env is what every subcommand works with, built once the flags are parsed.
type env struct {
	cfg    *config.Config
	log    *slog.Logger
	store  *session.Store
	client *shelterapi.Client
}

type rootOptions struct {
	configPath string
	verbose    bool
}

// NewRootCommand builds the miaudota command tree.
func NewRootCommand() *cobra.Command {
	var (
		opts rootOptions
		e    env
	)

	root := &cobra.Command{
		Use:           "miaudota",
		Short:         "Browse and filter the shelter's pets and adoption requests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.init(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newPetsCmd(&e),
		newBrowseCmd(&e),
		newAdoptionsCmd(&e),
		newAdoptionCmd(&e),
		newAdoptCmd(&e),
		newPetCmd(&e),
		newRegisterCmd(&e),
		newLoginCmd(&e),
		newLogoutCmd(&e),
		newWhoamiCmd(&e),
		newVersionCmd(),
	)
	return root
}

func (e *env) init(cmd *cobra.Command, opts rootOptions) error {
	load := config.Load
	if opts.configPath != "" {
		load = func() (*config.Config, error) { return config.LoadFrom(opts.configPath) }
	}
	cfg, err := load()
	if err != nil {
		return err
	}

	// The CLI talks to people: terse text logs, warnings only unless asked.
	logCfg := config.LogConfig{Level: "warn", Format: "text"}
	if opts.verbose {
		logCfg.Level = "debug"
	}
	logger := app.NewLoggerTo(cmd.ErrOrStderr(), logCfg)

	sessionPath, err := cfg.Session.ResolvePath()
	if err != nil {
		return err
	}

	e.cfg = cfg
	e.log = logger
	e.store = session.NewStore(sessionPath, logger)
	e.client = shelterapi.NewClient(cfg.Upstream, e.store, logger)
	return nil
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	root := NewRootCommand()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "error:", err)
		if hint := hintFor(err); hint != "" {
			fmt.Fprintln(root.ErrOrStderr(), hint)
		}
		return 1
	}
	return 0
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, session.ErrNoSession), errors.Is(err, domain.ErrUnauthorized):
		return "hint: run `miaudota login --email <email>` first"
	case errors.Is(err, domain.ErrForbidden):
		return "hint: this action needs an administrator account"
	case errors.Is(err, domain.ErrUpstream):
		return "hint: check that the shelter API is reachable (upstream.base_url)"
	}
	return ""
}
