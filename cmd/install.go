package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/devkit/installer"
)

// InstallCmd clones the configured oh-my-zsh plugins and generates completion
// scripts.  Failed clones are reported but do not fail the command unless
// --strict is given.
type InstallCmd struct {
	Home   string   `long:"home" description:"install below this directory instead of the user's home"`
	Strict bool     `long:"strict" description:"exit with an error when any clone or completion step failed"`
	Only   []string `long:"only" description:"install only plugins whose name starts with this prefix (repeatable, * for all)"`
}

func (c *InstallCmd) Execute(_ []string) error {
	cfg, err := configSingleton()
	if err != nil {
		return err
	}
	home := c.Home
	if home == "" {
		home = cfg.Installer.Home
	}
	if home, err = homeDir(home); err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	srv, err := installer.New(newRunner(),
		installer.WithHome(home),
		installer.WithPlugins(installer.FilterPlugins(cfg.Installer.Plugins, c.Only)...),
		installer.WithCompletions(cfg.Installer.Completions...),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	report, err := srv.Install(ctx)
	if report != nil {
		fmt.Fprint(os.Stdout, report.Summary())
	}
	if err != nil {
		return err
	}
	if failures := report.Failures(); c.Strict && len(failures) > 0 {
		return fmt.Errorf("%d install step(s) failed", len(failures))
	}
	return nil
}
