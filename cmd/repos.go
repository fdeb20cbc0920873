package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/devkit/repos"
)

// ReposCmd lists git repositories below the code directory, lets the user pick
// one with a fuzzy finder and prints its path, e.g. for `cd $(devkit repos)`.
type ReposCmd struct {
	Dir     string `short:"d" long:"dir" description:"code directory, absolute or relative to home (default ~/code)"`
	Pattern string `long:"pattern" description:"glob matching .git entries relative to the code directory"`
	Finder  string `long:"finder" description:"interactive selector reading candidates on stdin"`
	List    bool   `short:"l" long:"list" description:"print the discovered repositories instead of selecting one"`
}

func (c *ReposCmd) Execute(_ []string) error {
	cfg, err := configSingleton()
	if err != nil {
		return err
	}
	codeDir := cfg.Repos.CodeDir
	if c.Dir != "" {
		codeDir = c.Dir
	}
	pattern := cfg.Repos.Pattern
	if c.Pattern != "" {
		pattern = c.Pattern
	}
	finder := cfg.Repos.Finder
	if c.Finder != "" {
		finder = c.Finder
	}
	home, err := homeDir("")
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	found, err := repos.Discover(resolveHomePath(home, codeDir), pattern)
	if err != nil {
		return err
	}
	if c.List {
		fmt.Fprint(os.Stdout, repos.Format(found))
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	repo, err := repos.Select(ctx, newRunner(), finder, found)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, repo.Path)
	return nil
}
