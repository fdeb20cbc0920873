package shell

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Runner executes a command and returns what it wrote to standard output.
type Runner interface {
	Run(ctx context.Context, cmd *Command) ([]byte, error)
}

// Exec is a Runner backed by os/exec.
type Exec struct{}

// Run starts the process and waits for it.  On failure the returned error
// carries the exit status and the combined output is still returned so that
// callers can report it.
func (Exec) Run(ctx context.Context, cmd *Command) ([]byte, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	if cmd.Stdin != nil {
		c.Stdin = cmd.Stdin
	}
	var stdout bytes.Buffer
	c.Stdout = &stdout
	if cmd.Stderr != nil {
		c.Stderr = cmd.Stderr
	} else {
		c.Stderr = &stdout
	}
	if err := c.Run(); err != nil {
		return stdout.Bytes(), fmt.Errorf("run %q: %w", cmd.String(), err)
	}
	return stdout.Bytes(), nil
}

// NewExec returns the default os/exec Runner.
func NewExec() Runner { return Exec{} }
