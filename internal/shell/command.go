package shell

import (
	"io"
	"strings"
)

// Command describes one child process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Stdin is connected to the child's standard input when set.
	Stdin io.Reader
	// Stderr receives the child's standard error.  When nil it is captured
	// together with standard output.
	Stderr io.Writer
}

// String returns the command line in a form suitable for logs.
func (c *Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// NewCommand creates a command for the given program and arguments.
func NewCommand(name string, args ...string) *Command {
	return &Command{Name: name, Args: args}
}
