package repos

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/viant/devkit/internal/shell"
)

// Select pipes the formatted list to finder and resolves the chosen line.
func Select(ctx context.Context, runner shell.Runner, finder string, repos []Repo) (Repo, error) {
	if len(repos) == 0 {
		return Repo{}, fmt.Errorf("%w: no repositories discovered", ErrNotFound)
	}
	args := strings.Fields(finder)
	if len(args) == 0 {
		return Repo{}, fmt.Errorf("finder was empty")
	}
	cmd := shell.NewCommand(args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(Format(repos))
	// the finder draws its UI on stderr
	cmd.Stderr = os.Stderr
	out, err := runner.Run(ctx, cmd)
	if err != nil {
		return Repo{}, err
	}
	return Lookup(repos, ParseName(string(out)))
}
