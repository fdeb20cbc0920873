package repos

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNotFound is returned when a selection matches no discovered repository.
var ErrNotFound = errors.New("could not find repo")

// Repo is a git working tree.
type Repo struct {
	Name string
	// Path is the working tree path with a trailing separator.
	Path string
}

// Discover returns every repository whose ".git" entry matches pattern
// relative to codeDir, ordered by path.
func Discover(codeDir, pattern string) ([]Repo, error) {
	matches, err := doublestar.Glob(os.DirFS(codeDir), filepath.ToSlash(pattern))
	if err != nil {
		return nil, fmt.Errorf("search %v for %v: %w", codeDir, pattern, err)
	}
	sort.Strings(matches)
	var result []Repo
	for _, match := range matches {
		repoPath := strings.TrimSuffix(filepath.Join(codeDir, filepath.FromSlash(match)), ".git")
		name := filepath.Base(repoPath)
		if name == "" || name == "." || name == string(filepath.Separator) {
			continue
		}
		result = append(result, Repo{Name: name, Path: repoPath})
	}
	return result, nil
}

// Format renders one aligned "name path" line per repository.  Names are
// padded to the longest name plus five spaces.
func Format(repos []Repo) string {
	longest := 0
	for _, repo := range repos {
		if len(repo.Name) > longest {
			longest = len(repo.Name)
		}
	}
	var b strings.Builder
	for _, repo := range repos {
		b.WriteString(repo.Name)
		b.WriteString(strings.Repeat(" ", longest+5-len(repo.Name)))
		b.WriteString(repo.Path)
		b.WriteString("\n")
	}
	return b.String()
}

// ParseName extracts the repository name from a line produced by Format.
func ParseName(line string) string {
	return strings.TrimSpace(strings.SplitN(strings.TrimSpace(line), "    ", 2)[0])
}

// Lookup returns the first repository called name.
func Lookup(repos []Repo, name string) (Repo, error) {
	for _, repo := range repos {
		if repo.Name == name {
			return repo, nil
		}
	}
	return Repo{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}
