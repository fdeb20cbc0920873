package installer

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/viant/devkit/internal/matcher"
)

// Plugin is a zsh plugin published as a git repository.
type Plugin struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// Destination returns the clone target below dir.
func (p *Plugin) Destination(dir string) string {
	return filepath.Join(dir, p.Name)
}

func (p *Plugin) String() string {
	return fmt.Sprintf("Plugin(name=%s, url=%s)", p.Name, p.URL)
}

func (p *Plugin) Validate() error {
	if p == nil {
		return errors.New("plugin was nil")
	}
	if p.Name == "" {
		return errors.New("plugin name was empty")
	}
	if p.URL == "" {
		return fmt.Errorf("plugin %q url was empty", p.Name)
	}
	return nil
}

// Completion is a tool that prints its own zsh completion script.
type Completion struct {
	// Name is also the plugin directory the script is written to.
	Name    string   `yaml:"name" json:"name"`
	Command []string `yaml:"command" json:"command"`
	// File is the script file name, "_<name>" when empty.
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// ScriptName returns the completion file name.
func (c *Completion) ScriptName() string {
	if c.File != "" {
		return c.File
	}
	return "_" + c.Name
}

func (c *Completion) Validate() error {
	if c == nil {
		return errors.New("completion was nil")
	}
	if c.Name == "" {
		return errors.New("completion name was empty")
	}
	if len(c.Command) == 0 {
		return fmt.Errorf("completion %q command was empty", c.Name)
	}
	return nil
}

// DefaultPlugins returns the plugins installed when nothing is configured.
func DefaultPlugins() []*Plugin {
	return []*Plugin{
		{Name: "zsh-completions", URL: "https://github.com/zsh-users/zsh-completions"},
		{Name: "zsh-autosuggestions", URL: "https://github.com/zsh-users/zsh-autosuggestions"},
	}
}

// DefaultCompletions returns the completion scripts generated when nothing is
// configured.
func DefaultCompletions() []*Completion {
	return []*Completion{
		{Name: "poetry", Command: []string{"poetry", "completions", "zsh"}, File: "_poetry"},
	}
}

// FilterPlugins keeps the plugins whose name matches any pattern; see
// matcher.Match for the pattern rules.
func FilterPlugins(plugins []*Plugin, patterns []string) []*Plugin {
	var result []*Plugin
	for _, plugin := range plugins {
		if matcher.MatchAny(patterns, plugin.Name) {
			result = append(result, plugin)
		}
	}
	return result
}
