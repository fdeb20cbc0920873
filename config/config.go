package config

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/devkit/installer"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPort is the file server port used when none is configured.
	DefaultPort = 8080
	// DefaultCodeDir is the home relative directory scanned for repositories.
	DefaultCodeDir = "code"
	// DefaultRepoPattern matches working trees two levels below the code dir.
	DefaultRepoPattern = "*/*/.git"
	// DefaultFinder is the interactive selector used by the repos command.
	DefaultFinder = "fzf"
)

type Log struct {
	Level string `yaml:"level,omitempty" json:"level,omitempty"`
}

type Server struct {
	Port           int    `yaml:"port,omitempty" json:"port,omitempty"`
	Address        string `yaml:"address,omitempty" json:"address,omitempty"`
	Root           string `yaml:"root,omitempty" json:"root,omitempty"`
	MetricsAddress string `yaml:"metricsAddress,omitempty" json:"metricsAddress,omitempty"`
}

type Installer struct {
	// Home overrides the user's home directory.
	Home        string                  `yaml:"home,omitempty" json:"home,omitempty"`
	Plugins     []*installer.Plugin     `yaml:"plugins,omitempty" json:"plugins,omitempty"`
	Completions []*installer.Completion `yaml:"completions,omitempty" json:"completions,omitempty"`
}

type Repos struct {
	// CodeDir is absolute or relative to the home directory.
	CodeDir string `yaml:"codeDir,omitempty" json:"codeDir,omitempty"`
	Pattern string `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Finder  string `yaml:"finder,omitempty" json:"finder,omitempty"`
}

type Config struct {
	Log       *Log       `yaml:"log,omitempty" json:"log,omitempty"`
	Server    *Server    `yaml:"server,omitempty" json:"server,omitempty"`
	Installer *Installer `yaml:"installer,omitempty" json:"installer,omitempty"`
	Repos     *Repos     `yaml:"repos,omitempty" json:"repos,omitempty"`
}

// New returns a configuration with every default applied.
func New() *Config {
	cfg := &Config{}
	cfg.Init()
	return cfg
}

// Load reads the configuration from a local path or any URL supported by afs
// and applies defaults for the sections left out.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	cfg.Init()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", URL, err)
	}
	return &cfg, nil
}

// Init fills in defaults.
func (c *Config) Init() {
	if c.Log == nil {
		c.Log = &Log{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Root == "" {
		c.Server.Root = "."
	}
	if c.Installer == nil {
		c.Installer = &Installer{}
	}
	if len(c.Installer.Plugins) == 0 {
		c.Installer.Plugins = installer.DefaultPlugins()
	}
	if len(c.Installer.Completions) == 0 {
		c.Installer.Completions = installer.DefaultCompletions()
	}
	if c.Repos == nil {
		c.Repos = &Repos{}
	}
	if c.Repos.CodeDir == "" {
		c.Repos.CodeDir = DefaultCodeDir
	}
	if c.Repos.Pattern == "" {
		c.Repos.Pattern = DefaultRepoPattern
	}
	if c.Repos.Finder == "" {
		c.Repos.Finder = DefaultFinder
	}
}

func (c *Config) Validate() error {
	if c.Server != nil && (c.Server.Port < 0 || c.Server.Port > 65535) {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Installer != nil {
		for i, plugin := range c.Installer.Plugins {
			if err := plugin.Validate(); err != nil {
				return fmt.Errorf("installer plugin[%d]: %w", i, err)
			}
		}
		for i, completion := range c.Installer.Completions {
			if err := completion.Validate(); err != nil {
				return fmt.Errorf("installer completion[%d]: %w", i, err)
			}
		}
	}
	return nil
}
