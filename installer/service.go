package installer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/viant/devkit/internal/logging"
	"github.com/viant/devkit/internal/shell"
	"go.uber.org/zap"
)

const (
	// BaseDir is the oh-my-zsh installation below the home directory.
	BaseDir = ".oh-my-zsh"

	dirMode  os.FileMode = 0o755
	fileMode os.FileMode = 0o644
)

// Service runs the plugin installation sequence.
type Service struct {
	runner      shell.Runner
	fs          afs.Service
	home        string
	plugins     []*Plugin
	completions []*Completion
	logger      *zap.SugaredLogger
}

// Option modifies a service before it is used.
type Option func(*Service)

// WithHome overrides the home directory returned by os.UserHomeDir.
func WithHome(home string) Option {
	return func(s *Service) {
		s.home = home
	}
}

// WithPlugins replaces the default plugin list; an empty list installs none.
func WithPlugins(plugins ...*Plugin) Option {
	return func(s *Service) {
		s.plugins = append([]*Plugin{}, plugins...)
	}
}

// WithCompletions replaces the default completion list.
func WithCompletions(completions ...*Completion) Option {
	return func(s *Service) {
		s.completions = append([]*Completion{}, completions...)
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithFS sets the storage service used for directories and scripts.
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// New creates an installer that spawns processes through runner.
func New(runner shell.Runner, opts ...Option) (*Service, error) {
	s := &Service{runner: runner}
	for _, opt := range opts {
		opt(s)
	}
	if s.runner == nil {
		s.runner = shell.NewExec()
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.logger == nil {
		s.logger = logging.New("installer")
	}
	if s.plugins == nil {
		s.plugins = DefaultPlugins()
	}
	if s.completions == nil {
		s.completions = DefaultCompletions()
	}
	if s.home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		s.home = home
	}
	return s, nil
}

// PluginDir is the bundled plugin directory, ~/.oh-my-zsh/plugins.
func (s *Service) PluginDir() string {
	return filepath.Join(s.home, BaseDir, "plugins")
}

// CustomPluginDir is where third party plugins are cloned,
// ~/.oh-my-zsh/custom/plugins.
func (s *Service) CustomPluginDir() string {
	return filepath.Join(s.home, BaseDir, "custom", "plugins")
}

// Install ensures the plugin directory, clones every plugin, then generates
// the completion scripts.  Only directory creation failures are returned as
// errors; subprocess failures are recorded in the report.
func (s *Service) Install(ctx context.Context) (*Report, error) {
	report := &Report{}
	s.logger.Info("Starting...")

	pluginDir := s.PluginDir()
	created, err := s.ensureDir(ctx, pluginDir)
	if err != nil {
		report.add(&Step{Kind: StepCreateDir, Name: filepath.Base(pluginDir), Target: pluginDir, Err: err})
		return report, err
	}
	report.Created = created
	report.add(&Step{Kind: StepCreateDir, Name: filepath.Base(pluginDir), Target: pluginDir})

	for _, plugin := range s.plugins {
		s.clone(ctx, plugin, report)
	}

	for _, completion := range s.completions {
		if err := s.generateCompletion(ctx, completion, report); err != nil {
			return report, err
		}
	}

	s.logger.Info("Finished...")
	return report, nil
}

func (s *Service) ensureDir(ctx context.Context, dir string) (bool, error) {
	exists, err := s.fs.Exists(ctx, dir)
	if err != nil {
		return false, fmt.Errorf("check %v: %w", dir, err)
	}
	if exists {
		return false, nil
	}
	s.logger.Infof("Creating %v", dir)
	if err := s.fs.Create(ctx, dir, dirMode|os.ModeDir, true); err != nil {
		return false, fmt.Errorf("create %v: %w", dir, err)
	}
	return true, nil
}

func (s *Service) clone(ctx context.Context, plugin *Plugin, report *Report) {
	dest := plugin.Destination(s.CustomPluginDir())
	s.logger.Infow("Cloning plugin", "plugin", plugin.Name, "url", plugin.URL, "dest", dest)
	out, err := s.runner.Run(ctx, shell.NewCommand("git", "clone", plugin.URL, dest))
	step := report.add(&Step{Kind: StepClone, Name: plugin.Name, Target: dest, Output: string(out), Err: err})
	if step.Failed() {
		s.logger.Warnw("clone failed", "plugin", plugin.Name, "dest", dest, "error", err, "output", step.Output)
	}
}

func (s *Service) generateCompletion(ctx context.Context, completion *Completion, report *Report) error {
	dir := filepath.Join(s.PluginDir(), completion.Name)
	if _, err := s.ensureDir(ctx, dir); err != nil {
		report.add(&Step{Kind: StepCreateDir, Name: completion.Name, Target: dir, Err: err})
		return err
	}
	report.add(&Step{Kind: StepCreateDir, Name: completion.Name, Target: dir})

	script := filepath.Join(dir, completion.ScriptName())
	cmd := shell.NewCommand(completion.Command[0], completion.Command[1:]...)
	cmd.Dir = dir
	cmd.Stderr = &bytes.Buffer{}
	s.logger.Infow("Generating completion", "tool", completion.Name, "command", cmd.String(), "script", script)

	out, err := s.runner.Run(ctx, cmd)
	step := report.add(&Step{Kind: StepCompletion, Name: completion.Name, Target: script, Output: string(out), Err: err})
	if err == nil {
		if err = s.fs.Upload(ctx, script, fileMode, bytes.NewReader(out)); err != nil {
			step.Err = fmt.Errorf("write %v: %w", script, err)
		}
	}
	if step.Failed() {
		if stderr, ok := cmd.Stderr.(*bytes.Buffer); ok && stderr.Len() > 0 {
			step.Output += stderr.String()
		}
		s.logger.Warnw("completion failed", "tool", completion.Name, "error", step.Err, "output", step.Output)
	}
	return nil
}
