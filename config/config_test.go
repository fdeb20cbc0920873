package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()
	assert.EqualValues(t, DefaultPort, cfg.Server.Port)
	assert.EqualValues(t, ".", cfg.Server.Root)
	assert.EqualValues(t, "info", cfg.Log.Level)
	assert.EqualValues(t, DefaultCodeDir, cfg.Repos.CodeDir)
	assert.EqualValues(t, DefaultRepoPattern, cfg.Repos.Pattern)
	assert.EqualValues(t, DefaultFinder, cfg.Repos.Finder)
	if assert.Len(t, cfg.Installer.Plugins, 2) {
		assert.EqualValues(t, "zsh-completions", cfg.Installer.Plugins[0].Name)
		assert.EqualValues(t, "zsh-autosuggestions", cfg.Installer.Plugins[1].Name)
	}
	if assert.Len(t, cfg.Installer.Completions, 1) {
		assert.EqualValues(t, "poetry", cfg.Installer.Completions[0].Name)
	}
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	var testCases = []struct {
		description string
		content     string
		port        int
		plugins     []string
		level       string
		hasError    bool
	}{
		{
			description: "empty file keeps defaults",
			content:     "",
			port:        DefaultPort,
			plugins:     []string{"zsh-completions", "zsh-autosuggestions"},
			level:       "info",
		},
		{
			description: "overrides",
			content: `log:
  level: debug
server:
  port: 9090
installer:
  plugins:
    - name: zsh-syntax-highlighting
      url: https://github.com/zsh-users/zsh-syntax-highlighting
`,
			port:    9090,
			plugins: []string{"zsh-syntax-highlighting"},
			level:   "debug",
		},
		{
			description: "invalid yaml",
			content:     "server: [",
			hasError:    true,
		},
		{
			description: "port out of range",
			content:     "server:\n  port: 70000\n",
			hasError:    true,
		},
		{
			description: "plugin without url",
			content:     "installer:\n  plugins:\n    - name: broken\n",
			hasError:    true,
		},
	}

	for _, testCase := range testCases {
		location := filepath.Join(t.TempDir(), "devkit.yaml")
		require.NoError(t, os.WriteFile(location, []byte(testCase.content), 0o644))

		cfg, err := Load(context.Background(), location)
		if testCase.hasError {
			assert.Error(t, err, testCase.description)
			continue
		}
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.port, cfg.Server.Port, testCase.description)
		assert.EqualValues(t, testCase.level, cfg.Log.Level, testCase.description)
		var names []string
		for _, plugin := range cfg.Installer.Plugins {
			names = append(names, plugin.Name)
		}
		assert.EqualValues(t, testCase.plugins, names, testCase.description)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
