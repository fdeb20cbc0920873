package cmd

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/viant/devkit/config"
	"github.com/viant/devkit/internal/logging"
	"github.com/viant/devkit/internal/shell"
)

var (
	cfgPath string
	debug   bool

	cfgOnce sync.Once
	cfgInst *config.Config
	cfgErr  error

	// newRunner creates the subprocess runner used by install-plugins and repos.
	newRunner = shell.NewExec
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// configuration can be loaded lazily by whichever sub-command is executed.
func setConfigPath(p string) {
	cfgPath = p
	cfgOnce = sync.Once{}
}

func setDebug(enable bool) {
	debug = enable
	logging.SetDebug(enable)
}

// configSingleton loads the configuration only once per CLI invocation and
// applies its log level.
func configSingleton() (*config.Config, error) {
	cfgOnce.Do(func() {
		cfgInst, cfgErr = nil, nil
		if cfgPath == "" {
			cfgInst = config.New()
		} else {
			cfgInst, cfgErr = config.Load(context.Background(), cfgPath)
			if cfgErr != nil {
				return
			}
			if os.Getenv("DEVKIT_DEBUG_CONFIG") == "1" {
				_ = json.NewEncoder(os.Stderr).Encode(cfgInst)
			}
		}
		if !debug {
			cfgErr = logging.SetLevel(cfgInst.Log.Level)
		}
	})
	return cfgInst, cfgErr
}

// homeDir resolves the user's home directory.
func homeDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return os.UserHomeDir()
}

// resolveHomePath returns p unchanged when absolute, otherwise relative to home.
func resolveHomePath(home, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(home, p)
}
