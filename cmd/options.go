package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"devkit configuration YAML/JSON path or URL"`
	Debug  bool   `long:"debug" description:"enable debug logging"`

	Serve          *ServeCmd   `command:"serve"           description:"Serve the current directory over HTTP"`
	InstallPlugins *InstallCmd `command:"install-plugins" description:"Install oh-my-zsh plugins and completion scripts"`
	Repos          *ReposCmd   `command:"repos"           description:"Pick a git repository below the code directory and print its path"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "serve":
		o.Serve = &ServeCmd{}
	case "install-plugins":
		o.InstallPlugins = &InstallCmd{}
	case "repos":
		o.Repos = &ReposCmd{}
	}
}
