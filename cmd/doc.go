// Package cmd implements all sub-commands that make up the devkit
// command-line interface.  Each file in this directory registers a single
// sub-command (serve, install-plugins, repos).  The plumbing that is shared
// between commands such as configuration loading lives in shared.go.
package cmd
