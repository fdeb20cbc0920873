// Package installer sets up oh-my-zsh plugins for the current user.  It makes
// sure the plugin directory exists, clones every configured plugin repository
// and generates completion scripts for tools that can emit their own.
//
// The sequence is strictly ordered and never aborts on a failed subprocess:
// every clone and completion outcome is recorded in a Report so that callers
// decide whether failures matter.
package installer
