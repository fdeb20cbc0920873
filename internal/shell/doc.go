// Package shell runs external programs on behalf of the CLI.  Callers describe
// a process with Command and hand it to a Runner, which lets tests substitute
// a recording implementation for the os/exec backed one.
package shell
