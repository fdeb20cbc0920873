// Package logging initialises the process-wide zap logger and hands out named
// sugared loggers to the rest of the module.
package logging
