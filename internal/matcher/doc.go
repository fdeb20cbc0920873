// Package matcher implements the name selection rule used by CLI filters.
package matcher
