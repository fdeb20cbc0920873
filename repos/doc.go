// Package repos discovers git working trees below a code directory and lets
// the user pick one through an external fuzzy finder.
package repos
