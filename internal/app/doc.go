// Package app wires stores and services into the dependency graph used by
// the CLI.
package app
