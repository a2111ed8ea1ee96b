// Package commands defines the polyshare CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - solve      Reconstruct the secret f(0) from one or more share documents
//   - shares     Show the decoded points a document would interpolate
//   - convert    Re-encode an integer between bases 2 and 36
//
// # Implementation
//
// The root command builds the dependency graph (document source, solver
// service) before any subcommand runs, so handlers share one app context.
package commands
