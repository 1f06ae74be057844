// Package commands defines the quickmed CLI.
//
// Commands
//
//   - calc          Run a calculator and record the result
//   - note          Record a free-text note
//   - calculators   List calculators, optionally filtered by name
//
// # Implementation
//
// The root command loads the layered configuration, applies the store and
// log flags on top and builds the service before any subcommand runs. The
// record store is opened only by commands that write records.
package commands
