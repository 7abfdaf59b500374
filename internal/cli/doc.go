// Package cli parses the citymap command line into a Config, validates user
// input, and carries process exit codes through ExitError.
package cli
