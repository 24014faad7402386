// Package cli constructs the tally command-line interface, wiring the Cobra
// command hierarchy, configuration loader, and structured logging primitives
// around the calculator front ends.
package cli
