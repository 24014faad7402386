// Package press replays a key sequence given on the command line through a
// calculator session and prints the resulting display.
//
// CommandBuilder wires the Cobra command, Service runs the keys through an
// accumulator session, and RenderTranscript prints the outcome as plain text
// or YAML.
package press
