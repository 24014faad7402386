// Package tui renders an interactive calculator keypad in the terminal using
// bubbletea. Key presses are decoded through the keypad package and applied
// to an accumulator session; the model only renders what the session reports.
package tui
