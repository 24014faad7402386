// Package keypad decodes key labels typed at the command line or pressed in
// the terminal into accumulator events. Decoding happens once at the front-end
// boundary so the accumulator only ever sees tagged events.
package keypad
