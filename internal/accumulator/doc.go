// Package accumulator implements the arithmetic accumulator behind the tally
// calculator.
//
// Apply is a pure transition function over State and Event values: each key
// press produces a new State together with the display string a front end
// should render. Session wraps the function with an owned state, a session
// identifier, and structured logging for interactive use.
package accumulator
