package accumulator

import (
	"fmt"
	"strings"
)

const (
	operatorNoneStringConstant            = ""
	operatorAddStringConstant             = "+"
	operatorSubtractStringConstant        = "-"
	operatorMultiplyStringConstant        = "*"
	operatorDivideStringConstant          = "/"
	unsupportedOperatorTemplateConstant   = "unsupported operator: %q"
	equalsModeNoopStringConstant          = "noop"
	equalsModeRepeatStringConstant        = "repeat"
	unsupportedEqualsModeTemplateConstant = "unsupported equals mode: %q"
)

// Operator enumerates the binary arithmetic functions.
type Operator string

// Supported operators.
const (
	OperatorNone     Operator = Operator(operatorNoneStringConstant)
	OperatorAdd      Operator = Operator(operatorAddStringConstant)
	OperatorSubtract Operator = Operator(operatorSubtractStringConstant)
	OperatorMultiply Operator = Operator(operatorMultiplyStringConstant)
	OperatorDivide   Operator = Operator(operatorDivideStringConstant)
)

var supportedOperators = map[Operator]struct{}{
	OperatorAdd:      {},
	OperatorSubtract: {},
	OperatorMultiply: {},
	OperatorDivide:   {},
}

// ParseOperator converts an operator symbol into an Operator.
func ParseOperator(symbol string) (Operator, error) {
	candidate := Operator(strings.TrimSpace(symbol))
	if _, supported := supportedOperators[candidate]; !supported {
		return OperatorNone, fmt.Errorf(unsupportedOperatorTemplateConstant, symbol)
	}
	return candidate, nil
}

// Valid reports whether the operator is one of the four binary functions.
func (operator Operator) Valid() bool {
	_, supported := supportedOperators[operator]
	return supported
}

// String returns the operator symbol.
func (operator Operator) String() string {
	return string(operator)
}

// EqualsMode controls what pressing equals does when no operation is pending.
type EqualsMode string

// Supported equals modes.
const (
	// EqualsModeNoop leaves the display unchanged.
	EqualsModeNoop EqualsMode = EqualsMode(equalsModeNoopStringConstant)
	// EqualsModeRepeat re-applies the last completed operation to the displayed value.
	EqualsModeRepeat EqualsMode = EqualsMode(equalsModeRepeatStringConstant)
)

// EqualsModeChoices lists the accepted equals mode values.
func EqualsModeChoices() []string {
	return []string{equalsModeNoopStringConstant, equalsModeRepeatStringConstant}
}

// ParseEqualsMode converts a textual value into an EqualsMode. Empty values select EqualsModeNoop.
func ParseEqualsMode(value string) (EqualsMode, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "", equalsModeNoopStringConstant:
		return EqualsModeNoop, nil
	case equalsModeRepeatStringConstant:
		return EqualsModeRepeat, nil
	default:
		return EqualsModeNoop, fmt.Errorf(unsupportedEqualsModeTemplateConstant, value)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so configuration values decode directly.
func (mode *EqualsMode) UnmarshalText(text []byte) error {
	parsedMode, parseError := ParseEqualsMode(string(text))
	if parseError != nil {
		return parseError
	}
	*mode = parsedMode
	return nil
}

// Options tune accumulator behaviour that the calculator leaves open.
type Options struct {
	EqualsMode EqualsMode
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{EqualsMode: EqualsModeNoop}
}
