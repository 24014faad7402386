package accumulator

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	divideByZeroMessageConstant                = "divide by zero"
	invalidOperandMessageConstant              = "invalid operand"
	invalidOperandTemplateConstant             = "%w: %q"
	operatorNotPendingMessageConstant          = "no operator pending"
	operandBitSizeConstant                     = 64
	unsupportedPendingOperatorTemplateConstant = "%w: %q"
)

// ErrDivideByZero indicates a division with a zero divisor.
var ErrDivideByZero = errors.New(divideByZeroMessageConstant)

// ErrInvalidOperand indicates the pending operand could not be parsed as a number.
var ErrInvalidOperand = errors.New(invalidOperandMessageConstant)

// ErrOperatorNotPending indicates evaluate was invoked without a pending operator.
var ErrOperatorNotPending = errors.New(operatorNotPendingMessageConstant)

// Evaluate applies the pending operator to the stored value and the pending
// operand. On success the result becomes StoredValue and PendingOperand is
// cleared. A zero divisor yields ErrDivideByZero with the reset error state.
// Any other failure returns the input state unchanged.
func Evaluate(state State) (State, error) {
	if !state.Operator.Valid() {
		return state, ErrOperatorNotPending
	}

	operand, parseError := parseOperand(state.PendingOperand)
	if parseError != nil {
		return state, parseError
	}

	result, applyError := computeOperation(state.Operator, state.StoredValue, operand)
	if applyError != nil {
		if errors.Is(applyError, ErrDivideByZero) {
			return errorState(), applyError
		}
		return state, applyError
	}

	evaluatedState := state
	evaluatedState.StoredValue = result
	evaluatedState.PendingOperand = ""
	evaluatedState.Display = Format(result)
	return evaluatedState, nil
}

func computeOperation(operator Operator, leftOperand float64, rightOperand float64) (float64, error) {
	switch operator {
	case OperatorAdd:
		return leftOperand + rightOperand, nil
	case OperatorSubtract:
		return leftOperand - rightOperand, nil
	case OperatorMultiply:
		return leftOperand * rightOperand, nil
	case OperatorDivide:
		if rightOperand == 0 {
			return 0, ErrDivideByZero
		}
		return leftOperand / rightOperand, nil
	default:
		return 0, fmt.Errorf(unsupportedPendingOperatorTemplateConstant, ErrOperatorNotPending, operator)
	}
}

func parseOperand(operandText string) (float64, error) {
	operand, parseError := strconv.ParseFloat(operandText, operandBitSizeConstant)
	if parseError != nil {
		return 0, fmt.Errorf(invalidOperandTemplateConstant, ErrInvalidOperand, operandText)
	}
	return operand, nil
}
