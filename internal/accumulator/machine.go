package accumulator

import (
	"errors"
	"strconv"
	"strings"
)

const (
	decimalPointConstant        = "."
	freshDecimalOperandConstant = "0."
	zeroOperandConstant         = "0"
	negativeSignConstant        = "-"
	positiveSignConstant        = "+"
	negativeZeroOperandConstant = negativeSignConstant + zeroOperandConstant
)

// Apply consumes one key event and returns the resulting state together with
// the display string. The input state is never modified.
func Apply(state State, event Event, options Options) (State, string) {
	var nextState State
	switch event.Kind {
	case EventKindDigit:
		nextState = pressDigit(state, event.Digit)
	case EventKindDecimal:
		nextState = pressDecimal(state)
	case EventKindOperator:
		nextState = pressOperator(state, event.Operator)
	case EventKindEquals:
		nextState = pressEquals(state, options)
	case EventKindClear:
		nextState = NewState()
	case EventKindToggleSign:
		nextState = pressToggleSign(state)
	default:
		nextState = state
	}
	return nextState, nextState.Display
}

func pressDigit(state State, digit uint8) State {
	if digit > 9 {
		return state
	}
	digitText := strconv.Itoa(int(digit))

	nextState := state
	switch {
	case state.AwaitingNewEntry || len(state.PendingOperand) == 0:
		nextState.PendingOperand = digitText
		nextState.AwaitingNewEntry = false
	case state.PendingOperand == zeroOperandConstant:
		nextState.PendingOperand = digitText
	case state.PendingOperand == negativeZeroOperandConstant:
		nextState.PendingOperand = negativeSignConstant + digitText
	default:
		nextState.PendingOperand = state.PendingOperand + digitText
	}
	nextState.Display = nextState.PendingOperand
	return nextState
}

func pressDecimal(state State) State {
	nextState := state
	switch {
	case state.AwaitingNewEntry || len(state.PendingOperand) == 0:
		nextState.PendingOperand = freshDecimalOperandConstant
		nextState.AwaitingNewEntry = false
	case !strings.Contains(state.PendingOperand, decimalPointConstant):
		nextState.PendingOperand = state.PendingOperand + decimalPointConstant
	}
	nextState.Display = nextState.PendingOperand
	return nextState
}

func pressOperator(state State, operator Operator) State {
	if !operator.Valid() {
		return state
	}

	nextState := state
	if len(state.PendingOperand) == 0 {
		nextState.Operator = operator
		nextState.Display = Format(state.StoredValue)
		return nextState
	}

	if state.Operator != OperatorNone && !state.AwaitingNewEntry {
		evaluatedState, evaluationError := Evaluate(state)
		if evaluationError != nil {
			if errors.Is(evaluationError, ErrDivideByZero) {
				return evaluatedState
			}
			return state
		}
		nextState = evaluatedState
	} else {
		operand, parseError := parseOperand(state.PendingOperand)
		if parseError != nil {
			return state
		}
		nextState.StoredValue = operand
	}

	nextState.Operator = operator
	nextState.AwaitingNewEntry = true
	nextState.Display = Format(nextState.StoredValue)
	return nextState
}

func pressEquals(state State, options Options) State {
	if state.Operator == OperatorNone || len(state.PendingOperand) == 0 {
		if options.EqualsMode == EqualsModeRepeat && state.Operator == OperatorNone {
			return repeatLastOperation(state)
		}
		return state
	}

	operand, parseError := parseOperand(state.PendingOperand)
	if parseError != nil {
		return state
	}

	evaluatedState, evaluationError := Evaluate(state)
	if evaluationError != nil {
		if errors.Is(evaluationError, ErrDivideByZero) {
			return evaluatedState
		}
		return state
	}

	return completeEquals(evaluatedState, state.Operator, operand)
}

func repeatLastOperation(state State) State {
	if !state.LastOperator.Valid() {
		return state
	}

	baseValue := state.StoredValue
	if len(state.PendingOperand) > 0 {
		parsedBase, parseError := parseOperand(state.PendingOperand)
		if parseError != nil {
			return state
		}
		baseValue = parsedBase
	}

	result, applyError := computeOperation(state.LastOperator, baseValue, state.LastOperand)
	if applyError != nil {
		if errors.Is(applyError, ErrDivideByZero) {
			return errorState()
		}
		return state
	}

	repeatedState := state
	repeatedState.StoredValue = result
	return completeEquals(repeatedState, state.LastOperator, state.LastOperand)
}

func completeEquals(state State, operator Operator, operand float64) State {
	completedState := state
	completedState.Operator = OperatorNone
	completedState.LastOperator = operator
	completedState.LastOperand = operand
	completedState.PendingOperand = Format(state.StoredValue)
	completedState.AwaitingNewEntry = true
	completedState.Display = completedState.PendingOperand
	return completedState
}

func pressToggleSign(state State) State {
	nextState := state
	switch {
	case len(state.PendingOperand) > 0 && state.PendingOperand != zeroOperandConstant:
		switch {
		case strings.HasPrefix(state.PendingOperand, negativeSignConstant):
			nextState.PendingOperand = strings.TrimPrefix(state.PendingOperand, negativeSignConstant)
		case strings.HasPrefix(state.PendingOperand, positiveSignConstant):
			// Format renders an overflowed result as "+Inf".
			nextState.PendingOperand = negativeSignConstant + strings.TrimPrefix(state.PendingOperand, positiveSignConstant)
		default:
			nextState.PendingOperand = negativeSignConstant + state.PendingOperand
		}
		nextState.Display = nextState.PendingOperand
	case len(state.PendingOperand) == 0 && state.Operator == OperatorNone && state.StoredValue != 0:
		nextState.StoredValue = -state.StoredValue
		nextState.Display = Format(nextState.StoredValue)
	}
	return nextState
}
