package accumulator

import "fmt"

const (
	eventKindDigitStringConstant       = "digit"
	eventKindDecimalStringConstant     = "decimal"
	eventKindOperatorStringConstant    = "operator"
	eventKindEqualsStringConstant      = "equals"
	eventKindClearStringConstant       = "clear"
	eventKindToggleSignStringConstant  = "toggle_sign"
	eventDigitLabelTemplateConstant    = "%s(%d)"
	eventOperatorLabelTemplateConstant = "%s(%s)"
)

// EventKind tags the key events the accumulator understands.
type EventKind string

// Supported event kinds.
const (
	EventKindDigit      EventKind = EventKind(eventKindDigitStringConstant)
	EventKindDecimal    EventKind = EventKind(eventKindDecimalStringConstant)
	EventKindOperator   EventKind = EventKind(eventKindOperatorStringConstant)
	EventKindEquals     EventKind = EventKind(eventKindEqualsStringConstant)
	EventKindClear      EventKind = EventKind(eventKindClearStringConstant)
	EventKindToggleSign EventKind = EventKind(eventKindToggleSignStringConstant)
)

// Event is a single decoded key press. Digit is meaningful only for
// EventKindDigit and Operator only for EventKindOperator.
type Event struct {
	Kind     EventKind
	Digit    uint8
	Operator Operator
}

// DigitEvent builds a digit key press. The value is kept as given; Apply
// ignores digits above nine.
func DigitEvent(digit uint8) Event {
	return Event{Kind: EventKindDigit, Digit: digit}
}

// DecimalEvent builds a decimal point key press.
func DecimalEvent() Event {
	return Event{Kind: EventKindDecimal}
}

// OperatorEvent builds an operator key press.
func OperatorEvent(operator Operator) Event {
	return Event{Kind: EventKindOperator, Operator: operator}
}

// EqualsEvent builds an equals key press.
func EqualsEvent() Event {
	return Event{Kind: EventKindEquals}
}

// ClearEvent builds a clear key press.
func ClearEvent() Event {
	return Event{Kind: EventKindClear}
}

// ToggleSignEvent builds a sign toggle key press.
func ToggleSignEvent() Event {
	return Event{Kind: EventKindToggleSign}
}

// String renders the event for logs and transcripts.
func (event Event) String() string {
	switch event.Kind {
	case EventKindDigit:
		return fmt.Sprintf(eventDigitLabelTemplateConstant, event.Kind, event.Digit)
	case EventKindOperator:
		return fmt.Sprintf(eventOperatorLabelTemplateConstant, event.Kind, event.Operator)
	default:
		return string(event.Kind)
	}
}
