package keypad

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/temirov/tally/internal/accumulator"
)

const (
	unknownKeyTemplateConstant = "unknown key %q in argument %d at offset %d"
	unknownLabelConstant       = "?"
)

// UnknownKeyError reports a key label that does not map to any calculator key.
type UnknownKeyError struct {
	Key           string
	ArgumentIndex int
	Offset        int
}

// Error describes the unknown key and where it appeared.
func (unknownKeyError UnknownKeyError) Error() string {
	return fmt.Sprintf(unknownKeyTemplateConstant, unknownKeyError.Key, unknownKeyError.ArgumentIndex, unknownKeyError.Offset)
}

var namedKeys = map[string]accumulator.Event{
	"0":     accumulator.DigitEvent(0),
	"1":     accumulator.DigitEvent(1),
	"2":     accumulator.DigitEvent(2),
	"3":     accumulator.DigitEvent(3),
	"4":     accumulator.DigitEvent(4),
	"5":     accumulator.DigitEvent(5),
	"6":     accumulator.DigitEvent(6),
	"7":     accumulator.DigitEvent(7),
	"8":     accumulator.DigitEvent(8),
	"9":     accumulator.DigitEvent(9),
	".":     accumulator.DecimalEvent(),
	"+":     accumulator.OperatorEvent(accumulator.OperatorAdd),
	"-":     accumulator.OperatorEvent(accumulator.OperatorSubtract),
	"−":     accumulator.OperatorEvent(accumulator.OperatorSubtract),
	"*":     accumulator.OperatorEvent(accumulator.OperatorMultiply),
	"x":     accumulator.OperatorEvent(accumulator.OperatorMultiply),
	"×":     accumulator.OperatorEvent(accumulator.OperatorMultiply),
	"/":     accumulator.OperatorEvent(accumulator.OperatorDivide),
	"÷":     accumulator.OperatorEvent(accumulator.OperatorDivide),
	"=":     accumulator.EqualsEvent(),
	"c":     accumulator.ClearEvent(),
	"ac":    accumulator.ClearEvent(),
	"clear": accumulator.ClearEvent(),
	"n":     accumulator.ToggleSignEvent(),
	"~":     accumulator.ToggleSignEvent(),
	"±":     accumulator.ToggleSignEvent(),
	"+/-":   accumulator.ToggleSignEvent(),
	"neg":   accumulator.ToggleSignEvent(),
}

// ParseKey decodes a single key label. Labels are case-insensitive.
func ParseKey(label string) (accumulator.Event, bool) {
	normalizedLabel := strings.ToLower(strings.TrimSpace(label))
	if len(normalizedLabel) == 0 {
		return accumulator.Event{}, false
	}
	event, known := namedKeys[normalizedLabel]
	return event, known
}

// KeyForRune decodes a single typed character.
func KeyForRune(character rune) (accumulator.Event, bool) {
	return ParseKey(string(character))
}

// ParseSequence decodes command-line arguments into events. An argument that
// is itself a key label is one key; any other argument is read one character
// at a time with whitespace ignored.
func ParseSequence(arguments []string) ([]accumulator.Event, error) {
	events := make([]accumulator.Event, 0, len(arguments))
	for argumentIndex, argument := range arguments {
		if len(strings.TrimSpace(argument)) == 0 {
			continue
		}

		if event, known := ParseKey(argument); known {
			events = append(events, event)
			continue
		}

		for offset, character := range argument {
			if unicode.IsSpace(character) {
				continue
			}
			event, known := KeyForRune(character)
			if !known {
				return nil, UnknownKeyError{Key: string(character), ArgumentIndex: argumentIndex, Offset: offset}
			}
			events = append(events, event)
		}
	}
	return events, nil
}

// Labels returns the canonical label for an event, used when echoing keys back.
func Labels(events []accumulator.Event) []string {
	labels := make([]string, 0, len(events))
	for _, event := range events {
		labels = append(labels, Label(event))
	}
	return labels
}

// Label returns the canonical label for one event.
func Label(event accumulator.Event) string {
	switch event.Kind {
	case accumulator.EventKindDigit:
		return fmt.Sprintf("%d", event.Digit)
	case accumulator.EventKindDecimal:
		return "."
	case accumulator.EventKindOperator:
		return event.Operator.String()
	case accumulator.EventKindEquals:
		return "="
	case accumulator.EventKindClear:
		return "C"
	case accumulator.EventKindToggleSign:
		return "±"
	default:
		return unknownLabelConstant
	}
}
