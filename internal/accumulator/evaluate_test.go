package accumulator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/tally/internal/accumulator"
)

func TestEvaluate(testInstance *testing.T) {
	testCases := []struct {
		name                string
		state               accumulator.State
		expectedError       error
		expectedStoredValue float64
		expectedDisplay     string
	}{
		{
			name:                "addition",
			state:               accumulator.State{PendingOperand: "3", StoredValue: 5, Operator: accumulator.OperatorAdd},
			expectedStoredValue: 8,
			expectedDisplay:     "8",
		},
		{
			name:                "multiplication_with_fraction",
			state:               accumulator.State{PendingOperand: "0.5", StoredValue: 9, Operator: accumulator.OperatorMultiply},
			expectedStoredValue: 4.5,
			expectedDisplay:     "4.5",
		},
		{
			name:                "negative_operand",
			state:               accumulator.State{PendingOperand: "-2", StoredValue: 1, Operator: accumulator.OperatorSubtract},
			expectedStoredValue: 3,
			expectedDisplay:     "3",
		},
		{
			name:            "divide_by_zero",
			state:           accumulator.State{PendingOperand: "0.", StoredValue: 1, Operator: accumulator.OperatorDivide},
			expectedError:   accumulator.ErrDivideByZero,
			expectedDisplay: accumulator.ErrorDisplay,
		},
		{
			name:            "missing_operator",
			state:           accumulator.State{PendingOperand: "3", StoredValue: 1, Display: "3"},
			expectedError:   accumulator.ErrOperatorNotPending,
			expectedDisplay: "3",
		},
		{
			name:                "invalid_operand",
			state:               accumulator.State{PendingOperand: "-", StoredValue: 1, Operator: accumulator.OperatorAdd, Display: "-"},
			expectedError:       accumulator.ErrInvalidOperand,
			expectedStoredValue: 1,
			expectedDisplay:     "-",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			evaluatedState, evaluationError := accumulator.Evaluate(testCase.state)
			require.Equal(testInstance, testCase.expectedDisplay, evaluatedState.Display)
			if testCase.expectedError != nil {
				require.ErrorIs(testInstance, evaluationError, testCase.expectedError)
				if testCase.expectedError == accumulator.ErrDivideByZero {
					expectedState := accumulator.NewState()
					expectedState.Display = accumulator.ErrorDisplay
					require.Equal(testInstance, expectedState, evaluatedState)
				}
				return
			}
			require.NoError(testInstance, evaluationError)
			require.Equal(testInstance, testCase.expectedStoredValue, evaluatedState.StoredValue)
			require.Empty(testInstance, evaluatedState.PendingOperand)
		})
	}
}

func TestParseEqualsMode(testInstance *testing.T) {
	parsedMode, parseError := accumulator.ParseEqualsMode(" Repeat ")
	require.NoError(testInstance, parseError)
	require.Equal(testInstance, accumulator.EqualsModeRepeat, parsedMode)

	defaultMode, defaultError := accumulator.ParseEqualsMode("")
	require.NoError(testInstance, defaultError)
	require.Equal(testInstance, accumulator.EqualsModeNoop, defaultMode)

	var configuredMode accumulator.EqualsMode
	require.NoError(testInstance, configuredMode.UnmarshalText([]byte("REPEAT")))
	require.Equal(testInstance, accumulator.EqualsModeRepeat, configuredMode)
	require.Error(testInstance, configuredMode.UnmarshalText([]byte("twice")))
}

func TestParseOperator(testInstance *testing.T) {
	for _, symbol := range []string{"+", "-", "*", "/"} {
		operator, parseError := accumulator.ParseOperator(symbol)
		require.NoError(testInstance, parseError)
		require.Equal(testInstance, symbol, operator.String())
	}

	_, parseError := accumulator.ParseOperator("%")
	require.Error(testInstance, parseError)
}
