package accumulator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/tally/internal/accumulator"
)

func TestFormat(testInstance *testing.T) {
	testCases := []struct {
		name           string
		number         float64
		expectedOutput string
	}{
		{name: "whole_value", number: 3.0, expectedOutput: "3"},
		{name: "fractional_value", number: 3.5, expectedOutput: "3.5"},
		{name: "zero", number: 0, expectedOutput: "0"},
		{name: "negative_zero", number: math.Copysign(0, -1), expectedOutput: "0"},
		{name: "negative_whole", number: -42, expectedOutput: "-42"},
		{name: "negative_fraction", number: -0.125, expectedOutput: "-0.125"},
		{name: "small_fraction", number: 0.00000025, expectedOutput: "0.00000025"},
		{name: "binary_rounding_kept", number: 0.30000000000000004, expectedOutput: "0.30000000000000004"},
		{name: "large_whole", number: 1234567890123, expectedOutput: "1234567890123"},
		{name: "beyond_integer_range", number: 1e20, expectedOutput: "1e+20"},
		{name: "positive_infinity", number: math.Inf(1), expectedOutput: "+Inf"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedOutput, accumulator.Format(testCase.number))
		})
	}
}
