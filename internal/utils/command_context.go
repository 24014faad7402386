package utils

import (
	"context"

	"github.com/temirov/tally/internal/accumulator"
)

const (
	configurationFilePathContextKeyConstant = commandContextKey("configurationFilePath")
	calculatorOptionsContextKeyConstant     = commandContextKey("calculatorOptions")
)

type commandContextKey string

// CommandContextAccessor manages values stored in command execution contexts.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath attaches the configuration file path to the provided context.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationFilePathContextKeyConstant, configurationFilePath)
}

// ConfigurationFilePath extracts the configuration file path from the provided context.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	configurationFilePath, configurationFilePathAvailable := executionContext.Value(configurationFilePathContextKeyConstant).(string)
	return configurationFilePath, configurationFilePathAvailable
}

// WithCalculatorOptions attaches resolved accumulator options to the provided context.
func (accessor CommandContextAccessor) WithCalculatorOptions(parentContext context.Context, options accumulator.Options) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, calculatorOptionsContextKeyConstant, options)
}

// CalculatorOptions extracts accumulator options from the provided context.
func (accessor CommandContextAccessor) CalculatorOptions(executionContext context.Context) (accumulator.Options, bool) {
	if executionContext == nil {
		return accumulator.Options{}, false
	}
	options, optionsAvailable := executionContext.Value(calculatorOptionsContextKeyConstant).(accumulator.Options)
	return options, optionsAvailable
}
