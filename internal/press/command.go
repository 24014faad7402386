package press

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/tally/internal/accumulator"
	"github.com/temirov/tally/internal/keypad"
	"github.com/temirov/tally/internal/utils"
	flagutils "github.com/temirov/tally/internal/utils/flags"
)

const (
	commandUseNameConstant          = "press"
	commandUsageTemplateConstant    = commandUseNameConstant + " <keys...>"
	commandExampleTemplateConstant  = "tally press 5 + 3 =\ntally press '12.5*4=' --trace\ntally press --output yaml -- 9 neg x 2 ="
	commandShortDescriptionConstant = "Replay calculator keys and print the display"
	commandLongDescriptionConstant  = "press feeds the given keys to a fresh calculator and prints the final display. Each argument is either a key label (digits, ., + - * / x, =, c or clear, neg or +/-) or a run of single-character keys such as 12.5*4=. Put -- before keys that start with a dash."
	traceFlagNameConstant           = "trace"
	traceFlagUsageConstant          = "Print the display after every key."
	outputFlagNameConstant          = "output"
	outputFlagUsageConstant         = "Transcript format."
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the press command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() Configuration
}

// Build constructs the press command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUsageTemplateConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleTemplateConstant,
		Args:    cobra.MinimumNArgs(1),
		RunE:    builder.run,
	}

	defaults := DefaultConfiguration()
	command.Flags().Bool(traceFlagNameConstant, defaults.Trace, traceFlagUsageConstant)
	command.Flags().String(
		outputFlagNameConstant,
		string(defaults.Output),
		flagutils.FormatChoiceUsage(string(defaults.Output), OutputFormatChoices(), outputFlagUsageConstant),
	)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration, configurationError := builder.resolveConfiguration(command)
	if configurationError != nil {
		return configurationError
	}

	keys, parseError := keypad.ParseSequence(arguments)
	if parseError != nil {
		return parseError
	}

	calculatorOptions := accumulator.DefaultOptions()
	if resolvedOptions, optionsAvailable := utils.NewCommandContextAccessor().CalculatorOptions(command.Context()); optionsAvailable {
		calculatorOptions = resolvedOptions
	}

	service := NewService(ServiceDependencies{Logger: builder.resolveLogger()})
	transcript, runError := service.Run(command.Context(), Options{Keys: keys, Calculator: calculatorOptions})
	if runError != nil {
		return runError
	}

	return RenderTranscript(command.OutOrStdout(), transcript, configuration.Output, configuration.Trace)
}

func (builder *CommandBuilder) resolveConfiguration(command *cobra.Command) (Configuration, error) {
	configuration := DefaultConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider().Sanitize()
	}

	if command.Flags().Changed(traceFlagNameConstant) {
		traceValue, traceError := command.Flags().GetBool(traceFlagNameConstant)
		if traceError != nil {
			return Configuration{}, traceError
		}
		configuration.Trace = traceValue
	}

	if command.Flags().Changed(outputFlagNameConstant) {
		outputValue, outputError := command.Flags().GetString(outputFlagNameConstant)
		if outputError != nil {
			return Configuration{}, outputError
		}
		normalizedOutput, choiceError := flagutils.NormalizeChoice(outputFlagNameConstant, outputValue, OutputFormatChoices())
		if choiceError != nil {
			return Configuration{}, choiceError
		}
		configuration.Output = OutputFormat(normalizedOutput)
	}

	return configuration, nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
