package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/tally/internal/accumulator"
	"github.com/temirov/tally/internal/utils"
)

const (
	commandUseNameConstant          = "tui"
	commandShortDescriptionConstant = "Open the interactive calculator keypad"
	commandLongDescriptionConstant  = "tui opens a terminal keypad. Type digits, . + - * / x, press enter or = to evaluate, esc or c to clear, n to toggle the sign, and q to quit. Configure common.log_output to a file to keep log lines off the screen."
	altScreenFlagNameConstant       = "alt-screen"
	altScreenFlagUsageConstant      = "Render on the alternate screen buffer."
	programRunErrorTemplateConstant = "keypad terminated: %w"
	sessionClosedMessageConstant    = "keypad closed"
	logFieldDisplayConstant         = "display"
	logFieldSessionConstant         = "session_id"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// ProgramRunner runs a bubbletea model to completion. Tests substitute it to avoid a terminal.
type ProgramRunner func(model tea.Model, options ...tea.ProgramOption) (tea.Model, error)

// CommandBuilder assembles the tui command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() Configuration
	ProgramRunner         ProgramRunner
}

// Build constructs the tui command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseNameConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}
	command.Flags().Bool(altScreenFlagNameConstant, DefaultConfiguration().AltScreen, altScreenFlagUsageConstant)
	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := DefaultConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}
	if command.Flags().Changed(altScreenFlagNameConstant) {
		altScreen, flagError := command.Flags().GetBool(altScreenFlagNameConstant)
		if flagError != nil {
			return flagError
		}
		configuration.AltScreen = altScreen
	}

	calculatorOptions := accumulator.DefaultOptions()
	if resolvedOptions, optionsAvailable := utils.NewCommandContextAccessor().CalculatorOptions(command.Context()); optionsAvailable {
		calculatorOptions = resolvedOptions
	}

	logger := builder.resolveLogger()
	session := accumulator.NewSession(calculatorOptions, logger)
	model := NewModel(session, DefaultStyles())

	programOptions := []tea.ProgramOption{
		tea.WithInput(command.InOrStdin()),
		tea.WithOutput(command.OutOrStdout()),
	}
	if command.Context() != nil {
		programOptions = append(programOptions, tea.WithContext(command.Context()))
	}
	if configuration.AltScreen {
		programOptions = append(programOptions, tea.WithAltScreen())
	}

	if _, runError := builder.resolveProgramRunner()(model, programOptions...); runError != nil {
		return fmt.Errorf(programRunErrorTemplateConstant, runError)
	}

	logger.Info(
		sessionClosedMessageConstant,
		zap.String(logFieldSessionConstant, session.Identifier()),
		zap.String(logFieldDisplayConstant, session.Display()),
	)
	return nil
}

func (builder *CommandBuilder) resolveProgramRunner() ProgramRunner {
	if builder.ProgramRunner != nil {
		return builder.ProgramRunner
	}
	return func(model tea.Model, options ...tea.ProgramOption) (tea.Model, error) {
		return tea.NewProgram(model, options...).Run()
	}
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
