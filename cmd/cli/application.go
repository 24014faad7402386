package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/tally/internal/accumulator"
	"github.com/temirov/tally/internal/press"
	"github.com/temirov/tally/internal/tui"
	"github.com/temirov/tally/internal/utils"
	flagutils "github.com/temirov/tally/internal/utils/flags"
)

const (
	applicationNameConstant                 = "tally"
	applicationShortDescriptionConstant     = "Keypad calculator for the terminal"
	applicationLongDescriptionConstant      = "tally is a four-function calculator. Replay keys with press or open an interactive keypad with tui."
	configFileFlagNameConstant              = "config"
	configFileFlagUsageConstant             = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                = "log-level"
	logLevelFlagUsageConstant               = "Override the configured log level."
	logFormatFlagNameConstant               = "log-format"
	logFormatFlagUsageConstant              = "Override the configured log format (structured or console)."
	logOutputFlagNameConstant               = "log-output"
	logOutputFlagUsageConstant              = "Override the configured log destination (stderr, stdout, a file path, or none)."
	equalsModeFlagNameConstant              = "equals"
	equalsModeFlagUsageConstant             = "Behaviour of = when no operation is pending."
	commonConfigurationKeyConstant          = "common"
	commonLogLevelConfigKeyConstant         = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant        = commonConfigurationKeyConstant + ".log_format"
	commonLogOutputConfigKeyConstant        = commonConfigurationKeyConstant + ".log_output"
	calculatorEqualsModeConfigKeyConstant   = "calculator.equals_mode"
	toolsConfigurationKeyConstant           = "tools"
	pressConfigurationKeyConstant           = toolsConfigurationKeyConstant + ".press"
	tuiConfigurationKeyConstant             = toolsConfigurationKeyConstant + ".tui"
	environmentPrefixConstant               = "TALLY"
	configurationSearchPathEnvironmentName  = "TALLY_CONFIG_SEARCH_PATH"
	configurationNameConstant               = "config"
	configurationTypeConstant               = "yaml"
	userConfigurationDirectoryNameConstant  = "tally"
	defaultConfigurationSearchPathConstant  = "."
	configurationInitializedMessageConstant = "configuration initialized"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationEqualsModeFieldConstant    = "equals_mode"
	configurationFileFieldConstant          = "config_file"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	equalsModeErrorTemplateConstant         = "unable to resolve equals mode: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
	rootCommandInfoMessageConstant          = "tally CLI executed"
	logFieldCommandNameConstant             = "command_name"
	logFieldArgumentCountConstant           = "argument_count"
	loggerNotInitializedMessageConstant     = "logger not initialized"
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common     ApplicationCommonConfiguration     `mapstructure:"common"`
	Calculator ApplicationCalculatorConfiguration `mapstructure:"calculator"`
	Tools      ApplicationToolsConfiguration      `mapstructure:"tools"`
}

// ApplicationCommonConfiguration stores logging configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	LogOutput string `mapstructure:"log_output"`
}

// ApplicationCalculatorConfiguration stores accumulator behaviour shared by every front end.
type ApplicationCalculatorConfiguration struct {
	EqualsMode accumulator.EqualsMode `mapstructure:"equals_mode"`
}

// ApplicationToolsConfiguration holds configuration for CLI subcommands.
type ApplicationToolsConfiguration struct {
	Press press.Configuration `mapstructure:"press"`
	TUI   tui.Configuration   `mapstructure:"tui"`
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand            *cobra.Command
	configurationLoader    *utils.ConfigurationLoader
	loggerFactory          *utils.LoggerFactory
	logger                 *zap.Logger
	configuration          ApplicationConfiguration
	configurationMetadata  utils.LoadedConfiguration
	configurationFilePath  string
	logLevelFlagValue      string
	logFormatFlagValue     string
	logOutputFlagValue     string
	equalsModeFlagValue    string
	commandContextAccessor utils.CommandContextAccessor
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		configurationSearchPaths(),
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	application := &Application{
		configurationLoader:    configurationLoader,
		loggerFactory:          utils.NewLoggerFactory(),
		logger:                 zap.NewNop(),
		commandContextAccessor: utils.NewCommandContextAccessor(),
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.runRootCommand(command, arguments)
		},
	}

	cobraCommand.SetContext(context.Background())
	cobraCommand.PersistentFlags().StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logFormatFlagValue, logFormatFlagNameConstant, "", logFormatFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logOutputFlagValue, logOutputFlagNameConstant, "", logOutputFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(
		&application.equalsModeFlagValue,
		equalsModeFlagNameConstant,
		"",
		flagutils.FormatChoiceUsage(string(accumulator.EqualsModeNoop), accumulator.EqualsModeChoices(), equalsModeFlagUsageConstant),
	)

	pressBuilder := press.CommandBuilder{
		LoggerProvider: func() *zap.Logger {
			return application.logger
		},
		ConfigurationProvider: func() press.Configuration {
			return application.configuration.Tools.Press
		},
	}
	pressCommand, pressBuildError := pressBuilder.Build()
	if pressBuildError == nil {
		cobraCommand.AddCommand(pressCommand)
	}

	tuiBuilder := tui.CommandBuilder{
		LoggerProvider: func() *zap.Logger {
			return application.logger
		},
		ConfigurationProvider: func() tui.Configuration {
			return application.configuration.Tools.TUI
		},
	}
	tuiCommand, tuiBuildError := tuiBuilder.Build()
	if tuiBuildError == nil {
		cobraCommand.AddCommand(tuiCommand)
	}

	application.rootCommand = cobraCommand

	return application
}

// RootCommand exposes the Cobra root command, primarily for wiring arguments and streams.
func (application *Application) RootCommand() *cobra.Command {
	return application.rootCommand
}

// Configuration returns the configuration resolved by the most recent command execution.
func (application *Application) Configuration() ApplicationConfiguration {
	return application.configuration
}

// Execute runs the configured Cobra command hierarchy and ensures logger flushing.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if syncError := utils.SyncLogger(application.logger); syncError != nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	return NewApplication().Execute()
}

func configurationSearchPaths() []string {
	searchPaths := make([]string, 0, 3)
	if overridePath := strings.TrimSpace(os.Getenv(configurationSearchPathEnvironmentName)); len(overridePath) > 0 {
		searchPaths = append(searchPaths, overridePath)
	}
	searchPaths = append(searchPaths, defaultConfigurationSearchPathConstant)
	if userConfigurationDirectory, userConfigurationError := os.UserConfigDir(); userConfigurationError == nil {
		searchPaths = append(searchPaths, filepath.Join(userConfigurationDirectory, userConfigurationDirectoryNameConstant))
	}
	return searchPaths
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:       string(utils.LogLevelInfo),
		commonLogFormatConfigKeyConstant:      string(utils.LogFormatConsole),
		commonLogOutputConfigKeyConstant:      utils.DefaultLogOutput,
		calculatorEqualsModeConfigKeyConstant: string(accumulator.EqualsModeNoop),
	}
	for configurationKey, configurationValue := range press.DefaultConfigurationValues(pressConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}
	for configurationKey, configurationValue := range tui.DefaultConfigurationValues(tuiConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}

	application.configuration = ApplicationConfiguration{}
	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}

	if application.persistentFlagChanged(command, logOutputFlagNameConstant) {
		application.configuration.Common.LogOutput = application.logOutputFlagValue
	}

	if application.persistentFlagChanged(command, equalsModeFlagNameConstant) {
		normalizedMode, choiceError := flagutils.NormalizeChoice(equalsModeFlagNameConstant, application.equalsModeFlagValue, accumulator.EqualsModeChoices())
		if choiceError != nil {
			return fmt.Errorf(equalsModeErrorTemplateConstant, choiceError)
		}
		equalsMode, parseError := accumulator.ParseEqualsMode(normalizedMode)
		if parseError != nil {
			return fmt.Errorf(equalsModeErrorTemplateConstant, parseError)
		}
		application.configuration.Calculator.EqualsMode = equalsMode
	}

	logger, loggerCreationError := application.loggerFactory.CreateLogger(utils.LoggerSettings{
		Level:  utils.LogLevel(application.configuration.Common.LogLevel),
		Format: utils.LogFormat(application.configuration.Common.LogFormat),
		Output: application.configuration.Common.LogOutput,
	})
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Debug(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationEqualsModeFieldConstant, string(application.configuration.Calculator.EqualsMode)),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	if command != nil {
		updatedContext := application.commandContextAccessor.WithConfigurationFilePath(
			command.Context(),
			application.configurationMetadata.ConfigFileUsed,
		)
		updatedContext = application.commandContextAccessor.WithCalculatorOptions(
			updatedContext,
			accumulator.Options{EqualsMode: application.configuration.Calculator.EqualsMode},
		)
		command.SetContext(updatedContext)
		if rootCommand := command.Root(); rootCommand != nil {
			rootCommand.SetContext(updatedContext)
		}
	}

	return nil
}

func (application *Application) runRootCommand(command *cobra.Command, arguments []string) error {
	if application.logger == nil {
		return errors.New(loggerNotInitializedMessageConstant)
	}

	application.logger.Debug(
		rootCommandInfoMessageConstant,
		zap.String(logFieldCommandNameConstant, command.Name()),
		zap.Int(logFieldArgumentCountConstant, len(arguments)),
	)

	return command.Help()
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	rootCommand := command.Root()
	if rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet == nil {
			continue
		}

		if flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}
