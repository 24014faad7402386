package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/temirov/tally/cmd/cli"
	"github.com/temirov/tally/internal/accumulator"
	"github.com/temirov/tally/internal/press"
)

const (
	testConfigurationFileNameConstant          = "config.yaml"
	testConfigurationSearchPathEnvironmentName = "TALLY_CONFIG_SEARCH_PATH"
	testEqualsModeEnvironmentName              = "TALLY_CALCULATOR_EQUALS_MODE"
	testRepeatConfigurationContent             = "calculator:\n  equals_mode: repeat\n"
	testYAMLOutputConfigurationContent         = "tools:\n  press:\n    output: yaml\n"
	testDiscardLogOutputFlag                   = "--log-output=none"
	testPressCommandName                       = "press"
	testTUICommandName                         = "tui"
)

func TestApplicationPressCommand(testInstance *testing.T) {
	testCases := []struct {
		name                 string
		configuration        string
		environment          map[string]string
		arguments            []string
		expectedOutput       string
		expectedErrorSnippet string
	}{
		{
			name:           "AddsTwoNumbers",
			arguments:      []string{testPressCommandName, "5", "+", "3", "="},
			expectedOutput: "8\n",
		},
		{
			name:           "DecodesCompactSequence",
			arguments:      []string{testPressCommandName, "12*3="},
			expectedOutput: "36\n",
		},
		{
			name:           "DivideByZeroDisplaysError",
			arguments:      []string{testPressCommandName, "10/0="},
			expectedOutput: "Error\n",
		},
		{
			name:           "RepeatedEqualsIsNoopByDefault",
			arguments:      []string{testPressCommandName, "4+2=="},
			expectedOutput: "6\n",
		},
		{
			name:           "EqualsFlagSelectsRepeat",
			arguments:      []string{"--equals", "repeat", testPressCommandName, "4+2=="},
			expectedOutput: "8\n",
		},
		{
			name:           "ConfigurationFileSelectsRepeat",
			configuration:  testRepeatConfigurationContent,
			arguments:      []string{testPressCommandName, "4+2=="},
			expectedOutput: "8\n",
		},
		{
			name:           "EnvironmentSelectsRepeat",
			environment:    map[string]string{testEqualsModeEnvironmentName: "repeat"},
			arguments:      []string{testPressCommandName, "4+2=="},
			expectedOutput: "8\n",
		},
		{
			name:           "EqualsFlagOverridesConfiguration",
			configuration:  testRepeatConfigurationContent,
			arguments:      []string{"--equals", "noop", testPressCommandName, "4+2=="},
			expectedOutput: "6\n",
		},
		{
			name:                 "UnsupportedEqualsMode",
			arguments:            []string{"--equals", "twice", testPressCommandName, "1"},
			expectedErrorSnippet: "unsupported value \"twice\" for --equals",
		},
		{
			name:                 "UnsupportedLogLevel",
			arguments:            []string{"--log-level", "verbose", testPressCommandName, "1"},
			expectedErrorSnippet: "unable to create logger",
		},
		{
			name:                 "UnknownKey",
			arguments:            []string{testPressCommandName, "2", "%", "3"},
			expectedErrorSnippet: "%",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(t *testing.T) {
			configurationDirectory := t.TempDir()
			t.Setenv(testConfigurationSearchPathEnvironmentName, configurationDirectory)
			if len(testCase.configuration) > 0 {
				writeConfigurationFile(t, filepath.Join(configurationDirectory, testConfigurationFileNameConstant), testCase.configuration)
			}
			for environmentName, environmentValue := range testCase.environment {
				t.Setenv(environmentName, environmentValue)
			}

			output, executionError := executeApplication(t, testCase.arguments...)
			if len(testCase.expectedErrorSnippet) > 0 {
				require.Error(t, executionError)
				require.Contains(t, executionError.Error(), testCase.expectedErrorSnippet)
				return
			}

			require.NoError(t, executionError)
			require.Equal(t, testCase.expectedOutput, output)
		})
	}
}

func TestApplicationExplicitConfigurationFile(testInstance *testing.T) {
	testInstance.Setenv(testConfigurationSearchPathEnvironmentName, testInstance.TempDir())

	configurationPath := filepath.Join(testInstance.TempDir(), "explicit.yaml")
	writeConfigurationFile(testInstance, configurationPath, testYAMLOutputConfigurationContent)

	output, executionError := executeApplication(testInstance, "--config", configurationPath, testPressCommandName, "7")
	require.NoError(testInstance, executionError)
	require.Contains(testInstance, output, "display: \"7\"")
}

func TestApplicationRootCommandPrintsHelp(testInstance *testing.T) {
	testInstance.Setenv(testConfigurationSearchPathEnvironmentName, testInstance.TempDir())

	output, executionError := executeApplication(testInstance)
	require.NoError(testInstance, executionError)
	require.Contains(testInstance, output, testPressCommandName)
	require.Contains(testInstance, output, testTUICommandName)
	require.Contains(testInstance, output, "--equals")
}

func TestApplicationRegistersCommands(testInstance *testing.T) {
	application := cli.NewApplication()

	registeredNames := make([]string, 0)
	for _, command := range application.RootCommand().Commands() {
		registeredNames = append(registeredNames, command.Name())
	}

	require.Contains(testInstance, registeredNames, testPressCommandName)
	require.Contains(testInstance, registeredNames, testTUICommandName)
}

func TestApplicationResolvesConfiguration(testInstance *testing.T) {
	configurationDirectory := testInstance.TempDir()
	testInstance.Setenv(testConfigurationSearchPathEnvironmentName, configurationDirectory)
	writeConfigurationFile(testInstance, filepath.Join(configurationDirectory, testConfigurationFileNameConstant), testRepeatConfigurationContent)

	application := cli.NewApplication()
	rootCommand := application.RootCommand()
	rootCommand.SetOut(&bytes.Buffer{})
	rootCommand.SetErr(&bytes.Buffer{})
	rootCommand.SetArgs([]string{testDiscardLogOutputFlag, testPressCommandName, "1"})

	require.NoError(testInstance, application.Execute())

	configuration := application.Configuration()
	require.Equal(testInstance, accumulator.EqualsModeRepeat, configuration.Calculator.EqualsMode)
	require.Equal(testInstance, press.OutputFormatText, configuration.Tools.Press.Output)
	require.True(testInstance, configuration.Tools.TUI.AltScreen)
	require.Equal(testInstance, "none", configuration.Common.LogOutput)
}

func TestApplicationEmbeddedDefaults(testInstance *testing.T) {
	configurationData, configurationType := cli.EmbeddedDefaultConfiguration()
	require.Equal(testInstance, "yaml", configurationType)

	viperInstance := viper.New()
	viperInstance.SetConfigType(configurationType)
	require.NoError(testInstance, viperInstance.ReadConfig(bytes.NewReader(configurationData)))

	require.Equal(testInstance, "info", viperInstance.GetString("common.log_level"))
	require.Equal(testInstance, "console", viperInstance.GetString("common.log_format"))
	require.Equal(testInstance, string(accumulator.EqualsModeNoop), viperInstance.GetString("calculator.equals_mode"))
	require.Equal(testInstance, string(press.OutputFormatText), viperInstance.GetString("tools.press.output"))
	require.False(testInstance, viperInstance.GetBool("tools.press.trace"))
	require.True(testInstance, viperInstance.GetBool("tools.tui.alt_screen"))

	configurationData[0] = '#'
	pristineData, _ := cli.EmbeddedDefaultConfiguration()
	require.False(testInstance, strings.HasPrefix(string(pristineData), "#"))
}

func executeApplication(testInstance *testing.T, arguments ...string) (string, error) {
	testInstance.Helper()

	application := cli.NewApplication()
	rootCommand := application.RootCommand()

	outputBuffer := &bytes.Buffer{}
	rootCommand.SetOut(outputBuffer)
	rootCommand.SetErr(&bytes.Buffer{})
	rootCommand.SetArgs(append([]string{testDiscardLogOutputFlag}, arguments...))

	executionError := application.Execute()
	return outputBuffer.String(), executionError
}

func writeConfigurationFile(testInstance *testing.T, configurationPath string, configurationContent string) {
	testInstance.Helper()

	writeError := os.WriteFile(configurationPath, []byte(configurationContent), 0o600)
	require.NoError(testInstance, writeError)
}
