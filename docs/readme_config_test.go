package docs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/tally/cmd/cli"
	"github.com/temirov/tally/internal/accumulator"
	"github.com/temirov/tally/internal/press"
	"github.com/temirov/tally/internal/utils"
)

const (
	readmeFileNameConstant           = "README.md"
	yamlFenceStartConstant           = "```yaml"
	yamlFenceEndConstant             = "```"
	configHeaderMarkerConstant       = "# config.yaml"
	readmeSnippetTestNameConstant    = "readme_calculator_configuration"
	readmeSnippetTemporaryPattern    = "readme-config-*.yaml"
	readmeConfigurationNameConstant  = "config"
	readmeConfigurationTypeConstant  = "yaml"
	readmeEnvironmentPrefixConstant  = "TALLYREADME"
	parentDirectoryReferenceConstant = ".."
	missingHeaderMessageConstant     = "README example missing config header marker"
	missingStartFenceMessageConstant = "README example missing yaml fence start"
	missingEndFenceMessageConstant   = "README example missing yaml fence end"
	unexpectedSectionMessageTemplate = "unexpected configuration section %s"
	defaultTempDirectoryRootConstant = ""
)

var expectedConfigurationSections = map[string]struct{}{
	"common":     {},
	"calculator": {},
	"tools":      {},
}

func TestReadmeConfigurationParses(testInstance *testing.T) {
	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	readmePath := filepath.Join(workingDirectory, parentDirectoryReferenceConstant, readmeFileNameConstant)
	contentBytes, readError := os.ReadFile(readmePath)
	require.NoError(testInstance, readError)

	contentText := string(contentBytes)
	headerIndex := strings.Index(contentText, configHeaderMarkerConstant)
	require.NotEqual(testInstance, -1, headerIndex, missingHeaderMessageConstant)

	fenceStartIndex := strings.LastIndex(contentText[:headerIndex], yamlFenceStartConstant)
	require.NotEqual(testInstance, -1, fenceStartIndex, missingStartFenceMessageConstant)

	remainingText := contentText[headerIndex:]
	fenceEndRelativeIndex := strings.Index(remainingText, yamlFenceEndConstant)
	require.NotEqual(testInstance, -1, fenceEndRelativeIndex, missingEndFenceMessageConstant)
	fenceEndIndex := headerIndex + fenceEndRelativeIndex

	snippetContent := strings.TrimSpace(contentText[fenceStartIndex+len(yamlFenceStartConstant) : fenceEndIndex])

	testCases := []struct {
		name          string
		configuration string
	}{
		{
			name:          readmeSnippetTestNameConstant,
			configuration: snippetContent,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			tempFile, tempFileError := os.CreateTemp(defaultTempDirectoryRootConstant, readmeSnippetTemporaryPattern)
			require.NoError(subtest, tempFileError)
			subtest.Cleanup(func() {
				require.NoError(subtest, os.Remove(tempFile.Name()))
			})

			_, writeError := tempFile.WriteString(testCase.configuration)
			require.NoError(subtest, writeError)
			require.NoError(subtest, tempFile.Close())

			var rawSections map[string]any
			require.NoError(subtest, yaml.Unmarshal([]byte(testCase.configuration), &rawSections))
			for sectionName := range rawSections {
				_, expected := expectedConfigurationSections[sectionName]
				require.Truef(subtest, expected, unexpectedSectionMessageTemplate, sectionName)
			}

			loader := utils.NewConfigurationLoader(readmeConfigurationNameConstant, readmeConfigurationTypeConstant, readmeEnvironmentPrefixConstant, nil)
			var applicationConfiguration cli.ApplicationConfiguration
			_, loadError := loader.LoadConfiguration(tempFile.Name(), nil, &applicationConfiguration)
			require.NoError(subtest, loadError)

			require.Equal(subtest, string(utils.LogLevelInfo), applicationConfiguration.Common.LogLevel)
			require.Equal(subtest, string(utils.LogFormatConsole), applicationConfiguration.Common.LogFormat)
			require.Equal(subtest, accumulator.EqualsModeNoop, applicationConfiguration.Calculator.EqualsMode)
			require.Equal(subtest, press.OutputFormatText, applicationConfiguration.Tools.Press.Output)
			require.True(subtest, applicationConfiguration.Tools.TUI.AltScreen)
		})
	}
}
