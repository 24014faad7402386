package press

import (
	"fmt"
	"strings"
)

const (
	outputFormatTextConstant                = "text"
	outputFormatYAMLConstant                = "yaml"
	unsupportedOutputFormatTemplateConstant = "unsupported output format: %q"
	configurationTraceKeyConstant           = "trace"
	configurationOutputKeyConstant          = "output"
	configurationKeySeparatorConstant       = "."
)

// OutputFormat selects how a transcript is rendered.
type OutputFormat string

// Supported output formats.
const (
	OutputFormatText OutputFormat = OutputFormat(outputFormatTextConstant)
	OutputFormatYAML OutputFormat = OutputFormat(outputFormatYAMLConstant)
)

// OutputFormatChoices lists the accepted output format values.
func OutputFormatChoices() []string {
	return []string{outputFormatTextConstant, outputFormatYAMLConstant}
}

// ParseOutputFormat converts a textual value into an OutputFormat. Empty values select text.
func ParseOutputFormat(value string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", outputFormatTextConstant:
		return OutputFormatText, nil
	case outputFormatYAMLConstant:
		return OutputFormatYAML, nil
	default:
		return OutputFormatText, fmt.Errorf(unsupportedOutputFormatTemplateConstant, value)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for configuration decoding.
func (format *OutputFormat) UnmarshalText(text []byte) error {
	parsedFormat, parseError := ParseOutputFormat(string(text))
	if parseError != nil {
		return parseError
	}
	*format = parsedFormat
	return nil
}

// Configuration captures configuration values for the press command.
type Configuration struct {
	Trace  bool         `mapstructure:"trace"`
	Output OutputFormat `mapstructure:"output"`
}

// DefaultConfiguration provides baseline configuration values for the press command.
func DefaultConfiguration() Configuration {
	return Configuration{
		Trace:  false,
		Output: OutputFormatText,
	}
}

// DefaultConfigurationValues produces Viper defaults rooted at rootKey.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + configurationTraceKeyConstant:  defaults.Trace,
		rootKey + configurationKeySeparatorConstant + configurationOutputKeyConstant: string(defaults.Output),
	}
}

// Sanitize fills empty values with defaults.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := configuration
	if len(strings.TrimSpace(string(configuration.Output))) == 0 {
		sanitized.Output = OutputFormatText
	}
	return sanitized
}
