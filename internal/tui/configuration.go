package tui

const (
	configurationAltScreenKeyConstant = "alt_screen"
	configurationKeySeparatorConstant = "."
)

// Configuration captures configuration values for the tui command.
type Configuration struct {
	AltScreen bool `mapstructure:"alt_screen"`
}

// DefaultConfiguration provides baseline configuration values for the tui command.
func DefaultConfiguration() Configuration {
	return Configuration{AltScreen: true}
}

// DefaultConfigurationValues produces Viper defaults rooted at rootKey.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + configurationAltScreenKeyConstant: defaults.AltScreen,
	}
}
