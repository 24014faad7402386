// Package utils exposes reusable helpers consumed by the tally commands.
//
// It houses ConfigurationLoader and LoggerFactory abstractions that integrate
// Viper, environment variables, and zap logging for the CLI, together with the
// context accessor that carries resolved calculator options to subcommands.
package utils
