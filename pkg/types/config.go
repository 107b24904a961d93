// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Config holds settings for the interactive converter.
type Config struct {
	// Prompt is printed before each line is read.
	Prompt string `json:"prompt" yaml:"prompt" mapstructure:"prompt"`

	// Exit is the sentinel that ends the session. It is compared against
	// the raw line, so case matters.
	Exit string `json:"exit" yaml:"exit" mapstructure:"exit"`

	// LogLevel is one of debug, info, warn, error (default warn).
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`

	// LogFormat is text or json (default text).
	LogFormat string `json:"log_format" yaml:"log_format" mapstructure:"log_format"`
}

const (
	DefaultPrompt    = "Enter what you want to convert (or exit): "
	DefaultExit      = "exit"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Prompt:    DefaultPrompt,
		Exit:      DefaultExit,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}
