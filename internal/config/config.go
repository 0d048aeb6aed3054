// Package config defines process configuration and loading hooks.
//
// Only ambient knobs live here. Rule thresholds, score weights, and the
// provider tick divisor are compatibility contracts and are deliberately
// not configurable.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Tone selects the feedback wording style: emotive, plain, cute, fun.
	Tone string `koanf:"tone"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Tone:     "emotive",
	}
}
