package config

import "edsign/internal/domain"

// Config is the root configuration for edsign.
type Config struct {
	// VerifyPolicy selects the verification rules: "nacl" or "zip215".
	VerifyPolicy domain.VerifyPolicy `yaml:"verify_policy" mapstructure:"verify_policy"`

	// StrictSecretKey rejects secret keys whose public half does not match
	// the seed.
	StrictSecretKey bool `yaml:"strict_secret_key" mapstructure:"strict_secret_key"`

	// MessageBinding makes verify also require the clear message to equal the
	// message carried by the signed message.
	MessageBinding bool `yaml:"message_binding" mapstructure:"message_binding"`

	Entropy EntropyConfig `yaml:"entropy" mapstructure:"entropy"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// EntropyConfig configures the secure random source.
type EntropyConfig struct {
	// Device is the character device read when getrandom is unavailable.
	Device string `yaml:"device" mapstructure:"device"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`

	// File enables a rotating log file in addition to stderr.
	File       string `yaml:"file" mapstructure:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
}

// Log formats.
const (
	FormatAuto    = "auto"
	FormatJSON    = "json"
	FormatConsole = "console"
)

// DefaultConfig returns the built-in defaults. Keep in sync with setDefaults.
func DefaultConfig() *Config {
	return &Config{
		VerifyPolicy:    domain.PolicyNaCl,
		StrictSecretKey: true,
		Entropy:         EntropyConfig{Device: "/dev/urandom"},
		Log: LogConfig{
			Level:      "info",
			Format:     FormatAuto,
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}
