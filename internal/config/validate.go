package config

import "edsign/internal/errors"

// Validate checks cfg and returns the first problem found, wrapping
// errors.ErrConfigInvalid.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.Wrap(errors.ErrConfigInvalid, "config is nil")
	}
	if !cfg.VerifyPolicy.Valid() {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"verify_policy must be nacl or zip215, got %q", string(cfg.VerifyPolicy))
	}
	if cfg.Entropy.Device == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "entropy.device must not be empty")
	}
	return validateLogConfig(&cfg.Log)
}

func validateLogConfig(cfg *LogConfig) error {
	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(errors.ErrConfigInvalid,
			"log.level must be debug, info, warn or error, got %q", cfg.Level)
	}

	switch cfg.Format {
	case FormatAuto, FormatJSON, FormatConsole:
	default:
		return errors.Wrapf(errors.ErrConfigInvalid,
			"log.format must be auto, json or console, got %q", cfg.Format)
	}

	if cfg.File != "" && cfg.MaxSizeMB <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"log.max_size_mb must be positive, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups < 0 {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"log.max_backups must not be negative, got %d", cfg.MaxBackups)
	}
	return nil
}
