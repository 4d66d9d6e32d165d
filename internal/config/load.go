package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"edsign/internal/errors"
)

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{ //nolint:gochecknoglobals // static table
	"policy":     "verify_policy",
	"log-level":  "log.level",
	"log-format": "log.format",
}

func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("EDSIGN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("verify_policy", string(d.VerifyPolicy))
	v.SetDefault("strict_secret_key", d.StrictSecretKey)
	v.SetDefault("message_binding", d.MessageBinding)
	v.SetDefault("entropy.device", d.Entropy.Device)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
}

// Load reads configuration from path (or the global config file when path is
// empty), the environment and flags. Only flags the user changed override
// lower layers. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := newViperInstance()

	if err := readConfigFile(v, path); err != nil {
		return nil, err
	}
	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "bind flag --%s", name)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrapf(errors.ErrConfigInvalid, "unmarshal config: %v", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		var ok bool
		if path, ok = globalConfigPathIfExists(); !ok {
			return nil
		}
	}
	if _, err := os.Stat(path); err != nil {
		return errors.Wrapf(errors.ErrConfigInvalid, "config file %s: %v", path, err)
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(errors.ErrConfigInvalid, "read config file %s: %v", path, err)
	}
	return nil
}

// GlobalConfigDir returns ~/.edsign.
func GlobalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve home directory")
	}
	return filepath.Join(home, ".edsign"), nil
}

func globalConfigPathIfExists() (string, bool) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", false
	}
	p := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(p); err != nil {
		return "", false
	}
	return p, true
}

// viperDecoderOption lets types with UnmarshalText, such as the verify
// policy, decode from plain strings.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())
}
