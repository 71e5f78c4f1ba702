// Package config resolves CLI settings from defaults, an optional YAML file,
// MACHINEPROBE_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. MACHINEPROBE_NO_WAIT.
const EnvPrefix = "machineprobe"

// Setting keys. Flags carry the same names.
const (
	KeyNoWait       = "no-wait"
	KeyTimeout      = "timeout"
	KeyPhysicalOnly = "physical-only"
	KeyDiagnostics  = "diagnostics"
	KeyLogLevel     = "log-level"
	KeyLogFile      = "log-file"
)

// Defaults.
const (
	DefaultTimeout  = 10 * time.Second
	DefaultLogLevel = "error"
)

var (
	// ErrInvalidTimeout is returned for a negative command timeout.
	ErrInvalidTimeout = errors.New("timeout must not be negative")

	// ErrInvalidLogLevel is returned for a log level slog cannot parse.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config holds the resolved CLI settings.
type Config struct {
	NoWait       bool
	Timeout      time.Duration
	PhysicalOnly bool
	Diagnostics  bool
	LogLevel     string
	LogFile      string
}

// RegisterFlags adds the setting flags to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.Bool(KeyNoWait, false, "exit without waiting for Enter")
	flags.Duration(KeyTimeout, DefaultTimeout, "timeout for each external command (0 disables)")
	flags.Bool(KeyPhysicalOnly, false, "skip loopback, down and virtual interfaces in the MAC address probes")
	flags.Bool(KeyDiagnostics, false, "print which probes failed and why to stderr")
	flags.String(KeyLogLevel, DefaultLogLevel, "log level: debug, info, warn, error")
	flags.String(KeyLogFile, "", "write JSON logs to this file (rotated) instead of stderr")
}

// Load resolves the settings. v must have been bound to the flags with
// [BindFlags] when flags should take part. configFile may be empty.
func Load(v *viper.Viper, configFile string) (Config, error) {
	v.SetDefault(KeyNoWait, false)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyPhysicalOnly, false)
	v.SetDefault(KeyDiagnostics, false)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFile, "")

	v.SetEnvPrefix(EnvPrefix)
	// all hyphens and dots become underscores in env names
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	cfg := Config{
		NoWait:       v.GetBool(KeyNoWait),
		Timeout:      v.GetDuration(KeyTimeout),
		PhysicalOnly: v.GetBool(KeyPhysicalOnly),
		Diagnostics:  v.GetBool(KeyDiagnostics),
		LogLevel:     v.GetString(KeyLogLevel),
		LogFile:      v.GetString(KeyLogFile),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// BindFlags binds every setting key to the flag of the same name.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyNoWait, KeyTimeout, KeyPhysicalOnly, KeyDiagnostics, KeyLogLevel, KeyLogFile} {
		flag := flags.Lookup(key)
		if flag == nil {
			return fmt.Errorf("flag --%s is not registered", key)
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag --%s: %w", key, err)
		}
	}

	return nil
}

// Validate checks the settings for values the CLI cannot use.
func (c Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Timeout)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return level, nil
}
