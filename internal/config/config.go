package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime configuration for the bank
type Config struct {
	// Seed for the account number generator (0 = random)
	Seed int64 `mapstructure:"seed"`

	// Record files; empty means use the embedded sample data
	AccountsFile   string `mapstructure:"accounts_file"`
	ActivitiesFile string `mapstructure:"activities_file"`

	// Logging
	LogLevel string `mapstructure:"log_level"` // debug, info, warn, error

	// Output
	NoColor bool `mapstructure:"no_color"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Seed:     DefaultSeed,
		LogLevel: DefaultLogLevel,
	}
}

// SetDefaults registers the defaults with v so environment variables and
// config files can override each key
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("seed", d.Seed)
	v.SetDefault("accounts_file", d.AccountsFile)
	v.SetDefault("activities_file", d.ActivitiesFile)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("no_color", d.NoColor)
}

// NewViper builds a viper instance that reads rubank.yaml from the working
// directory or $HOME/.rubank and RUBANK_* environment variables
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.rubank")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// LoadDotEnv loads environment variables from the given .env files (".env"
// when none are given). Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from v into a Config struct. A missing config
// file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []string

	if c.Seed < 0 {
		errs = append(errs, "seed must be non-negative")
	}

	level := strings.ToLower(c.LogLevel)
	valid := false
	for _, l := range logLevels {
		if l == level {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, fmt.Sprintf("log_level must be one of %s (got %q)", strings.Join(logLevels, ", "), c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", joinErrors(errs))
	}

	return nil
}

// joinErrors joins error messages with newline and bullet points
func joinErrors(errs []string) string {
	result := errs[0]
	for i := 1; i < len(errs); i++ {
		result += "\n  - " + errs[i]
	}
	return result
}
