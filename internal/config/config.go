package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// EnvPrefix prefixes every environment override, e.g. WARD_DB.
const EnvPrefix = "WARD"

// Defaults.
const (
	DefaultDB          = "ward.db"
	DefaultLogLevel    = "info"
	DefaultPhoneRegion = "US"
	DefaultLogMaxSize  = 10
	DefaultLogBackups  = 3
)

// Config is the resolved runtime configuration.
type Config struct {
	DB            string `mapstructure:"db"`
	LogFile       string `mapstructure:"log_file"`
	LogLevel      string `mapstructure:"log_level"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb"`
	LogMaxBackups int    `mapstructure:"log_max_backups"`
	PhoneRegion   string `mapstructure:"phone_region"`
	BcryptCost    int    `mapstructure:"bcrypt_cost"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"db":           "db",
	"log-file":     "log_file",
	"log-level":    "log_level",
	"phone-region": "phone_region",
	"bcrypt-cost":  "bcrypt_cost",
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("db", DefaultDB, "path to the SQLite database file")
	fs.String("log-file", "", "write logs to this file (rotated); logging is off when empty")
	fs.String("log-level", DefaultLogLevel, "log level (debug|info|warn|error)")
	fs.String("phone-region", DefaultPhoneRegion, "default region for phone numbers without a country code")
	fs.Int("bcrypt-cost", bcrypt.DefaultCost, "bcrypt cost for new passwords")
}

// Load resolves configuration from defaults, WARD_* environment variables
// and any flags in fs that were set explicitly, in increasing priority.
// fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// e.g. WARD_LOG_FILE overrides log_file
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("db", DefaultDB)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_max_size_mb", DefaultLogMaxSize)
	v.SetDefault("log_max_backups", DefaultLogBackups)
	v.SetDefault("phone_region", DefaultPhoneRegion)
	v.SetDefault("bcrypt_cost", bcrypt.DefaultCost)

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.PhoneRegion = strings.ToUpper(strings.TrimSpace(cfg.PhoneRegion))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DB) == "" {
		return fmt.Errorf("db path is required")
	}
	if _, ok := levels[c.LogLevel]; !ok {
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost %d out of range [%d, %d]", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if phonenumbers.GetCountryCodeForRegion(c.PhoneRegion) == 0 {
		return fmt.Errorf("unknown phone region %q", c.PhoneRegion)
	}
	if c.LogMaxSizeMB <= 0 {
		return fmt.Errorf("log max size must be positive, got %d", c.LogMaxSizeMB)
	}
	if c.LogMaxBackups < 0 {
		return fmt.Errorf("log max backups must not be negative, got %d", c.LogMaxBackups)
	}
	return nil
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Level returns the slog level for LogLevel.
func (c *Config) Level() slog.Level {
	return levels[c.LogLevel]
}
