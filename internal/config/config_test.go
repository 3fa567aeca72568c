package config

import (
	"log/slog"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("ward", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, &Config{
		DB:            DefaultDB,
		LogLevel:      "info",
		LogMaxSizeMB:  DefaultLogMaxSize,
		LogMaxBackups: DefaultLogBackups,
		PhoneRegion:   "US",
		BcryptCost:    bcrypt.DefaultCost,
	}, cfg)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoad_NilFlagSet(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultDB, cfg.DB)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load(newFlags(t,
		"--db", "/tmp/h.db",
		"--log-file", "/tmp/ward.log",
		"--log-level", "DEBUG",
		"--phone-region", "gb",
		"--bcrypt-cost", "4",
	))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/h.db", cfg.DB)
	assert.Equal(t, "/tmp/ward.log", cfg.LogFile)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "GB", cfg.PhoneRegion)
	assert.Equal(t, 4, cfg.BcryptCost)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WARD_DB", "/data/env.db")
	t.Setenv("WARD_LOG_LEVEL", "warn")
	t.Setenv("WARD_LOG_MAX_BACKUPS", "7")

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "/data/env.db", cfg.DB)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7, cfg.LogMaxBackups)
}

func TestLoad_FlagBeatsEnv(t *testing.T) {
	t.Setenv("WARD_DB", "/data/env.db")

	cfg, err := Load(newFlags(t, "--db", "/data/flag.db"))
	require.NoError(t, err)
	assert.Equal(t, "/data/flag.db", cfg.DB)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"empty db", []string{"--db", " "}, "db path is required"},
		{"bad level", []string{"--log-level", "loud"}, "invalid log level"},
		{"cost too low", []string{"--bcrypt-cost", "1"}, "bcrypt cost"},
		{"cost too high", []string{"--bcrypt-cost", "40"}, "bcrypt cost"},
		{"bad region", []string{"--phone-region", "ZZ"}, "unknown phone region"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newFlags(t, tt.args...))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
