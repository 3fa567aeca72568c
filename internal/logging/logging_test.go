package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ward/internal/config"
)

func testConfig(logFile, level string) *config.Config {
	return &config.Config{
		DB:            "ward.db",
		LogFile:       logFile,
		LogLevel:      level,
		LogMaxSizeMB:  1,
		LogMaxBackups: 1,
		PhoneRegion:   "US",
		BcryptCost:    4,
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ward.log")

	logger, closer := New(testConfig(path, "info"))
	logger.Debug("hidden")
	logger.Info("store opened", "path", "ward.db")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `msg="store opened"`)
	assert.Contains(t, out, "app=ward")
	assert.NotContains(t, out, "hidden")
}

func TestNew_DiscardsWithoutFile(t *testing.T) {
	logger, closer := New(testConfig("", "debug"))
	require.NotNil(t, logger)
	logger.Info("nowhere")
	assert.NoError(t, closer.Close())
}
