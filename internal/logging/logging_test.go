package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "JSON format to stdout",
			config: Config{Level: "info", Format: "json", Output: "stdout"},
		},
		{
			name:   "console format to stderr",
			config: Config{Level: "debug", Format: "console", Output: "stderr"},
		},
		{
			name:   "invalid level defaults to info",
			config: Config{Level: "not-a-level", Format: "json", Output: "stdout"},
		},
		{
			name:   "empty config",
			config: Config{},
		},
		{
			name:    "unwritable file path",
			config:  Config{Level: "info", Format: "json", Output: "/nonexistent-dir/app.log"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNewLoggerFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, err := NewLogger(Config{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Info("written to file")
	assert.FileExists(t, path)
}

func TestLoggerFieldHelpers(t *testing.T) {
	logger, err := NewDefaultLogger()
	require.NoError(t, err)

	// Field helpers return derived loggers, not the receiver.
	withVideo := logger.WithVideoID("dQw4w9WgXcQ")
	assert.NotSame(t, logger, withVideo)

	withRequest := logger.WithRequestID("req-1")
	assert.NotSame(t, logger, withRequest)

	// Smoke the level methods.
	withVideo.Debug("debug message")
	withVideo.Infof("info %s", "message")
	withRequest.Warn("warn message")
	withRequest.Errorf("error %s", "message")
}
