// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corelog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		level zerolog.Level
		ok    bool
	}{
		{"trace", zerolog.TraceLevel, true},
		{"debug", zerolog.DebugLevel, true},
		{"INFO", zerolog.InfoLevel, true},
		{"warn", zerolog.WarnLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"error", zerolog.ErrorLevel, true},
		{"critical", zerolog.FatalLevel, true},
		{"off", zerolog.Disabled, true},
		{"", zerolog.NoLevel, false},
		{"loud", zerolog.NoLevel, false},
	}
	for _, tt := range tests {
		level, ok := ParseLevel(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.level, level, tt.in)
	}
}

func TestNewWithOutput(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{}.Default()
	cfg.DisableConsoleLog = true

	logger := NewWithOutput("CHCF", zerolog.InfoLevel, cfg, &buf)
	logger.Debug().Msg("hidden")
	logger.Info().Str("net", "main").Msg("selected")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "energid", entry["app"])
	assert.Equal(t, "CHCF", entry["unit"])
	assert.Equal(t, "main", entry["net"])
	assert.Equal(t, "selected", entry["message"])
}

func TestRollingFile(t *testing.T) {
	dir, err := os.MkdirTemp("", "corelog")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	cfg := Config{}.Default()
	cfg.DisableConsoleLog = true
	cfg.FileLoggingEnabled = true
	cfg.Directory = filepath.Join(dir, "logs")

	logger := New("NODE", zerolog.InfoLevel, cfg)
	logger.Info().Msg("to file")

	data, err := os.ReadFile(filepath.Join(cfg.Directory, DefaultLogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
