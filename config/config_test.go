// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/energi/energid/corelog"
	"gitlab.com/energi/energid/node"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, _, err := LoadConfig([]string{"--datadir", dir})
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, defaultLogDirname), cfg.LogDir)
	assert.Equal(t, filepath.Join(dir, defaultConfigFilename), cfg.ConfigFile)
	assert.FileExists(t, cfg.ConfigFile)
	assert.Equal(t, defaultLogLevel, cfg.DebugLevel)
	assert.Equal(t, node.InstanceConfig{}, cfg.Node)
	assert.Equal(t, defaultMetricsPort, int(cfg.Metrics.Port))
}

func TestLoadConfigFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		args    []string
		check   func(t *testing.T, cfg *node.Config)
	}{
		{
			name: "toml",
			file: "energid.toml",
			content: `debug_level = "debug"

[node]
testnet = true

[metrics]
enable = true
port = 9100
`,
			check: func(t *testing.T, cfg *node.Config) {
				assert.True(t, cfg.Node.TestNet)
				assert.True(t, cfg.Metrics.Enable)
				assert.Equal(t, uint16(9100), cfg.Metrics.Port)
				assert.Equal(t, "debug", cfg.DebugLevel)
			},
		},
		{
			name: "yaml",
			file: "energid.yaml",
			content: `debug_level: warn
node:
  regtest: true
log_config:
  logs_as_json: true
`,
			check: func(t *testing.T, cfg *node.Config) {
				assert.True(t, cfg.Node.RegTest)
				assert.True(t, cfg.LogConfig.LogsAsJSON)
				assert.Equal(t, "warn", cfg.DebugLevel)
			},
		},
		{
			name:    "command line wins",
			file:    "energid.toml",
			content: "debug_level = \"debug\"\n",
			args:    []string{"-d", "error"},
			check: func(t *testing.T, cfg *node.Config) {
				assert.Equal(t, "error", cfg.DebugLevel)
			},
		},
		{
			name: "testnet60x enabled in file",
			file: "energid.toml",
			content: `[node]
enable_testnet60x = true
`,
			args: []string{"--testnet60x"},
			check: func(t *testing.T, cfg *node.Config) {
				name, err := cfg.Node.ChainName()
				require.NoError(t, err)
				assert.Equal(t, "test60", name.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeFile(t, dir, tt.file, tt.content)

			args := append([]string{"--datadir", dir, "--configfile", path}, tt.args...)
			cfg, _, err := LoadConfig(args)
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "testnet and regtest", args: []string{"--testnet", "--regtest"}, wantErr: node.ErrTestRegConflict},
		{name: "testnet60x disabled", args: []string{"--testnet60x"}, wantErr: node.ErrTestNet60xDisabled},
		{
			name:    "testnet60x with regtest",
			args:    []string{"--enabletestnet60x", "--testnet60x", "--regtest"},
			wantErr: node.ErrNetFlagsConflict,
		},
		{name: "help", args: []string{"--help"}, wantErr: ErrEarlyExit},
		{name: "show subsystems", args: []string{"-d", "show"}, wantErr: ErrEarlyExit},
		{name: "bad level", args: []string{"-d", "loud"}},
		{name: "unknown flag", args: []string{"--nope"}},
		{name: "missing config file", args: []string{"--configfile", "/nonexistent/energid.toml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--datadir", t.TempDir()}, tt.args...)
			_, _, err := LoadConfig(args)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			}
		})
	}
}

func TestLoadConfigBadExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "energid.json", "{}")

	_, _, err := LoadConfig([]string{"--datadir", dir, "--configfile", path})
	assert.Error(t, err)
}

func TestLoadConfigVersion(t *testing.T) {
	cfg, _, err := LoadConfig([]string{"--datadir", t.TempDir(), "-V"})
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}

func TestCreateDefaultConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", defaultConfigFilename)

	require.NoError(t, createDefaultConfigFile(path, defaultConfig(dir)))

	var cfg node.Config
	require.NoError(t, loadConfigFile(path, &cfg))
	assert.Equal(t, filepath.Dir(path), cfg.DataDir)
	assert.Equal(t, defaultLogLevel, cfg.DebugLevel)
	assert.Equal(t, corelog.Config{}.Default(), cfg.LogConfig)
	assert.Equal(t, uint16(defaultMetricsPort), cfg.Metrics.Port)
}

func TestParseAndSetDebugLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
		unit    string
		want    zerolog.Level
	}{
		{name: "all info", level: "info", unit: logUnitNODE, want: zerolog.InfoLevel},
		{name: "all critical", level: "critical", unit: logUnitENRG, want: zerolog.FatalLevel},
		{name: "pairs", level: "CHCF=trace,MINR=debug", unit: logUnitCHCF, want: zerolog.TraceLevel},
		{name: "pair", level: "MINR=warn", unit: logUnitMINR, want: zerolog.WarnLevel},
		{name: "invalid level", level: "loud", wantErr: true},
		{name: "invalid subsystem", level: "XXXX=debug", wantErr: true},
		{name: "invalid pair", level: "CHCF,MINR=debug", wantErr: true},
		{name: "invalid pair level", level: "CHCF=loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseAndSetDebugLevels(tt.level, corelog.Config{DisableConsoleLog: true})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, UnitLogger(tt.unit).GetLevel())
		})
	}
}

func TestSupportedSubsystems(t *testing.T) {
	assert.Equal(t, []string{"CHCF", "ENRG", "MINR", "NODE"}, supportedSubsystems())
	assert.Equal(t, zerolog.Disabled, UnitLogger("NONE").GetLevel())
}
