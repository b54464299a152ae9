// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"errors"

	"gitlab.com/energi/energid/corelog"
	"gitlab.com/energi/energid/types/chaincfg"
)

var (
	// ErrNetFlagsConflict is returned when more than one network flag is set
	// and the fast test network is enabled.
	ErrNetFlagsConflict = errors.New("Invalid combination of -regtest, -testnet and/or -testnet60x. Can't be used together.")

	// ErrTestRegConflict is returned when both -testnet and -regtest are set.
	ErrTestRegConflict = errors.New("Invalid combination of -regtest and -testnet. Can't be used together.")

	// ErrTestNet60xDisabled is returned when -testnet60x is set without
	// -enabletestnet60x.
	ErrTestNet60xDisabled = errors.New("-testnet60x requires -enabletestnet60x")
)

type Config struct {
	ConfigFile  string `toml:"-" yaml:"-" short:"C" long:"configfile" description:"Path to configuration file"`
	ShowVersion bool   `toml:"-" yaml:"-" short:"V" long:"version" description:"Display version information and exit"`

	Node      InstanceConfig `yaml:"node" toml:"node"`
	LogConfig corelog.Config `yaml:"log_config" toml:"log_config"`
	Metrics   MetricsConfig  `yaml:"metrics" toml:"metrics"`

	DataDir    string `yaml:"data_dir" toml:"data_dir" short:"b" long:"datadir" description:"Directory to store data"`
	LogDir     string `yaml:"log_dir" toml:"log_dir" long:"logdir" description:"Directory to log output."`
	DebugLevel string `yaml:"debug_level" toml:"debug_level" short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
}

type MetricsConfig struct {
	Enable   bool   `yaml:"enable" toml:"enable" long:"metrics" description:"Serve prometheus metrics"`
	Interval int    `yaml:"interval" toml:"interval" long:"metricsinterval" description:"Seconds between metric updates"`
	Port     uint16 `yaml:"port" toml:"port" long:"metricsport" description:"Port of the metrics endpoint"`
}

type InstanceConfig struct {
	TestNet          bool `yaml:"testnet" toml:"testnet" long:"testnet" description:"Use the test network"`
	TestNet60x       bool `yaml:"testnet60x" toml:"testnet60x" long:"testnet60x" description:"Use the 60x test network"`
	RegTest          bool `yaml:"regtest" toml:"regtest" long:"regtest" description:"Use the regression test network"`
	EnableTestNet60x bool `yaml:"enable_testnet60x" toml:"enable_testnet60x" long:"enabletestnet60x" description:"Register the 60x test network"`
}

// ChainName resolves the network flags to a network name. At most one flag
// may be set; none selects the main network.
func (cfg *InstanceConfig) ChainName() (chaincfg.NetName, error) {
	if cfg.TestNet60x && !cfg.EnableTestNet60x {
		return "", ErrTestNet60xDisabled
	}

	if cfg.EnableTestNet60x {
		if (cfg.TestNet && cfg.RegTest) || (cfg.TestNet60x && cfg.RegTest) ||
			(cfg.TestNet && cfg.TestNet60x) {
			return "", ErrNetFlagsConflict
		}
		if cfg.TestNet60x {
			return chaincfg.TestNet60xName, nil
		}
	}

	if cfg.TestNet && cfg.RegTest {
		return "", ErrTestRegConflict
	}

	switch {
	case cfg.RegTest:
		return chaincfg.RegressionName, nil
	case cfg.TestNet:
		return chaincfg.TestNetName, nil
	}
	return chaincfg.MainNetName, nil
}

// RegistryOptions returns the registry options implied by the config.
func (cfg *InstanceConfig) RegistryOptions() []chaincfg.RegistryOption {
	return []chaincfg.RegistryOption{
		chaincfg.EnableTestNet60x(cfg.EnableTestNet60x),
	}
}
