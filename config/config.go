// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pelletier/go-toml"
	"gitlab.com/energi/energid/corelog"
	"gitlab.com/energi/energid/node"
	"gitlab.com/energi/energid/nrgutil"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFilename = "energid.toml"
	defaultLogDirname     = "logs"
	defaultLogLevel       = "info"

	defaultMetricsInterval = 5
	defaultMetricsPort     = 2112
)

var (
	defaultHomeDir = nrgutil.AppDataDir("energid", false)

	// ErrEarlyExit is returned after the help text or the list of log
	// subsystems has been printed.
	ErrEarlyExit = errors.New("nothing to run")
)

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace", "debug", "info", "warn", "warning", "error", "critical", "off":
		_, ok := corelog.ParseLevel(logLevel)
		return ok
	}
	return false
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	unitMtx.Lock()
	defer unitMtx.Unlock()

	// Convert the unitLogs map keys to a slice.
	subsystems := make([]string, 0, len(unitLogs))
	for subsysID := range unitLogs {
		subsystems = append(subsystems, subsysID)
	}

	// Sort the subsystems for stable display.
	sort.Strings(subsystems)
	return subsystems
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string, logConfig corelog.Config) error {
	// When the specified string doesn't have any delimters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		if !validLogLevel(debugLevel) {
			str := "The specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		// Change the logging level for all subsystems.
		level, _ := corelog.ParseLevel(debugLevel)
		setLogLevels(level, logConfig)
		setLoggers()
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "The specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if !isSubsystem(subsysID) {
			str := "The specified subsystem [%v] is invalid -- " +
				"supported subsytems %v"
			return fmt.Errorf(str, subsysID, supportedSubsystems())
		}

		// Validate log level.
		if !validLogLevel(logLevel) {
			str := "The specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		level, _ := corelog.ParseLevel(logLevel)
		setLogLevel(subsysID, level, logConfig)
	}

	setLoggers()
	return nil
}

func isSubsystem(unit string) bool {
	for _, s := range supportedSubsystems() {
		if s == unit {
			return true
		}
	}
	return false
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// newConfigParser returns a new command line flags parser.
func newConfigParser(cfg *node.Config, options flags.Options) *flags.Parser {
	return flags.NewParser(cfg, options)
}

func defaultConfig(dataDir string) node.Config {
	return node.Config{
		ConfigFile: filepath.Join(dataDir, defaultConfigFilename),
		DataDir:    dataDir,
		DebugLevel: defaultLogLevel,
		LogConfig:  corelog.Config{}.Default(),
		Metrics: node.MetricsConfig{
			Interval: defaultMetricsInterval,
			Port:     defaultMetricsPort,
		},
	}
}

// LoadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
// 	1) Start with a default config with sane settings
// 	2) Pre-parse the command line to check for an alternative config file
// 	3) Load configuration file overwriting defaults with any specified options
// 	4) Parse CLI options and overwrite/add any specified options
//
// The above results in energid functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options.  Command line options always take
// precedence.
func LoadConfig(args []string) (*node.Config, []string, error) {
	funcName := "LoadConfig"

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = defaultHomeDir
	}
	cfg := defaultConfig(dataDir)

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := cfg
	preParser := newConfigParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return nil, nil, ErrEarlyExit
		}
	}

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		return &preCfg, nil, nil
	}

	// A data dir given on the command line also moves the default config
	// file.
	configFile := preCfg.ConfigFile
	explicitConfig := configFile != cfg.ConfigFile
	if !explicitConfig && preCfg.DataDir != cfg.DataDir {
		configFile = filepath.Join(cleanAndExpandPath(preCfg.DataDir), defaultConfigFilename)
	}
	configFile = cleanAndExpandPath(configFile)

	if !fileExists(configFile) {
		if explicitConfig {
			err := fmt.Errorf("%s: config file %s does not exist", funcName, configFile)
			fmt.Fprintln(os.Stderr, err)
			return nil, nil, err
		}
		if err := createDefaultConfigFile(configFile, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating a default config file: %v\n", err)
		}
	}

	if fileExists(configFile) {
		if err := loadConfigFile(configFile, &cfg); err != nil {
			err := fmt.Errorf("%s: %v", funcName, err)
			fmt.Fprintln(os.Stderr, err)
			return nil, nil, err
		}
	}
	cfg.ConfigFile = configFile

	// Parse command line options again to ensure they take precedence.
	parser := newConfigParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	if _, err := cfg.Node.ChainName(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	// Create the home directory if it doesn't already exist.
	cfg.DataDir = cleanAndExpandPath(cfg.DataDir)
	err = os.MkdirAll(cfg.DataDir, 0o700)
	if err != nil {
		// Show a nicer error message if it's because a symlink is
		// linked to a directory that does not exist (probably because
		// it's not mounted).
		if e, ok := err.(*os.PathError); ok && os.IsExist(err) {
			if link, lerr := os.Readlink(e.Path); lerr == nil {
				str := "is symlink %s -> %s mounted?"
				err = fmt.Errorf(str, e.Path, link)
			}
		}

		str := "%s: Failed to create home directory: %v"
		err := fmt.Errorf(str, funcName, err)
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(cfg.DataDir, defaultLogDirname)
	}
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		return nil, nil, ErrEarlyExit
	}

	// Parse, validate, and set debug log level(s).
	cfg.LogConfig.Directory = cfg.LogDir
	if cfg.LogConfig.Filename == "" {
		cfg.LogConfig.Filename = corelog.DefaultLogFile
	}
	err = parseAndSetDebugLevels(cfg.DebugLevel, cfg.LogConfig)
	if err != nil {
		err := fmt.Errorf("%s: %v", funcName, err.Error())
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}

// loadConfigFile decodes the file into cfg by its extension.
func loadConfigFile(path string, cfg *node.Config) error {
	cfgFile, err := os.Open(path)
	if err != nil {
		return err
	}
	defer cfgFile.Close()

	return decodeConfig(cfgFile, filepath.Ext(path), cfg)
}

func decodeConfig(r io.Reader, ext string, cfg *node.Config) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err := yaml.NewDecoder(r).Decode(cfg)
		if err == io.EOF {
			return nil
		}
		return err
	case ".toml":
		return toml.NewDecoder(r).Decode(cfg)
	}
	return fmt.Errorf("invalid config file extension %q, must be .toml or .yaml", ext)
}

// createDefaultConfigFile writes cfg as TOML to destinationPath.
func createDefaultConfigFile(destinationPath string, cfg node.Config) error {
	// Create the destination directory if it does not exists
	err := os.MkdirAll(filepath.Dir(destinationPath), 0o700)
	if err != nil {
		return err
	}

	cfg.DataDir = filepath.Dir(destinationPath)
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(destinationPath, data, 0o600)
}
