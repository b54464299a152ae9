// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Decred developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/energi/energid/corelog"
	"gitlab.com/energi/energid/node/mining/genesisminer"
	"gitlab.com/energi/energid/types/chaincfg"
)

const (
	logUnitCHCF = "CHCF"
	logUnitENRG = "ENRG"
	logUnitMINR = "MINR"
	logUnitNODE = "NODE"
)

var (
	unitMtx sync.Mutex

	// unitLogs maps each subsystem identifier to its associated logger.
	unitLogs = map[string]zerolog.Logger{
		logUnitCHCF: corelog.New(logUnitCHCF, corelog.DefaultLevel, corelog.Config{}.Default()),
		logUnitENRG: corelog.New(logUnitENRG, corelog.DefaultLevel, corelog.Config{}.Default()),
		logUnitMINR: corelog.New(logUnitMINR, corelog.DefaultLevel, corelog.Config{}.Default()),
		logUnitNODE: corelog.New(logUnitNODE, corelog.DefaultLevel, corelog.Config{}.Default()),
	}
)

func init() {
	setLoggers()
}

// setLoggers pushes the unit loggers into the packages that use them.
func setLoggers() {
	chaincfg.UseLogger(unitLogs[logUnitCHCF])
	genesisminer.UseLogger(unitLogs[logUnitMINR])
}

// Log is the logger of the daemon itself.
func Log() zerolog.Logger {
	return UnitLogger(logUnitENRG)
}

// UnitLogger returns the logger of the subsystem, or a disabled logger for
// unknown ones.
func UnitLogger(unit string) zerolog.Logger {
	unitMtx.Lock()
	defer unitMtx.Unlock()

	logger, ok := unitLogs[unit]
	if !ok {
		return corelog.Disabled
	}
	return logger
}

// setLogLevel sets the logging level for provided subsystem.  Invalid
// subsystems are ignored.
func setLogLevel(unit string, level zerolog.Level, logConfig corelog.Config) {
	unitMtx.Lock()
	defer unitMtx.Unlock()

	if _, ok := unitLogs[unit]; !ok {
		return
	}
	unitLogs[unit] = corelog.New(unit, level, logConfig)
}

// setLogLevels sets the log level for all subsystem loggers to the passed
// level.
func setLogLevels(level zerolog.Level, logConfig corelog.Config) {
	for _, unit := range supportedSubsystems() {
		setLogLevel(unit, level, logConfig)
	}
}
