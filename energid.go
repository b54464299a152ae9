// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"gitlab.com/energi/energid/config"
	"gitlab.com/energi/energid/node"
)

// appVersion is overridden at link time.
var appVersion = "0.1.0-dev"

func main() {
	// Use all processor cores.
	runtime.GOMAXPROCS(runtime.NumCPU())

	// Work around defer not working after os.Exit()
	if err := energidMain(); err != nil {
		if errors.Is(err, config.ErrEarlyExit) {
			os.Exit(0)
		}
		fmt.Println("FATAL:", err)
		os.Exit(1)
	}
}

// energidMain is the real main function for energid.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func energidMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	cfg, _, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	if cfg.ShowVersion {
		fmt.Println("energid version", appVersion)
		return nil
	}

	log := config.Log()
	defer log.Info().Msg("Shutdown complete")

	// Show version at startup.
	log.Info().Msgf("Version %s", appVersion)

	// Get a channel that will be closed when a shutdown signal has been
	// triggered either from an OS signal such as SIGINT (Ctrl+C) or from
	// another subsystem.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := interruptListener(log.With().Str("ctx", "interruptListener").Logger())
	go func() {
		<-sigChan
		log.Info().Msg("propagate stop signal")
		cancel()
	}()

	controller := node.Controller(config.UnitLogger("NODE"), requestShutdown)
	if err := controller.Run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("Can't run node")
		return err
	}

	return nil
}
