// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/energi/energid/types/chaincfg"
)

const (
	defaultMetricsInterval = 5
	defaultMetricsPort     = 2112
)

type chainController struct {
	logger zerolog.Logger
	cfg    *Config

	registry *chaincfg.Registry
	active   *chaincfg.ActiveNet

	wg      sync.WaitGroup
	metrics IMetricManager

	// shutdown is called when a background service fails.
	shutdown func()
}

// Controller returns a node controller. shutdown, when not nil, is called
// if a background service such as the metrics server stops with an error.
func Controller(logger zerolog.Logger, shutdown func()) *chainController {
	return &chainController{logger: logger, shutdown: shutdown}
}

// Init builds the parameter registry, selects the network requested by the
// config and namespaces the data directory by it.
func (chainCtl *chainController) Init(cfg *Config) (*chaincfg.Params, error) {
	if chainCtl.active != nil && chainCtl.active.IsSelected() {
		return chainCtl.active.Current(), nil
	}

	name, err := cfg.Node.ChainName()
	if err != nil {
		return nil, err
	}

	chainCtl.registry = chaincfg.NewRegistry(cfg.Node.RegistryOptions()...)
	chainCtl.active = chaincfg.NewActiveNet(chainCtl.registry)

	params, err := chainCtl.active.Select(name)
	if err != nil {
		return nil, err
	}

	chainCtl.cfg = cfg
	if params.DataDirName != "" {
		cfg.DataDir = filepath.Join(cfg.DataDir, params.DataDirName)
	}
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, err
	}

	chainCtl.logger.Info().
		Str("net", params.Name.String()).
		Stringer("magic", params.Net).
		Str("port", params.DefaultPort).
		Stringer("genesis", params.GenesisHash()).
		Str("data_dir", cfg.DataDir).
		Msg("Network parameters loaded")
	return params, nil
}

// Run selects the network and blocks until ctx is done.
func (chainCtl *chainController) Run(ctx context.Context, cfg *Config) error {
	params, err := chainCtl.Init(cfg)
	if err != nil {
		chainCtl.logger.Error().Err(err).Msg("Can't select network")
		return err
	}

	if cfg.Metrics.Enable {
		chainCtl.wg.Add(1)
		go func() {
			defer chainCtl.wg.Done()
			if err := chainCtl.runMetricsServer(ctx, cfg, params); err != nil {
				chainCtl.logger.Error().Err(err).Msg("listen metrics server")
				if chainCtl.shutdown != nil {
					chainCtl.shutdown()
				}
			}
		}()
	}

	<-ctx.Done()
	chainCtl.wg.Wait()
	return nil
}

// ActiveNet returns the selector holding the network chosen by Init.
func (chainCtl *chainController) ActiveNet() (*chaincfg.ActiveNet, error) {
	if chainCtl.active == nil {
		return nil, errors.New("controller is not initialized")
	}
	return chainCtl.active, nil
}

func (chainCtl *chainController) runMetricsServer(ctx context.Context, cfg *Config, params *chaincfg.Params) error {
	chainCtl.logger.Info().Msg("Metrics Enabled")
	interval := cfg.Metrics.Interval
	if interval == 0 {
		interval = defaultMetricsInterval
	}
	port := cfg.Metrics.Port
	if port == 0 {
		port = defaultMetricsPort
	}

	chainCtl.metrics = Metrics(ctx, time.Duration(interval)*time.Second)
	chainCtl.metrics.Add(
		NodeMetrics(cfg, params, chainCtl.metrics.Registerer(), chainCtl.logger),
	)

	return chainCtl.metrics.Listen(ctx, "/metrics", port)
}
