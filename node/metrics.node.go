// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"gitlab.com/energi/energid/types/chaincfg"
	"gitlab.com/energi/energid/types/pow"
)

type nodeMetrics struct {
	sync.Mutex
	metricsByName map[string]*prometheus.GaugeVec
	registerer    prometheus.Registerer
	params        *chaincfg.Params
	logger        zerolog.Logger
	cfg           *Config
}

// NodeMetrics reports the active network and the size of the node
// directories.
func NodeMetrics(cfg *Config, params *chaincfg.Params, registerer prometheus.Registerer,
	logger zerolog.Logger) IMetric {
	return &nodeMetrics{
		logger:        logger,
		cfg:           cfg,
		params:        params,
		registerer:    registerer,
		metricsByName: make(map[string]*prometheus.GaugeVec),
	}
}

func (s *nodeMetrics) Read() {
	net := s.params.Name.String()
	s.updateGauge(prometheus.BuildFQName("node", "network", "info"),
		"Active network, labelled by name and magic.", 1,
		"net", net, "magic", s.params.Net.String())
	s.updateGauge(prometheus.BuildFQName("node", "network", "genesis_time"),
		"Timestamp of the genesis block.", float64(s.params.Genesis.Time),
		"net", net)
	s.updateGauge(prometheus.BuildFQName("node", "network", "genesis_difficulty"),
		"Difficulty of the genesis block relative to the pow limit.",
		pow.Difficulty(s.params.Genesis.Bits, s.params.Consensus.PowLimit),
		"net", net)

	dSize, err := dirSize(s.cfg.DataDir)
	if err != nil && !os.IsNotExist(err) {
		s.logger.Error().Err(err).Msg("can't calculate data dir size")
		return
	}
	s.updateGauge(prometheus.BuildFQName("node", "status", "data_size"),
		"Bytes stored in the data directory.", float64(dSize), "net", net)

	logSize, err := dirSize(s.cfg.LogDir)
	if err != nil && !os.IsNotExist(err) {
		s.logger.Error().Err(err).Msg("can't calculate log dir size")
	}
	s.updateGauge(prometheus.BuildFQName("node", "status", "log_size"),
		"Bytes stored in the log directory.", float64(logSize), "net", net)
}

// updateGauge sets the gauge identified by name and the label pairs,
// registering it on first use.
func (s *nodeMetrics) updateGauge(name, help string, value float64, labelPairs ...string) {
	s.Lock()
	defer s.Unlock()

	names := make([]string, 0, len(labelPairs)/2)
	labels := make(prometheus.Labels, len(labelPairs)/2)
	for i := 0; i+1 < len(labelPairs); i += 2 {
		names = append(names, labelPairs[i])
		labels[labelPairs[i]] = labelPairs[i+1]
	}

	m, ok := s.metricsByName[name]
	if !ok {
		m = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: name,
			Help: help,
		}, names)
		if err := s.registerer.Register(m); err != nil {
			s.logger.Error().Err(err).Str("metric", name).Msg("can't register metric")
		}
		s.metricsByName[name] = m
	}
	m.With(labels).Set(value)
}

func dirSize(path string) (int64, error) {
	var size int64
	if path == "" {
		return 0, nil
	}
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return err
	})
	return size, err
}
