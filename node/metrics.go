// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//metricsManager metrics manager
type metricsManager struct {
	mtx      sync.Mutex
	metrics  []IMetric
	interval time.Duration
	registry *prometheus.Registry
}

//IMetric metric reader
type IMetric interface {
	Read()
}

//IMetricManager metric manager
type IMetricManager interface {
	Add(metrics ...IMetric)
	Registerer() prometheus.Registerer
	Handler() http.Handler
	Listen(ctx context.Context, route string, port uint16) error
}

//Metrics creates metric instance. Metrics are read every interval until ctx
//is done.
func Metrics(ctx context.Context, interval time.Duration) IMetricManager {
	res := &metricsManager{
		interval: interval,
		registry: prometheus.NewRegistry(),
	}

	go res.collector(ctx)
	return res
}

func (m *metricsManager) Add(metrics ...IMetric) {
	m.mtx.Lock()
	m.metrics = append(m.metrics, metrics...)
	m.mtx.Unlock()

	for _, metric := range metrics {
		metric.Read()
	}
}

func (m *metricsManager) Registerer() prometheus.Registerer {
	return m.registry
}

func (m *metricsManager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metricsManager) collector(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.mtx.Lock()
			metrics := m.metrics
			m.mtx.Unlock()

			for _, v := range metrics {
				v.Read()
			}
		}
	}
}

// Listen serves the registry on route until ctx is done.
func (m *metricsManager) Listen(ctx context.Context, route string, port uint16) error {
	mux := http.NewServeMux()
	mux.Handle(route, m.Handler())

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
