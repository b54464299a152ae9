// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// ErrNetAlreadySelected is returned by a second Select.
var ErrNetAlreadySelected = errors.New("active network already selected")

// ActiveNet holds the network chosen at startup. It is written once and may
// be read from any goroutine afterwards.
type ActiveNet struct {
	registry *Registry

	mtx     sync.Mutex
	current atomic.Value // *Params
}

// NewActiveNet returns a handle with no network selected.
func NewActiveNet(registry *Registry) *ActiveNet {
	return &ActiveNet{registry: registry}
}

// Select makes the named network the active one. It fails for unknown names
// and when a network has already been selected.
func (a *ActiveNet) Select(name NetName) (*Params, error) {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	if prev, ok := a.current.Load().(*Params); ok {
		return nil, errors.Wrapf(ErrNetAlreadySelected, "%s is active", prev.Name)
	}

	params, err := a.registry.Lookup(name)
	if err != nil {
		return nil, err
	}

	a.current.Store(params)
	log.Info().Str("net", name.String()).Msg("Selected network")
	return params, nil
}

// IsSelected reports whether Select has succeeded.
func (a *ActiveNet) IsSelected() bool {
	_, ok := a.current.Load().(*Params)
	return ok
}

// Current returns the selected params. Calling it before Select is a
// programming error and goes to the registry's abort handler; nil is
// returned if that handler returns.
func (a *ActiveNet) Current() *Params {
	params, ok := a.current.Load().(*Params)
	if !ok {
		a.registry.fatal("active network queried before selection")
		return nil
	}
	return params
}
