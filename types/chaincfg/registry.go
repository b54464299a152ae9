// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"gitlab.com/energi/energid/types/pow"
	"gitlab.com/energi/energid/types/wire"
)

var (
	// ErrDuplicateNet describes an error where the parameters for a network
	// could not be set due to the network already being registered.
	ErrDuplicateNet = errors.New("duplicate Energi network")

	// ErrUnknownNetwork describes a lookup of a network that is not
	// registered.
	ErrUnknownNetwork = errors.New("unknown chain")
)

// AbortFunc is called when the parameters are found to be inconsistent. The
// process cannot continue after such a failure, so implementations must not
// return control to normal operation; the default panics.
type AbortFunc func(reason string)

func defaultAbort(reason string) {
	panic(reason)
}

// RegistryOption configures a Registry.
type RegistryOption func(r *Registry)

// EnableTestNet60x registers the fast test network next to the default ones.
func EnableTestNet60x(enable bool) RegistryOption {
	return func(r *Registry) {
		r.testNet60x = enable
	}
}

// WithHasher sets the block hasher used by the genesis self-check.
func WithHasher(hasher BlockHasher) RegistryOption {
	return func(r *Registry) {
		r.hasher = hasher
	}
}

// WithAbort replaces the handler invoked on fatal consistency failures.
func WithAbort(abort AbortFunc) RegistryOption {
	return func(r *Registry) {
		r.abort = abort
	}
}

// WithoutDefaults skips registration of the built-in networks.
func WithoutDefaults() RegistryOption {
	return func(r *Registry) {
		r.skipDefaults = true
	}
}

// Registry maps network names to their validated parameters. Params are
// never modified after registration.
type Registry struct {
	mtx   sync.RWMutex
	nets  map[NetName]*Params
	magic map[wire.EnergiNet]NetName
	order []NetName

	hasher       BlockHasher
	abort        AbortFunc
	testNet60x   bool
	skipDefaults bool
}

// NewRegistry creates a registry holding the main, test and regression test
// networks, plus the 60x test network when enabled.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		nets:   make(map[NetName]*Params),
		magic:  make(map[wire.EnergiNet]NetName),
		hasher: wire.DoubleSHA256Hasher{},
		abort:  defaultAbort,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.skipDefaults {
		return r
	}

	r.mustRegister(MainNetParams())
	r.mustRegister(TestNetParams())
	if r.testNet60x {
		r.mustRegister(TestNet60xParams())
	}
	r.mustRegister(RegressionNetParams())
	return r
}

// mustRegister performs the same function as Register except it also aborts
// on a duplicate. Failed self-checks already went to the abort handler.
func (r *Registry) mustRegister(params Params) {
	_, err := r.Register(params)
	if errors.Cause(err) == ErrDuplicateNet {
		r.fatal("failed to register network: " + err.Error())
	}
}

// Register validates the params and stores them under their name. The
// subsidy split and the genesis block are checked first; any mismatch means
// the build is broken and the abort handler is invoked. ErrDuplicateNet is
// returned when the name or the magic is taken. The stored params hold their
// own copies of every slice and big number in params.
func (r *Registry) Register(params Params) (*Params, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.nets[params.Name]; ok {
		return nil, errors.Wrapf(ErrDuplicateNet, "network %s", params.Name)
	}
	if name, ok := r.magic[params.Net]; ok {
		return nil, errors.Wrapf(ErrDuplicateNet, "magic %s used by %s", params.Net, name)
	}

	params.detach()

	if err := checkSubsidySplit(&params.Consensus); err != nil {
		r.fatal(fmt.Sprintf("%s: %v", params.Name, err))
		return nil, err
	}

	if err := r.setGenesis(&params); err != nil {
		r.fatal(fmt.Sprintf("%s: %v", params.Name, err))
		return nil, err
	}

	p := &params
	r.nets[p.Name] = p
	r.magic[p.Net] = p.Name
	r.order = append(r.order, p.Name)

	log.Debug().Str("net", p.Name.String()).
		Stringer("genesis", p.genesisHash).
		Msg("Registered network")
	return p, nil
}

// Lookup returns the params registered under name.
func (r *Registry) Lookup(name NetName) (*Params, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	p, ok := r.nets[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNetwork, "chain %s", name)
	}
	return p, nil
}

// LookupByMagic returns the params whose message start matches net.
func (r *Registry) LookupByMagic(net wire.EnergiNet) (*Params, error) {
	r.mtx.RLock()
	name, ok := r.magic[net]
	r.mtx.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNetwork, "magic %s", net)
	}
	return r.Lookup(name)
}

// Names returns the registered network names in registration order.
func (r *Registry) Names() []NetName {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	names := make([]NetName, len(r.order))
	copy(names, r.order)
	return names
}

// Hasher returns the block hasher of the registry.
func (r *Registry) Hasher() BlockHasher {
	return r.hasher
}

func (r *Registry) fatal(reason string) {
	log.Error().Msg(reason)
	r.abort(reason)
}

func checkSubsidySplit(c *ConsensusParams) error {
	sum := c.BlockSubsidyBackbone + c.BlockSubsidyMiners + c.BlockSubsidyMasternodes
	if sum != c.BlockSubsidy {
		return errors.Errorf("subsidy split %d+%d+%d does not add up to %d",
			c.BlockSubsidyBackbone, c.BlockSubsidyMiners,
			c.BlockSubsidyMasternodes, c.BlockSubsidy)
	}
	return nil
}

// setGenesis builds the genesis block of params, checks its proof of work
// and compares the block hash and merkle root with the expected values.
func (r *Registry) setGenesis(params *Params) error {
	block := CreateGenesisBlock(params.Genesis)

	powHash := r.hasher.PoWHash(&block.Header)
	err := pow.CheckGenesisProofOfWork(powHash, block.Header.Bits, params.Consensus.PowLimit)
	if err != nil {
		return errors.Wrap(err, "genesis proof of work")
	}

	hash := r.hasher.BlockHash(&block.Header)
	if !hash.IsEqual(&params.ExpectedGenesisHash) {
		return errors.Errorf("genesis hash %s, expected %s", hash, params.ExpectedGenesisHash)
	}

	merkleRoot := block.Header.MerkleRoot
	if !merkleRoot.IsEqual(&params.ExpectedGenesisMerkleRoot) {
		return errors.Errorf("genesis merkle root %s, expected %s",
			merkleRoot, params.ExpectedGenesisMerkleRoot)
	}

	params.genesisBlock = block
	params.genesisHash = hash
	params.genesisMerkleRoot = merkleRoot
	return nil
}
