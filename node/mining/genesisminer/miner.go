// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genesisminer searches the nonce of a genesis block whose proof of
// work hash meets its own target.
package genesisminer

import (
	"context"
	"fmt"
	"math/big"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"gitlab.com/energi/energid/types/chaincfg"
	"gitlab.com/energi/energid/types/chainhash"
	"gitlab.com/energi/energid/types/pow"
	"gitlab.com/energi/energid/types/wire"
	"golang.org/x/sync/errgroup"
)

// DefaultProgressInterval is the number of hashes between progress reports.
const DefaultProgressInterval = 250000

// ErrNoSolution is returned when MaxTries nonces were tried without success.
var ErrNoSolution = errors.New("no nonce within the search range meets the target")

type Config struct {
	// Opts describes the block. Opts.Nonce is the first nonce tried.
	Opts chaincfg.GenesisBlockOpts

	// PowLimit is the easiest target the network accepts.
	PowLimit *big.Int

	// Hasher defaults to double SHA-256.
	Hasher chaincfg.BlockHasher

	// Workers defaults to the number of CPUs.
	Workers int

	// MaxTries bounds the number of nonces tried. Zero means no bound.
	MaxTries uint64

	ProgressInterval uint64
}

// Result is a solved genesis block.
type Result struct {
	Block      *wire.MsgBlock
	Nonce      uint64
	Hash       chainhash.Hash
	PoWHash    chainhash.Hash
	MerkleRoot chainhash.Hash
	Hashes     uint64
	Elapsed    time.Duration
}

type Miner struct {
	cfg    Config
	target *big.Int
}

// New checks the target encoded by cfg.Opts.Bits against the pow limit and
// returns a miner for it.
func New(cfg Config) (*Miner, error) {
	if cfg.PowLimit == nil {
		return nil, errors.New("pow limit is not set")
	}
	if cfg.Hasher == nil {
		cfg.Hasher = wire.DoubleSHA256Hasher{}
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.ProgressInterval == 0 {
		cfg.ProgressInterval = DefaultProgressInterval
	}

	target, negative, overflow := pow.DecodeCompact(cfg.Opts.Bits)
	switch {
	case negative, overflow, target.Sign() == 0:
		return nil, errors.Errorf("bits %08x do not encode a usable target", cfg.Opts.Bits)
	case target.Cmp(cfg.PowLimit) > 0:
		return nil, errors.Errorf("target %064x is above the pow limit %064x", target, cfg.PowLimit)
	}

	return &Miner{cfg: cfg, target: target}, nil
}

// search is the state of a single Solve call.
type search struct {
	*Miner
	started time.Time
	hashes  uint64
	found   uint32
	nonce   uint64
}

// Solve tries nonces starting at Opts.Nonce until the proof of work hash is
// at or below the target. Workers take interleaved nonces and all of them
// stop once one succeeds or ctx is done.
func (m *Miner) Solve(ctx context.Context) (*Result, error) {
	block := chaincfg.CreateGenesisBlock(m.cfg.Opts)
	s := &search{Miner: m, started: time.Now()}

	log.Info().
		Str("bits", fmt.Sprintf("%08x", m.cfg.Opts.Bits)).
		Str("target", fmt.Sprintf("%064x", m.target)).
		Uint64("start_nonce", m.cfg.Opts.Nonce).
		Int("workers", m.cfg.Workers).
		Msg("Searching for genesis nonce")

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < m.cfg.Workers; w++ {
		worker := uint64(w)
		header := block.Header
		g.Go(func() error {
			return s.work(gctx, header, worker)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	hashes := atomic.LoadUint64(&s.hashes)
	if atomic.LoadUint32(&s.found) == 0 {
		return nil, errors.Wrapf(ErrNoSolution, "%d nonces tried", hashes)
	}

	block.Header.Nonce = s.nonce
	powHash := m.cfg.Hasher.PoWHash(&block.Header)
	if err := pow.CheckGenesisProofOfWork(powHash, block.Header.Bits, m.cfg.PowLimit); err != nil {
		return nil, errors.Wrap(err, "solved block fails proof of work")
	}

	res := &Result{
		Block:      block,
		Nonce:      s.nonce,
		Hash:       m.cfg.Hasher.BlockHash(&block.Header),
		PoWHash:    powHash,
		MerkleRoot: block.Header.MerkleRoot,
		Hashes:     hashes,
		Elapsed:    time.Since(s.started),
	}

	log.Info().
		Uint64("nonce", res.Nonce).
		Stringer("hash", res.Hash).
		Stringer("merkle_root", res.MerkleRoot).
		Uint64("hashes", res.Hashes).
		Dur("elapsed", res.Elapsed).
		Msg("Genesis block solved")
	return res, nil
}

func (s *search) work(ctx context.Context, header wire.BlockHeader, worker uint64) error {
	step := uint64(s.cfg.Workers)
	for k := worker; s.cfg.MaxTries == 0 || k < s.cfg.MaxTries; k += step {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if atomic.LoadUint32(&s.found) != 0 {
			return nil
		}

		header.Nonce = s.cfg.Opts.Nonce + k
		hash := s.cfg.Hasher.PoWHash(&header)
		s.countHash()

		if pow.HashToBig(&hash).Cmp(s.target) <= 0 {
			if atomic.CompareAndSwapUint32(&s.found, 0, 1) {
				s.nonce = header.Nonce
			}
			return nil
		}
	}
	return nil
}

func (s *search) countHash() {
	n := atomic.AddUint64(&s.hashes, 1)
	if n%s.cfg.ProgressInterval != 0 {
		return
	}

	elapsed := time.Since(s.started).Seconds()
	if elapsed == 0 {
		elapsed = 1e-9
	}
	log.Info().
		Uint64("hashes", n).
		Float64("hps", float64(n)/elapsed).
		Msg("Genesis search progress")
}
