// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genesisminer

import (
	"bytes"
	"context"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/energi/energid/types/chaincfg"
	"gitlab.com/energi/energid/types/pow"
	"gitlab.com/energi/energid/types/wire"
)

func regtestConfig(workers int) Config {
	params := chaincfg.RegressionNetParams()
	opts := params.Genesis
	opts.Nonce = 0
	return Config{
		Opts:     opts,
		PowLimit: params.Consensus.PowLimit,
		Workers:  workers,
	}
}

func TestSolveRegtest(t *testing.T) {
	params := chaincfg.RegressionNetParams()

	miner, err := New(regtestConfig(1))
	require.NoError(t, err)

	res, err := miner.Solve(context.Background())
	require.NoError(t, err)

	// nonce 12 is known to satisfy the target, so a single worker starting
	// at zero stops no later than that.
	assert.LessOrEqual(t, res.Nonce, params.Genesis.Nonce)
	assert.Equal(t, res.Nonce+1, res.Hashes)
	assert.Equal(t, res.Nonce, res.Block.Header.Nonce)
	assert.Equal(t, params.ExpectedGenesisMerkleRoot, res.MerkleRoot)

	hasher := wire.DoubleSHA256Hasher{}
	assert.Equal(t, hasher.BlockHash(&res.Block.Header), res.Hash)
	assert.NoError(t, pow.CheckGenesisProofOfWork(res.PoWHash, res.Block.Header.Bits,
		params.Consensus.PowLimit))
}

func TestSolveFromKnownNonce(t *testing.T) {
	params := chaincfg.RegressionNetParams()

	cfg := regtestConfig(1)
	cfg.Opts.Nonce = params.Genesis.Nonce
	miner, err := New(cfg)
	require.NoError(t, err)

	res, err := miner.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, params.Genesis.Nonce, res.Nonce)
	assert.Equal(t, params.ExpectedGenesisHash, res.Hash)
	assert.Equal(t, uint64(1), res.Hashes)
}

func TestSolveManyWorkers(t *testing.T) {
	params := chaincfg.RegressionNetParams()

	miner, err := New(regtestConfig(4))
	require.NoError(t, err)

	res, err := miner.Solve(context.Background())
	require.NoError(t, err)
	assert.NoError(t, pow.CheckGenesisProofOfWork(res.PoWHash, res.Block.Header.Bits,
		params.Consensus.PowLimit))
}

func TestSolveCancelled(t *testing.T) {
	params := chaincfg.MainNetParams()
	opts := params.Genesis
	opts.Nonce = 0

	miner, err := New(Config{Opts: opts, PowLimit: params.Consensus.PowLimit, Workers: 2})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = miner.Solve(ctx)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestSolveExhausted(t *testing.T) {
	params := chaincfg.MainNetParams()
	opts := params.Genesis
	opts.Nonce = 0

	miner, err := New(Config{
		Opts:     opts,
		PowLimit: params.Consensus.PowLimit,
		Workers:  3,
		MaxTries: 10,
	})
	require.NoError(t, err)

	_, err = miner.Solve(context.Background())
	assert.True(t, errors.Is(err, ErrNoSolution), "got %v", err)
}

func TestNewRejectsTarget(t *testing.T) {
	mainParams := chaincfg.MainNetParams()
	reg := chaincfg.RegressionNetParams()

	tests := []struct {
		name     string
		bits     uint32
		powLimit *big.Int
	}{
		{name: "above limit", bits: reg.Genesis.Bits, powLimit: mainParams.Consensus.PowLimit},
		{name: "negative", bits: 0x04923456, powLimit: reg.Consensus.PowLimit},
		{name: "zero", bits: 0, powLimit: reg.Consensus.PowLimit},
		{name: "overflow", bits: 0xff123456, powLimit: reg.Consensus.PowLimit},
		{name: "no limit", bits: reg.Genesis.Bits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := reg.Genesis
			opts.Bits = tt.bits
			_, err := New(Config{Opts: opts, PowLimit: tt.powLimit})
			assert.Error(t, err)
		})
	}
}

func TestProgressLog(t *testing.T) {
	var buf bytes.Buffer
	UseLogger(zerolog.New(&buf))
	defer DisableLog()

	cfg := regtestConfig(1)
	cfg.ProgressInterval = 1
	miner, err := New(cfg)
	require.NoError(t, err)

	_, err = miner.Solve(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Genesis search progress")
	assert.Contains(t, buf.String(), `"hps":`)
	assert.Contains(t, buf.String(), "Genesis block solved")
}
