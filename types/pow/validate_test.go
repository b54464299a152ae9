// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"gitlab.com/energi/energid/types/chainhash"
)

// bigToHash lays a number out as a little endian hash.
func bigToHash(n *big.Int) chainhash.Hash {
	var h chainhash.Hash
	b := n.Bytes()
	for i := range b {
		h[i] = b[len(b)-1-i]
	}
	return h
}

func mustHash(s string) chainhash.Hash {
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic(err)
	}
	return *h
}

func TestCheckGenesisProofOfWork(t *testing.T) {
	mainLimit := hexToBig("00000fffff000000000000000000000000000000000000000000000000000000")
	regtestLimit := hexToBig("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	mainTarget, _, _ := DecodeCompact(0x1e0ffff0)
	maxHash := chainhash.Hash{}
	for i := range maxHash {
		maxHash[i] = 0xff
	}

	tests := []struct {
		name     string
		hash     chainhash.Hash
		bits     uint32
		powLimit *big.Int
		wantErr  bool
		code     ErrorCode
	}{
		{
			name:     "zero hash meets target",
			hash:     chainhash.ZeroHash,
			bits:     0x1e0ffff0,
			powLimit: mainLimit,
		},
		{
			name:     "hash equal to target",
			hash:     bigToHash(mainTarget),
			bits:     0x1e0ffff0,
			powLimit: mainLimit,
		},
		{
			name:     "hash one above target",
			hash:     bigToHash(new(big.Int).Add(mainTarget, big.NewInt(1))),
			bits:     0x1e0ffff0,
			powLimit: mainLimit,
			wantErr:  true,
			code:     ErrHashExceedsTarget,
		},
		{
			name:     "max hash",
			hash:     maxHash,
			bits:     0x1e0ffff0,
			powLimit: mainLimit,
			wantErr:  true,
			code:     ErrHashExceedsTarget,
		},
		{
			name:     "target above limit",
			hash:     chainhash.ZeroHash,
			bits:     0x1f0fffff,
			powLimit: mainLimit,
			wantErr:  true,
			code:     ErrBelowMinimumWork,
		},
		{
			name:     "target at limit",
			hash:     chainhash.ZeroHash,
			bits:     0x1e0fffff,
			powLimit: mainLimit,
		},
		{
			name:     "negative target",
			hash:     chainhash.ZeroHash,
			bits:     0x1e8ffff0,
			powLimit: mainLimit,
			wantErr:  true,
			code:     ErrBelowMinimumWork,
		},
		{
			name:     "zero target",
			hash:     chainhash.ZeroHash,
			bits:     0x1e000000,
			powLimit: mainLimit,
			wantErr:  true,
			code:     ErrBelowMinimumWork,
		},
		{
			name:     "overflowed target",
			hash:     chainhash.ZeroHash,
			bits:     0xff123456,
			powLimit: regtestLimit,
			wantErr:  true,
			code:     ErrBelowMinimumWork,
		},
		{
			name:     "regtest genesis",
			hash:     mustHash("1a0205c133c91e2a3804b95684964794dc2865ba355e8ff4abb2fe62da7e7268"),
			bits:     0x207fffff,
			powLimit: regtestLimit,
		},
		{
			name:     "main genesis",
			hash:     mustHash("00000865c697c524ba140d0e78454d6a8b2330f9adef2d170f58f607f0a56521"),
			bits:     0x1e0ffff0,
			powLimit: mainLimit,
		},
		{
			name:     "regtest hash against main bits",
			hash:     mustHash("1a0205c133c91e2a3804b95684964794dc2865ba355e8ff4abb2fe62da7e7268"),
			bits:     0x1e0ffff0,
			powLimit: mainLimit,
			wantErr:  true,
			code:     ErrHashExceedsTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckGenesisProofOfWork(tt.hash, tt.bits, tt.powLimit)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			if assert.Error(t, err) {
				assert.IsType(t, RuleError{}, err)
				assert.True(t, IsErrorCode(err, tt.code), "got %v", err)
			}
		})
	}
}

func TestIsErrorCode(t *testing.T) {
	err := ruleError(ErrHashExceedsTarget, "hash too high")
	assert.True(t, IsErrorCode(err, ErrHashExceedsTarget))
	assert.False(t, IsErrorCode(err, ErrBelowMinimumWork))
	assert.True(t, IsErrorCode(errors.Wrap(err, "genesis"), ErrHashExceedsTarget))
	assert.False(t, IsErrorCode(errors.New("other"), ErrHashExceedsTarget))
	assert.False(t, IsErrorCode(nil, ErrHashExceedsTarget))
	assert.Equal(t, "ErrBelowMinimumWork", ErrBelowMinimumWork.String())
}
