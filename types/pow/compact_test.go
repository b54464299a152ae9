// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func hexToBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in test: " + s)
	}
	return n
}

func TestDecodeCompact(t *testing.T) {
	tests := []struct {
		bits     uint32
		target   string
		negative bool
		overflow bool
	}{
		{bits: 0x00000000, target: "0"},
		{bits: 0x00123456, target: "0"},
		{bits: 0x01003456, target: "0"},
		{bits: 0x02000056, target: "0"},
		{bits: 0x03000000, target: "0"},
		{bits: 0x04000000, target: "0"},
		{bits: 0x00923456, target: "0"},
		{bits: 0x01803456, target: "0"},
		{bits: 0x02800056, target: "0"},
		{bits: 0x03800000, target: "0"},
		{bits: 0x04800000, target: "0"},
		{bits: 0x01123456, target: "12"},
		{bits: 0x02008000, target: "80"},
		{bits: 0x01fedcba, target: "7e", negative: true},
		{bits: 0x02123456, target: "1234"},
		{bits: 0x03123456, target: "123456"},
		{bits: 0x04123456, target: "12345600"},
		{bits: 0x04923456, target: "12345600", negative: true},
		{bits: 0x05009234, target: "92340000"},
		{bits: 0x20123456, target: "1234560000000000000000000000000000000000000000000000000000000000"},
		{bits: 0x1e0ffff0, target: "00000ffff0000000000000000000000000000000000000000000000000000000"},
		{bits: 0x207fffff, target: "7fffff0000000000000000000000000000000000000000000000000000000000"},
		{bits: 0x22000001, target: "0100000000000000000000000000000000000000000000000000000000000000"},
		{bits: 0x210000ff, target: "ff000000000000000000000000000000000000000000000000000000000000"},
		{bits: 0x23000001, target: "0", overflow: true},
		{bits: 0x22000100, target: "0", overflow: true},
		{bits: 0x21010000, target: "0", overflow: true},
		{bits: 0xff123456, target: "0", overflow: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%08x", tt.bits), func(t *testing.T) {
			target, negative, overflow := DecodeCompact(tt.bits)
			assert.Equal(t, 0, hexToBig(tt.target).Cmp(target), "target %x", target)
			assert.Equal(t, tt.negative, negative, "negative")
			assert.Equal(t, tt.overflow, overflow, "overflow")
		})
	}
}

func TestDecodeCompactTotal(t *testing.T) {
	for exponent := uint32(0); exponent <= 0xff; exponent++ {
		for _, mantissa := range []uint32{0, 1, 0x7fffff, 0x800000, 0xffffff} {
			bits := exponent<<24 | mantissa
			target, negative, overflow := DecodeCompact(bits)

			assert.True(t, target.Sign() >= 0, "%08x", bits)
			assert.True(t, target.BitLen() <= 256, "%08x", bits)
			if bits&compactMantissa == 0 {
				assert.Equal(t, 0, target.Sign(), "%08x", bits)
				assert.False(t, negative, "%08x", bits)
				assert.False(t, overflow, "%08x", bits)
			}

			again, negAgain, ovfAgain := DecodeCompact(bits)
			assert.Equal(t, 0, target.Cmp(again))
			assert.Equal(t, negative, negAgain)
			assert.Equal(t, overflow, ovfAgain)
		}
	}
}

func TestBigToCompact(t *testing.T) {
	tests := []struct {
		in  string
		out uint32
	}{
		{in: "0", out: 0},
		{in: "12", out: 0x01120000},
		{in: "80", out: 0x02008000},
		{in: "12345600", out: 0x04123456},
		{in: "00000ffff0000000000000000000000000000000000000000000000000000000", out: 0x1e0ffff0},
		{in: "7fffff0000000000000000000000000000000000000000000000000000000000", out: 0x207fffff},
		{in: "7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", out: 0x207fffff},
		{in: "00000fffff000000000000000000000000000000000000000000000000000000", out: 0x1e0fffff},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.out, BigToCompact(hexToBig(tt.in)))
		})
	}

	assert.Equal(t, uint32(0x04923456), BigToCompact(big.NewInt(-0x12345600)))
	assert.Zero(t, big.NewInt(-0x12345600).Cmp(CompactToBig(0x04923456)))
}

func TestCalcWork(t *testing.T) {
	tests := []struct {
		bits uint32
		work int64
	}{
		{bits: 0x1e0ffff0, work: 1048592},
		{bits: 0x207fffff, work: 2},
		{bits: 0x04923456, work: 0},
		{bits: 0, work: 0},
	}
	for _, tt := range tests {
		assert.Zero(t, big.NewInt(tt.work).Cmp(CalcWork(tt.bits)), "%08x", tt.bits)
	}
}

func TestDifficulty(t *testing.T) {
	limit := hexToBig("00000fffff000000000000000000000000000000000000000000000000000000")
	assert.InDelta(t, 1.0000143, Difficulty(0x1e0ffff0, limit), 1e-6)
	assert.Equal(t, 1.0, Difficulty(0x1e0fffff, limit))
	assert.Equal(t, 0.0, Difficulty(0, limit))
}
