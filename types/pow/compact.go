// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"math/big"

	"gitlab.com/energi/energid/types/chainhash"
)

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// oneLsh256 is 1 shifted left 256 bits.  It is defined here to avoid
	// the overhead of creating it multiple times.
	oneLsh256 = new(big.Int).Lsh(bigOne, 256)

	// maxUint256 is the largest value a 256-bit target can hold.
	maxUint256 = new(big.Int).Sub(oneLsh256, bigOne)
)

const (
	compactSignBit  = 0x00800000
	compactMantissa = 0x007fffff
)

// DecodeCompact expands the compact representation of a difficulty target
// into an unsigned 256-bit integer and reports the sign and overflow flags
// the encoding carries.
//
// The compact form is a floating point number with an 8-bit base-256
// exponent in the high byte, a sign bit and a 23-bit mantissa:
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa     |
//	-------------------------------------------------
//	| 8 bits [31-24] | 1 bit [23] | 23 bits [22-00] |
//	-------------------------------------------------
//
// target = mantissa * 256^(exponent-3). The target is zero whenever the
// mantissa is zero, and negative and overflow are only ever set for a
// non-zero target. An overflowed target is truncated to 256 bits.
func DecodeCompact(bits uint32) (target *big.Int, negative, overflow bool) {
	exponent := uint(bits >> 24)
	word := bits & compactMantissa

	target = new(big.Int)
	if exponent <= 3 {
		word >>= 8 * (3 - exponent)
		target.SetUint64(uint64(word))
	} else {
		target.SetUint64(uint64(word))
		target.Lsh(target, 8*(exponent-3))
	}

	negative = word != 0 && bits&compactSignBit != 0
	overflow = word != 0 && (exponent > 34 ||
		(word > 0xff && exponent > 33) ||
		(word > 0xffff && exponent > 32))

	if overflow {
		target.And(target, maxUint256)
	}
	return target, negative, overflow
}

// CompactToBig converts a compact representation of a whole number N to a
// signed big integer.  Unlike DecodeCompact the result is not bounded to
// 256 bits and the sign bit yields a negative number. Used by work and
// difficulty arithmetic.
func CompactToBig(compact uint32) *big.Int {
	// Extract the mantissa, sign bit, and exponent.
	mantissa := compact & compactMantissa
	isNegative := compact&compactSignBit != 0
	exponent := uint(compact >> 24)

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes to represent the full 256-bit number.  So,
	// treat the exponent as the number of bytes and shift the mantissa
	// right or left accordingly.  This is equivalent to:
	// N = mantissa * 256^(exponent-3)
	var bn *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		bn = big.NewInt(int64(mantissa))
	} else {
		bn = big.NewInt(int64(mantissa))
		bn.Lsh(bn, 8*(exponent-3))
	}

	// Make it negative if the sign bit is set.
	if isNegative {
		bn = bn.Neg(bn)
	}

	return bn
}

// BigToCompact converts a whole number N to a compact representation using
// an unsigned 32-bit number.  The compact representation only provides 23 bits
// of precision, so values larger than (2^23 - 1) only encode the most
// significant digits of the number.  See DecodeCompact for details.
func BigToCompact(n *big.Int) uint32 {
	// No need to do any work if it's zero.
	if n.Sign() == 0 {
		return 0
	}

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes.  So, shift the number right or left
	// accordingly.  This is equivalent to:
	// mantissa = mantissa / 256^(exponent-3)
	var mantissa uint32
	exponent := uint(len(n.Bytes()))
	if exponent <= 3 {
		mantissa = uint32(n.Bits()[0])
		mantissa <<= 8 * (3 - exponent)
	} else {
		// Use a copy to avoid modifying the caller's original number.
		tn := new(big.Int).Set(n)
		mantissa = uint32(tn.Rsh(tn, 8*(exponent-3)).Bits()[0])
	}

	// When the mantissa already has the sign bit set, the number is too
	// large to fit into the available 23-bits, so divide the number by 256
	// and increment the exponent accordingly.
	if mantissa&compactSignBit != 0 {
		mantissa >>= 8
		exponent++
	}

	// Pack the exponent, sign bit, and mantissa into an unsigned 32-bit
	// int and return it.
	compact := uint32(exponent<<24) | mantissa
	if n.Sign() < 0 {
		compact |= compactSignBit
	}
	return compact
}

// HashToBig converts a chainhash.Hash into a big.Int that can be used to
// perform math comparisons.  Hash bytes are little endian.
func HashToBig(hash *chainhash.Hash) *big.Int {
	// A Hash is in little-endian, but the big package wants the bytes in
	// big-endian, so reverse them.
	buf := *hash
	blen := len(buf)
	for i := 0; i < blen/2; i++ {
		buf[i], buf[blen-1-i] = buf[blen-1-i], buf[i]
	}

	return new(big.Int).SetBytes(buf[:])
}

// CalcWork calculates a work value from difficulty bits.  The work is the
// expected number of hashes to find a header below the target:
// 2^256 / (target+1). Non-positive targets carry no work.
func CalcWork(bits uint32) *big.Int {
	difficultyNum := CompactToBig(bits)
	if difficultyNum.Sign() <= 0 {
		return big.NewInt(0)
	}

	// (1 << 256) / (difficultyNum + 1)
	denominator := new(big.Int).Add(difficultyNum, bigOne)
	return new(big.Int).Div(oneLsh256, denominator)
}

// Difficulty returns how many times harder the target encoded in bits is
// than the easiest target the network allows.
func Difficulty(bits uint32, powLimit *big.Int) float64 {
	target, negative, overflow := DecodeCompact(bits)
	if negative || overflow || target.Sign() == 0 {
		return 0
	}

	ratio, _ := new(big.Rat).SetFrac(powLimit, target).Float64()
	return ratio
}
