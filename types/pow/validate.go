// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"fmt"
	"math/big"

	"gitlab.com/energi/energid/types/chainhash"
)

// CheckGenesisProofOfWork verifies that hash meets the target encoded by bits
// and that the target itself is within (0, powLimit].
//
// Only the target range and the hash comparison are checked; chain context
// such as the expected difficulty at a height is not consulted.
func CheckGenesisProofOfWork(hash chainhash.Hash, bits uint32, powLimit *big.Int) error {
	target, negative, overflow := DecodeCompact(bits)

	switch {
	case negative:
		str := fmt.Sprintf("target difficulty bits %08x are negative", bits)
		return ruleError(ErrBelowMinimumWork, str)
	case overflow:
		str := fmt.Sprintf("target difficulty bits %08x overflow 256 bits", bits)
		return ruleError(ErrBelowMinimumWork, str)
	case target.Sign() == 0:
		str := fmt.Sprintf("target difficulty bits %08x decode to zero", bits)
		return ruleError(ErrBelowMinimumWork, str)
	case target.Cmp(powLimit) > 0:
		str := fmt.Sprintf("target difficulty of %064x is higher than max of %064x",
			target, powLimit)
		return ruleError(ErrBelowMinimumWork, str)
	}

	// The hash must not exceed the claimed target.
	hashNum := HashToBig(&hash)
	if hashNum.Cmp(target) > 0 {
		str := fmt.Sprintf("block hash of %064x is higher than expected max of %064x",
			hashNum, target)
		return ruleError(ErrHashExceedsTarget, str)
	}

	return nil
}
