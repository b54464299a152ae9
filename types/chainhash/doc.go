// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides the 32-byte hash type used for transaction ids,
// block hashes and merkle roots, together with the double sha256 helpers and
// the bitcoin-style merkle tree used to commit to block transactions.
//
// Hash strings are rendered byte-reversed, so the hash of a block with a
// low proof-of-work value prints with leading zeros.
package chainhash
