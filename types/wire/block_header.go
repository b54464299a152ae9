// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
	"time"

	"gitlab.com/energi/energid/types/chainhash"
)

// BlockHeaderLen is the serialized size of a block header.
// Version 4 bytes + PrevBlock 32 bytes + MerkleRoot 32 bytes + Timestamp 4 bytes +
// Bits 4 bytes + Height 4 bytes + MixHash 32 bytes + Nonce 8 bytes.
const BlockHeaderLen = 24 + (chainhash.HashSize * 3)

// BlockHeader defines information about a block and is used in the block
// (MsgBlock) and headers messages.
type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version int32

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created.  This is encoded as a uint32 on the wire
	// and therefore is limited to 2106.
	Timestamp time.Time

	// Difficulty target for the block.
	Bits uint32

	// Height of the block in the chain. Committed to by the PoW hash.
	Height uint32

	// MixHash is the intermediate digest of the memory-hard PoW function.
	MixHash chainhash.Hash

	// Nonce used to generate the block.
	Nonce uint64
}

// BlockHash computes the block identifier hash for the given block header
// as the double sha256 of its serialization.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, BlockHeaderLen))
	_ = writeBlockHeader(buf, h)
	return chainhash.DoubleHashH(buf.Bytes())
}

// PoWHash returns the hash compared against the difficulty target. With the
// default hasher it matches BlockHash.
func (h *BlockHeader) PoWHash() chainhash.Hash {
	return h.BlockHash()
}

// Deserialize decodes a block header from r into the receiver.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	return readBlockHeader(r, h)
}

// Serialize encodes a block header from the receiver into w.
func (h *BlockHeader) Serialize(w io.Writer) error {
	return writeBlockHeader(w, h)
}

// Bytes returns the serialized header.
func (h *BlockHeader) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, BlockHeaderLen))
	_ = writeBlockHeader(buf, h)
	return buf.Bytes()
}

// NewBlockHeader returns a new BlockHeader using the provided version, previous
// block hash, merkle root hash, difficulty bits, and nonce used to generate the
// block with defaults for the remaining fields.
func NewBlockHeader(version int32, prevHash, merkleRootHash *chainhash.Hash,
	bits uint32, nonce uint64) *BlockHeader {
	// Limit the timestamp to one second precision since the protocol
	// doesn't support better.
	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  time.Unix(time.Now().Unix(), 0),
		Bits:       bits,
		Nonce:      nonce,
	}
}

func readBlockHeader(r io.Reader, bh *BlockHeader) error {
	return ReadElements(r, &bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		(*Uint32Time)(&bh.Timestamp), &bh.Bits, &bh.Height, &bh.MixHash, &bh.Nonce)
}

func writeBlockHeader(w io.Writer, bh *BlockHeader) error {
	sec := uint32(bh.Timestamp.Unix())
	return WriteElements(w, bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		sec, bh.Bits, bh.Height, &bh.MixHash, bh.Nonce)
}

// DoubleSHA256Hasher hashes headers with double sha256 for both the block
// identifier and the proof of work.
type DoubleSHA256Hasher struct{}

func (DoubleSHA256Hasher) BlockHash(h *BlockHeader) chainhash.Hash { return h.BlockHash() }
func (DoubleSHA256Hasher) PoWHash(h *BlockHeader) chainhash.Hash   { return h.PoWHash() }
