/*
 * Copyright (c) 2021 The Energi Core developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"time"

	"gitlab.com/energi/energid/txscript"
	"gitlab.com/energi/energid/types/chainhash"
	"gitlab.com/energi/energid/types/wire"
)

const (
	// genesisTimestampText is embedded into the coinbase of every genesis
	// block.
	genesisTimestampText = "World Power"

	// genesisPubKey receives the genesis reward.
	genesisPubKey = "0479619b3615fc9f03aace413b9064dc97d4b6f892ad541e5a2d8a3181517443840a79517fb1a308e834ac3c53da86de69a9bcce27ae01cf77d9b2b9d7588d122a"
)

// genesisOutputScript is the pay-to-pubkey script shared by all networks.
func genesisOutputScript() []byte {
	return txscript.MustPayToPubKeyHex(genesisPubKey)
}

// BlockHasher computes the block identifier and the proof-of-work hash of a
// header.
type BlockHasher interface {
	BlockHash(h *wire.BlockHeader) chainhash.Hash
	PoWHash(h *wire.BlockHeader) chainhash.Hash
}

// GenesisBlockOpts are the inputs of CreateGenesisBlock.
type GenesisBlockOpts struct {
	TimestampText string
	OutputScript  []byte
	Time          uint32
	Nonce         uint64
	Bits          uint32
	Version       int32
	Reward        int64
}

// newGenesisOpts fills the fields shared by the networks.
func newGenesisOpts(timestamp uint32, nonce uint64, bits uint32, reward int64) GenesisBlockOpts {
	return GenesisBlockOpts{
		TimestampText: genesisTimestampText,
		OutputScript:  genesisOutputScript(),
		Time:          timestamp,
		Nonce:         nonce,
		Bits:          bits,
		Version:       1,
		Reward:        reward,
	}
}

// genesisSignatureScript pushes the bits, the constant 4 and the timestamp
// text. The 4 and the text are raw length prefixed pushes: no small-integer
// opcodes and no element size limit.
func genesisSignatureScript(bits uint32, text string) []byte {
	script, err := txscript.NewScriptBuilder().
		AddInt64(int64(bits)).
		AddFullData([]byte{4}).
		AddFullData([]byte(text)).
		Script()
	if err != nil {
		panic("invalid genesis signature script: " + err.Error())
	}
	return script
}

// CreateGenesisBlock builds the single transaction genesis block described
// by opts. It does no I/O and the same opts always yield the same block.
func CreateGenesisBlock(opts GenesisBlockOpts) *wire.MsgBlock {
	coinbase := wire.NewMsgTx(wire.TxVersion)
	coinbase.AddTxIn(wire.NewCoinbaseInput(
		genesisSignatureScript(opts.Bits, opts.TimestampText)))

	pkScript := make([]byte, len(opts.OutputScript))
	copy(pkScript, opts.OutputScript)
	coinbase.AddTxOut(wire.NewTxOut(opts.Reward, pkScript))

	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:   opts.Version,
			PrevBlock: chainhash.Hash{},
			Timestamp: time.Unix(int64(opts.Time), 0),
			Bits:      opts.Bits,
			Height:    0,
			MixHash:   chainhash.Hash{},
			Nonce:     opts.Nonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
	block.Header.MerkleRoot = block.CalcMerkleRoot()
	return block
}
