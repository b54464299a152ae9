/*
 * Copyright (c) 2021 The Energi Core developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/energi/energid/txscript"
	"gitlab.com/energi/energid/types/pow"
	"gitlab.com/energi/energid/types/wire"
)

func TestCreateGenesisBlock(t *testing.T) {
	tests := []struct {
		params    Params
		sigScript string
		reward    int64
	}{
		{
			params:    MainNetParams(),
			sigScript: "04f0ff0f1e01040b576f726c6420506f776572",
			reward:    456000000,
		},
		{
			params:    TestNetParams(),
			sigScript: "04f0ff0f1e01040b576f726c6420506f776572",
			reward:    456000000,
		},
		{
			params:    TestNet60xParams(),
			sigScript: "04f0ff0f1e01040b576f726c6420506f776572",
			reward:    27360000000,
		},
		{
			params:    RegressionNetParams(),
			sigScript: "04ffff7f2001040b576f726c6420506f776572",
			reward:    456000000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.params.Name.String(), func(t *testing.T) {
			block := CreateGenesisBlock(tt.params.Genesis)
			require.Len(t, block.Transactions, 1)

			coinbase := block.Transactions[0]
			assert.True(t, coinbase.IsCoinBase())
			assert.Equal(t, int32(1), coinbase.Version)
			assert.Equal(t, uint32(0), coinbase.LockTime)
			require.Len(t, coinbase.TxIn, 1)
			assert.Equal(t, tt.sigScript, hex.EncodeToString(coinbase.TxIn[0].SignatureScript))
			assert.Equal(t, wire.MaxTxInSequenceNum, coinbase.TxIn[0].Sequence)

			require.Len(t, coinbase.TxOut, 1)
			assert.Equal(t, tt.reward, coinbase.TxOut[0].Value)
			assert.Equal(t, txscript.PubKeyTy, txscript.GetScriptClass(coinbase.TxOut[0].PkScript))

			header := block.Header
			assert.Equal(t, uint32(0), header.Height)
			assert.True(t, header.PrevBlock.IsZero())
			assert.True(t, header.MixHash.IsZero())
			assert.Equal(t, tt.params.Genesis.Bits, header.Bits)
			assert.Equal(t, tt.params.Genesis.Nonce, header.Nonce)
			assert.Equal(t, int64(tt.params.Genesis.Time), header.Timestamp.Unix())

			assert.Equal(t, tt.params.ExpectedGenesisMerkleRoot, header.MerkleRoot)
			assert.Equal(t, tt.params.ExpectedGenesisHash, block.BlockHash())
			assert.Equal(t, coinbase.TxHash(), header.MerkleRoot)

			err := pow.CheckGenesisProofOfWork(block.Header.PoWHash(), header.Bits,
				tt.params.Consensus.PowLimit)
			assert.NoError(t, err)
		})
	}
}

func TestCreateGenesisBlockIsPure(t *testing.T) {
	opts := RegressionNetParams().Genesis

	first := CreateGenesisBlock(opts)
	second := CreateGenesisBlock(opts)
	assert.Equal(t, first.Bytes(), second.Bytes())
	assert.Equal(t, first.BlockHash(), second.BlockHash())

	// the block does not share the caller's script
	first.Transactions[0].TxOut[0].PkScript[0] ^= 0xff
	third := CreateGenesisBlock(opts)
	assert.Equal(t, second.Bytes(), third.Bytes())
}

func TestGenesisBlockRoundTrip(t *testing.T) {
	block := CreateGenesisBlock(MainNetParams().Genesis)

	var buf bytes.Buffer
	require.NoError(t, block.Serialize(&buf))

	var decoded wire.MsgBlock
	require.NoError(t, decoded.Deserialize(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, block.BlockHash(), decoded.BlockHash())
	assert.Equal(t, block.Header.MerkleRoot, decoded.CalcMerkleRoot())
}

func TestGenesisOptsChangeHash(t *testing.T) {
	base := RegressionNetParams().Genesis
	baseHash := CreateGenesisBlock(base).BlockHash()

	tests := []struct {
		name   string
		mutate func(o *GenesisBlockOpts)
	}{
		{"nonce", func(o *GenesisBlockOpts) { o.Nonce++ }},
		{"time", func(o *GenesisBlockOpts) { o.Time++ }},
		{"reward", func(o *GenesisBlockOpts) { o.Reward++ }},
		{"text", func(o *GenesisBlockOpts) { o.TimestampText = "World Power!" }},
		{"version", func(o *GenesisBlockOpts) { o.Version = 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := base
			opts.OutputScript = append([]byte(nil), base.OutputScript...)
			tt.mutate(&opts)
			assert.NotEqual(t, baseHash, CreateGenesisBlock(opts).BlockHash())
		})
	}
}

func TestGenesisTimestampTextPush(t *testing.T) {
	const prefix = "04ffff7f20" + "0104"

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "empty", text: "", want: "00"},
		{name: "one byte", text: "\x05", want: "0105"},
		{name: "one byte zero", text: "\x00", want: "0100"},
		{name: "pushdata1", text: strings.Repeat("x", 100), want: "4c64" + strings.Repeat("78", 100)},
		{name: "above element limit", text: strings.Repeat("x", 600), want: "4d5802" + strings.Repeat("78", 600)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := RegressionNetParams().Genesis
			opts.TimestampText = tt.text

			var block *wire.MsgBlock
			require.NotPanics(t, func() { block = CreateGenesisBlock(opts) })

			sigScript := block.Transactions[0].TxIn[0].SignatureScript
			assert.Equal(t, prefix+tt.want, hex.EncodeToString(sigScript))
			assert.Equal(t, block.Transactions[0].TxHash(), block.Header.MerkleRoot)
		})
	}
}
