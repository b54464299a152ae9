// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestMain(m *testing.M) {
	cli.OsExiter = func(int) {}
	cli.ErrWriter = io.Discard
	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := &App{out: &out}
	err := app.cliApp().Run(append([]string{"energi-params"}, args...))
	return out.String(), err
}

func TestNetworksCmd(t *testing.T) {
	out, err := run(t, "networks")
	require.NoError(t, err)
	assert.Contains(t, out, "00000865c697c524ba140d0e78454d6a8b2330f9adef2d170f58f607f0a56521")
	assert.Contains(t, out, "regtest")
	assert.NotContains(t, out, "test60")

	out, err = run(t, "--enable-testnet60x", "networks")
	require.NoError(t, err)
	assert.Contains(t, out, "00000bbb002e0d35bccd7bba77e98dbfccc7d19a8b6c99cb99f233412f1695ae")
}

func TestGenesisCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "main",
			args: []string{"genesis"},
			want: "00000865c697c524ba140d0e78454d6a8b2330f9adef2d170f58f607f0a56521",
		},
		{
			name: "regtest",
			args: []string{"genesis", "--net", "regtest"},
			want: "nonce:       12",
		},
		{
			name: "coinbase script",
			args: []string{"genesis", "--net", "regtest"},
			want: "coinbase:    ffff7f20 04 576f726c6420506f776572",
		},
		{
			name: "output script",
			args: []string{"genesis"},
			want: "d122a OP_CHECKSIG",
		},
		{
			name: "hex",
			args: []string{"genesis", "--net", "regtest", "--hex"},
			want: "04ffff7f2001040b576f726c6420506f776572",
		},
		{
			name: "dump",
			args: []string{"genesis", "--dump"},
			want: "MerkleRoot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestUnknownNet(t *testing.T) {
	_, err := run(t, "genesis", "--net", "test60")
	assert.Error(t, err)

	_, err = run(t, "genesis", "--net", "nope")
	assert.Error(t, err)
}

func TestBitsCmd(t *testing.T) {
	out, err := run(t, "bits", "decode", "1e0ffff0")
	require.NoError(t, err)
	assert.Contains(t, out, "00000ffff0000000000000000000000000000000000000000000000000000000")
	assert.Contains(t, out, "negative:   false")
	assert.Contains(t, out, "difficulty:")

	out, err = run(t, "bits", "decode", "0x04923456")
	require.NoError(t, err)
	assert.Contains(t, out, "negative:   true")
	assert.NotContains(t, out, "difficulty:")

	out, err = run(t, "bits", "encode", "00000ffff0000000000000000000000000000000000000000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "1e0ffff0\n", out)

	_, err = run(t, "bits", "decode", "zz")
	assert.Error(t, err)
}

func TestCheckpointsCmd(t *testing.T) {
	out, err := run(t, "checkpoints", "--net", "test", "--csv")
	require.NoError(t, err)

	var rows []checkpointRow
	require.NoError(t, gocsv.UnmarshalString(out, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "test", rows[0].Net)
	assert.Equal(t, int32(0), rows[0].Height)
	assert.Equal(t, "0000036ba66d0b15138fdda1ebfd425bbd88ac775218735fe06410dd99f5c362", rows[0].Hash)

	out, err = run(t, "checkpoints")
	require.NoError(t, err)
	assert.Contains(t, out, "00000865c697c524ba140d0e78454d6a8b2330f9adef2d170f58f607f0a56521")
}

func TestAddressCmd(t *testing.T) {
	out, err := run(t, "address", "backbone")
	require.NoError(t, err)
	assert.Equal(t, "NbzG31gdadVgWxdPEYcaLsHAWQvc4An2PG", strings.TrimSpace(out))

	out, err = run(t, "address", "backbone", "--net", "test")
	require.NoError(t, err)
	assert.Equal(t, "tA61JveN6y2kej9kYNK9tKvVuUgAvgaC6X", strings.TrimSpace(out))

	out, err = run(t, "address", "encode", "--p2sh", "b051bdceb44b28bb36ef2add5ec07ccbc64708c2")
	require.NoError(t, err)
	assert.Equal(t, "NbzG31gdadVgWxdPEYcaLsHAWQvc4An2PG", strings.TrimSpace(out))

	out, err = run(t, "address", "decode", "NbzG31gdadVgWxdPEYcaLsHAWQvc4An2PG")
	require.NoError(t, err)
	assert.Equal(t, "p2sh b051bdceb44b28bb36ef2add5ec07ccbc64708c2", strings.TrimSpace(out))

	_, err = run(t, "address", "decode", "--net", "test", "NbzG31gdadVgWxdPEYcaLsHAWQvc4An2PG")
	assert.Error(t, err)

	_, err = run(t, "address", "encode", "abcd")
	assert.Error(t, err)
}

func TestMineGenesisCmd(t *testing.T) {
	out, err := run(t, "mine-genesis", "--nonce", "12", "--workers", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "nonce:       12")
	assert.Contains(t, out, "1a0205c133c91e2a3804b95684964794dc2865ba355e8ff4abb2fe62da7e7268")

	_, err = run(t, "mine-genesis", "--net", "main", "--max-tries", "5", "--workers", "1")
	assert.Error(t, err)

	_, err = run(t, "mine-genesis", "--net", "main", "--bits", "207fffff")
	assert.Error(t, err)
}
