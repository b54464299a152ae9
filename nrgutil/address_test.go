// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nrgutil

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	mainPrefixes = AddressPrefixes{PubKeyHashAddrID: 33, ScriptHashAddrID: 53}
	testPrefixes = AddressPrefixes{PubKeyHashAddrID: 127, ScriptHashAddrID: 19}
)

func decodeHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestAddressEncoding(t *testing.T) {
	const genesisPubKey = "0479619b3615fc9f03aace413b9064dc97d4b6f892ad541e5a2d8a3181517443840a79517fb1a308e834ac3c53da86de69a9bcce27ae01cf77d9b2b9d7588d122a"

	tests := []struct {
		name     string
		make     func() (*Address, error)
		encoded  string
		hash     string
		script   bool
		prefixes AddressPrefixes
	}{
		{
			name: "main pubkey",
			make: func() (*Address, error) {
				return NewAddressPubKey(decodeHex(t, genesisPubKey), mainPrefixes.PubKeyHashAddrID)
			},
			encoded:  "EUVfRxvznavwrvNsYzkHUpdYYdSm3SZBXF",
			hash:     "7c65f6d32021e3360f44f08e3783d5b9d7c4ef67",
			prefixes: mainPrefixes,
		},
		{
			name: "test pubkey",
			make: func() (*Address, error) {
				return NewAddressPubKey(decodeHex(t, genesisPubKey), testPrefixes.PubKeyHashAddrID)
			},
			encoded:  "tJGMzAx5XYVJjfV1rS4F4cDVi3fRqJzMbV",
			hash:     "7c65f6d32021e3360f44f08e3783d5b9d7c4ef67",
			prefixes: testPrefixes,
		},
		{
			name: "main backbone script hash",
			make: func() (*Address, error) {
				return NewAddressScriptHashFromHash(decodeHex(t, "b051bdceb44b28bb36ef2add5ec07ccbc64708c2"), mainPrefixes.ScriptHashAddrID)
			},
			encoded:  "NbzG31gdadVgWxdPEYcaLsHAWQvc4An2PG",
			hash:     "b051bdceb44b28bb36ef2add5ec07ccbc64708c2",
			script:   true,
			prefixes: mainPrefixes,
		},
		{
			name: "test backbone pubkey hash",
			make: func() (*Address, error) {
				return NewAddressPubKeyHash(decodeHex(t, "22af89cb590829ae00a927deb2efbf81954c6840"), testPrefixes.PubKeyHashAddrID)
			},
			encoded:  "tA61JveN6y2kej9kYNK9tKvVuUgAvgaC6X",
			hash:     "22af89cb590829ae00a927deb2efbf81954c6840",
			prefixes: testPrefixes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := tt.make()
			require.NoError(t, err)
			assert.Equal(t, tt.encoded, addr.EncodeAddress())
			assert.Equal(t, tt.hash, hex.EncodeToString(addr.Hash160()))
			assert.Equal(t, tt.script, addr.IsScriptHash())

			decoded, err := DecodeAddress(tt.encoded, tt.prefixes)
			require.NoError(t, err)
			assert.Equal(t, addr, decoded)
		})
	}
}

func TestDecodeAddressErrors(t *testing.T) {
	_, err := DecodeAddress("EUVfRxvznavwrvNsYzkHUpdYYdSm3SZBXF", testPrefixes)
	assert.Equal(t, ErrUnknownAddressType, err)

	_, err = DecodeAddress("EUVfRxvznavwrvNsYzkHUpdYYdSm3SZBXG", mainPrefixes)
	assert.Equal(t, ErrChecksumMismatch, err)

	_, err = NewAddressPubKey([]byte{0x02}, 33)
	assert.Error(t, err)
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount Amount
		unit   AmountUnit
		want   string
	}{
		{name: "block subsidy", amount: 1370000000, unit: AmountNRG, want: "13.7 NRG"},
		{name: "genesis reward", amount: 456000000, unit: AmountNRG, want: "4.56 NRG"},
		{name: "base unit", amount: 1, unit: AmountWei, want: "1 Wei"},
		{name: "treasury", amount: 18400000000000, unit: AmountKiloNRG, want: "184 kNRG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.amount.Format(tt.unit))
		})
	}

	a, err := NewAmount(2.28)
	require.NoError(t, err)
	assert.Equal(t, Amount(228000000), a)
	assert.Equal(t, "2.28 NRG", a.String())
}
