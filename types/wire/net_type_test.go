// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"
)

// TestEnergiNetStringer tests the stringized output for energi net types.
func TestEnergiNetStringer(t *testing.T) {
	tests := []struct {
		in   EnergiNet
		want string
	}{
		{MainNet, "MainNet"},
		{TestNet, "TestNet"},
		{TestNet60x, "TestNet60x"},
		{RegTest, "RegTest"},
		{0xffffffff, "Unknown EnergiNet (4294967295)"},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}

func TestMessageStart(t *testing.T) {
	tests := []struct {
		in   EnergiNet
		want [4]byte
	}{
		{MainNet, [4]byte{0xec, 0x2d, 0x9a, 0xaf}},
		{TestNet, [4]byte{0xd9, 0x2a, 0xab, 0x6e}},
		{TestNet60x, [4]byte{0xd9, 0x2a, 0xab, 0x60}},
		{RegTest, [4]byte{0xef, 0x89, 0x6c, 0x7f}},
	}

	for i, test := range tests {
		if got := test.in.MessageStart(); got != test.want {
			t.Errorf("MessageStart #%d got: %x want: %x", i, got, test.want)
		}
	}
}
