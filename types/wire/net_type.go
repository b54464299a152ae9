// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
)

// EnergiNet represents which Energi network a message belongs to. The value
// is the little endian reading of the four message-start bytes.
type EnergiNet uint32

// Constants used to indicate the message network.  They can also be used to
// seek to the next message when a stream's state is unknown.
const (
	// MainNet represents the main energi network. Bytes ec 2d 9a af.
	MainNet EnergiNet = 0xaf9a2dec

	// TestNet represents the public test network. Bytes d9 2a ab 6e.
	TestNet EnergiNet = 0x6eab2ad9

	// TestNet60x represents the fast test network with one minute
	// superblocks. Bytes d9 2a ab 60.
	TestNet60x EnergiNet = 0x60ab2ad9

	// RegTest represents the regression test network. Bytes ef 89 6c 7f.
	RegTest EnergiNet = 0x7f6c89ef
)

var enStrings = map[EnergiNet]string{
	MainNet:    "MainNet",
	TestNet:    "TestNet",
	TestNet60x: "TestNet60x",
	RegTest:    "RegTest",
}

// String returns the EnergiNet in human-readable form.
func (n EnergiNet) String() string {
	if s, ok := enStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown EnergiNet (%d)", uint32(n))
}

// MessageStart returns the four bytes that prefix every p2p message.
func (n EnergiNet) MessageStart() [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(n))
	return b
}
