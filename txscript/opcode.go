// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Opcodes used by the scripts this package builds and classifies. Values
// follow the bitcoin script encoding.
const (
	OP_0              = 0x00 // 0
	OP_FALSE          = 0x00 // 0 - AKA OP_0
	OP_DATA_1         = 0x01 // 1
	OP_DATA_20        = 0x14 // 20
	OP_DATA_33        = 0x21 // 33
	OP_DATA_65        = 0x41 // 65
	OP_DATA_75        = 0x4b // 75
	OP_PUSHDATA1      = 0x4c // 76
	OP_PUSHDATA2      = 0x4d // 77
	OP_PUSHDATA4      = 0x4e // 78
	OP_1NEGATE        = 0x4f // 79
	OP_1              = 0x51 // 81 - AKA OP_TRUE
	OP_TRUE           = 0x51 // 81
	OP_16             = 0x60 // 96
	OP_RETURN         = 0x6a // 106
	OP_DUP            = 0x76 // 118
	OP_EQUAL          = 0x87 // 135
	OP_EQUALVERIFY    = 0x88 // 136
	OP_HASH160        = 0xa9 // 169
	OP_CHECKSIG       = 0xac // 172
	OP_CHECKSIGVERIFY = 0xad // 173
)

var opcodeNames = map[byte]string{
	OP_0:              "OP_0",
	OP_PUSHDATA1:      "OP_PUSHDATA1",
	OP_PUSHDATA2:      "OP_PUSHDATA2",
	OP_PUSHDATA4:      "OP_PUSHDATA4",
	OP_1NEGATE:        "OP_1NEGATE",
	OP_RETURN:         "OP_RETURN",
	OP_DUP:            "OP_DUP",
	OP_EQUAL:          "OP_EQUAL",
	OP_EQUALVERIFY:    "OP_EQUALVERIFY",
	OP_HASH160:        "OP_HASH160",
	OP_CHECKSIG:       "OP_CHECKSIG",
	OP_CHECKSIGVERIFY: "OP_CHECKSIGVERIFY",
}

// parsedOpcode is an opcode together with the data it pushes, if any.
type parsedOpcode struct {
	opcode byte
	data   []byte
}

// isSmallInt returns whether or not the opcode is considered a small integer,
// which is an OP_0, or OP_1 through OP_16.
func isSmallInt(op byte) bool {
	return op == OP_0 || (op >= OP_1 && op <= OP_16)
}

// parseScript splits the script into opcodes with their push data.
func parseScript(script []byte) ([]parsedOpcode, error) {
	var pops []parsedOpcode
	for i := 0; i < len(script); {
		op := script[i]
		i++

		var dataLen int
		switch {
		case op >= OP_DATA_1 && op <= OP_DATA_75:
			dataLen = int(op)

		case op == OP_PUSHDATA1:
			if len(script[i:]) < 1 {
				return nil, scriptError(ErrMalformedPush, "OP_PUSHDATA1 without length")
			}
			dataLen = int(script[i])
			i++

		case op == OP_PUSHDATA2:
			if len(script[i:]) < 2 {
				return nil, scriptError(ErrMalformedPush, "OP_PUSHDATA2 without length")
			}
			dataLen = int(script[i]) | int(script[i+1])<<8
			i += 2

		case op == OP_PUSHDATA4:
			if len(script[i:]) < 4 {
				return nil, scriptError(ErrMalformedPush, "OP_PUSHDATA4 without length")
			}
			dataLen = int(script[i]) | int(script[i+1])<<8 |
				int(script[i+2])<<16 | int(script[i+3])<<24
			i += 4
		}

		if dataLen < 0 || len(script[i:]) < dataLen {
			str := fmt.Sprintf("opcode 0x%02x pushes %d bytes, but script only has %d remaining",
				op, dataLen, len(script[i:]))
			return nil, scriptError(ErrMalformedPush, str)
		}

		pop := parsedOpcode{opcode: op}
		if dataLen > 0 || (op >= OP_DATA_1 && op <= OP_PUSHDATA4) {
			pop.data = script[i : i+dataLen]
		}
		i += dataLen
		pops = append(pops, pop)
	}
	return pops, nil
}

// DisasmString formats a disassembled script for one line printing.  When
// the script fails to parse, the returned string will contain the
// disassembled script up to the point the failure occurred along with the
// string '[error]' appended.
func DisasmString(script []byte) (string, error) {
	pops, err := parseScript(script)
	parts := make([]string, 0, len(pops))
	for _, pop := range pops {
		switch {
		case pop.data != nil:
			parts = append(parts, hex.EncodeToString(pop.data))
		case pop.opcode == OP_0:
			parts = append(parts, "0")
		case pop.opcode == OP_1NEGATE:
			parts = append(parts, "-1")
		case pop.opcode >= OP_1 && pop.opcode <= OP_16:
			parts = append(parts, fmt.Sprintf("%d", pop.opcode-(OP_1-1)))
		default:
			name, ok := opcodeNames[pop.opcode]
			if !ok {
				name = fmt.Sprintf("OP_UNKNOWN%d", pop.opcode)
			}
			parts = append(parts, name)
		}
	}
	if err != nil {
		parts = append(parts, "[error]")
	}
	return strings.Join(parts, " "), err
}
