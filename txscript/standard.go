// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

const (
	// MaxDataCarrierSize is the maximum number of bytes allowed in pushed
	// data to be considered a nulldata transaction
	MaxDataCarrierSize = 80
)

// ScriptClass is an enumeration for the list of standard types of script.
type ScriptClass byte

// Classes of script payment known about in the blockchain.
const (
	NonStandardTy ScriptClass = iota // None of the recognized forms.
	PubKeyTy                         // Pay pubkey.
	PubKeyHashTy                     // Pay pubkey hash.
	ScriptHashTy                     // Pay to script hash.
	NullDataTy                       // Empty data-only (provably prunable).
)

// scriptClassToName houses the human-readable strings which describe each
// script class.
var scriptClassToName = []string{
	NonStandardTy: "nonstandard",
	PubKeyTy:      "pubkey",
	PubKeyHashTy:  "pubkeyhash",
	ScriptHashTy:  "scripthash",
	NullDataTy:    "nulldata",
}

// String implements the Stringer interface by returning the name of
// the enum script class. If the enum is invalid then "Invalid" will be
// returned.
func (t ScriptClass) String() string {
	if int(t) >= len(scriptClassToName) {
		return "Invalid"
	}
	return scriptClassToName[t]
}

// isPubkey returns true if the script passed is a pay-to-pubkey transaction,
// false otherwise.
func isPubkey(pops []parsedOpcode) bool {
	// Valid pubkeys are either 33 or 65 bytes.
	return len(pops) == 2 &&
		(len(pops[0].data) == 33 || len(pops[0].data) == 65) &&
		pops[1].opcode == OP_CHECKSIG
}

// isPubkeyHash returns true if the script passed is a pay-to-pubkey-hash
// transaction, false otherwise.
func isPubkeyHash(pops []parsedOpcode) bool {
	return len(pops) == 5 &&
		pops[0].opcode == OP_DUP &&
		pops[1].opcode == OP_HASH160 &&
		pops[2].opcode == OP_DATA_20 &&
		pops[3].opcode == OP_EQUALVERIFY &&
		pops[4].opcode == OP_CHECKSIG
}

// isScriptHash returns true if the script passed is a pay-to-script-hash
// transaction, false otherwise.
func isScriptHash(pops []parsedOpcode) bool {
	return len(pops) == 3 &&
		pops[0].opcode == OP_HASH160 &&
		pops[1].opcode == OP_DATA_20 &&
		pops[2].opcode == OP_EQUAL
}

// isNullData returns true if the passed script is a null data transaction,
// false otherwise.
func isNullData(pops []parsedOpcode) bool {
	// A nulldata transaction is either a single OP_RETURN or an
	// OP_RETURN SMALLDATA (where SMALLDATA is a data push up to
	// MaxDataCarrierSize bytes).
	l := len(pops)
	if l == 1 && pops[0].opcode == OP_RETURN {
		return true
	}

	return l == 2 &&
		pops[0].opcode == OP_RETURN &&
		(isSmallInt(pops[1].opcode) || pops[1].opcode <= OP_PUSHDATA4) &&
		len(pops[1].data) <= MaxDataCarrierSize
}

// typeOfScript returns the type of the script being inspected from the known
// standard types.
func typeOfScript(pops []parsedOpcode) ScriptClass {
	switch {
	case isPubkey(pops):
		return PubKeyTy
	case isPubkeyHash(pops):
		return PubKeyHashTy
	case isScriptHash(pops):
		return ScriptHashTy
	case isNullData(pops):
		return NullDataTy
	}
	return NonStandardTy
}

// GetScriptClass returns the class of the script passed.
//
// NonStandardTy will be returned when the script does not parse.
func GetScriptClass(script []byte) ScriptClass {
	pops, err := parseScript(script)
	if err != nil {
		return NonStandardTy
	}
	return typeOfScript(pops)
}

// ExtractHash returns the 20-byte hash committed to by a pay-to-pubkey-hash
// or pay-to-script-hash script together with its class.
func ExtractHash(script []byte) ([]byte, ScriptClass, error) {
	pops, err := parseScript(script)
	if err != nil {
		return nil, NonStandardTy, err
	}

	switch class := typeOfScript(pops); class {
	case PubKeyHashTy:
		return pops[2].data, class, nil
	case ScriptHashTy:
		return pops[1].data, class, nil
	default:
		return nil, class, scriptError(ErrUnsupportedAddress,
			"script class "+class.String()+" does not commit to a hash")
	}
}

// PayToPubKeyHashScript creates a new script to pay a transaction
// output to a 20-byte pubkey hash. It is expected that the input is a valid
// hash.
func PayToPubKeyHashScript(pubKeyHash []byte) ([]byte, error) {
	if len(pubKeyHash) != 20 {
		return nil, errors.Errorf("pubkey hash must be 20 bytes, got %d", len(pubKeyHash))
	}
	return NewScriptBuilder().
		AddOp(OP_DUP).
		AddOp(OP_HASH160).
		AddData(pubKeyHash).
		AddOp(OP_EQUALVERIFY).
		AddOp(OP_CHECKSIG).
		Script()
}

// PayToScriptHashScript creates a new script to pay a transaction output to a
// script hash. It is expected that the input is a valid hash.
func PayToScriptHashScript(scriptHash []byte) ([]byte, error) {
	if len(scriptHash) != 20 {
		return nil, errors.Errorf("script hash must be 20 bytes, got %d", len(scriptHash))
	}
	return NewScriptBuilder().
		AddOp(OP_HASH160).
		AddData(scriptHash).
		AddOp(OP_EQUAL).
		Script()
}

// PayToPubKeyScript creates a new script to pay a transaction output to a
// public key. It is expected that the input is a valid pubkey.
func PayToPubKeyScript(serializedPubKey []byte) ([]byte, error) {
	return NewScriptBuilder().
		AddData(serializedPubKey).
		AddOp(OP_CHECKSIG).
		Script()
}

// mustDecode is used by the parameter tables to build scripts from known-good
// hex constants.
func mustDecode(str string) []byte {
	b, err := hex.DecodeString(str)
	if err != nil {
		panic(err)
	}
	return b
}

// MustPayToPubKeyHex returns the pay-to-pubkey script for a hex encoded
// public key. It panics on malformed input and is meant for static tables.
func MustPayToPubKeyHex(pubKey string) []byte {
	script, err := PayToPubKeyScript(mustDecode(pubKey))
	if err != nil {
		panic(err)
	}
	return script
}

// MustPayToPubKeyHashHex returns the pay-to-pubkey-hash script for a hex
// encoded hash. It panics on malformed input and is meant for static tables.
func MustPayToPubKeyHashHex(hash string) []byte {
	script, err := PayToPubKeyHashScript(mustDecode(hash))
	if err != nil {
		panic(err)
	}
	return script
}

// MustPayToScriptHashHex returns the pay-to-script-hash script for a hex
// encoded hash. It panics on malformed input and is meant for static tables.
func MustPayToScriptHashHex(hash string) []byte {
	script, err := PayToScriptHashScript(mustDecode(hash))
	if err != nil {
		panic(err)
	}
	return script
}
