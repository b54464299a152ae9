// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nrgutil

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/minio/sha256-simd"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160"
)

var (
	// ErrChecksumMismatch describes an error where decoding failed due
	// to a bad checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnknownAddressType describes an error where an address can not be
	// decoded because its version byte is not one of the network prefixes.
	ErrUnknownAddressType = errors.New("unknown address type")
)

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	sha := sha256.Sum256(buf)
	hasher := ripemd160.New()
	_, _ = hasher.Write(sha[:])
	return hasher.Sum(nil)
}

// AddressPrefixes holds the version bytes a network uses for its base58
// addresses.
type AddressPrefixes struct {
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
}

// Address is a pay-to-pubkey-hash or pay-to-script-hash destination.
type Address struct {
	hash   [ripemd160.Size]byte
	netID  byte
	script bool
}

// NewAddressPubKeyHash returns a new pay-to-pubkey-hash address. pkHash must
// be 20 bytes.
func NewAddressPubKeyHash(pkHash []byte, netID byte) (*Address, error) {
	return newAddress(pkHash, netID, false)
}

// NewAddressScriptHashFromHash returns a new pay-to-script-hash address.
// scriptHash must be 20 bytes.
func NewAddressScriptHashFromHash(scriptHash []byte, netID byte) (*Address, error) {
	return newAddress(scriptHash, netID, true)
}

// NewAddressPubKey hashes the serialized public key into a
// pay-to-pubkey-hash address.
func NewAddressPubKey(serializedPubKey []byte, netID byte) (*Address, error) {
	switch len(serializedPubKey) {
	case 33, 65:
	default:
		return nil, errors.Errorf("invalid public key length %d", len(serializedPubKey))
	}
	return newAddress(Hash160(serializedPubKey), netID, false)
}

func newAddress(hash []byte, netID byte, script bool) (*Address, error) {
	if len(hash) != ripemd160.Size {
		return nil, errors.Errorf("hash must be %d bytes, got %d", ripemd160.Size, len(hash))
	}

	addr := &Address{netID: netID, script: script}
	copy(addr.hash[:], hash)
	return addr, nil
}

// EncodeAddress returns the base58check string of the address.
func (a *Address) EncodeAddress() string {
	return base58.CheckEncode(a.hash[:], a.netID)
}

// String returns EncodeAddress.
func (a *Address) String() string {
	return a.EncodeAddress()
}

// Hash160 returns the 20-byte hash the address commits to.
func (a *Address) Hash160() []byte {
	return a.hash[:]
}

// IsScriptHash reports whether the address pays to a script hash.
func (a *Address) IsScriptHash() bool {
	return a.script
}

// NetID returns the version byte of the address.
func (a *Address) NetID() byte {
	return a.netID
}

// DecodeAddress decodes the string encoding of an address and checks its
// version byte against the network prefixes.
func DecodeAddress(addr string, prefixes AddressPrefixes) (*Address, error) {
	decoded, netID, err := base58.CheckDecode(addr)
	if err != nil {
		if err == base58.ErrChecksum {
			return nil, ErrChecksumMismatch
		}
		return nil, errors.Wrap(err, "decoded address is of unknown format")
	}

	switch netID {
	case prefixes.PubKeyHashAddrID:
		return NewAddressPubKeyHash(decoded, netID)
	case prefixes.ScriptHashAddrID:
		return NewAddressScriptHashFromHash(decoded, netID)
	default:
		return nil, ErrUnknownAddressType
	}
}
