// Copyright (c) 2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stdaddr provides facilities for working with standard addresses.
package stdaddr

import (
	"fmt"

	"github.com/decred/base58"
	"github.com/galaxywarscoin/GalaxywarsOcean/dcrutil"
	"github.com/galaxywarscoin/GalaxywarsOcean/txscript/stdscript"
)

// AddressParams defines an interface that is used to provide the parameters
// required when encoding and decoding addresses. These values are typically
// well-defined and unique to a particular network.
type AddressParams interface {
	// AddrIDPubKeyHashV0 returns the magic prefix byte used for version 0
	// pay-to-pubkey-hash addresses.
	AddrIDPubKeyHashV0() byte

	// AddrIDScriptHashV0 returns the magic prefix byte used for version 0
	// pay-to-script-hash addresses.
	AddrIDScriptHashV0() byte
}

// Address is an interface type for any type of destination a transaction
// output may spend to. This includes pay-to-pubkey-hash (P2PKH) and
// pay-to-script-hash (P2SH) addresses.
type Address interface {
	// String returns the "human-readable" string representation of the
	// address.
	String() string

	// PaymentScript returns the script version and script associated with
	// the address.
	PaymentScript() (uint16, []byte)

	// Hash160 returns the underlying array of the pubkey hash or script
	// hash. This will be nil for P2PK addresses.
	Hash160() *[20]byte
}

// AddressPubKeyHashEcdsaSecp256k1V0 is the version 0 pay-to-pubkey-hash
// address for a secp256k1-ECDSA public key.
type AddressPubKeyHashEcdsaSecp256k1V0 struct {
	netID byte
	hash  [20]byte
}

// NewAddressPubKeyHashEcdsaSecp256k1V0 returns an address for a version 0
// pay-to-pubkey-hash encumbered by an ECDSA-secp256k1 public key.
func NewAddressPubKeyHashEcdsaSecp256k1V0(pkHash []byte, params AddressParams) (*AddressPubKeyHashEcdsaSecp256k1V0, error) {
	if len(pkHash) != 20 {
		return nil, fmt.Errorf("pubkey hash must be 20 bytes, got %d", len(pkHash))
	}
	addr := &AddressPubKeyHashEcdsaSecp256k1V0{netID: params.AddrIDPubKeyHashV0()}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// String returns the base58check-encoded string representation of the
// address.
func (a *AddressPubKeyHashEcdsaSecp256k1V0) String() string {
	return base58.CheckEncode(a.hash[:], a.netID)
}

// PaymentScript returns the script version and script that should be used to
// pay to the address.
func (a *AddressPubKeyHashEcdsaSecp256k1V0) PaymentScript() (uint16, []byte) {
	script := make([]byte, 0, 25)
	script = append(script, 0x76, 0xa9, 0x14) // OP_DUP OP_HASH160 OP_DATA_20
	script = append(script, a.hash[:]...)
	script = append(script, 0x88, 0xac) // OP_EQUALVERIFY OP_CHECKSIG
	return 0, script
}

// Hash160 returns the underlying 20-byte pubkey hash.
func (a *AddressPubKeyHashEcdsaSecp256k1V0) Hash160() *[20]byte {
	return &a.hash
}

// AddressScriptHashV0 is the version 0 pay-to-script-hash address.
type AddressScriptHashV0 struct {
	netID byte
	hash  [20]byte
}

// NewAddressScriptHashV0 returns an address for a version 0
// pay-to-script-hash for the given redeem script.
func NewAddressScriptHashV0(redeemScript []byte, params AddressParams) (*AddressScriptHashV0, error) {
	return newAddressScriptHashFromHashV0(dcrutil.Hash160(redeemScript), params)
}

func newAddressScriptHashFromHashV0(scriptHash []byte, params AddressParams) (*AddressScriptHashV0, error) {
	if len(scriptHash) != 20 {
		return nil, fmt.Errorf("script hash must be 20 bytes, got %d", len(scriptHash))
	}
	addr := &AddressScriptHashV0{netID: params.AddrIDScriptHashV0()}
	copy(addr.hash[:], scriptHash)
	return addr, nil
}

// String returns the base58check-encoded string representation of the
// address.
func (a *AddressScriptHashV0) String() string {
	return base58.CheckEncode(a.hash[:], a.netID)
}

// PaymentScript returns the script version and script that should be used to
// pay to the address.
func (a *AddressScriptHashV0) PaymentScript() (uint16, []byte) {
	script := make([]byte, 0, 23)
	script = append(script, 0xa9, 0x14) // OP_HASH160 OP_DATA_20
	script = append(script, a.hash[:]...)
	script = append(script, 0x87) // OP_EQUAL
	return 0, script
}

// Hash160 returns the underlying 20-byte script hash.
func (a *AddressScriptHashV0) Hash160() *[20]byte {
	return &a.hash
}

// DecodeAddress decodes the base58check string encoding of an address and
// returns the Address if it is a valid encoding for a known address type and
// is for the network identified by params.
func DecodeAddress(addr string, params AddressParams) (Address, error) {
	decoded, netID, err := base58.CheckDecode(addr)
	if err != nil {
		return nil, fmt.Errorf("decode address: %w", err)
	}

	switch netID {
	case params.AddrIDPubKeyHashV0():
		return NewAddressPubKeyHashEcdsaSecp256k1V0(decoded, params)
	case params.AddrIDScriptHashV0():
		return newAddressScriptHashFromHashV0(decoded, params)
	}
	return nil, fmt.Errorf("unknown address network ID 0x%02x", netID)
}

// AddressFromScript returns the Address a given pkScript is known to pay to,
// when recognized. It returns a nil Address and false when the script is not
// one of the standard pay-to-pubkey-hash / pay-to-script-hash templates.
func AddressFromScript(scriptVersion uint16, pkScript []byte, params AddressParams) (Address, bool) {
	if scriptVersion != 0 {
		return nil, false
	}

	if hash := stdscript.ExtractPubKeyHashV0(pkScript); hash != nil {
		addr, err := NewAddressPubKeyHashEcdsaSecp256k1V0(hash, params)
		return addr, err == nil
	}
	if hash := stdscript.ExtractScriptHashV0(pkScript); hash != nil {
		addr, err := newAddressScriptHashFromHashV0(hash, params)
		return addr, err == nil
	}
	return nil, false
}
