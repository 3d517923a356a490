// Copyright (c) 2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdscript

import (
	"bytes"

	"github.com/galaxywarscoin/GalaxywarsOcean/txscript"
)

// MaxDataCarrierSizeV0 is the maximum number of bytes allowed in pushed data
// to be considered a standard version 0 provably pruneable nulldata script.
const MaxDataCarrierSizeV0 = 256

// ExtractCompressedPubKeyV0 extracts a compressed public key from the passed
// script if it is a standard version 0 pay-to-compressed-secp256k1-pubkey
// script. It will return nil otherwise.
func ExtractCompressedPubKeyV0(script []byte) []byte {
	// A pay-to-compressed-pubkey script is of the form:
	//  OP_DATA_33 <33-byte compressed pubkey> OP_CHECKSIG
	if len(script) == 35 &&
		script[34] == txscript.OP_CHECKSIG &&
		script[0] == txscript.OP_DATA_33 &&
		(script[1] == 0x02 || script[1] == 0x03) {

		return script[1:34]
	}
	return nil
}

// IsPubKeyScriptV0 returns whether or not the passed script is a standard
// version 0 pay-to-compressed-secp256k1-pubkey script.
func IsPubKeyScriptV0(script []byte) bool {
	return ExtractCompressedPubKeyV0(script) != nil
}

// IsNotaryPubKeyScriptV0 returns whether or not the passed script is a
// pay-to-pubkey script whose public key is a member of notaryPubKeys. This is
// the canonical "push33 <pubkey> OP_CHECKSIG" template the notarisation
// detector matches against the chain's active notary set.
func IsNotaryPubKeyScriptV0(script []byte, notaryPubKeys [][]byte) bool {
	pubKey := ExtractCompressedPubKeyV0(script)
	if pubKey == nil {
		return false
	}
	for _, notary := range notaryPubKeys {
		if bytes.Equal(pubKey, notary) {
			return true
		}
	}
	return false
}

// ExtractPubKeyHashV0 extracts the public key hash from the passed script if
// it is a standard version 0 pay-to-pubkey-hash script. It will return nil
// otherwise.
func ExtractPubKeyHashV0(script []byte) []byte {
	// A pay-to-pubkey-hash script is of the form:
	//  OP_DUP OP_HASH160 OP_DATA_20 <20-byte hash> OP_EQUALVERIFY OP_CHECKSIG
	if len(script) == 25 &&
		script[0] == txscript.OP_DUP &&
		script[1] == txscript.OP_HASH160 &&
		script[2] == txscript.OP_DATA_20 &&
		script[23] == txscript.OP_EQUALVERIFY &&
		script[24] == txscript.OP_CHECKSIG {

		return script[3:23]
	}
	return nil
}

// IsPubKeyHashScriptV0 returns whether or not the passed script is a standard
// version 0 pay-to-pubkey-hash script.
func IsPubKeyHashScriptV0(script []byte) bool {
	return ExtractPubKeyHashV0(script) != nil
}

// ExtractScriptHashV0 extracts the script hash from the passed script if it
// is a standard version 0 pay-to-script-hash script. It will return nil
// otherwise.
func ExtractScriptHashV0(script []byte) []byte {
	// A pay-to-script-hash script is of the form:
	//  OP_HASH160 OP_DATA_20 <20-byte hash> OP_EQUAL
	if len(script) == 23 &&
		script[0] == txscript.OP_HASH160 &&
		script[1] == txscript.OP_DATA_20 &&
		script[22] == txscript.OP_EQUAL {

		return script[2:22]
	}
	return nil
}

// IsScriptHashScriptV0 returns whether or not the passed script is a standard
// version 0 pay-to-script-hash script.
func IsScriptHashScriptV0(script []byte) bool {
	return ExtractScriptHashV0(script) != nil
}

// ExtractNullDataV0 extracts the data carried by a standard version 0
// provably pruneable null data script. It will return nil otherwise,
// including if the script does not parse or exceeds MaxDataCarrierSizeV0.
func ExtractNullDataV0(script []byte) []byte {
	if len(script) < 1 || script[0] != txscript.OP_RETURN {
		return nil
	}
	data := script[1:]
	if len(data) > MaxDataCarrierSizeV0 {
		return nil
	}
	return data
}

// IsNullDataScriptV0 returns whether or not the passed script is a standard
// version 0 null data script.
func IsNullDataScriptV0(script []byte) bool {
	return len(script) >= 1 && script[0] == txscript.OP_RETURN
}

// ExtractCLTVScriptHashV0 extracts the CHECKLOCKTIMEVERIFY timelock height
// and the redeem script hash from a standard version 0 timelocked
// pay-to-script-hash script of the form used to wrap a coinbase output:
//
//	<locktime> OP_CHECKLOCKTIMEVERIFY OP_DROP OP_HASH160 <20-byte hash> OP_EQUAL
//
// It returns ok=false for any other script shape.
func ExtractCLTVScriptHashV0(script []byte) (lockTime int64, scriptHash []byte, ok bool) {
	if len(script) < 1+1+1+1+20+1 {
		return 0, nil, false
	}

	// The locktime push is minimally encoded as a 1-5 byte little-endian
	// integer preceded by its own length byte, the standard CScriptNum
	// encoding used throughout the Bitcoin-derived family.
	pushLen := int(script[0])
	if pushLen < 1 || pushLen > 5 || len(script) < 1+pushLen+3+1+20+1 {
		return 0, nil, false
	}
	numBytes := script[1 : 1+pushLen]
	var n int64
	for i, b := range numBytes {
		n |= int64(b) << (8 * uint(i))
	}
	if numBytes[len(numBytes)-1]&0x80 != 0 {
		// Negative CScriptNum encoding; not a valid locktime.
		return 0, nil, false
	}

	off := 1 + pushLen
	if script[off] != txscript.OP_CHECKLOCKTIMEVERIFY ||
		script[off+1] != txscript.OP_DROP ||
		script[off+2] != txscript.OP_HASH160 ||
		script[off+3] != txscript.OP_DATA_20 {
		return 0, nil, false
	}
	hashStart := off + 4
	if len(script) != hashStart+20+1 || script[hashStart+20] != txscript.OP_EQUAL {
		return 0, nil, false
	}

	return n, script[hashStart : hashStart+20], true
}

// IsCLTVScriptHashScriptV0 returns whether or not the passed script is a
// standard version 0 timelocked pay-to-script-hash script.
func IsCLTVScriptHashScriptV0(script []byte) bool {
	_, _, ok := ExtractCLTVScriptHashV0(script)
	return ok
}

// DetermineScriptTypeV0 returns the type of the passed version 0 script.
func DetermineScriptTypeV0(script []byte) ScriptType {
	switch {
	case IsPubKeyScriptV0(script):
		return STPubKey
	case IsPubKeyHashScriptV0(script):
		return STPubKeyHash
	case IsScriptHashScriptV0(script):
		return STScriptHash
	case IsNullDataScriptV0(script):
		return STNullData
	}
	return STNonStandard
}
