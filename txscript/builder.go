// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// These builders produce the small, fixed set of script shapes the
// coinbase composer needs: plain payment templates, a notary-pubkey
// template, a provably pruneable data carrier, and the
// CheckLockTimeVerify-guarded P2SH wrapper used by the timelocked coinbase
// variant. Each is the mirror image of the matching stdscript Extract/Is
// function. DetermineScriptTypeV0 classifies the payment and null-data
// scripts back to their templates; it has no case for the CLTV redeem
// script (recognized by stdscript.ExtractCLTVScriptHashV0 instead) and
// reports a notary pubkey script as an ordinary STPubKey.

// PayToPubKeyHashScript returns a standard version 0
// pay-to-pubkey-hash script paying to the 20-byte hash.
func PayToPubKeyHashScript(pkHash []byte) []byte {
	script := make([]byte, 0, 25)
	script = append(script, OP_DUP, OP_HASH160, OP_DATA_20)
	script = append(script, pkHash...)
	script = append(script, OP_EQUALVERIFY, OP_CHECKSIG)
	return script
}

// PayToScriptHashScript returns a standard version 0 pay-to-script-hash
// script paying to the 20-byte hash.
func PayToScriptHashScript(scriptHash []byte) []byte {
	script := make([]byte, 0, 23)
	script = append(script, OP_HASH160, OP_DATA_20)
	script = append(script, scriptHash...)
	script = append(script, OP_EQUAL)
	return script
}

// PayToPubKeyScript returns a standard version 0 pay-to-compressed-pubkey
// script, the template the notary-pay and commission variants use to pay a
// raw pubkey directly (push33 <pubkey> OP_CHECKSIG).
func PayToPubKeyScript(compressedPubKey []byte) []byte {
	script := make([]byte, 0, 35)
	script = append(script, OP_DATA_33)
	script = append(script, compressedPubKey...)
	script = append(script, OP_CHECKSIG)
	return script
}

// NullDataScript returns a provably pruneable OP_RETURN script carrying
// data as its single push, used for the KMD fee-burn output and the
// timelock-wrapper's tagged redeem-script carrier output. The caller is
// responsible for keeping data within MaxDataCarrierSizeV0.
func NullDataScript(data []byte) []byte {
	script := make([]byte, 0, 2+len(data))
	script = append(script, OP_RETURN)
	script = append(script, encodeDataPush(data)...)
	return script
}

// encodeDataPush returns the push opcode(s) for data: OP_0 for empty data,
// a single length byte for up to 75 bytes, and OP_PUSHDATA1 with a one-byte
// length above that. Lengths over 255 bytes are not representable here.
func encodeDataPush(data []byte) []byte {
	if len(data) == 0 {
		return []byte{OP_0}
	}
	if len(data) <= 75 {
		return append([]byte{byte(len(data))}, data...)
	}
	// OP_PUSHDATA1: push opcode 0x4c followed by a 1-byte length.
	return append([]byte{0x4c, byte(len(data))}, data...)
}

// minimalScriptNum encodes n as a minimal little-endian CScriptNum: the
// standard Bitcoin-derived integer push encoding, with a padding byte added
// when the high bit of the final byte would otherwise be mistaken for a
// sign bit.
func minimalScriptNum(n int64) []byte {
	if n == 0 {
		return nil
	}

	negative := n < 0
	absVal := n
	if negative {
		absVal = -n
	}

	var result []byte
	for absVal > 0 {
		result = append(result, byte(absVal&0xff))
		absVal >>= 8
	}

	if result[len(result)-1]&0x80 != 0 {
		if negative {
			result = append(result, 0x80)
		} else {
			result = append(result, 0x00)
		}
	} else if negative {
		result[len(result)-1] |= 0x80
	}
	return result
}

// BuildCoinbaseHeightPush returns the minimal CScriptNum push of height
// prefixed with its own length byte, the BIP-34-style height commitment
// every coinbase scriptSig must lead with.
func BuildCoinbaseHeightPush(height int64) []byte {
	numPush := minimalScriptNum(height)
	push := make([]byte, 0, 1+len(numPush))
	push = append(push, byte(len(numPush)))
	push = append(push, numPush...)
	return push
}

// CLTVP2SHRedeemScript returns the redeem script
// "<lockTime> OP_CHECKLOCKTIMEVERIFY OP_DROP OP_HASH160 <hash> OP_EQUAL"
// that stdscript.ExtractCLTVScriptHashV0 parses, wrapping pkHash (the
// 20-byte hash of the miner's original destination script) behind a
// CheckLockTimeVerify guard at lockTime.
func CLTVP2SHRedeemScript(lockTime int64, pkHash []byte) []byte {
	numPush := minimalScriptNum(lockTime)
	script := make([]byte, 0, 1+len(numPush)+3+1+20+1)
	script = append(script, byte(len(numPush)))
	script = append(script, numPush...)
	script = append(script, OP_CHECKLOCKTIMEVERIFY, OP_DROP, OP_HASH160, OP_DATA_20)
	script = append(script, pkHash...)
	script = append(script, OP_EQUAL)
	return script
}
