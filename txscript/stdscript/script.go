// Copyright (c) 2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stdscript provides facilities for working with standard scripts.
package stdscript

// ScriptType identifies the type of known scripts that are typically
// considered standard by the default policy of most nodes. All other
// scripts are considered non-standard.
type ScriptType byte

const (
	// STNonStandard indicates a script is none of the recognized standard
	// forms.
	STNonStandard ScriptType = iota

	// STPubKey identifies a standard script that imposes an encumbrance that
	// requires a valid ECDSA signature for a specific secp256k1 public key.
	//
	// This is commonly referred to as a pay-to-pubkey (P2PK) script.
	STPubKey

	// STPubKeyHash identifies a standard script that imposes an encumbrance
	// that requires a secp256k1 public key that hashes to a specific value
	// along with a valid ECDSA signature for that public key.
	//
	// This is commonly referred to as a pay-to-pubkey-hash (P2PKH) script.
	STPubKeyHash

	// STScriptHash identifies a standard script that imposes an encumbrance
	// that requires a script that hashes to a specific value along with all
	// of the encumbrances that script itself imposes. The script is commonly
	// referred to as a redeem script.
	//
	// This is commonly referred to as pay-to-script-hash (P2SH).
	STScriptHash

	// STNullData identifies a standard null data script that is provably
	// prunable.
	STNullData

	// STNotaryPubKey identifies a pay-to-pubkey script whose public key
	// matches one of the chain's active notary pubkeys. DetermineScriptType
	// never returns it, since it has no notary set to compare against;
	// IsNotaryPubKeyScript performs that check.
	STNotaryPubKey

	// numScriptTypes is the maximum script type number. This entry MUST be
	// the last entry in the enum.
	numScriptTypes
)

var scriptTypeToName = []string{
	STNonStandard:   "nonstandard",
	STPubKey:        "pubkey",
	STPubKeyHash:    "pubkeyhash",
	STScriptHash:    "scripthash",
	STNullData:      "nulldata",
	STNotaryPubKey:  "notarypubkey",
}

// String returns the ScriptType as a human-readable name.
func (t ScriptType) String() string {
	if t >= numScriptTypes {
		return "invalid"
	}
	return scriptTypeToName[t]
}

// IsPubKeyScript returns whether or not the passed script is a standard
// pay-to-compressed-secp256k1-pubkey script.
//
// NOTE: Version 0 scripts are the only currently supported version. It will
// always return false for other script versions.
func IsPubKeyScript(scriptVersion uint16, script []byte) bool {
	switch scriptVersion {
	case 0:
		return IsPubKeyScriptV0(script)
	}
	return false
}

// IsPubKeyHashScript returns whether or not the passed script is a standard
// pay-to-pubkey-hash script.
//
// NOTE: Version 0 scripts are the only currently supported version. It will
// always return false for other script versions.
func IsPubKeyHashScript(scriptVersion uint16, script []byte) bool {
	switch scriptVersion {
	case 0:
		return IsPubKeyHashScriptV0(script)
	}
	return false
}

// IsScriptHashScript returns whether or not the passed script is a standard
// pay-to-script-hash script.
//
// NOTE: Version 0 scripts are the only currently supported version. It will
// always return false for other script versions.
func IsScriptHashScript(scriptVersion uint16, script []byte) bool {
	switch scriptVersion {
	case 0:
		return IsScriptHashScriptV0(script)
	}
	return false
}

// IsNullDataScript returns whether or not the passed script is a standard
// null data script.
//
// NOTE: Version 0 scripts are the only currently supported version. It will
// always return false for other script versions.
func IsNullDataScript(scriptVersion uint16, script []byte) bool {
	switch scriptVersion {
	case 0:
		return IsNullDataScriptV0(script)
	}
	return false
}

// IsNotaryPubKeyScript returns whether or not the passed script is a
// pay-to-pubkey script whose embedded public key is a member of
// notaryPubKeys.
//
// NOTE: Version 0 scripts are the only currently supported version. It will
// always return false for other script versions.
func IsNotaryPubKeyScript(scriptVersion uint16, script []byte, notaryPubKeys [][]byte) bool {
	switch scriptVersion {
	case 0:
		return IsNotaryPubKeyScriptV0(script, notaryPubKeys)
	}
	return false
}

// DetermineScriptType returns the type of the script passed.
//
// NOTE: Version 0 scripts are the only currently supported version. It will
// always return STNonStandard for other script versions.
//
// Similarly, STNonStandard is returned when the script does not parse.
func DetermineScriptType(scriptVersion uint16, script []byte) ScriptType {
	switch scriptVersion {
	case 0:
		return DetermineScriptTypeV0(script)
	}
	return STNonStandard
}
