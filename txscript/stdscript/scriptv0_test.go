// Copyright (c) 2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdscript

import (
	"bytes"
	"testing"

	"github.com/galaxywarscoin/GalaxywarsOcean/txscript"
)

func pubKeyScript(pubKey []byte) []byte {
	s := make([]byte, 0, 35)
	s = append(s, txscript.OP_DATA_33)
	s = append(s, pubKey...)
	s = append(s, txscript.OP_CHECKSIG)
	return s
}

func pubKeyHashScript(hash []byte) []byte {
	s := make([]byte, 0, 25)
	s = append(s, txscript.OP_DUP, txscript.OP_HASH160, txscript.OP_DATA_20)
	s = append(s, hash...)
	s = append(s, txscript.OP_EQUALVERIFY, txscript.OP_CHECKSIG)
	return s
}

func scriptHashScript(hash []byte) []byte {
	s := make([]byte, 0, 23)
	s = append(s, txscript.OP_HASH160, txscript.OP_DATA_20)
	s = append(s, hash...)
	s = append(s, txscript.OP_EQUAL)
	return s
}

func TestIsPubKeyScriptV0(t *testing.T) {
	pubKey := bytes.Repeat([]byte{0x02}, 33)
	pubKey[0] = 0x02
	script := pubKeyScript(pubKey)
	if !IsPubKeyScriptV0(script) {
		t.Fatalf("expected pubkey script to classify as such")
	}
	if got := ExtractCompressedPubKeyV0(script); !bytes.Equal(got, pubKey) {
		t.Fatalf("extracted pubkey mismatch: got %x want %x", got, pubKey)
	}
}

func TestIsNotaryPubKeyScriptV0(t *testing.T) {
	notary := bytes.Repeat([]byte{0x03}, 33)
	notary[0] = 0x03
	other := bytes.Repeat([]byte{0x02}, 33)
	other[0] = 0x02

	notaries := [][]byte{notary}

	if !IsNotaryPubKeyScriptV0(pubKeyScript(notary), notaries) {
		t.Fatalf("expected notary pubkey script to match")
	}
	if IsNotaryPubKeyScriptV0(pubKeyScript(other), notaries) {
		t.Fatalf("expected non-notary pubkey script not to match")
	}
}

func TestIsPubKeyHashScriptV0(t *testing.T) {
	hash := bytes.Repeat([]byte{0x11}, 20)
	script := pubKeyHashScript(hash)
	if !IsPubKeyHashScriptV0(script) {
		t.Fatalf("expected pubkeyhash script to classify as such")
	}
	if got := ExtractPubKeyHashV0(script); !bytes.Equal(got, hash) {
		t.Fatalf("extracted hash mismatch: got %x want %x", got, hash)
	}
}

func TestIsScriptHashScriptV0(t *testing.T) {
	hash := bytes.Repeat([]byte{0x22}, 20)
	script := scriptHashScript(hash)
	if !IsScriptHashScriptV0(script) {
		t.Fatalf("expected scripthash script to classify as such")
	}
	if got := ExtractScriptHashV0(script); !bytes.Equal(got, hash) {
		t.Fatalf("extracted hash mismatch: got %x want %x", got, hash)
	}
}

func TestIsNullDataScriptV0(t *testing.T) {
	script := append([]byte{txscript.OP_RETURN}, []byte("opret")...)
	if !IsNullDataScriptV0(script) {
		t.Fatalf("expected nulldata script to classify as such")
	}
	if got := ExtractNullDataV0(script); !bytes.Equal(got, []byte("opret")) {
		t.Fatalf("extracted data mismatch: got %q want %q", got, "opret")
	}
}

func TestExtractCLTVScriptHashV0(t *testing.T) {
	hash := bytes.Repeat([]byte{0x33}, 20)

	// locktime 500000000 encoded as a minimal little-endian CScriptNum push.
	lockTimeBytes := []byte{0x00, 0x65, 0xcd, 0x1d}
	script := make([]byte, 0, 1+len(lockTimeBytes)+3+20+1)
	script = append(script, byte(len(lockTimeBytes)))
	script = append(script, lockTimeBytes...)
	script = append(script, txscript.OP_CHECKLOCKTIMEVERIFY, txscript.OP_DROP,
		txscript.OP_HASH160, txscript.OP_DATA_20)
	script = append(script, hash...)
	script = append(script, txscript.OP_EQUAL)

	lockTime, gotHash, ok := ExtractCLTVScriptHashV0(script)
	if !ok {
		t.Fatalf("expected CLTV script to parse")
	}
	if lockTime != 500000000 {
		t.Fatalf("unexpected locktime: got %d want %d", lockTime, 500000000)
	}
	if !bytes.Equal(gotHash, hash) {
		t.Fatalf("extracted hash mismatch: got %x want %x", gotHash, hash)
	}
}

func TestDetermineScriptTypeV0(t *testing.T) {
	hash := bytes.Repeat([]byte{0x44}, 20)
	tests := []struct {
		name   string
		script []byte
		want   ScriptType
	}{
		{"pubkeyhash", pubKeyHashScript(hash), STPubKeyHash},
		{"scripthash", scriptHashScript(hash), STScriptHash},
		{"nulldata", []byte{txscript.OP_RETURN}, STNullData},
		{"nonstandard", []byte{0x51, 0x52}, STNonStandard},
	}
	for _, test := range tests {
		if got := DetermineScriptTypeV0(test.script); got != test.want {
			t.Errorf("%s: got %v want %v", test.name, got, test.want)
		}
	}
}
