// Copyright (c) 2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

import (
	"bytes"
	"testing"
)

type mockAddrParams struct {
	pubKeyHashID byte
	scriptHashID byte
}

func (p *mockAddrParams) AddrIDPubKeyHashV0() byte { return p.pubKeyHashID }
func (p *mockAddrParams) AddrIDScriptHashV0() byte { return p.scriptHashID }

func mockParams() *mockAddrParams {
	return &mockAddrParams{pubKeyHashID: 0x3c, scriptHashID: 0x55}
}

func TestPubKeyHashAddressRoundTrip(t *testing.T) {
	params := mockParams()
	hash := bytes.Repeat([]byte{0x01}, 20)

	addr, err := NewAddressPubKeyHashEcdsaSecp256k1V0(hash, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := DecodeAddress(addr.String(), params)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !bytes.Equal(decoded.Hash160()[:], hash) {
		t.Fatalf("hash mismatch after round trip")
	}

	_, script := addr.PaymentScript()
	fromScript, ok := AddressFromScript(0, script, params)
	if !ok {
		t.Fatalf("expected AddressFromScript to recognize pubkeyhash script")
	}
	if fromScript.String() != addr.String() {
		t.Fatalf("address mismatch: got %s want %s", fromScript.String(), addr.String())
	}
}

func TestScriptHashAddressRoundTrip(t *testing.T) {
	params := mockParams()
	redeem := []byte{0x51, 0x52, 0x53}

	addr, err := NewAddressScriptHashV0(redeem, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := DecodeAddress(addr.String(), params)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.String() != addr.String() {
		t.Fatalf("address mismatch after round trip")
	}
}
