// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"testing"
	"time"

	"github.com/galaxywarscoin/GalaxywarsOcean/chainhash"
	"github.com/galaxywarscoin/GalaxywarsOcean/wire"
)

type fakeChainView struct {
	height int64
	hash   chainhash.Hash
}

func (f *fakeChainView) TipHeight() int64          { return f.height }
func (f *fakeChainView) TipHash() chainhash.Hash   { return f.hash }
func (f *fakeChainView) MedianTimePast() time.Time { return time.Unix(0, 0) }
func (f *fakeChainView) TipTime() time.Time        { return time.Unix(0, 0) }

type fakeNotaryVinSource struct {
	outpoint wire.OutPoint
	value    int64
	pkScript []byte
	ok       bool
}

func (f *fakeNotaryVinSource) NotaryVinCoin() (wire.OutPoint, int64, []byte, bool) {
	return f.outpoint, f.value, f.pkScript, f.ok
}

func TestBuildNotaryVinTxRequiresActivationAndNotary(t *testing.T) {
	params := testParams()
	src := &fakeNotaryVinSource{ok: true, value: 10000, pkScript: []byte{0x76}}
	req := &TemplateRequest{
		Chain:     &fakeChainView{height: 900},
		Policy:    Policy{IsNotary: true},
		NotaryVin: src,
	}

	if tx := buildNotaryVinTx(params, req, params.DecemberHardforkHeight-1); tx != nil {
		t.Fatal("a height below DecemberHardforkHeight must not build a notary-vin tx")
	}

	req.Policy.IsNotary = false
	if tx := buildNotaryVinTx(params, req, params.DecemberHardforkHeight+1); tx != nil {
		t.Fatal("a non-notary node must not build a notary-vin tx")
	}
}

func TestBuildNotaryVinTxBuildsSelfPayment(t *testing.T) {
	params := testParams()
	script := []byte{0x76, 0xa9}
	src := &fakeNotaryVinSource{
		outpoint: wire.OutPoint{Index: 7},
		value:    10000,
		pkScript: script,
		ok:       true,
	}
	req := &TemplateRequest{
		Chain:     &fakeChainView{height: 900},
		Policy:    Policy{IsNotary: true},
		NotaryVin: src,
	}

	tx := buildNotaryVinTx(params, req, params.DecemberHardforkHeight+1)
	if tx == nil {
		t.Fatal("expected a notary-vin tx to be built")
	}
	if len(tx.TxIn) != 1 || tx.TxIn[0].PreviousOutPoint != src.outpoint {
		t.Fatal("notary-vin tx must spend the tracked notary-vin outpoint")
	}
	if len(tx.TxOut) != 2 {
		t.Fatalf("notary-vin tx must carry a self-payment and an OP_RETURN output, got %d", len(tx.TxOut))
	}
	if tx.TxOut[0].Value != src.value-notaryVinFee {
		t.Fatalf("self-payment value = %d, want %d", tx.TxOut[0].Value, src.value-notaryVinFee)
	}
	if tx.TxOut[1].Value != 0 || len(tx.TxOut[1].PkScript) == 0 || tx.TxOut[1].PkScript[0] != 0x6a {
		t.Fatal("second output must be a zero-value OP_RETURN carrying the notary opret")
	}
}

func TestBuildNotaryVinTxNoCoinTracked(t *testing.T) {
	params := testParams()
	req := &TemplateRequest{
		Chain:     &fakeChainView{height: 900},
		Policy:    Policy{IsNotary: true},
		NotaryVin: &fakeNotaryVinSource{ok: false},
	}
	if tx := buildNotaryVinTx(params, req, params.DecemberHardforkHeight+1); tx != nil {
		t.Fatal("no tracked notary-vin coin must yield no transaction")
	}
}
