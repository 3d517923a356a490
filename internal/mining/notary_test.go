// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"testing"
	"time"

	"github.com/galaxywarscoin/GalaxywarsOcean/txscript"
	"github.com/galaxywarscoin/GalaxywarsOcean/wire"
)

func notaryScript(pubKey []byte) []byte {
	return txscript.PayToPubKeyScript(pubKey)
}

func fakePubKey(b byte) []byte {
	pk := make([]byte, 33)
	pk[0] = 0x02
	pk[32] = b
	return pk
}

type fakeOracle struct {
	active          [][]byte
	notarizedHeight uint32
}

func (f *fakeOracle) ActiveNotaries(height int64, blockTime time.Time) [][]byte {
	return f.active
}

func (f *fakeOracle) ExtractNotarizedHeight(script []byte) uint32 {
	return f.notarizedHeight
}

func TestRequiredNotarySigners(t *testing.T) {
	cases := []struct {
		active int
		want   int
	}{
		{0, 0}, {1, 1}, {5, 1}, {6, 2}, {13, 3}, {65, 13},
	}
	for _, c := range cases {
		if got := requiredNotarySigners(c.active); got != c.want {
			t.Errorf("requiredNotarySigners(%d) = %d, want %d", c.active, got, c.want)
		}
	}
}

func TestObserveInputDuplicateSigner(t *testing.T) {
	notaries := [][]byte{fakePubKey(1), fakePubKey(2)}
	oracle := &fakeOracle{active: notaries, notarizedHeight: 100}
	eval := newNotarisationEvaluator(oracle, 10, time.Now())

	script := notaryScript(notaries[0])
	if signed, dup := eval.observeInput(script); !signed || dup {
		t.Fatalf("first signing: signed=%v dup=%v, want true/false", signed, dup)
	}
	if signed, dup := eval.observeInput(script); !signed || !dup {
		t.Fatalf("second signing by same notary: signed=%v dup=%v, want true/true", signed, dup)
	}
	if eval.signerCount() != 1 {
		t.Fatalf("signerCount = %d, want 1", eval.signerCount())
	}
}

func TestIsCandidateNotarisation(t *testing.T) {
	notaries := [][]byte{fakePubKey(1), fakePubKey(2), fakePubKey(3), fakePubKey(4), fakePubKey(5)}
	oracle := &fakeOracle{active: notaries, notarizedHeight: 1000}
	eval := newNotarisationEvaluator(oracle, 10, time.Now())
	eval.observeInput(notaryScript(notaries[0]))

	tx := wire.NewMsgTx()
	tx.AddTxOut(wire.NewTxOut(1, []byte{0x76}))
	tx.AddTxOut(wire.NewTxOut(0, append([]byte{txscript.OP_RETURN}, 0x01)))

	if !isCandidateNotarisation(tx, eval, oracle, false) {
		t.Fatal("expected candidate notarisation to qualify")
	}
	if isCandidateNotarisation(tx, eval, oracle, true) {
		t.Fatal("duplicate signer must disqualify the notarisation")
	}
}

func TestEvaluatorResetClearsSigners(t *testing.T) {
	notaries := [][]byte{fakePubKey(1), fakePubKey(2)}
	oracle := &fakeOracle{active: notaries, notarizedHeight: 100}
	eval := newNotarisationEvaluator(oracle, 10, time.Now())

	eval.observeInput(notaryScript(notaries[0]))
	if eval.signerCount() != 1 {
		t.Fatalf("signerCount after first tx = %d, want 1", eval.signerCount())
	}

	eval.reset()
	if eval.signerCount() != 0 {
		t.Fatalf("signerCount after reset = %d, want 0", eval.signerCount())
	}

	// The same notary signing a second, unrelated transaction must not be
	// treated as a duplicate: the evaluator's signer set is per-tx.
	if signed, dup := eval.observeInput(notaryScript(notaries[0])); !signed || dup {
		t.Fatalf("signing in a fresh transaction after reset: signed=%v dup=%v, want true/false", signed, dup)
	}
}

func TestIsCandidateNotarisationRejectsWrongShape(t *testing.T) {
	notaries := [][]byte{fakePubKey(1)}
	oracle := &fakeOracle{active: notaries, notarizedHeight: 1000}
	eval := newNotarisationEvaluator(oracle, 10, time.Now())
	eval.observeInput(notaryScript(notaries[0]))

	tx := wire.NewMsgTx()
	tx.AddTxOut(wire.NewTxOut(1, []byte{0x76}))
	tx.AddTxOut(wire.NewTxOut(1, append([]byte{txscript.OP_RETURN}, 0x01)))

	if isCandidateNotarisation(tx, eval, oracle, false) {
		t.Fatal("non-zero second output value must disqualify the notarisation")
	}
}
