// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"testing"

	"github.com/galaxywarscoin/GalaxywarsOcean/chainhash"
	"github.com/galaxywarscoin/GalaxywarsOcean/internal/mining"
	"github.com/galaxywarscoin/GalaxywarsOcean/wire"
)

func TestUtxoViewpointAddAccessSpend(t *testing.T) {
	v := NewUtxoViewpoint()
	var hash chainhash.Hash
	hash[0] = 0xaa

	v.AddEntries(hash, []*mining.UtxoEntry{{Amount: 1000, BlockHeight: 5}})
	if !v.HaveCoins(&hash) {
		t.Fatal("HaveCoins must report true for a freshly added unspent entry")
	}

	entries := v.AccessCoins(&hash)
	if len(entries) != 1 || entries[0].Amount != 1000 {
		t.Fatalf("AccessCoins mismatch: %+v", entries)
	}

	tx := wire.NewMsgTx()
	tx.AddTxIn(&wire.TxIn{PreviousOutPoint: wire.OutPoint{Hash: hash, Index: 0}})
	v.SpendInputs(tx)
	if v.HaveCoins(&hash) {
		t.Fatal("HaveCoins must report false once the only output is spent")
	}
}

func TestUtxoViewpointGetValueIn(t *testing.T) {
	v := NewUtxoViewpoint()
	var hash chainhash.Hash
	hash[1] = 0xbb
	v.AddEntries(hash, []*mining.UtxoEntry{{Amount: 5000, BlockHeight: 10}})

	tx := wire.NewMsgTx()
	tx.AddTxIn(&wire.TxIn{PreviousOutPoint: wire.OutPoint{Hash: hash, Index: 0}})

	totalIn, confs := v.GetValueIn(20, tx)
	if totalIn != 5000 {
		t.Fatalf("GetValueIn total = %d, want 5000", totalIn)
	}
	if len(confs) != 1 || confs[0] != 10 {
		t.Fatalf("GetValueIn confs = %v, want [10]", confs)
	}
}

func TestUtxoViewpointAddTxOutsThenClone(t *testing.T) {
	v := NewUtxoViewpoint()
	tx := wire.NewMsgTx()
	tx.AddTxOut(&wire.TxOut{Value: 2500, PkScript: []byte{0x51}})
	v.AddTxOuts(tx, 42)

	hash := tx.TxHash()
	if !v.HaveCoins(&hash) {
		t.Fatal("AddTxOuts must make the new outputs visible")
	}

	clone := v.Clone()
	clone.SpendInputs(tx) // no inputs on this tx; exercises no-op path
	if !clone.HaveCoins(&hash) {
		t.Fatal("cloning must preserve existing entries")
	}

	// Mutating the clone must not affect the original.
	cv := clone.(*UtxoViewpoint)
	cv.entries[hash][0].Spent = true
	if !v.HaveCoins(&hash) {
		t.Fatal("Clone must be independent of the original view")
	}
}
