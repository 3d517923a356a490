// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"testing"

	"github.com/galaxywarscoin/GalaxywarsOcean/dcrutil"
	"github.com/galaxywarscoin/GalaxywarsOcean/wire"
)

func dummyTx(outValue int64) *dcrutil.Tx {
	msgTx := wire.NewMsgTx()
	msgTx.AddTxOut(&wire.TxOut{Value: outValue, PkScript: []byte{0x51}})
	return dcrutil.NewTx(msgTx)
}

func TestTxPoolAddHaveRemove(t *testing.T) {
	mp := New(Config{})
	tx := dummyTx(1000)

	if mp.HaveTx(tx.Hash()) {
		t.Fatal("pool must start empty")
	}

	mp.AddTransaction(tx, 500, 10)
	if !mp.HaveTx(tx.Hash()) {
		t.Fatal("HaveTx must report true once a transaction is added")
	}
	if got := mp.Count(); got != 1 {
		t.Fatalf("Count() = %d, want 1", got)
	}

	descs := mp.TxDescs()
	if len(descs) != 1 || descs[0].Fee != 500 || descs[0].Height != 10 {
		t.Fatalf("unexpected TxDescs snapshot: %+v", descs)
	}

	mp.RemoveTransaction(tx.Hash())
	if mp.HaveTx(tx.Hash()) {
		t.Fatal("HaveTx must report false after removal")
	}
}

func TestTxPoolSetDeltas(t *testing.T) {
	mp := New(Config{})
	tx := dummyTx(1000)
	mp.AddTransaction(tx, 500, 10)

	mp.SetDeltas(tx.Hash(), 250, 1.5)
	descs := mp.TxDescs()
	if descs[0].FeeDelta != 250 || descs[0].PriorityDelta != 1.5 {
		t.Fatalf("deltas not applied: %+v", descs[0])
	}

	// Setting deltas on an absent hash must not panic or create an entry.
	absent := dummyTx(2000)
	mp.SetDeltas(absent.Hash(), 1, 1)
	if mp.HaveTx(absent.Hash()) {
		t.Fatal("SetDeltas must not implicitly admit a transaction")
	}
}

func TestTxPoolOrphanEviction(t *testing.T) {
	mp := New(Config{MaxOrphans: 2})
	a, b, c := dummyTx(1), dummyTx(2), dummyTx(3)

	mp.AddOrphan(a)
	mp.AddOrphan(b)
	if !mp.HaveTransaction(a.Hash()) || !mp.HaveTransaction(b.Hash()) {
		t.Fatal("both orphans should be present before the pool is full")
	}

	mp.AddOrphan(c)
	count := 0
	for _, h := range []*dcrutil.Tx{a, b, c} {
		if mp.HaveTransaction(h.Hash()) {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("MaxOrphans=2 must cap the orphan set at 2, got %d present", count)
	}
}

func TestTxPoolRemoveOrphan(t *testing.T) {
	mp := New(Config{})
	tx := dummyTx(1)
	mp.AddOrphan(tx)
	mp.RemoveOrphan(tx.Hash())
	if mp.HaveTransaction(tx.Hash()) {
		t.Fatal("RemoveOrphan must drop the orphan")
	}
}
