// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"github.com/galaxywarscoin/GalaxywarsOcean/chainhash"
	"github.com/galaxywarscoin/GalaxywarsOcean/internal/mining"
	"github.com/galaxywarscoin/GalaxywarsOcean/wire"
)

// UtxoViewpoint is the minimal concrete internal/mining.UtxoViewpoint: a
// map of txid to that transaction's output set, each entry independently
// markable as spent. It carries no validation of its own; entries are
// populated by whatever maintains the real UTXO set and handed to template
// assembly as a disposable clone.
type UtxoViewpoint struct {
	entries map[chainhash.Hash][]*mining.UtxoEntry
}

// NewUtxoViewpoint returns an empty view.
func NewUtxoViewpoint() *UtxoViewpoint {
	return &UtxoViewpoint{entries: make(map[chainhash.Hash][]*mining.UtxoEntry)}
}

// AddEntries registers hash's known outputs in the view, for use by a
// caller seeding the view from its own UTXO set before handing it to
// template assembly.
func (v *UtxoViewpoint) AddEntries(hash chainhash.Hash, entries []*mining.UtxoEntry) {
	v.entries[hash] = entries
}

// HaveCoins reports whether any output of hash is still unspent in the
// view.
func (v *UtxoViewpoint) HaveCoins(hash *chainhash.Hash) bool {
	entries, ok := v.entries[*hash]
	if !ok {
		return false
	}
	for _, e := range entries {
		if e != nil && !e.Spent {
			return true
		}
	}
	return false
}

// AccessCoins returns the outputs for hash, or nil if unknown.
func (v *UtxoViewpoint) AccessCoins(hash *chainhash.Hash) []*mining.UtxoEntry {
	return v.entries[*hash]
}

// GetValueIn sums the values spent by every input of tx that resolves in
// the view, along with the per-input confirmation counts at forHeight.
func (v *UtxoViewpoint) GetValueIn(forHeight int64, tx *wire.MsgTx) (int64, []int64) {
	var totalIn int64
	confs := make([]int64, len(tx.TxIn))
	for i, txIn := range tx.TxIn {
		entries := v.entries[txIn.PreviousOutPoint.Hash]
		idx := txIn.PreviousOutPoint.Index
		if int(idx) >= len(entries) || entries[idx] == nil {
			continue
		}
		entry := entries[idx]
		totalIn += entry.Amount
		if entry.BlockHeight > 0 && forHeight > entry.BlockHeight {
			confs[i] = forHeight - entry.BlockHeight
		}
	}
	return totalIn, confs
}

// AddTxOuts writes tx's outputs into the view as of blockHeight.
func (v *UtxoViewpoint) AddTxOuts(tx *wire.MsgTx, blockHeight int64) {
	hash := tx.TxHash()
	entries := make([]*mining.UtxoEntry, len(tx.TxOut))
	isCoinBase := tx.IsCoinBase()
	for i, out := range tx.TxOut {
		entries[i] = &mining.UtxoEntry{
			Amount:      out.Value,
			PkScript:    out.PkScript,
			BlockHeight: blockHeight,
			IsCoinBase:  isCoinBase,
		}
	}
	v.entries[hash] = entries
}

// SpendInputs marks every input of tx as spent in the view.
func (v *UtxoViewpoint) SpendInputs(tx *wire.MsgTx) {
	for _, txIn := range tx.TxIn {
		entries := v.entries[txIn.PreviousOutPoint.Hash]
		idx := txIn.PreviousOutPoint.Index
		if int(idx) < len(entries) && entries[idx] != nil {
			entries[idx].Spent = true
		}
	}
}

// Clone returns an independent copy whose mutation cannot affect v.
func (v *UtxoViewpoint) Clone() mining.UtxoViewpoint {
	clone := NewUtxoViewpoint()
	for hash, entries := range v.entries {
		copied := make([]*mining.UtxoEntry, len(entries))
		for i, e := range entries {
			if e == nil {
				continue
			}
			dup := *e
			copied[i] = &dup
		}
		clone.entries[hash] = copied
	}
	return clone
}
