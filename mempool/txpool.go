// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mempool provides the minimal concrete Mempool, UtxoViewpoint, and
// ChainView implementations internal/mining is tested and run against: an
// in-memory transaction pool guarded by its own lock (PoolLock), and a
// thin chain-tip tracker guarded by its own lock (ChainLock), acquired
// together by template assembly in a fixed order (ChainLock, then PoolLock).
//
// It does not implement consensus validation, script interpretation, or
// relay/orphan handling; ProcessTransaction trusts its caller to have
// already run those checks and only tracks admission bookkeeping (fee,
// size, and the operator-adjustable priority/fee deltas the template
// builder reads).
package mempool

import (
	"sync"

	"github.com/galaxywarscoin/GalaxywarsOcean/chainhash"
	"github.com/galaxywarscoin/GalaxywarsOcean/dcrutil"
	"github.com/galaxywarscoin/GalaxywarsOcean/internal/mining"
)

// Config carries the pool's runtime limits.
type Config struct {
	// MaxOrphans is the maximum number of transactions the pool will hold
	// that reference an unresolved parent. Once full, an arbitrary existing
	// orphan is evicted to make room; insertion order is not tracked.
	MaxOrphans int
}

// poolEntry is the pool's internal bookkeeping for one accepted
// transaction; mining.TxDesc is built from it on demand so the mempool
// package's own fields never leak into the builder's contract type.
type poolEntry struct {
	tx            *dcrutil.Tx
	fee           int64
	feeDelta      int64
	priorityDelta float64
	height        int64
}

// TxPool is a lock-guarded set of mempool transactions. PoolLock is
// exported so a caller assembling a block template can acquire it jointly
// with a Chain's ChainLock (ChainLock first, PoolLock second) for the
// entire duration of template assembly.
type TxPool struct {
	PoolLock sync.RWMutex

	cfg     Config
	pool    map[chainhash.Hash]*poolEntry
	orphans map[chainhash.Hash]*dcrutil.Tx
}

// New returns an empty transaction pool.
func New(cfg Config) *TxPool {
	return &TxPool{
		cfg:     cfg,
		pool:    make(map[chainhash.Hash]*poolEntry),
		orphans: make(map[chainhash.Hash]*dcrutil.Tx),
	}
}

// TxDescs returns a point-in-time snapshot of every transaction in the
// pool, satisfying internal/mining.Mempool.
func (mp *TxPool) TxDescs() []*mining.TxDesc {
	mp.PoolLock.RLock()
	defer mp.PoolLock.RUnlock()

	descs := make([]*mining.TxDesc, 0, len(mp.pool))
	for _, entry := range mp.pool {
		descs = append(descs, &mining.TxDesc{
			Tx:            entry.tx,
			Fee:           entry.fee,
			FeeDelta:      entry.feeDelta,
			PriorityDelta: entry.priorityDelta,
			Height:        entry.height,
		})
	}
	return descs
}

// HaveTx reports whether hash is present in the pool, satisfying
// internal/mining.Mempool.
func (mp *TxPool) HaveTx(hash *chainhash.Hash) bool {
	mp.PoolLock.RLock()
	defer mp.PoolLock.RUnlock()

	_, exists := mp.pool[*hash]
	return exists
}

// HaveTransaction reports whether hash is known to the pool, either
// accepted or held as an orphan.
func (mp *TxPool) HaveTransaction(hash *chainhash.Hash) bool {
	mp.PoolLock.RLock()
	defer mp.PoolLock.RUnlock()

	if _, exists := mp.pool[*hash]; exists {
		return true
	}
	_, exists := mp.orphans[*hash]
	return exists
}

// AddTransaction inserts tx into the pool with the given fee and
// mempool-entry-time height, overwriting any existing entry for the same
// hash. Callers are expected to have already validated tx and resolved its
// inputs; AddTransaction performs no consensus checking of its own.
func (mp *TxPool) AddTransaction(tx *dcrutil.Tx, fee int64, height int64) {
	mp.PoolLock.Lock()
	defer mp.PoolLock.Unlock()

	mp.pool[*tx.Hash()] = &poolEntry{tx: tx, fee: fee, height: height}
}

// RemoveTransaction removes hash from the pool. It is a no-op if hash is
// not present.
func (mp *TxPool) RemoveTransaction(hash *chainhash.Hash) {
	mp.PoolLock.Lock()
	defer mp.PoolLock.Unlock()

	delete(mp.pool, *hash)
}

// SetDeltas applies an operator-supplied fee and/or priority adjustment to
// an already-pooled transaction (the `prioritisetransaction` RPC's effect),
// a no-op if hash is not currently pooled.
func (mp *TxPool) SetDeltas(hash *chainhash.Hash, feeDelta int64, priorityDelta float64) {
	mp.PoolLock.Lock()
	defer mp.PoolLock.Unlock()

	if entry, exists := mp.pool[*hash]; exists {
		entry.feeDelta = feeDelta
		entry.priorityDelta = priorityDelta
	}
}

// AddOrphan records tx as an orphan awaiting a missing parent, evicting an
// arbitrary existing orphan if the pool is already at MaxOrphans.
func (mp *TxPool) AddOrphan(tx *dcrutil.Tx) {
	mp.PoolLock.Lock()
	defer mp.PoolLock.Unlock()

	if mp.cfg.MaxOrphans > 0 && len(mp.orphans) >= mp.cfg.MaxOrphans {
		for evict := range mp.orphans {
			delete(mp.orphans, evict)
			break
		}
	}
	mp.orphans[*tx.Hash()] = tx
}

// RemoveOrphan discards hash from the orphan set, a no-op if absent.
func (mp *TxPool) RemoveOrphan(hash *chainhash.Hash) {
	mp.PoolLock.Lock()
	defer mp.PoolLock.Unlock()

	delete(mp.orphans, *hash)
}

// Count returns the number of accepted (non-orphan) transactions in the
// pool.
func (mp *TxPool) Count() int {
	mp.PoolLock.RLock()
	defer mp.PoolLock.RUnlock()

	return len(mp.pool)
}
