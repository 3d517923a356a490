// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

// TemplateLock is a scoped acquisition of a Chain's ChainLock and a
// TxPool's PoolLock together, always in that order, in place of two bare
// globals a single-threaded reference implementation would use instead.
// Release undoes both, in reverse order, however the caller returns.
type TemplateLock struct {
	chain *Chain
	pool  *TxPool
}

// AcquireBoth locks chain.ChainLock then pool.PoolLock, in that order, and
// returns a TemplateLock whose Release undoes both. Callers should defer
// Release immediately.
func AcquireBoth(chain *Chain, pool *TxPool) *TemplateLock {
	chain.ChainLock.Lock()
	pool.PoolLock.Lock()
	return &TemplateLock{chain: chain, pool: pool}
}

// Release unlocks PoolLock then ChainLock, the reverse of the order
// AcquireBoth took them in.
func (l *TemplateLock) Release() {
	l.pool.PoolLock.Unlock()
	l.chain.ChainLock.Unlock()
}
