// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"sync"
	"time"

	"github.com/galaxywarscoin/GalaxywarsOcean/chainhash"
)

// Chain is the minimal chain-tip tracker satisfying internal/mining's
// ChainView and cpuminer's TipSource. ChainLock is exported so a caller can
// acquire it jointly with a TxPool's PoolLock (ChainLock first, PoolLock
// second).
type Chain struct {
	ChainLock sync.RWMutex

	height         int64
	hash           chainhash.Hash
	medianTimePast time.Time
	tipTime        time.Time

	tipChangedMu sync.Mutex
	tipChanged   chan struct{}
}

// NewChain returns a Chain seeded at the given tip.
func NewChain(height int64, hash chainhash.Hash, medianTimePast, tipTime time.Time) *Chain {
	return &Chain{
		height:         height,
		hash:           hash,
		medianTimePast: medianTimePast,
		tipTime:        tipTime,
		tipChanged:     make(chan struct{}),
	}
}

// TipHeight returns the current tip height.
func (c *Chain) TipHeight() int64 {
	c.ChainLock.RLock()
	defer c.ChainLock.RUnlock()

	return c.height
}

// TipHash returns the current tip hash.
func (c *Chain) TipHash() chainhash.Hash {
	c.ChainLock.RLock()
	defer c.ChainLock.RUnlock()

	return c.hash
}

// MedianTimePast returns the median time of the most recent set of blocks
// ending at the tip.
func (c *Chain) MedianTimePast() time.Time {
	c.ChainLock.RLock()
	defer c.ChainLock.RUnlock()

	return c.medianTimePast
}

// TipTime returns the tip block's own timestamp.
func (c *Chain) TipTime() time.Time {
	c.ChainLock.RLock()
	defer c.ChainLock.RUnlock()

	return c.tipTime
}

// TipChanged returns a channel closed the next time SetTip advances the
// tip, letting a mining driver detect a stale template without polling
// ChainLock.
func (c *Chain) TipChanged() <-chan struct{} {
	c.tipChangedMu.Lock()
	defer c.tipChangedMu.Unlock()

	return c.tipChanged
}

// SetTip advances the tracked tip and wakes every goroutine blocked on a
// channel previously returned by TipChanged.
func (c *Chain) SetTip(height int64, hash chainhash.Hash, medianTimePast, tipTime time.Time) {
	c.ChainLock.Lock()
	c.height = height
	c.hash = hash
	c.medianTimePast = medianTimePast
	c.tipTime = tipTime
	c.ChainLock.Unlock()

	c.tipChangedMu.Lock()
	close(c.tipChanged)
	c.tipChanged = make(chan struct{})
	c.tipChangedMu.Unlock()
}
