// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sync"

	"github.com/galaxywarscoin/GalaxywarsOcean/blockchain"
)

// headerRing is a minimal in-memory blockchain.HeaderView implementation
// this daemon builds from the blocks it observes going by (its own
// submissions). It carries no on-disk block index,
// so it only ever sees as much ancestry as this process itself has
// witnessed since startup; callers beyond its depth get a nil ancestor,
// which NextWorkRequired already treats as "chain not long enough yet".
type headerRing struct {
	mu      sync.RWMutex
	headers []headerEntry
}

type headerEntry struct {
	height    int64
	bits      uint32
	timestamp int64
}

func newHeaderRing() *headerRing {
	return &headerRing{}
}

// Append records a new tip header, most-recently-seen last.
func (r *headerRing) Append(height int64, bits uint32, timestamp int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.headers = append(r.headers, headerEntry{height: height, bits: bits, timestamp: timestamp})
}

// Tip returns a blockchain.HeaderView rooted at the most recently appended
// header, or nil if nothing has been appended yet.
func (r *headerRing) Tip() blockchain.HeaderView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.headers) == 0 {
		return nil
	}
	return &headerView{ring: r, index: len(r.headers) - 1}
}

// headerView is a single blockchain.HeaderView anchored at an index into
// headerRing's backing slice.
type headerView struct {
	ring  *headerRing
	index int
}

func (v *headerView) Height() int64 {
	v.ring.mu.RLock()
	defer v.ring.mu.RUnlock()
	return v.ring.headers[v.index].height
}

func (v *headerView) Bits() uint32 {
	v.ring.mu.RLock()
	defer v.ring.mu.RUnlock()
	return v.ring.headers[v.index].bits
}

func (v *headerView) Timestamp() int64 {
	v.ring.mu.RLock()
	defer v.ring.mu.RUnlock()
	return v.ring.headers[v.index].timestamp
}

func (v *headerView) RelativeAncestor(distance int64) blockchain.HeaderView {
	v.ring.mu.RLock()
	defer v.ring.mu.RUnlock()
	ancestorIndex := v.index - int(distance)
	if ancestorIndex < 0 {
		return nil
	}
	return &headerView{ring: v.ring, index: ancestorIndex}
}
