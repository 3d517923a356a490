// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import "github.com/galaxywarscoin/GalaxywarsOcean/chainhash"

// orphan is a candidate transaction still waiting on one or more parent
// transactions that are in the mempool but not yet admitted into the
// template.
type orphan struct {
	candidate  *candidate
	dependsOn  map[chainhash.Hash]struct{}
}

// dependencyTracker holds every orphan addressed by a stable index into a
// pre-sized arena, and maps each pending parent txid to the orphans that
// still depend on it. Using arena indices rather than raw pointers avoids
// the cyclic-reference bookkeeping a doubly-linked parent/child structure
// would need, while keeping parent-drop an O(1) index-set erase.
type dependencyTracker struct {
	arena        []orphan
	mapDependers map[chainhash.Hash][]int
}

// newDependencyTracker returns an empty tracker with its arena pre-sized to
// capacity, matching the mempool snapshot size so the arena never needs to
// grow (and therefore never invalidates an index) during a single build.
func newDependencyTracker(capacity int) *dependencyTracker {
	return &dependencyTracker{
		arena:        make([]orphan, 0, capacity),
		mapDependers: make(map[chainhash.Hash][]int),
	}
}

// Add registers c as an orphan depending on the given parent txids and
// returns its arena index.
func (d *dependencyTracker) Add(c *candidate, parents map[chainhash.Hash]struct{}) int {
	idx := len(d.arena)
	d.arena = append(d.arena, orphan{candidate: c, dependsOn: parents})
	for parent := range parents {
		d.mapDependers[parent] = append(d.mapDependers[parent], idx)
	}
	return idx
}

// Admit records that the transaction identified by txid has been admitted
// into the template, releasing every orphan that depended on it whose
// dependency set is now empty. Released candidates are appended to ready in
// heap-push order (their final priority/fee-rate is already set; the caller
// pushes them into the priority queue).
func (d *dependencyTracker) Admit(txid chainhash.Hash, ready *[]*candidate) {
	dependers, ok := d.mapDependers[txid]
	if !ok {
		return
	}
	delete(d.mapDependers, txid)

	for _, idx := range dependers {
		o := &d.arena[idx]
		if o.candidate == nil {
			continue
		}
		delete(o.dependsOn, txid)
		if len(o.dependsOn) == 0 {
			*ready = append(*ready, o.candidate)
			o.candidate = nil
		}
	}
}

// Discard drops the orphan at idx without releasing it, used when a parent
// is found to be permanently missing (neither in the UTXO view nor the
// mempool).
func (d *dependencyTracker) Discard(idx int) {
	d.arena[idx].candidate = nil
}
