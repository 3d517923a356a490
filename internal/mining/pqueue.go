// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import "container/heap"

// candidate is a transaction awaiting selection into the template, along
// with the (priority, fee-rate) pair the comparator orders it by.
type candidate struct {
	tx       *TxDesc
	priority float64
	feeRate  float64

	// notarizedPriority marks the sentinel priority (1e16) reserved for
	// the block's single notarisation transaction; see notary.go. It is
	// tracked out-of-band from priority itself so demoting a false
	// claimant (see degradeNotarizedPriority) never confuses it with a
	// transaction that legitimately scored that high by coincidence.
	notarizedPriority bool
}

// notarizedSentinelPriority is the priority forced onto the block's single
// qualifying notarisation transaction so it always sorts to the front of
// the priority-ordered heap, landing it at template position 1.
const notarizedSentinelPriority = 1e16

// txPriorityQueue is a priority queue of candidates ordered by one of two
// comparators selected by byFee: priority (ties broken by fee rate) or fee
// rate (ties broken by priority). Flipping byFee and calling SetByFee
// re-heapifies in place rather than requiring a new container, matching
// the "order_swap" comparator-swap approach the template builder needs when
// it transitions from priority mode to fee mode partway through scoring.
type txPriorityQueue struct {
	items []*candidate
	byFee bool
}

// newTxPriorityQueue returns an empty queue with capacity reserved for the
// given number of candidates and in priority-ordered mode.
func newTxPriorityQueue(capacity int) *txPriorityQueue {
	q := &txPriorityQueue{items: make([]*candidate, 0, capacity)}
	heap.Init(q)
	return q
}

// Len, Less, Swap, Push, and Pop implement heap.Interface.

func (q *txPriorityQueue) Len() int { return len(q.items) }

func (q *txPriorityQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if q.byFee {
		if a.feeRate == b.feeRate {
			return a.priority > b.priority
		}
		return a.feeRate > b.feeRate
	}
	if a.priority == b.priority {
		return a.feeRate > b.feeRate
	}
	return a.priority > b.priority
}

func (q *txPriorityQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *txPriorityQueue) Push(x interface{}) {
	q.items = append(q.items, x.(*candidate))
}

func (q *txPriorityQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	return item
}

// PushCandidate inserts c into the queue.
func (q *txPriorityQueue) PushCandidate(c *candidate) {
	heap.Push(q, c)
}

// PopCandidate removes and returns the highest-ordered candidate, or nil if
// the queue is empty.
func (q *txPriorityQueue) PopCandidate() *candidate {
	if q.Len() == 0 {
		return nil
	}
	return heap.Pop(q).(*candidate)
}

// SetByFee switches the queue's comparator mode and re-heapifies in place.
// The switch from priority mode to fee mode happens at most once per
// template build and is never reversed within a build.
func (q *txPriorityQueue) SetByFee(byFee bool) {
	if q.byFee == byFee {
		return
	}
	q.byFee = byFee
	heap.Init(q)
}

// degradeNotarizedPriority decrements any other candidate still carrying
// the sentinel notarisation priority, preserving the at-most-one rule: once
// a real notarisation claims the slot, an earlier false claimant (one
// scored 1e16 by coincidence rather than genuine notary signer count) must
// no longer collide with it at template position 1.
func (q *txPriorityQueue) degradeNotarizedPriority(except *candidate) {
	changed := false
	for _, c := range q.items {
		if c == except || !c.notarizedPriority {
			continue
		}
		c.priority -= 10
		c.notarizedPriority = false
		changed = true
	}
	if changed {
		heap.Init(q)
	}
}
