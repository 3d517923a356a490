// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notary

// RecentMiners is a fixed-depth ring of the notary seat index that mined
// each of the last N blocks, the "eligible-notary data" an easy-mine
// eligibility check needs.
type RecentMiners struct {
	depth int
	seats []int
}

// NewRecentMiners returns an empty ring tracking the last depth miners.
func NewRecentMiners(depth int) *RecentMiners {
	return &RecentMiners{depth: depth}
}

// Record appends seat to the ring, evicting the oldest entry once the ring
// is at capacity.
func (r *RecentMiners) Record(seat int) {
	r.seats = append(r.seats, seat)
	if len(r.seats) > r.depth {
		r.seats = r.seats[len(r.seats)-r.depth:]
	}
}

// Contains reports whether seat appears anywhere in the ring.
func (r *RecentMiners) Contains(seat int) bool {
	for _, s := range r.seats {
		if s == seat {
			return true
		}
	}
	return false
}

// Counters tracks process-wide notary-election state: the last height
// each notary mined at (KOMODO_LASTMINED-equivalent) and the height a
// notary was last a candidate but didn't win (KOMODO_MAYBEMINED-equivalent).
type Counters struct {
	lastMined  map[int]int64
	maybeMined map[int]int64
}

// NewCounters returns an empty counters table.
func NewCounters() *Counters {
	return &Counters{
		lastMined:  make(map[int]int64),
		maybeMined: make(map[int]int64),
	}
}

// RecordMined updates seat's last-mined height.
func (c *Counters) RecordMined(seat int, height int64) {
	c.lastMined[seat] = height
}

// RecordCandidate updates seat's last-considered-but-not-won height.
func (c *Counters) RecordCandidate(seat int, height int64) {
	c.maybeMined[seat] = height
}

// EasyMineEligible reports whether seat qualifies for the easy-mine target
// reduction at miningHeight: it hasn't appeared in the last 65 miners, has
// gone more than 64 blocks since it last mined, and more than 1 block since
// it was last a losing candidate.
func (c *Counters) EasyMineEligible(seat int, miningHeight int64, recent *RecentMiners) bool {
	if recent.Contains(seat) {
		return false
	}
	if miningHeight <= c.lastMined[seat]+64 {
		return false
	}
	if miningHeight <= c.maybeMined[seat]+1 {
		return false
	}
	return true
}

// PriorityList builds the 64-entry notary election priority list the HF22
// "second block allowed" rule consults: seats 0..63 in seat order, with any
// seat that appears in recent rotated to the back so a notary that just
// mined sinks to the bottom of the list.
func PriorityList(notaryCount int, recent *RecentMiners) []int {
	const listSize = 64
	n := notaryCount
	if n > listSize {
		n = listSize
	}

	inRecent := make(map[int]bool, len(recent.seats))
	for _, s := range recent.seats {
		inRecent[s] = true
	}

	var front, back []int
	for seat := 0; seat < n; seat++ {
		if inRecent[seat] {
			back = append(back, seat)
		} else {
			front = append(front, seat)
		}
	}
	return append(front, back...)
}

// SecondBlockAllowed implements the HF22 relaxation: past the activation
// height, a notary otherwise locked out of the current round may mine a
// second block at the tip if it is the highest-priority eligible seat in
// priorityList and the timing gap conditions are met. gapSatisfied is the
// caller's verdict on those timing conditions; this function does not
// compute the gap itself.
func SecondBlockAllowed(seat int, gapSatisfied bool, priorityList []int) bool {
	if !gapSatisfied || len(priorityList) == 0 {
		return false
	}
	return priorityList[0] == seat
}
