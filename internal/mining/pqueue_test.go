// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import "testing"

func TestTxPriorityQueuePriorityMode(t *testing.T) {
	q := newTxPriorityQueue(4)
	q.PushCandidate(&candidate{priority: 10, feeRate: 1})
	q.PushCandidate(&candidate{priority: 30, feeRate: 5})
	q.PushCandidate(&candidate{priority: 20, feeRate: 2})

	got := []float64{
		q.PopCandidate().priority,
		q.PopCandidate().priority,
		q.PopCandidate().priority,
	}
	want := []float64{30, 20, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pop order = %v, want %v", got, want)
		}
	}
}

func TestTxPriorityQueueFeeModeReheapify(t *testing.T) {
	q := newTxPriorityQueue(4)
	q.PushCandidate(&candidate{priority: 30, feeRate: 1})
	q.PushCandidate(&candidate{priority: 10, feeRate: 9})
	q.PushCandidate(&candidate{priority: 20, feeRate: 5})

	q.SetByFee(true)

	got := q.PopCandidate()
	if got.feeRate != 9 {
		t.Fatalf("top fee rate = %v, want 9 after reheapify", got.feeRate)
	}
}

func TestTxPriorityQueueTieBreaks(t *testing.T) {
	q := newTxPriorityQueue(2)
	q.PushCandidate(&candidate{priority: 10, feeRate: 1})
	q.PushCandidate(&candidate{priority: 10, feeRate: 5})

	if top := q.PopCandidate(); top.feeRate != 5 {
		t.Fatalf("priority-mode tie break: got feeRate %v, want 5", top.feeRate)
	}

	q2 := newTxPriorityQueue(2)
	q2.SetByFee(true)
	q2.PushCandidate(&candidate{priority: 1, feeRate: 10})
	q2.PushCandidate(&candidate{priority: 5, feeRate: 10})

	if top := q2.PopCandidate(); top.priority != 5 {
		t.Fatalf("fee-mode tie break: got priority %v, want 5", top.priority)
	}
}

func TestDegradeNotarizedPriority(t *testing.T) {
	q := newTxPriorityQueue(2)
	falseClaimant := &candidate{priority: notarizedSentinelPriority, notarizedPriority: true}
	real := &candidate{priority: notarizedSentinelPriority, notarizedPriority: true}
	q.PushCandidate(falseClaimant)
	q.PushCandidate(real)

	q.degradeNotarizedPriority(real)

	if falseClaimant.notarizedPriority {
		t.Fatal("false claimant should have its sentinel flag cleared")
	}
	if falseClaimant.priority != notarizedSentinelPriority-10 {
		t.Fatalf("false claimant priority = %v, want %v", falseClaimant.priority, notarizedSentinelPriority-10)
	}
	if !real.notarizedPriority || real.priority != notarizedSentinelPriority {
		t.Fatal("real notarisation's sentinel should be untouched")
	}
}

func TestPopCandidateEmptyQueue(t *testing.T) {
	q := newTxPriorityQueue(0)
	if c := q.PopCandidate(); c != nil {
		t.Fatalf("expected nil from empty queue, got %+v", c)
	}
}
