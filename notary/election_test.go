// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notary

import "testing"

func TestEasyMineEligible(t *testing.T) {
	c := NewCounters()
	recent := NewRecentMiners(65)
	for s := 0; s < 65; s++ {
		recent.Record(s)
	}
	c.RecordMined(70, 100)

	if c.EasyMineEligible(70, 164, recent) {
		t.Fatal("seat must wait more than 64 blocks since last mined")
	}
	if !c.EasyMineEligible(70, 164+1, recent) {
		t.Fatal("seat should be eligible once the 64-block cooldown elapses")
	}
	if c.EasyMineEligible(1, 1000, recent) {
		t.Fatal("seat present in the last 65 miners must not be eligible")
	}
}

func TestPriorityListRotatesRecent(t *testing.T) {
	recent := NewRecentMiners(5)
	recent.Record(2)
	recent.Record(4)

	list := PriorityList(8, recent)
	if list[len(list)-1] != 4 && list[len(list)-2] != 4 {
		t.Fatalf("recently-mined seat 4 should be near the back: %v", list)
	}
	if list[0] == 2 || list[0] == 4 {
		t.Fatalf("recently-mined seats should not lead the priority list: %v", list)
	}
}

func TestSecondBlockAllowed(t *testing.T) {
	list := []int{3, 1, 2}
	if !SecondBlockAllowed(3, true, list) {
		t.Fatal("top-priority seat with gap satisfied should be allowed")
	}
	if SecondBlockAllowed(1, true, list) {
		t.Fatal("non-top-priority seat should not be allowed")
	}
	if SecondBlockAllowed(3, false, list) {
		t.Fatal("gap not satisfied should never allow a second block")
	}
}
