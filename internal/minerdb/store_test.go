// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package minerdb

import (
	"path/filepath"
	"testing"

	"github.com/galaxywarscoin/GalaxywarsOcean/notary"
)

func TestStoreRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notarycounters")
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.RecordMined(3, 1000); err != nil {
		t.Fatalf("RecordMined: %v", err)
	}
	if err := s.RecordMined(7, 1200); err != nil {
		t.Fatalf("RecordMined: %v", err)
	}
	if err := s.RecordCandidate(3, 1050); err != nil {
		t.Fatalf("RecordCandidate: %v", err)
	}

	counters, err := s.LoadCounters()
	if err != nil {
		t.Fatalf("LoadCounters: %v", err)
	}

	recent := notary.NewRecentMiners(65)
	if counters.EasyMineEligible(3, 1051, recent) {
		t.Fatal("seat 3 must still be inside its post-candidate cooldown")
	}
	if !counters.EasyMineEligible(3, 1300, recent) {
		t.Fatal("seat 3 must become eligible once every cooldown has elapsed")
	}
}

func TestStoreReopenPersists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notarycounters")

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.RecordMined(42, 500); err != nil {
		t.Fatalf("RecordMined: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	counters, err := reopened.LoadCounters()
	if err != nil {
		t.Fatalf("LoadCounters after reopen: %v", err)
	}

	recent := notary.NewRecentMiners(65)
	if counters.EasyMineEligible(42, 560, recent) {
		t.Fatal("persisted last-mined height must survive a close/reopen cycle")
	}
}
