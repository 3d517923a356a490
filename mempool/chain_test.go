// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"testing"
	"time"

	"github.com/galaxywarscoin/GalaxywarsOcean/chainhash"
)

func TestChainTipAccessors(t *testing.T) {
	now := time.Unix(1700000000, 0)
	c := NewChain(100, chainhash.Hash{1}, now.Add(-time.Hour), now)

	if c.TipHeight() != 100 {
		t.Fatalf("TipHeight() = %d, want 100", c.TipHeight())
	}
	if c.TipHash() != (chainhash.Hash{1}) {
		t.Fatal("TipHash() mismatch")
	}
	if !c.TipTime().Equal(now) {
		t.Fatal("TipTime() mismatch")
	}
}

func TestChainTipChangedFires(t *testing.T) {
	c := NewChain(100, chainhash.Hash{}, time.Now(), time.Now())
	ch := c.TipChanged()

	done := make(chan struct{})
	go func() {
		<-ch
		close(done)
	}()

	c.SetTip(101, chainhash.Hash{2}, time.Now(), time.Now())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("TipChanged channel was not closed after SetTip")
	}

	if c.TipHeight() != 101 {
		t.Fatalf("TipHeight() after SetTip = %d, want 101", c.TipHeight())
	}
}
