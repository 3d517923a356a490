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

func TestAcquireBothBlocksConcurrentWriters(t *testing.T) {
	chain := NewChain(1, chainhash.Hash{}, time.Now(), time.Now())
	pool := New(Config{})

	lock := AcquireBoth(chain, pool)

	acquired := make(chan struct{})
	go func() {
		second := AcquireBoth(chain, pool)
		second.Release()
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("a second AcquireBoth must not proceed while the first is held")
	case <-time.After(50 * time.Millisecond):
	}

	lock.Release()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("a second AcquireBoth must proceed once the first is released")
	}
}
