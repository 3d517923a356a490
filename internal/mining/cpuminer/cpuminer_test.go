// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cpuminer

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/galaxywarscoin/GalaxywarsOcean/blockchain/standalone"
	"github.com/galaxywarscoin/GalaxywarsOcean/notary"
	"github.com/galaxywarscoin/GalaxywarsOcean/wire"
)

func TestSerializeHeaderForSolveExcludesSolution(t *testing.T) {
	h := &wire.BlockHeader{
		Version:   4,
		Timestamp: time.Unix(1700000000, 0),
		Bits:      0x1e00ffff,
		Solution:  []byte{0xde, 0xad, 0xbe, 0xef},
	}
	h.Nonce[31] = 0x07

	got := serializeHeaderForSolve(h)
	wantLen := 4 + 32*3 + 4 + 4 + 32
	if len(got) != wantLen {
		t.Fatalf("serialized header length = %d, want %d", len(got), wantLen)
	}
	if got[wantLen-1] != 0x07 {
		t.Fatalf("serialized header must end with the nonce bytes, got tail %x", got[wantLen-1])
	}
}

func TestHeaderNonceSeed(t *testing.T) {
	var nonce [32]byte
	nonce[31] = 1
	if seed := headerNonceSeed(nonce); seed != 1 {
		t.Fatalf("headerNonceSeed = %d, want 1", seed)
	}
}

func TestMeetsTarget(t *testing.T) {
	bits := standalone.BigToCompact(new(big.Int).SetUint64(1 << 40))
	var low, high [32]byte
	low[0] = 1
	for i := range high {
		high[i] = 0xff
	}
	if !meetsTarget(low, bits) {
		t.Fatal("a near-zero hash must meet any reasonable target")
	}
	if meetsTarget(high, bits) {
		t.Fatal("an all-ff hash must not meet a tight target")
	}
}

func TestTargetFromBitsEasyMine(t *testing.T) {
	recent := notary.NewRecentMiners(65)
	for s := 0; s < 65; s++ {
		recent.Record(s)
	}
	m := &Miner{
		cfg:      Config{IsNotary: true, MinerSeat: 70, MinDiffBits: 0x1f00ffff},
		recent:   recent,
		counters: notary.NewCounters(),
	}
	m.counters.RecordMined(70, 100)
	m.Counters.MiningHeight = 164

	normalBits := uint32(0x1e00ffff)
	if got := m.targetFromBits(normalBits, false); got != normalBits {
		t.Fatalf("seat within its 64-block cooldown must keep the normal target, got %x", got)
	}

	m.Counters.MiningHeight = 165
	if got := m.targetFromBits(normalBits, false); got != m.cfg.MinDiffBits {
		t.Fatalf("eligible seat must get the easy-mine target, got %x want %x", got, m.cfg.MinDiffBits)
	}
}

func TestTargetFromBitsNonNotary(t *testing.T) {
	m := &Miner{cfg: Config{IsNotary: false, MinerSeat: -1}}
	if got := m.targetFromBits(0x1e00ffff, false); got != 0x1e00ffff {
		t.Fatalf("non-notary driver must never reduce its target, got %x", got)
	}
}

func TestTargetFromBitsStakeMode(t *testing.T) {
	m := &Miner{cfg: Config{
		IsNotary:      false,
		MinerSeat:     -1,
		StakeMode:     true,
		StakeDiffBits: 0x1f00ffff,
	}}
	normalBits := uint32(0x1e00ffff)
	if got := m.targetFromBits(normalBits, true); got != m.cfg.StakeDiffBits {
		t.Fatalf("a stake-carrying template must mine against the stake target, got %x want %x", got, m.cfg.StakeDiffBits)
	}
	if got := m.targetFromBits(normalBits, false); got != normalBits {
		t.Fatalf("a template without a stake tx must keep the normal target even in stake mode, got %x", got)
	}
}

type fakePeers struct {
	peers  int
	synced bool
}

func (f *fakePeers) ConnectedPeers() int { return f.peers }
func (f *fakePeers) InSync() bool        { return f.synced }

func TestWaitForPeersReturnsImmediatelyWhenReady(t *testing.T) {
	m := &Miner{peers: &fakePeers{peers: 4, synced: true}}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if !m.waitForPeers(ctx) {
		t.Fatal("waitForPeers must return true once peers are connected and synced")
	}
}

func TestWaitForPeersReturnsFalseOnCancel(t *testing.T) {
	m := &Miner{peers: &fakePeers{peers: 0, synced: false}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if m.waitForPeers(ctx) {
		t.Fatal("waitForPeers must return false once its context is cancelled")
	}
}

func TestGenerateBitcoinsTogglesWorkers(t *testing.T) {
	m := New(
		Config{Threads: 2, RequirePeers: true},
		nil, nil,
		&fakePeers{peers: 0, synced: false},
		nil, nil,
		func() []byte { return nil },
	)

	m.GenerateBitcoins(true)
	if !m.enabled {
		t.Fatal("GenerateBitcoins(true) must mark the miner enabled")
	}
	m.GenerateBitcoins(true) // idempotent
	m.GenerateBitcoins(false)
	if m.enabled {
		t.Fatal("GenerateBitcoins(false) must mark the miner disabled and join its workers")
	}
}

func TestJitterBounds(t *testing.T) {
	lo, hi := 10*time.Millisecond, 20*time.Millisecond
	for i := 0; i < 50; i++ {
		d := jitter(lo, hi)
		if d < lo || d >= hi {
			t.Fatalf("jitter(%v, %v) = %v out of bounds", lo, hi, d)
		}
	}
	if d := jitter(hi, lo); d != hi {
		t.Fatalf("jitter with hi <= lo must fall back to lo, got %v", d)
	}
}

func TestSleepCtxCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if sleepCtx(ctx, time.Second) {
		t.Fatal("sleepCtx must return false once its context is already cancelled")
	}
}
