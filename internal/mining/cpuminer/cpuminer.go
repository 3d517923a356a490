// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cpuminer

import (
	"context"
	"encoding/binary"
	"math/big"
	"math/rand"
	"sync"
	"time"

	"github.com/galaxywarscoin/GalaxywarsOcean/blockchain/standalone"
	"github.com/galaxywarscoin/GalaxywarsOcean/chainhash"
	"github.com/galaxywarscoin/GalaxywarsOcean/internal/mining"
	"github.com/galaxywarscoin/GalaxywarsOcean/notary"
	"github.com/galaxywarscoin/GalaxywarsOcean/wire"
)

// Miner runs the per-thread mining state machine: build a template, seed
// the Equihash header state, drive a solver until it finds (or is told to
// abandon) a solution, and submit any valid block.
type Miner struct {
	cfg            Config
	templates      TemplateSource
	submitter      BlockSubmitter
	peers          PeerSource
	tip            TipSource
	oracle         *notary.Oracle
	recent         *notary.RecentMiners
	counters       *notary.Counters
	store          NotaryStore
	reservedScript func() []byte

	mu      sync.Mutex
	enabled bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	Counters Counters
}

// New returns a Miner ready to be started with GenerateBitcoins(true).
func New(cfg Config, templates TemplateSource, submitter BlockSubmitter, peers PeerSource, tip TipSource, oracle *notary.Oracle, reservedScript func() []byte) *Miner {
	return &Miner{
		cfg:            cfg,
		templates:      templates,
		submitter:      submitter,
		peers:          peers,
		tip:            tip,
		oracle:         oracle,
		recent:         notary.NewRecentMiners(65),
		counters:       notary.NewCounters(),
		reservedScript: reservedScript,
	}
}

// SeedNotaryState replaces the election counters and recent-miners ring a
// Miner starts with, for use loading persisted state at startup instead of
// beginning every notary at "never mined". Call before GenerateBitcoins(true);
// it is not safe to call while generation is running.
func (m *Miner) SeedNotaryState(counters *notary.Counters, recent *notary.RecentMiners) {
	if counters != nil {
		m.counters = counters
	}
	if recent != nil {
		m.recent = recent
	}
}

// SetNotaryStore attaches a backing store that every subsequent mined-block
// event is persisted to, on top of the in-memory counters update.
func (m *Miner) SetNotaryStore(store NotaryStore) {
	m.store = store
}

// GenerateBitcoins toggles the mining pool on or off, joining every worker
// thread before returning when disabling, so no two generations ever
// overlap.
func (m *Miner) GenerateBitcoins(enable bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if enable == m.enabled {
		return
	}
	m.enabled = enable

	if !enable {
		m.cancel()
		m.wg.Wait()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	threads := m.cfg.Threads
	if threads <= 0 {
		threads = 1
	}
	for i := 0; i < threads; i++ {
		m.wg.Add(1)
		go func(id int) {
			defer m.wg.Done()
			m.workerLoop(ctx, id)
		}(i)
	}
}

// workerLoop is the per-thread outer loop: gate on peers, build a template,
// solve it, and repeat.
func (m *Miner) workerLoop(ctx context.Context, id int) {
	for {
		if ctx.Err() != nil {
			return
		}

		if m.cfg.RequirePeers && !m.waitForPeers(ctx) {
			return
		}

		script := m.reservedScript()
		tmpl, err := m.templates.NewBlockTemplate(script)
		if err != nil || tmpl == nil {
			if !sleepCtx(ctx, jitter(1*time.Second, 5*time.Second)) {
				return
			}
			continue
		}

		m.Counters.LastBlockTx = len(tmpl.Block.Transactions)
		m.Counters.LastBlockSize = tmpl.Block.SerializeSize()
		m.Counters.MiningHeight = tmpl.Height

		m.solveTemplate(ctx, tmpl)
	}
}

// waitForPeers blocks until the peer source reports a non-empty, in-sync
// node, or the context is cancelled, returning false in the latter case.
func (m *Miner) waitForPeers(ctx context.Context) bool {
	for m.peers.ConnectedPeers() == 0 || !m.peers.InSync() {
		if !sleepCtx(ctx, jitter(1*time.Second, 5*time.Second)) {
			return false
		}
	}
	return true
}

// solveTemplate drives the solver over a single template: compute the
// (possibly easy-mine-reduced) target, repeatedly invoke the solver with
// the current nonce, validate any candidate solution, and submit it on
// success. It returns when the template is exhausted, the tip moves, or
// the context is cancelled.
func (m *Miner) solveTemplate(ctx context.Context, tmpl *mining.BlockTemplate) {
	target := m.targetFromBits(tmpl.Block.Header.Bits, tmpl.HasStake)
	solver := NewSolver(m.cfg, headerNonceSeed(tmpl.Block.Header.Nonce))
	n, k := int(m.cfg.EquihashN), int(m.cfg.EquihashK)

	tipAtStart := m.tip.TipHash()
	deadline := time.Now().Add(60 * time.Second)

	for {
		if ctx.Err() != nil {
			return
		}
		if time.Now().After(deadline) {
			return
		}
		if m.tip.TipHash() != tipAtStart {
			return
		}
		if tmpl.Block.Header.Nonce[30] == 0xff && tmpl.Block.Header.Nonce[31] == 0xff {
			return
		}

		headerBytes := serializeHeaderForSolve(&tmpl.Block.Header)

		cancelled := func() bool {
			return ctx.Err() != nil || m.tip.TipHash() != tipAtStart
		}

		solution, solveErr := solver.Solve(n, k, headerBytes, cancelled)
		if solveErr != nil || solution == nil {
			tmpl.Block.Header.IncrementNonce()
			continue
		}

		tmpl.Block.Header.Solution = solution
		blockHash := tmpl.Block.BlockHash()
		var hashBytes [32]byte
		copy(hashBytes[:], blockHash[:])
		if !meetsTarget(hashBytes, target) {
			tmpl.Block.Header.IncrementNonce()
			continue
		}

		if vErr := m.submitter.ValidateCandidate(tmpl.Block); vErr != nil {
			return
		}

		if subErr := m.submitter.SubmitBlock(tmpl.Block); subErr == nil {
			if m.cfg.IsNotary && m.cfg.MinerSeat >= 0 {
				m.recent.Record(m.cfg.MinerSeat)
				m.counters.RecordMined(m.cfg.MinerSeat, tmpl.Height)
				if m.store != nil {
					// Best-effort: a failed write here costs this notary one
					// restart's worth of easy-mine eligibility accuracy, not
					// correctness of the block just submitted.
					_ = m.store.RecordMined(m.cfg.MinerSeat, tmpl.Height)
				}
			}
		}
		return
	}
}

// serializeHeaderForSolve returns the header bytes the solver seeds its
// digest with: the fixed-size prefix (version, prev block, merkle root,
// reserved, time, bits) followed by the 256-bit nonce, but never the
// solution itself (the two writes are equivalent to one concatenated seed
// since nothing else is written to the digest in between).
func serializeHeaderForSolve(h *wire.BlockHeader) []byte {
	buf := make([]byte, 0, 4+chainhash.HashSize*3+4+4+32)

	var versionBytes [4]byte
	binary.LittleEndian.PutUint32(versionBytes[:], uint32(h.Version))
	buf = append(buf, versionBytes[:]...)
	buf = append(buf, h.PrevBlock[:]...)
	buf = append(buf, h.MerkleRoot[:]...)
	buf = append(buf, h.Reserved[:]...)

	var timeBytes [4]byte
	binary.LittleEndian.PutUint32(timeBytes[:], uint32(h.Timestamp.Unix()))
	buf = append(buf, timeBytes[:]...)

	var bitsBytes [4]byte
	binary.LittleEndian.PutUint32(bitsBytes[:], h.Bits)
	buf = append(buf, bitsBytes[:]...)

	buf = append(buf, h.Nonce[:]...)
	return buf
}

// headerNonceSeed reads the last eight bytes of the nonce (bytes 24-31) as a
// big-endian int64, the separate nonce argument the tromp solver back-end
// expects.
func headerNonceSeed(nonce [32]byte) int64 {
	return int64(binary.BigEndian.Uint64(nonce[24:32]))
}

// jitter returns a random duration in [lo, hi), used for randomised sleeps
// during peer-gate backpressure.
func jitter(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(rand.Int63n(int64(hi-lo)))
}

// sleepCtx sleeps for d or returns early (with false) if ctx is cancelled
// first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// targetFromBits applies, in order, the stake-aware HASHTarget_POW
// relaxation (when stake mode is on and this template carries a stake
// transaction) and the easy-mine/HF22 reduction (when this node is an
// eligible notary), returning the possibly-lowered compact target.
func (m *Miner) targetFromBits(bits uint32, hasStake bool) uint32 {
	if m.cfg.StakeMode && hasStake && m.cfg.StakeDiffBits != 0 {
		return m.cfg.StakeDiffBits
	}
	if !m.cfg.IsNotary || m.cfg.MinerSeat < 0 {
		return bits
	}
	if m.counters.EasyMineEligible(m.cfg.MinerSeat, m.Counters.MiningHeight, m.recent) {
		return m.cfg.MinDiffBits
	}
	return bits
}

// meetsTarget reports whether hash, interpreted as a little-endian 256-bit
// integer (chainhash byte order), is at or below the compact target bits.
func meetsTarget(hash [32]byte, bits uint32) bool {
	target := standalone.CompactToBig(bits)
	var h big.Int
	reversed := make([]byte, 32)
	for i := range hash {
		reversed[i] = hash[31-i]
	}
	h.SetBytes(reversed)
	return h.Cmp(target) <= 0
}
