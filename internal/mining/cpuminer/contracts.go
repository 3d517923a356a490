// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cpuminer implements the per-thread mining driver and the
// Equihash solver adapter: it repeatedly builds a block template,
// seeds the proof-of-work header state, drives a solver implementation
// until it finds or is told to abandon a solution, and hands any valid
// block to the submission callback.
package cpuminer

import (
	"time"

	"github.com/galaxywarscoin/GalaxywarsOcean/internal/mining"
	"github.com/galaxywarscoin/GalaxywarsOcean/wire"
)

// PeerSource reports the node's current peer count and sync state, used for
// the driver's peer-gating step.
type PeerSource interface {
	// ConnectedPeers returns the number of currently connected peers.
	ConnectedPeers() int

	// InSync reports whether the node considers itself caught up with
	// the network.
	InSync() bool
}

// TipSource reports and waits on the current chain tip. The driver detects
// an external block acceptance mid-solve by comparing TipHash with the hash
// it saw when the solve started; it does not use TipChanged.
type TipSource interface {
	mining.ChainView

	// TipChanged returns a channel that is closed (and replaced) the
	// next time the chain tip advances.
	TipChanged() <-chan struct{}
}

// BlockSubmitter accepts a solved block for validation and acceptance. It
// returns an error (and leaves the chain tip unchanged) when the block is
// stale or otherwise rejected.
type BlockSubmitter interface {
	// ValidateCandidate performs the same contextual checks full block
	// acceptance would, without committing the block to the chain.
	ValidateCandidate(block *wire.MsgBlock) error

	// SubmitBlock hands a fully solved block to the node for
	// acceptance, returning an error if the tip moved out from under it
	// or it was otherwise rejected.
	SubmitBlock(block *wire.MsgBlock) error
}

// Counters is the process-wide mining state, explicit read/write-owned
// global counters shared by every worker thread.
type Counters struct {
	// LastBlockTx and LastBlockSize record the most recently built
	// template's transaction count and byte size, for diagnostics/RPC.
	LastBlockTx   int
	LastBlockSize int

	// MiningHeight is the height of the block currently being mined.
	MiningHeight int64
}

// Config carries the driver's runtime knobs.
type Config struct {
	Threads       int
	RequirePeers  bool
	MinerSeat     int // this node's notary seat index, or -1 if not a notary
	IsNotary      bool
	MaxFutureTime time.Duration
	UseTromp      bool
	EquihashN     uint32
	EquihashK     uint32
	MinDiffBits   uint32
	PollInterval  time.Duration

	// StakeMode mirrors chaincfg.Params.StakeEnabled: when set, a template
	// carrying a stake transaction mines against StakeDiffBits instead of
	// the header's own bits, the stake-aware HASHTarget_POW rule.
	StakeMode     bool
	StakeDiffBits uint32
}

// Solver matches the shape both solver back-ends (equihash, cequihash)
// expose: try to solve header under cancel, or report whether a candidate
// solution validates.
type Solver interface {
	Solve(n, k int, header []byte, cancel func() bool) ([]byte, error)
	Validate(n, k int, header, solution []byte) (bool, error)
}

// TemplateSource builds a fresh block template for the given miner script.
type TemplateSource interface {
	NewBlockTemplate(minerScript []byte) (*mining.BlockTemplate, error)
}

// NotaryStore persists the notary election counters a Miner updates every
// time this node mines a block, so the easy-mine eligibility window
// survives a process restart rather than resetting every notary to
// "never mined".
type NotaryStore interface {
	RecordMined(seat int, height int64) error
}
