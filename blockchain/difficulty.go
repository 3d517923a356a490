// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"

	"github.com/galaxywarscoin/GalaxywarsOcean/blockchain/standalone"
	"github.com/galaxywarscoin/GalaxywarsOcean/chaincfg"
)

// HeaderView is the minimal view of a header's ancestry the difficulty
// retarget algorithm needs. A block index implementation satisfies it by
// wrapping whatever node type it keeps in memory.
type HeaderView interface {
	// Height returns the height of the block this view represents.
	Height() int64

	// Bits returns the nBits difficulty field of the block this view
	// represents.
	Bits() uint32

	// Timestamp returns the block time, in Unix seconds.
	Timestamp() int64

	// RelativeAncestor returns the ancestor of this block distance blocks
	// before it in the chain, or nil if there is no such ancestor (the
	// chain isn't long enough yet).
	RelativeAncestor(distance int64) HeaderView
}

// NextWorkRequired calculates the required proof-of-work difficulty for the
// block that follows tip, given the candidate timestamp for that block.
//
// The algorithm averages the work produced over the most recent
// params.PowAveragingWindow blocks and retargets so that the average spacing
// over that window trends back towards params.TargetTimePerBlock, damping the
// correction by a factor of four to avoid oscillation. This is the
// Zcash-style averaging retarget; it intentionally has nothing in common with
// Bitcoin's every-2016-blocks SMA rule.
//
// A network upgrade that changes algorithm at a given height (see
// chaincfg.Params.Algorithms) resets the target to that algorithm's starting
// bits rather than retargeting across the switch.
func NextWorkRequired(params *chaincfg.Params, tip HeaderView, newBlockTime int64) uint32 {
	if tip == nil {
		return params.PowLimitBits
	}

	nextHeight := tip.Height() + 1
	spec := params.AlgorithmFor(nextHeight)
	if int64(spec.Height) == nextHeight {
		return spec.Bits
	}

	window := params.PowAveragingWindow
	first := tip.RelativeAncestor(window)
	if first == nil {
		return params.PowLimitBits
	}

	// Average the target (not the difficulty) over the window; averaging
	// targets rather than difficulties avoids the harmonic-mean bias that
	// comes from averaging reciprocals.
	avgTarget := averageTarget(tip, window)

	actualTimespan := tip.Timestamp() - first.Timestamp()
	averagingWindowTimespan := window * int64(params.TargetTimePerBlock/1e9)

	// Damp the correction: only a quarter of the deviation from the ideal
	// window timespan is applied on any single retarget.
	dampedTimespan := averagingWindowTimespan + (actualTimespan-averagingWindowTimespan)/4

	minTimespan := averagingWindowTimespan
	maxTimespan := averagingWindowTimespan
	if params.PowMaxAdjustUp > 0 {
		minTimespan = averagingWindowTimespan * (100 - params.PowMaxAdjustUp) / 100
	}
	if params.PowMaxAdjustDown > 0 {
		maxTimespan = averagingWindowTimespan * (100 + params.PowMaxAdjustDown) / 100
	}
	if dampedTimespan < minTimespan {
		dampedTimespan = minTimespan
	}
	if dampedTimespan > maxTimespan {
		dampedTimespan = maxTimespan
	}

	nextTarget := new(big.Int).Mul(avgTarget, big.NewInt(dampedTimespan))
	nextTarget.Div(nextTarget, big.NewInt(averagingWindowTimespan))
	if nextTarget.Cmp(params.PowLimit) > 0 {
		nextTarget.Set(params.PowLimit)
	}

	return standalone.BigToCompact(nextTarget)
}

// averageTarget returns the arithmetic mean of the per-block targets over the
// window blocks ending at and including tip.
func averageTarget(tip HeaderView, window int64) *big.Int {
	sum := new(big.Int)
	node := tip
	for i := int64(0); i < window && node != nil; i++ {
		sum.Add(sum, standalone.CompactToBig(node.Bits()))
		node = node.RelativeAncestor(1)
	}
	return sum.Div(sum, big.NewInt(window))
}
