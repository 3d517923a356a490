// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"testing"

	"github.com/galaxywarscoin/GalaxywarsOcean/blockchain/standalone"
	"github.com/galaxywarscoin/GalaxywarsOcean/chaincfg"
)

// fakeHeaderView is a linear, in-memory chain of headers used to exercise
// NextWorkRequired without needing a full block index.
type fakeHeaderView struct {
	height    int64
	bits      uint32
	timestamp int64
	parent    *fakeHeaderView
}

func (v *fakeHeaderView) Height() int64    { return v.height }
func (v *fakeHeaderView) Bits() uint32     { return v.bits }
func (v *fakeHeaderView) Timestamp() int64 { return v.timestamp }

func (v *fakeHeaderView) RelativeAncestor(distance int64) HeaderView {
	node := v
	for i := int64(0); i < distance; i++ {
		if node == nil {
			return nil
		}
		node = node.parent
	}
	if node == nil {
		return nil
	}
	return node
}

// buildChain returns a chain of numBlocks nodes, each spacedSecs seconds
// apart and all sharing the same starting difficulty bits.
func buildChain(params *chaincfg.Params, numBlocks int64, spacedSecs int64) *fakeHeaderView {
	var tip *fakeHeaderView
	for h := int64(0); h < numBlocks; h++ {
		tip = &fakeHeaderView{
			height:    h,
			bits:      params.PowLimitBits,
			timestamp: h * spacedSecs,
			parent:    tip,
		}
	}
	return tip
}

func TestNextWorkRequiredGenesis(t *testing.T) {
	params := chaincfg.RegNetParams()
	got := NextWorkRequired(params, nil, 0)
	if got != params.PowLimitBits {
		t.Fatalf("got %08x, want pow limit %08x", got, params.PowLimitBits)
	}
}

func TestNextWorkRequiredBeforeWindow(t *testing.T) {
	params := chaincfg.RegNetParams()
	tip := buildChain(params, params.PowAveragingWindow, int64(params.TargetTimePerBlock.Seconds()))
	got := NextWorkRequired(params, tip, tip.timestamp+1)
	if got != params.PowLimitBits {
		t.Fatalf("got %08x, want pow limit %08x before the window fills", got, params.PowLimitBits)
	}
}

// TestNextWorkRequiredStableSpacing verifies that when every block in the
// averaging window lands exactly on target, the next target is unchanged.
func TestNextWorkRequiredStableSpacing(t *testing.T) {
	params := chaincfg.MainNetParams()
	spacing := int64(params.TargetTimePerBlock.Seconds())
	tip := buildChain(params, params.PowAveragingWindow+5, spacing)

	got := NextWorkRequired(params, tip, tip.timestamp+spacing)
	want := standalone.CompactToBig(params.PowLimitBits)
	gotBig := standalone.CompactToBig(got)
	if gotBig.Cmp(want) != 0 {
		t.Fatalf("stable-spacing retarget changed the target: got %x, want %x", gotBig, want)
	}
}

// TestNextWorkRequiredClampsDownwardAdjustment verifies a burst of very fast
// blocks cannot tighten the target past PowMaxAdjustUp in one retarget.
func TestNextWorkRequiredClampsDownwardAdjustment(t *testing.T) {
	params := chaincfg.MainNetParams()
	tip := buildChain(params, params.PowAveragingWindow+5, 1)

	got := NextWorkRequired(params, tip, tip.timestamp+1)
	gotBig := standalone.CompactToBig(got)
	limitBig := standalone.CompactToBig(params.PowLimitBits)

	averagingWindowTimespan := params.PowAveragingWindow * int64(params.TargetTimePerBlock.Seconds())
	minTimespan := averagingWindowTimespan * (100 - params.PowMaxAdjustUp) / 100
	floor := new(big.Int).Mul(limitBig, big.NewInt(minTimespan))
	floor.Div(floor, big.NewInt(averagingWindowTimespan))
	// The retarget result is stored in compact form, which keeps only the
	// leading mantissa bytes, so compare against the floor as compact too.
	floor = standalone.CompactToBig(standalone.BigToCompact(floor))

	if gotBig.Cmp(floor) < 0 {
		t.Fatalf("retarget exceeded PowMaxAdjustUp bound: got %x, floor %x", gotBig, floor)
	}
}
