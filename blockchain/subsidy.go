// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/galaxywarscoin/GalaxywarsOcean/chaincfg"
)

// CalcBlockSubsidy returns the subsidy, in atomic units, a block at the
// given height is entitled to mint before any commission/founders-reward
// split or notary bonus is taken out of it. The subsidy halves every
// params.SubsidyHalvingInterval blocks until it reaches zero, the same
// geometric schedule Bitcoin-derived chains use.
//
// Height 1 pays BlockOneSubsidy instead of the regular schedule when the
// network configures one (a one-time premine), matching the treatment of
// block one throughout the Bitcoin-derived family.
func CalcBlockSubsidy(height int64, params *chaincfg.Params) int64 {
	if height <= 0 {
		return 0
	}
	if height == 1 && params.BlockOneSubsidy != 0 {
		return params.BlockOneSubsidy
	}

	halvings := height / params.SubsidyHalvingInterval
	if halvings >= 64 {
		return 0
	}
	return params.BaseSubsidy >> uint(halvings)
}

// CalcFounderReward returns the commission/founders-reward amount taken out
// of a block's subsidy, and the payout address active at height, or
// (0, "") when the network has no FounderReward configured.
func CalcFounderReward(height int64, subsidy int64, params *chaincfg.Params) (int64, string) {
	fr := params.FounderReward
	if fr == nil || len(fr.Addresses) == 0 || fr.Percent == 0 {
		return 0, ""
	}

	idx := (height / fr.AddressInterval) % int64(len(fr.Addresses))
	amount := (subsidy * fr.Percent) / 100
	return amount, fr.Addresses[idx]
}

// CalcNotaryPay returns the notary's share of a block's subsidy when
// notary-pay is active for the network, or 0 when it is not.
func CalcNotaryPay(subsidy int64, params *chaincfg.Params) int64 {
	if params.NotaryPayPercent == 0 {
		return 0
	}
	return (subsidy * params.NotaryPayPercent) / 100
}
