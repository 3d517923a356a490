// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cpuminer

import (
	"time"

	"github.com/galaxywarscoin/GalaxywarsOcean/chaincfg"
)

// defaultPollInterval is the Config.PollInterval that NewConfig sets. The
// peer gate does not read it; it sleeps a random 1-5 seconds between checks.
const defaultPollInterval = 500 * time.Millisecond

// NewConfig derives a driver Config from network parameters and the
// operator-supplied knobs CLI/RPC callers choose at startup.
func NewConfig(params *chaincfg.Params, threads int, useTromp bool, minerSeat int, isNotary bool) Config {
	return Config{
		Threads:       threads,
		RequirePeers:  true,
		MinerSeat:     minerSeat,
		IsNotary:      isNotary,
		MaxFutureTime: 2 * time.Hour,
		UseTromp:      useTromp,
		EquihashN:     params.EquihashN,
		EquihashK:     params.EquihashK,
		MinDiffBits:   params.PowLimitBits,
		PollInterval:  defaultPollInterval,
		StakeMode:     params.StakeEnabled,
		StakeDiffBits: params.PowLimitBits,
	}
}
