// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/galaxywarscoin/GalaxywarsOcean/chaincfg"
)

// activeNetParams is a pointer to the parameters specific to the
// currently active network this node mines against.
var activeNetParams = &mainNetParams

// params groups a chaincfg.Params value with the RPC port this daemon
// listens on for that network, mirroring the per-network grouping the
// reference implementation keeps for its own mainnet/testnet/simnet triple.
type params struct {
	*chaincfg.Params
	rpcPort string
}

// mainNetParams contains parameters specific to the main network.
var mainNetParams = params{
	Params:  chaincfg.MainNetParams(),
	rpcPort: "9109",
}

// regNetParams contains parameters specific to the regression test network,
// used for unit and RPC-server tests rather than a public testnet.
var regNetParams = params{
	Params:  chaincfg.RegNetParams(),
	rpcPort: "19109",
}

// netName returns the name used when referring to the active network, for
// use as the data and log directory name.
func netName(chainParams *params) string {
	return chainParams.Name
}
