// Copyright (c) 2014-2015 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// NOTE: This file houses the mining-only RPC commands this repository's
// RPC client issues: getmininginfo and submitblock. The full chain-server
// command set (getblock, getrawtransaction, and so on) lives outside this
// module's scope.

package types

import "github.com/decred/dcrd/dcrjson/v4"

// GetMiningInfoCmd defines the getmininginfo JSON-RPC command.
type GetMiningInfoCmd struct{}

// NewGetMiningInfoCmd returns a new instance which can be used to issue a
// getmininginfo JSON-RPC command.
func NewGetMiningInfoCmd() *GetMiningInfoCmd {
	return &GetMiningInfoCmd{}
}

// GetMiningInfoResult models the data returned from the getmininginfo
// command.
type GetMiningInfoResult struct {
	Blocks           int64   `json:"blocks"`
	CurrentBlockSize uint64  `json:"currentblocksize"`
	CurrentBlockTx   uint64  `json:"currentblocktx"`
	Difficulty       float64 `json:"difficulty"`
	Generate         bool    `json:"generate"`
	GenProcLimit     int32   `json:"genproclimit"`
	HashesPerSec     int64   `json:"hashespersec"`
	MinerSeat        int32   `json:"minerseat"`
	IsNotary         bool    `json:"isnotary"`
	EasyMineEligible bool    `json:"easymineeligible"`
	NetworkHashPS    int64   `json:"networkhashps"`
	PooledTx         uint64  `json:"pooledtx"`
	TestNet          bool    `json:"testnet"`
}

// SubmitBlockOptions represents the optional options struct provided with
// a SubmitBlock command.
type SubmitBlockOptions struct {
	WorkID string `json:"workid,omitempty"`
}

// SubmitBlockCmd defines the submitblock JSON-RPC command.
type SubmitBlockCmd struct {
	HexBlock string
	Options  *SubmitBlockOptions
}

// NewSubmitBlockCmd returns a new instance which can be used to issue a
// submitblock JSON-RPC command.
func NewSubmitBlockCmd(hexBlock string, options *SubmitBlockOptions) *SubmitBlockCmd {
	return &SubmitBlockCmd{
		HexBlock: hexBlock,
		Options:  options,
	}
}

func init() {
	dcrjson.MustRegister(Method("getmininginfo"), (*GetMiningInfoCmd)(nil), 0)
	dcrjson.MustRegister(Method("submitblock"), (*SubmitBlockCmd)(nil), 0)
}
