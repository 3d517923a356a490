// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"encoding/json"

	"github.com/galaxywarscoin/GalaxywarsOcean/rpc/jsonrpc/types"
)

// *****************************
// Mining Functions
// *****************************

// FutureGetMiningInfoResult is a future promise to deliver the result of a
// GetMiningInfoAsync RPC invocation (or an applicable error).
type FutureGetMiningInfoResult chan *response

// Receive waits for the response promised by the future and returns the
// mining state and notary/easy-mine eligibility of the connected node.
func (r FutureGetMiningInfoResult) Receive() (*types.GetMiningInfoResult, error) {
	res, err := receiveFuture(r)
	if err != nil {
		return nil, err
	}

	var info types.GetMiningInfoResult
	err = json.Unmarshal(res, &info)
	if err != nil {
		return nil, err
	}

	return &info, nil
}

// GetMiningInfoAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See GetMiningInfo for the blocking version and more details.
func (c *Client) GetMiningInfoAsync() FutureGetMiningInfoResult {
	cmd := types.NewGetMiningInfoCmd()
	return c.sendCmd(cmd)
}

// GetMiningInfo returns mining-related information for the connected node,
// including whether it currently holds a notary seat and its easy-mine
// eligibility.
func (c *Client) GetMiningInfo() (*types.GetMiningInfoResult, error) {
	return c.GetMiningInfoAsync().Receive()
}

// FutureSubmitBlockResult is a future promise to deliver the result of a
// SubmitBlockAsync RPC invocation (or an applicable error).
type FutureSubmitBlockResult chan *response

// Receive waits for the response promised by the future and returns an
// error if the submitted block was rejected.
func (r FutureSubmitBlockResult) Receive() error {
	_, err := receiveFuture(r)
	return err
}

// SubmitBlockAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See SubmitBlock for the blocking version and more details.
func (c *Client) SubmitBlockAsync(hexBlock string, options *types.SubmitBlockOptions) FutureSubmitBlockResult {
	cmd := types.NewSubmitBlockCmd(hexBlock, options)
	return c.sendCmd(cmd)
}

// SubmitBlock submits a solved block, hex-encoded in the wire format, for
// acceptance into the chain. A non-nil error indicates the block was
// rejected by the node's validation rules.
func (c *Client) SubmitBlock(hexBlock string, options *types.SubmitBlockOptions) error {
	return c.SubmitBlockAsync(hexBlock, options).Receive()
}
