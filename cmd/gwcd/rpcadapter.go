// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/galaxywarscoin/GalaxywarsOcean/chaincfg"
	"github.com/galaxywarscoin/GalaxywarsOcean/internal/mining"
	"github.com/galaxywarscoin/GalaxywarsOcean/mempool"
	"github.com/galaxywarscoin/GalaxywarsOcean/notary"
	"github.com/galaxywarscoin/GalaxywarsOcean/rpc/jsonrpc/types"
	"github.com/galaxywarscoin/GalaxywarsOcean/rpcclient"
	"github.com/galaxywarscoin/GalaxywarsOcean/wire"
)

// templateSource bridges internal/mining.NewBlockTemplate to the
// cpuminer.TemplateSource shape, snapshotting the chain/mempool/UTXO state
// under a fixed lock order (chain then pool).
type templateSource struct {
	params   *chaincfg.Params
	chain    *mempool.Chain
	pool     *mempool.TxPool
	utxoView *mempool.UtxoViewpoint
	oracle   *notary.Oracle
	headers  *headerRing
	policy   mining.Policy
}

func (t *templateSource) NewBlockTemplate(minerScript []byte) (*mining.BlockTemplate, error) {
	lock := mempool.AcquireBoth(t.chain, t.pool)
	defer lock.Release()

	req := &mining.TemplateRequest{
		Chain:        t.chain,
		PrevHeader:   t.headers.Tip(),
		Mempool:      t.pool,
		UtxoView:     t.utxoView.Clone(),
		NotaryOracle: t.oracle,
		Policy:       t.policy,
		MinerScript:  minerScript,
	}
	return mining.NewBlockTemplate(t.params, req)
}

// blockSubmitter bridges a solved block to the upstream full node's RPC
// server via rpcclient, and advances this process's own local
// chain/header bookkeeping on acceptance. Full contextual validation (UTXO
// set lookups, script interpretation) lives in the upstream node;
// ValidateCandidate here only performs the structural checks this process
// can do without one.
type blockSubmitter struct {
	client  *rpcclient.Client
	chain   *mempool.Chain
	headers *headerRing
	seat    int
}

func (s *blockSubmitter) ValidateCandidate(block *wire.MsgBlock) error {
	if len(block.Transactions) == 0 {
		return fmt.Errorf("block has no transactions")
	}
	if !block.Transactions[0].IsCoinBase() {
		return fmt.Errorf("first transaction is not a coinbase")
	}
	got := block.MerkleRoot()
	if !bytes.Equal(got[:], block.Header.MerkleRoot[:]) {
		return fmt.Errorf("merkle root mismatch: header %x, computed %x",
			block.Header.MerkleRoot, got)
	}
	return nil
}

func (s *blockSubmitter) SubmitBlock(block *wire.MsgBlock) error {
	var buf bytes.Buffer
	if err := block.Serialize(&buf); err != nil {
		return err
	}
	hexBlock := hex.EncodeToString(buf.Bytes())

	if s.client != nil {
		if err := s.client.SubmitBlock(hexBlock, nil); err != nil {
			return err
		}
	}

	height := int64(0)
	if tip := s.headers.Tip(); tip != nil {
		height = tip.Height() + 1
	}
	s.headers.Append(height, block.Header.Bits, block.Header.Timestamp.Unix())

	// medianTimePast would normally be the median of the last 11 block
	// timestamps; without a full block index this process only ever sees
	// the block it just accepted, so that block's own timestamp stands in
	// as an approximation.
	blockTime := time.Unix(block.Header.Timestamp.Unix(), 0)
	s.chain.SetTip(height, block.BlockHash(), blockTime, blockTime)

	logMined(block, height, s.seat)
	return nil
}

// logMined records a blockmined event in the same payload shape
// BlockMinedNtfn pushes to a subscribed websocket client, for nodes that
// run without a notification server attached.
func logMined(block *wire.MsgBlock, height int64, seat int) {
	hash := block.BlockHash()
	ntfn := types.NewBlockMinedNtfn(hash.String(), height, seat, false)
	minrLog.Infof("mined block %s at height %d (seat %d)", ntfn.Hash, ntfn.Height, ntfn.MinerSeat)
}
