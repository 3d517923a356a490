// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/galaxywarscoin/GalaxywarsOcean/chaincfg"
	"github.com/galaxywarscoin/GalaxywarsOcean/chainhash"
	"github.com/galaxywarscoin/GalaxywarsOcean/internal/mining/cpuminer"
	"github.com/galaxywarscoin/GalaxywarsOcean/internal/minerdb"
	"github.com/galaxywarscoin/GalaxywarsOcean/mempool"
	"github.com/galaxywarscoin/GalaxywarsOcean/notary"
	"github.com/galaxywarscoin/GalaxywarsOcean/rpcclient"
	"github.com/galaxywarscoin/GalaxywarsOcean/txscript/stdaddr"
)

func main() {
	if err := gwcdMain(); err != nil {
		os.Exit(1)
	}
}

// gwcdMain wires the block-template builder, notary oracle, and mining
// driver together and runs until interrupted. It is split out from main so
// deferred cleanups run before os.Exit in the caller.
func gwcdMain() error {
	cfg, _, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	if cfg.RegressionTest {
		activeNetParams = &regNetParams
	}

	initLogRotator(filepath.Join(cfg.LogDir, netName(activeNetParams), defaultLogFilename))
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	dbPath := filepath.Join(cfg.DataDir, netName(activeNetParams), "minerdb")
	store, err := minerdb.Open(dbPath)
	if err != nil {
		cnfgLog.Errorf("failed to open miner database: %v", err)
		return err
	}
	defer store.Close()

	counters, err := store.LoadCounters()
	if err != nil {
		cnfgLog.Errorf("failed to load notary counters: %v", err)
		return err
	}
	recent := notary.NewRecentMiners(65)
	oracle := notary.New(activeNetParams.Params)

	chain := mempool.NewChain(-1, chainhash.Hash{}, time.Time{}, time.Time{})
	pool := mempool.New(mempool.Config{MaxOrphans: 100})
	utxoView := mempool.NewUtxoViewpoint()
	headers := newHeaderRing()

	// Without -rpcconnect this node has nowhere to submit a solved block
	// but its own local bookkeeping; blockSubmitter treats a nil client as
	// local-only.
	var rpcClient *rpcclient.Client
	if cfg.RPCConnect != "" {
		var cert []byte
		if !cfg.NoTLS && cfg.RPCCert != "" {
			var certErr error
			cert, certErr = os.ReadFile(cfg.RPCCert)
			if certErr != nil {
				rpccLog.Errorf("failed to read RPC certificate: %v", certErr)
				return certErr
			}
		}
		rpcClient, err = rpcclient.New(&rpcclient.ConnConfig{
			Host:         cfg.RPCConnect,
			User:         cfg.RPCUser,
			Pass:         cfg.RPCPass,
			Certificates: cert,
			DisableTLS:   cfg.NoTLS,
		})
		if err != nil {
			rpccLog.Errorf("failed to set up RPC client: %v", err)
			return err
		}
	}

	policy := policyFromConfig(cfg)
	policy.IsNotary = cfg.MinerSeat >= 0

	src := &templateSource{
		params:   activeNetParams.Params,
		chain:    chain,
		pool:     pool,
		utxoView: utxoView,
		oracle:   oracle,
		headers:  headers,
		policy:   policy,
	}
	submitter := &blockSubmitter{
		client:  rpcClient,
		chain:   chain,
		headers: headers,
		seat:    cfg.MinerSeat,
	}

	minerCfg := cpuminer.NewConfig(activeNetParams.Params, cfg.GenThreads, cfg.UseTromp,
		cfg.MinerSeat, cfg.MinerSeat >= 0)
	minerCfg.StakeMode = minerCfg.StakeMode && cfg.StakeMode

	minerScript, err := buildMinerScript(cfg.MinerAddress, activeNetParams.Params)
	if err != nil && cfg.Generate {
		cnfgLog.Errorf("invalid -mineraddress: %v", err)
		return err
	}

	miner := cpuminer.New(minerCfg, src, submitter, alwaysSyncedPeers{}, chain, oracle,
		func() []byte { return minerScript })
	miner.SeedNotaryState(counters, recent)
	miner.SetNotaryStore(store)

	minrLog.Infof("gwcd starting on %s (notary seat %d)", netName(activeNetParams), cfg.MinerSeat)
	miner.GenerateBitcoins(cfg.Generate)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt

	minrLog.Info("shutdown requested, stopping miner")
	miner.GenerateBitcoins(false)
	return nil
}

// alwaysSyncedPeers is the minimal cpuminer.PeerSource this standalone
// daemon uses when it isn't wired to a real peer manager: it reports
// itself synced with zero peers required, since peer gating is a full
// node's connmgr concern.
type alwaysSyncedPeers struct{}

func (alwaysSyncedPeers) ConnectedPeers() int { return 1 }
func (alwaysSyncedPeers) InSync() bool        { return true }

// buildMinerScript decodes the configured payout address into its
// locking script, for use as the coinbase output every template reserves
// for this node. An empty address decodes to a nil script, which the
// coinbase composer is responsible for rejecting if generation is
// actually enabled.
func buildMinerScript(address string, params *chaincfg.Params) ([]byte, error) {
	if address == "" {
		return nil, nil
	}
	addr, err := stdaddr.DecodeAddress(address, params)
	if err != nil {
		return nil, err
	}
	_, script := addr.PaymentScript()
	return script, nil
}
