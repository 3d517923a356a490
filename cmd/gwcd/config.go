// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	flags "github.com/jessevdk/go-flags"

	"github.com/galaxywarscoin/GalaxywarsOcean/internal/mining"
)

const (
	defaultConfigFilename = "gwcd.conf"
	defaultDataDirname    = "data"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "gwcd.log"

	defaultBlockMaxSize       = 375000
	defaultBlockPrioritySize  = 20000
	defaultBlockMinSize       = 0
	defaultOpReturnMinRelayFee = 0.0
	defaultMinRelayFeeRate    = 0.0001
	defaultGenerate           = false
	defaultGenThreads         = 1
	defaultMinerSeat          = -1
)

var (
	defaultHomeDir    = AppDataDir("gwcd", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultDataDir    = filepath.Join(defaultHomeDir, defaultDataDirname)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for gwcd.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir     string `short:"b" long:"datadir" description:"Directory to store data"`
	LogDir      string `long:"logdir" description:"Directory to log output"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}"`
	RegressionTest bool `long:"regtest" description:"Use the regression test network"`

	RPCConnect string `long:"rpcconnect" description:"Host of full node RPC server this miner submits blocks to"`
	RPCUser    string `long:"rpcuser" description:"RPC username"`
	RPCPass    string `long:"rpcpass" description:"RPC password"`
	RPCCert    string `long:"rpccert" description:"RPC server certificate chain for validation"`
	NoTLS      bool   `long:"notls" description:"Disable TLS for the RPC client connection"`

	Generate      bool    `long:"gen" description:"Generate (mine) new blocks using the CPU"`
	GenThreads    int     `long:"genthreads" description:"Number of CPU threads to use with CPU mining (-1 means all available)"`
	MinerAddress  string  `long:"mineraddress" description:"Payment address for generated blocks' coinbase"`
	MinerSeat     int     `long:"minerseat" description:"This node's notary seat index, or -1 if it does not hold one"`
	UseTromp      bool    `long:"tromp" description:"Use the cgo Tromp-style Equihash solver instead of the pure-Go one"`
	StakeMode     bool    `long:"stakemode" description:"Pair every block template with a proof-of-stake stake transaction"`

	BlockMaxSize        int     `long:"blockmaxsize" description:"Maximum block size in bytes to be used when creating a block"`
	BlockPrioritySize   int     `long:"blockprioritysize" description:"Size in bytes for high-priority/low-fee transactions when creating a block"`
	BlockMinSize        int     `long:"blockminsize" description:"Minimum block size in bytes to be used when creating a block"`
	OpReturnMinRelayFee float64 `long:"opretminrelayfee" description:"Minimum fee rate in atoms/byte an over-sized OP_RETURN payload must meet to be mined"`
	MinRelayFeeRate     float64 `long:"minrelayfee" description:"Minimum fee rate in atoms/byte below which a transaction is treated as free"`
	PrintPriority       bool    `long:"printpriority" description:"Sets the mining policy's PrintPriority field; block template assembly does not log per-transaction priority or fee"`
}

// AppDataDir returns an operating system specific directory to be used for
// storing application data for an application.
func AppDataDir(appName string, roaming bool) string {
	if appName == "" || appName == "." {
		return "."
	}

	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if roaming {
			appData = os.Getenv("APPDATA")
		}
		if appData != "" {
			return filepath.Join(appData, appName)
		}
	case "darwin":
		if home := homeDir(); home != "" {
			return filepath.Join(home, "Library", "Application Support", appName)
		}
	default:
		if home := homeDir(); home != "" {
			return filepath.Join(home, "."+appName)
		}
	}
	return "."
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	return ""
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if path == "" {
		return path
	}
	if path[0:1] == "~" {
		if home := homeDir(); home != "" {
			path = filepath.Join(home, path[1:])
		}
	}
	return filepath.Clean(os.ExpandEnv(path))
}

// loadConfig parses command-line arguments and applies defaults: populate
// defaults, parse flags over them, then fix up/validate the result.
func loadConfig() (*config, []string, error) {
	cfg := config{
		ConfigFile:          defaultConfigFile,
		DataDir:             defaultDataDir,
		LogDir:              defaultLogDir,
		DebugLevel:          defaultLogLevel,
		GenThreads:          defaultGenThreads,
		MinerSeat:           defaultMinerSeat,
		BlockMaxSize:        defaultBlockMaxSize,
		BlockPrioritySize:   defaultBlockPrioritySize,
		BlockMinSize:        defaultBlockMinSize,
		OpReturnMinRelayFee: defaultOpReturnMinRelayFee,
		MinRelayFeeRate:     defaultMinRelayFeeRate,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	cfg.DataDir = cleanAndExpandPath(cfg.DataDir)
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	if cfg.Generate && cfg.MinerAddress == "" {
		return nil, nil, fmt.Errorf("-gen requires -mineraddress to be set")
	}

	if cfg.GenThreads == 0 || cfg.GenThreads < -1 {
		return nil, nil, fmt.Errorf("-genthreads must be -1 or a positive integer")
	}
	if cfg.GenThreads == -1 {
		cfg.GenThreads = runtime.NumCPU()
	}

	return &cfg, remainingArgs, nil
}

// policyFromConfig builds a mining.Policy from the loaded configuration.
func policyFromConfig(cfg *config) mining.Policy {
	return mining.Policy{
		BlockMaxSize:        cfg.BlockMaxSize,
		BlockPrioritySize:   cfg.BlockPrioritySize,
		BlockMinSize:        cfg.BlockMinSize,
		OpReturnMinRelayFee: cfg.OpReturnMinRelayFee,
		MinRelayFeeRate:     cfg.MinRelayFeeRate,
		PrintPriority:       cfg.PrintPriority,
		MinerAddress:        cfg.MinerAddress,
		IsNotary:            cfg.MinerSeat >= 0,
		StakeMode:           cfg.StakeMode,
	}
}
