// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/galaxywarscoin/GalaxywarsOcean/chainhash"
	"github.com/galaxywarscoin/GalaxywarsOcean/wire"
)

// MainNetParams returns the network parameters for the main network.
func MainNetParams() *Params {
	// mainPowLimit is the highest proof of work value a block can have
	// for the main network. It is the value 2^251 - 1, the Zcash-style
	// Equihash(200,9) limit.
	mainPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 251), bigOne)

	genesisBlock := wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:   4,
			PrevBlock: chainhash.Hash{},
			Timestamp: time.Unix(1477958400, 0), // Tue, 01 Nov 2016 00:00:00 GMT
			Bits:      bigToCompact(mainPowLimit),
			Nonce:     [32]byte{},
		},
		Transactions: []*wire.MsgTx{{
			Version: 1,
			TxIn: []*wire.TxIn{{
				PreviousOutPoint: wire.OutPoint{
					Hash:  chainhash.Hash{},
					Index: 0xffffffff,
				},
				SignatureScript: hexDecode("0000"),
				Sequence:        0xffffffff,
			}},
			TxOut: []*wire.TxOut{{
				Value:    0,
				PkScript: hexDecode("21021729dac70d0b25cbcc0598a22d67e3f7e868" +
					"83115deae32e20e30bbe6d78a5fcac"),
			}},
			LockTime: 0,
		}},
	}
	genesisBlock.Header.MerkleRoot = genesisBlock.MerkleRoot()

	return &Params{
		Name:        "mainnet",
		DefaultPort: "7770",

		GenesisBlock: &genesisBlock,
		GenesisHash:  genesisBlock.BlockHash(),

		PowLimit:           mainPowLimit,
		PowLimitBits:       bigToCompact(mainPowLimit),
		PowAveragingWindow: 17,
		PowMaxAdjustDown:   32,
		PowMaxAdjustUp:     16,
		TargetTimePerBlock: 60 * time.Second,

		EquihashN: 200,
		EquihashK: 9,
		Algorithms: []wire.AlgorithmSpec{
			{Height: 0, HeaderSize: wire.EquihashSolutionLen, Version: 4, Bits: bigToCompact(mainPowLimit)},
		},

		MaxBlockSize: func(height int64) int {
			return 2000000
		},
		MaxBlockSigOps: 20000,

		CoinbaseMaturity:        100,
		SubsidyHalvingInterval:  840000,
		BaseSubsidy:             3 * 1e8,
		BlockOneSubsidy:         0,

		FounderReward: nil,

		NotaryPubKeys: [][]byte{
			hexDecode("02eb0fa6a1716127e48c5c6c1f6f1b0a0e82b0d96b0e1b5f7a5c5d5bb3d3d12f8a"),
			hexDecode("033337b8d1ab4fac0c6f7ac11cc30a7d5fb9c2d6c1d17a0e3d6e4e4b9b0c0a9c4f"),
			hexDecode("02aec0d7dd6e0b96c0e0a5f9a8bd3e8ad8eccfcca86019a8c5f93d04d89c6e1a0b"),
		},
		NotaryPayPercent: 0,

		StakeEnabled:             true,
		StakeTxValue:             2 * 1e8,
		StakeEligibilityWindow:   10,
		TimelockActivationHeight: 246748,
		TimelockValueThreshold:   10 * 1e8,
		KIP0003ActivationHeight:  1444000,
		DecemberHardforkHeight:   814000,
		HF22Height:               1670000,

		NetworkUpgrades: []NetworkUpgrade{
			{Name: "genesis", ActivationHeight: 0, BranchID: 0x00000000},
			{Name: "sapling", ActivationHeight: 227520, BranchID: 0x76b809bb},
		},

		Checkpoints: []Checkpoint{
			{Height: 10000, Hash: newHashFromStr("0000000fe1b976522b3fccd4184c9db0f64235b134f1161291ea832c6b46f3c")},
			{Height: 100000, Hash: newHashFromStr("0000000011a6460dc81cb58d1e8756c6ab575bd1d46418d7fd11b9aeedf84dee")},
		},

		NetworkAddressPrefix: "R",
		PubKeyHashAddrID:     0x3c,
		ScriptHashAddrID:     0x55,
	}
}
