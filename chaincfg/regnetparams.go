// Copyright (c) 2018-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/galaxywarscoin/GalaxywarsOcean/chainhash"
	"github.com/galaxywarscoin/GalaxywarsOcean/wire"
)

// RegNetParams returns the network parameters for the regression test
// network. This network exists purely for unit and RPC-server tests; its
// values may change without a version bump.
func RegNetParams() *Params {
	regNetPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	genesisBlock := wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:   4,
			PrevBlock: chainhash.Hash{},
			Timestamp: time.Unix(1538524800, 0), // 2018-10-03 00:00:00 +0000 UTC
			Bits:      0x200f0f0f,
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
		Name:        "regnet",
		DefaultPort: "17770",

		GenesisBlock: &genesisBlock,
		GenesisHash:  genesisBlock.BlockHash(),

		PowLimit:           regNetPowLimit,
		PowLimitBits:       0x200f0f0f,
		PowAveragingWindow: 17,
		PowMaxAdjustDown:   0, // with both bounds 0 the retarget keeps the window's average target
		PowMaxAdjustUp:     0,
		TargetTimePerBlock: time.Second,

		EquihashN: 48,
		EquihashK: 5,
		Algorithms: []wire.AlgorithmSpec{
			{Height: 0, HeaderSize: 36, Version: 4, Bits: 0x200f0f0f},
		},

		MaxBlockSize: func(height int64) int {
			return 2000000
		},
		MaxBlockSigOps: 20000,

		CoinbaseMaturity:       1,
		SubsidyHalvingInterval: 150,
		BaseSubsidy:            50 * 1e8,
		BlockOneSubsidy:        0,

		FounderReward: nil,

		NotaryPubKeys: [][]byte{
			hexDecode("02eb0fa6a1716127e48c5c6c1f6f1b0a0e82b0d96b0e1b5f7a5c5d5bb3d3d12f8a"),
		},
		NotaryPayPercent: 0,

		StakeEnabled:             false,
		StakeTxValue:             0,
		StakeEligibilityWindow:   0,
		TimelockActivationHeight: 0,
		TimelockValueThreshold:   0,
		KIP0003ActivationHeight:  0,
		DecemberHardforkHeight:   0,
		HF22Height:               0,

		NetworkUpgrades: []NetworkUpgrade{
			{Name: "genesis", ActivationHeight: 0, BranchID: 0x00000000},
		},

		Checkpoints: nil,

		NetworkAddressPrefix: "R",
		PubKeyHashAddrID:     0x3c,
		ScriptHashAddrID:     0x55,
	}
}
