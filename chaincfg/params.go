// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"math/big"
	"time"

	"github.com/galaxywarscoin/GalaxywarsOcean/blockchain/standalone"
	"github.com/galaxywarscoin/GalaxywarsOcean/chainhash"
	"github.com/galaxywarscoin/GalaxywarsOcean/wire"
)

// bigOne is 1 represented as a big.Int, used when computing pow limits by
// shift-and-subtract.
var bigOne = big.NewInt(1)

func hexDecode(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func hexToBigInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex big.Int literal: " + s)
	}
	return n
}

func newHashFromStr(hexStr string) *chainhash.Hash {
	h, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return h
}

// Checkpoint identifies a known good point in the block chain. Any side
// chain that attempts to reorganize across a checkpoint is automatically
// rejected.
type Checkpoint struct {
	Height int64
	Hash   *chainhash.Hash
}

// NetworkUpgrade names an activation height for a change in consensus
// behavior, following the same "branch id" mechanism Zcash-lineage chains
// use to reject cross-upgrade replay.
type NetworkUpgrade struct {
	Name       string
	ActivationHeight int64
	BranchID   uint32
}

// Params defines the parameters for the chain this module builds block
// templates for. A single running instance of the template builder and
// mining driver selects exactly one of these at startup.
type Params struct {
	// Name is the name used to refer to the network.
	Name string

	// DefaultPort is the default TCP port peer-to-peer networking listens
	// on. Unused by this module directly; carried for use by a full node
	// wiring this package in.
	DefaultPort string

	// GenesisBlock is the first block in the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash, cached off of GenesisBlock
	// so callers don't recompute it.
	GenesisHash chainhash.Hash

	// PowLimit is the highest proof of work value a block can have for the
	// network, in big.Int form.
	PowLimit *big.Int

	// PowLimitBits is PowLimit in its compact representation.
	PowLimitBits uint32

	// PowAveragingWindow is the number of blocks the difficulty retarget
	// averages over: a Zcash-style window whose targets are averaged
	// arithmetically, used instead of Bitcoin's fixed 2016-block retarget.
	PowAveragingWindow int64

	// PowMaxAdjustDown/PowMaxAdjustUp bound how far a single retarget may
	// move the difficulty, expressed as a percentage.
	PowMaxAdjustDown int64
	PowMaxAdjustUp   int64

	// TargetTimePerBlock is the average time between blocks the
	// difficulty retarget aims to hold.
	TargetTimePerBlock time.Duration

	// EquihashN and EquihashK are the Equihash parameters this network's
	// proof of work uses. (200,9) is the Zcash "default" parameterization;
	// a lighter network may use (96,5) or similar, which only the cgo
	// "tromp" solver (see cequihash) understands.
	EquihashN uint32
	EquihashK uint32

	// NonceShift is the number of bits the template builder's randomized
	// starting nonce is shifted left (then right by 16) to keep the top
	// and bottom bytes of the 256-bit nonce free for the mining driver's
	// thread-id and rolled-nonce bookkeeping. 0 disables the shift.
	NonceShift uint

	// Algorithms lists the per-height proof-of-work parameterization
	// schedule, mirroring wire.AlgorithmSpec so the header size and
	// expected Equihash solution length can change at a hard-fork height
	// without a new Params field.
	Algorithms []wire.AlgorithmSpec

	// MaxBlockSize is the maximum size in bytes a block is allowed to be,
	// as a function of height (some networks raise it at a fork height).
	MaxBlockSize func(height int64) int

	// MaxBlockSigOps is the maximum number of legacy signature operations
	// allowed per block.
	MaxBlockSigOps int

	// CoinbaseMaturity is the number of blocks required before newly
	// generated coins via the coinbase transaction may be spent.
	CoinbaseMaturity int64

	// SubsidyHalvingInterval is the number of blocks between subsidy
	// halvings.
	SubsidyHalvingInterval int64

	// BaseSubsidy is the block subsidy, in atomic units, before any
	// halving is applied.
	BaseSubsidy int64

	// BlockOneSubsidy, when nonzero, is a fixed premine paid only at
	// height 1 instead of the usual subsidy schedule.
	BlockOneSubsidy int64

	// FounderReward describes the commission/founders-reward split taken
	// out of the block subsidy, if any. A nil value disables it.
	FounderReward *FounderRewardParams

	// NotaryPubKeys is the set of notary node public keys (33-byte
	// compressed secp256k1 points) allowed to sign notarisation
	// transactions, keyed by notary index ("seat"). The notary package
	// treats this whole set as active at every height and time; there is
	// no scheduled pubkey-set rotation.
	NotaryPubKeys [][]byte

	// NotaryPayPercent is the percentage of the block reward redirected
	// to the signing notary when notary-pay is active (0 disables it).
	NotaryPayPercent int64

	// StakeEnabled turns on proof-of-stake coinbase composition
	// alongside proof of work.
	StakeEnabled bool

	// TimelockActivationHeight is the height at which the timelock wrap
	// becomes possible at all. A value of 0 disables the feature
	// entirely regardless of TimelockValueThreshold.
	TimelockActivationHeight int64

	// TimelockValueThreshold is the coinbase primary-output value, in
	// atomic units, at or above which that output is wrapped in a
	// CHECKLOCKTIMEVERIFY P2SH timelock (ASSETCHAINS_TIMELOCKGTE in the
	// komodod reference). A value of 0 means every coinbase qualifies
	// once TimelockActivationHeight is reached.
	TimelockValueThreshold int64

	// StakeTxValue is the fixed output value a proof-of-stake coinbase's
	// paired stake transaction carries, the stake the node commits to
	// vote with at this height.
	StakeTxValue int64

	// StakeEligibilityWindow is the number of blocks a staker must wait
	// since its last won block before it is eligible again, mirroring
	// komodo_waituntilelegible's spacing rule.
	StakeEligibilityWindow int64

	// KIP0003ActivationHeight is the height at which the fee-burn
	// OP_RETURN accounting begins.
	KIP0003ActivationHeight int64

	// DecemberHardforkHeight gates the append-a-notary-vin behavior used
	// to keep notarisation transactions minable under tight fee
	// pressure.
	DecemberHardforkHeight int64

	// HF22Height activates the "second block allowed" relaxation of the
	// single-block-per-round notary rotation rule.
	HF22Height int64

	// NetworkUpgrades lists branch-id activation points.
	NetworkUpgrades []NetworkUpgrade

	// Checkpoints are known good block hashes at fixed heights.
	Checkpoints []Checkpoint

	// NetworkAddressPrefix is the human-readable prefix of addresses on
	// this network, used only for log/display formatting.
	NetworkAddressPrefix string

	// PubKeyHashAddrID and ScriptHashAddrID are the address version
	// bytes for the two standard stdaddr encodings on this network.
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
}

// FounderRewardParams describes a commission/founders-reward split applied
// on top of the base subsidy.
type FounderRewardParams struct {
	// Percent is the founders' percentage of BaseSubsidy, taken as an
	// additional output rather than a split of the miner's own subsidy.
	Percent int64

	// Addresses rotates the founders payout address by height bucket,
	// matching komodo_commission's rotating-address schedule.
	Addresses []string

	// AddressInterval is the number of blocks between address rotations.
	AddressInterval int64
}

// bigToCompact converts a whole number N to its compact nBits representation.
// It defers to blockchain/standalone, the module's single source of truth
// for the compact-bits encoding, so genesis block construction here and
// difficulty retargeting in the blockchain package never drift apart.
func bigToCompact(n *big.Int) uint32 {
	return standalone.BigToCompact(n)
}

// AddrIDPubKeyHashV0 returns the magic prefix byte used for version 0
// pay-to-pubkey-hash addresses on this network.
//
// This implements the stdaddr.AddressParams interface.
func (p *Params) AddrIDPubKeyHashV0() byte {
	return p.PubKeyHashAddrID
}

// AddrIDScriptHashV0 returns the magic prefix byte used for version 0
// pay-to-script-hash addresses on this network.
//
// This implements the stdaddr.AddressParams interface.
func (p *Params) AddrIDScriptHashV0() byte {
	return p.ScriptHashAddrID
}

// AlgorithmFor returns the AlgorithmSpec active at the given height.
func (p *Params) AlgorithmFor(height int64) wire.AlgorithmSpec {
	best := p.Algorithms[0]
	for _, a := range p.Algorithms {
		if int64(a.Height) <= height {
			best = a
		}
	}
	return best
}
