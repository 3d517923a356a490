// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mining implements block template assembly: scoring and selecting
// mempool transactions under the active block budgets, detecting at most
// one notarisation transaction per block, and composing the coinbase
// (including its commission/timelock/notary-pay/stake variants).
//
// It does not validate transactions, maintain a UTXO set, interpret
// scripts, or talk to a wallet; those all arrive through the collaborator
// interfaces declared in this file.
package mining

import (
	"time"

	"github.com/galaxywarscoin/GalaxywarsOcean/chainhash"
	"github.com/galaxywarscoin/GalaxywarsOcean/dcrutil"
	"github.com/galaxywarscoin/GalaxywarsOcean/wire"
)

// TxDesc is a mempool entry: a transaction plus the bookkeeping the
// template builder needs that the mempool itself owns (fee, and any
// operator-applied priority/fee deltas).
type TxDesc struct {
	Tx            *dcrutil.Tx
	Fee           int64
	FeeDelta      int64
	PriorityDelta float64
	Height        int64
}

// Mempool is the read-only view of pending transactions the template
// builder scores and selects from.
type Mempool interface {
	// TxDescs returns a point-in-time snapshot of every transaction
	// currently in the pool.
	TxDescs() []*TxDesc

	// HaveTx reports whether a transaction with the given hash is in the
	// pool, used to resolve an input that isn't found in the UTXO view.
	HaveTx(hash *chainhash.Hash) bool
}

// UtxoEntry describes a single unspent output as seen by a UtxoViewpoint.
type UtxoEntry struct {
	Amount      int64
	PkScript    []byte
	BlockHeight int64
	IsCoinBase  bool
	Spent       bool
}

// UtxoViewpoint is a read-mostly snapshot of unspent outputs. The template
// builder writes speculative spends into it as it admits transactions so
// that a later transaction in the same template can spend an earlier one's
// outputs.
type UtxoViewpoint interface {
	// HaveCoins reports whether any output of hash is still unspent in
	// the view.
	HaveCoins(hash *chainhash.Hash) bool

	// AccessCoins returns the outputs for hash, or nil if unknown.
	AccessCoins(hash *chainhash.Hash) []*UtxoEntry

	// GetValueIn sums the values spent by every input of tx that
	// resolves in the view, along with the per-input confirmation counts
	// at forHeight. Inputs that don't resolve are skipped; the caller is
	// expected to have already verified every input resolves somewhere
	// (view or in-template) before relying on this sum.
	GetValueIn(forHeight int64, tx *wire.MsgTx) (totalIn int64, confs []int64)

	// AddTxOuts writes tx's outputs into the view as of blockHeight so a
	// subsequent AccessCoins/HaveCoins call sees them as spendable.
	AddTxOuts(tx *wire.MsgTx, blockHeight int64)

	// SpendInputs marks every input of tx as spent in the view.
	SpendInputs(tx *wire.MsgTx)

	// Clone returns an independent copy a speculative build can mutate
	// without affecting the original.
	Clone() UtxoViewpoint
}

// ChainView is the read-only slice of chain-tip state the template builder
// needs: the tip's height, hash and timestamp, and the median time past.
type ChainView interface {
	// TipHeight returns the height of the current chain tip.
	TipHeight() int64

	// TipHash returns the hash of the current chain tip.
	TipHash() chainhash.Hash

	// MedianTimePast returns the median time of the most recent set of
	// blocks ending at the tip, used as the BIP-113 lock-time cutoff.
	MedianTimePast() time.Time

	// TipTime returns the tip block's own timestamp.
	TipTime() time.Time
}

// NotaryOracle resolves the active notary set and election windows. A
// concrete implementation lives in the notary package; this interface lets
// internal/mining depend only on the shape it needs.
type NotaryOracle interface {
	// ActiveNotaries returns the pubkeys allowed to sign a notarisation
	// at the given height and block time.
	ActiveNotaries(height int64, blockTime time.Time) [][]byte

	// ExtractNotarizedHeight parses a notarisation's OP_RETURN payload
	// and returns the height it checkpoints, or 0 if the payload isn't a
	// recognized notarisation format.
	ExtractNotarizedHeight(opReturnScript []byte) uint32
}

// NotaryVinSource supplies the small self-owned UTXO a KMD-style notary
// recycles every round to fund its notary-vin transaction, the coin the
// template builder spends down by the fixed notary-vin fee each block.
type NotaryVinSource interface {
	// NotaryVinCoin returns the outpoint, spendable value, and locking
	// script of this node's current notary-vin UTXO. ok is false if none
	// is tracked yet, for example before this node has mined its first
	// notary-vin transaction.
	NotaryVinCoin() (outpoint wire.OutPoint, value int64, pkScript []byte, ok bool)
}

// StakeSource supplies the inputs a proof-of-stake coinbase needs: the
// staker's eligible spendable coin and the last height this node won a
// block, used to enforce komodo_waituntilelegible's spacing rule.
type StakeSource interface {
	// EligibleStakeCoin returns the outpoint, value, and locking script of
	// a UTXO old enough and large enough to stake with at height, or
	// ok=false if this node currently holds none.
	EligibleStakeCoin(height int64) (outpoint wire.OutPoint, value int64, pkScript []byte, ok bool)

	// LastWonHeight returns the height of the last block this node won
	// staking, or 0 if it has never won one.
	LastWonHeight() int64
}

// Policy carries the runtime-configurable block-assembly knobs, populated
// from the node's config flags (see cmd/gwcd).
type Policy struct {
	// BlockMaxSize is the maximum block size, in bytes, clamped to
	// [1000, chaincfg.Params.MaxBlockSize(height)-1000].
	BlockMaxSize int

	// BlockPrioritySize is the portion of BlockMaxSize reserved for
	// priority-ordered (not necessarily fee-paying) transactions. Zero
	// means start directly in fee mode.
	BlockPrioritySize int

	// BlockMinSize is the floor below which the free-transaction rule is
	// suspended even in fee mode.
	BlockMinSize int

	// OpReturnMinRelayFee is the minimum fee rate, in atoms per byte, a
	// transaction whose OP_RETURN pushes exceed opReturnSpamThreshold
	// bytes must meet to be admitted. Zero disables the filter.
	OpReturnMinRelayFee float64

	// MinRelayFeeRate is the minimum fee rate, in atoms per byte, below
	// which a transaction is treated as free once the builder is in fee
	// mode and therefore subject to the free-transaction gate.
	MinRelayFeeRate float64

	// PrintPriority holds the -printpriority setting. NewBlockTemplate
	// does not read it and logs no per-transaction priority or fee.
	PrintPriority bool

	// MinerAddress is the payout destination for the coinbase.
	MinerAddress string

	// StakeMode enables proof-of-stake coinbase/stake-split composition.
	StakeMode bool

	// IsNotary marks this node as an active notary. It gates the flat
	// notary bonus in the coinbase and the notary-vin transaction; the
	// notary-pay split depends on a notarisation, not on this flag.
	IsNotary bool
}

// opReturnSpamThreshold is the number of OP_RETURN payload bytes above
// which OpReturnMinRelayFee applies.
const opReturnSpamThreshold = 256
