// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dcrutil

import (
	"github.com/galaxywarscoin/GalaxywarsOcean/chainhash"
	"github.com/galaxywarscoin/GalaxywarsOcean/wire"
)

// txInFixedWeight is the fixed portion of a transaction input's on-wire
// footprint ignored by the priority size discount (outpoint hash + index +
// sequence + the signature-script length prefix), matching the reference
// implementation's ComputePriority offset.
const txInFixedWeight = 41

// maxTxInScriptSigWeight caps how many signature-script bytes count toward
// the priority size discount per input; a large custom scriptSig shouldn't
// let an input hide an unbounded amount of chain space from the discount.
const maxTxInScriptSigWeight = 110

// Tx defines a transaction that provides easier and more efficient
// manipulation of raw wire protocol transactions, caching the computed hash
// the same way wire.MsgTx does internally, plus an index recording this
// transaction's position within a block (or -1 for a mempool-only
// transaction never yet included in one).
type Tx struct {
	msgTx   *wire.MsgTx
	txHash  *chainhash.Hash
	txIndex int
}

// MsgTx returns the underlying wire.MsgTx for the transaction.
func (t *Tx) MsgTx() *wire.MsgTx {
	return t.msgTx
}

// Hash returns the hash of the transaction, computing and caching it if
// not already done.
func (t *Tx) Hash() *chainhash.Hash {
	if t.txHash != nil {
		return t.txHash
	}
	h := t.msgTx.TxHash()
	t.txHash = &h
	return t.txHash
}

// Index returns the saved index of the transaction within a block. This
// value will be TxIndexUnknown if it hasn't already explicitly been set.
func (t *Tx) Index() int {
	return t.txIndex
}

// SetIndex sets the index of the transaction within a block.
func (t *Tx) SetIndex(index int) {
	t.txIndex = index
}

// TxIndexUnknown is the value returned for a transaction index that is
// unknown, such as when a new transaction has not been inserted into a
// block yet.
const TxIndexUnknown = -1

// NewTx returns a new instance of a transaction given an underlying
// wire.MsgTx. The new instance has no index set.
func NewTx(msgTx *wire.MsgTx) *Tx {
	return &Tx{msgTx: msgTx, txIndex: TxIndexUnknown}
}

// NewTxDeep is the same as NewTx but makes a deep copy of the passed
// wire.MsgTx first so later mutation (speculative timelock rewriting by
// the coinbase composer, for example) doesn't alias a shared mempool entry.
func NewTxDeep(msgTx *wire.MsgTx) *Tx {
	clone := *msgTx
	clone.TxIn = make([]*wire.TxIn, len(msgTx.TxIn))
	for i, txIn := range msgTx.TxIn {
		in := *txIn
		in.SignatureScript = append([]byte(nil), txIn.SignatureScript...)
		clone.TxIn[i] = &in
	}
	clone.TxOut = make([]*wire.TxOut, len(msgTx.TxOut))
	for i, txOut := range msgTx.TxOut {
		out := *txOut
		out.PkScript = append([]byte(nil), txOut.PkScript...)
		clone.TxOut[i] = &out
	}
	return NewTx(&clone)
}

// ComputePriority returns the "coin age" priority of a transaction given
// the sum of its input values multiplied by how many confirmations each
// input has, all divided by the transaction's modified size. This matches
// the classic Bitcoin/Zcash priority formula used to select free
// transactions when the template builder is not in fee-rate mode.
//
//	priority = sum(inputValue * inputAge) / modifiedSize
//
// inputAges must be parallel to msgTx.TxIn: the number of confirmations
// the coin spent by each input has at the height the template is built
// for. Inputs spending unconfirmed (mempool) coins contribute zero age.
func ComputePriority(msgTx *wire.MsgTx, inputValues []int64, inputAges []int64) float64 {
	var valueAgeSum float64
	for i := range msgTx.TxIn {
		valueAgeSum += float64(inputValues[i]) * float64(inputAges[i])
	}
	size := float64(ModifiedSize(msgTx))
	if size == 0 {
		return 0
	}
	return valueAgeSum / size
}

// ModifiedSize returns the transaction's serialized size after applying the
// classic priority-size discount: each input's fixed 41-byte bookkeeping
// cost plus up to 110 bytes of its signature script is subtracted, on the
// premise that scriptSig size is a poor proxy for how much chain space an
// input actually costs to prioritize.
func ModifiedSize(msgTx *wire.MsgTx) int {
	size := msgTx.SerializeSize()
	for _, txIn := range msgTx.TxIn {
		offset := txInFixedWeight + len(txIn.SignatureScript)
		if offset > txInFixedWeight+maxTxInScriptSigWeight {
			offset = txInFixedWeight + maxTxInScriptSigWeight
		}
		if size > offset {
			size -= offset
		}
	}
	return size
}
