// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/galaxywarscoin/GalaxywarsOcean/chainhash"
)

// Maximum transaction version supported. Versions above this are rejected
// by Deserialize rather than silently misparsed.
const MaxTxVersion = 4

// overwinteredMask marks the Overwintered bit within the 32-bit "header"
// field the way Zcash-derived transactions pack it, matching the original
// CTransaction::nVersion/fOverwintered encoding.
const overwinteredMask = 1 << 31

// OutPoint defines a bitcoin data type that is used to track previous
// transaction outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new bitcoin transaction outpoint.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{Hash: *hash, Index: index}
}

// TxIn defines a bitcoin transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction input.
func (t *TxIn) SerializeSize() int {
	return chainhash.HashSize + 4 + VarIntSerializeSize(uint64(len(t.SignatureScript))) +
		len(t.SignatureScript) + 4
}

// TxOut defines a bitcoin transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction output.
func (t *TxOut) SerializeSize() int {
	return 8 + VarIntSerializeSize(uint64(len(t.PkScript))) + len(t.PkScript)
}

// NewTxOut returns a new bitcoin transaction output with the provided
// transaction value and public key script.
func NewTxOut(value int64, pkScript []byte) *TxOut {
	return &TxOut{Value: value, PkScript: pkScript}
}

// SpendDescription is a shielded spend descriptor. The module never
// validates the attached zero-knowledge proof itself (that is the chain
// validator's job). The template builder does not read the shielded
// descriptors, and MsgTx's SerializeSize and Serialize do not include them.
type SpendDescription struct {
	Cv           [32]byte
	Anchor       [32]byte
	Nullifier    [32]byte
	Rk           [32]byte
	Proof        [192]byte
	SpendAuthSig [64]byte
}

// OutputDescription is a shielded output descriptor.
type OutputDescription struct {
	Cv            [32]byte
	Cmu           [32]byte
	EphemeralKey  [32]byte
	EncCiphertext [580]byte
	OutCiphertext [80]byte
	Proof         [192]byte
}

// JoinSplit is a Sprout-style joinsplit descriptor, carried for
// completeness with chains that have not fully retired the Sprout shielded
// pool.
type JoinSplit struct {
	VpubOld       int64
	VpubNew       int64
	Anchor        [32]byte
	Nullifiers    [2][32]byte
	Commitments   [2][32]byte
	EphemeralKey  [32]byte
	RandomSeed    [32]byte
	Macs          [2][32]byte
	Proof         [296]byte
	Ciphertexts   [2][601]byte
}

// MsgTx implements the Message interface and represents a bitcoin/Zcash-
// lineage transaction. It is used to deliver transaction information in
// response to a getdata message as well as carry the spent/unspent
// relationships the template builder needs.
type MsgTx struct {
	Version      int32
	Overwintered bool
	VersionGroupID uint32
	TxIn         []*TxIn
	TxOut        []*TxOut
	LockTime     uint32
	ExpiryHeight uint32

	ShieldedSpends  []*SpendDescription
	ShieldedOutputs []*OutputDescription
	JoinSplits      []*JoinSplit
	JoinSplitPubKey [32]byte
	JoinSplitSig    [64]byte
	BindingSig      [64]byte

	cachedHash *chainhash.Hash
}

// NewMsgTx returns a new empty bitcoin transaction message at the latest
// transaction version supported.
func NewMsgTx() *MsgTx {
	return &MsgTx{Version: MaxTxVersion}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
	msg.cachedHash = nil
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
	msg.cachedHash = nil
}

// IsCoinBase determines whether the transaction is a coinbase transaction:
// exactly one input whose previous outpoint has an all-zero hash and a max
// index.
func (msg *MsgTx) IsCoinBase() bool {
	if len(msg.TxIn) != 1 {
		return false
	}
	prevOut := &msg.TxIn[0].PreviousOutPoint
	return prevOut.Index == ^uint32(0) && prevOut.Hash == (chainhash.Hash{})
}

// LegacySigOpCount returns the number of signature operations for all
// transaction input and output scripts that do not already count toward the
// pay-to-script-hash hash-limit rules. It is a rough, non-script-interpreter
// estimate sufficient for the block-size accounting the template builder
// performs; exact sigop semantics belong to the script interpreter, out of
// scope here.
func (msg *MsgTx) LegacySigOpCount() int {
	var n int
	for _, txOut := range msg.TxOut {
		n += countOpcodeSigOps(txOut.PkScript)
	}
	for _, txIn := range msg.TxIn {
		n += countOpcodeSigOps(txIn.SignatureScript)
	}
	return n
}

// countOpcodeSigOps gives a conservative (over-)estimate of sigops in a
// script by counting OP_CHECKSIG/OP_CHECKSIGVERIFY as 1 and
// OP_CHECKMULTISIG/OP_CHECKMULTISIGVERIFY as 20, the standard Bitcoin
// accounting convention.
func countOpcodeSigOps(script []byte) int {
	const (
		opCheckSig            = 0xac
		opCheckSigVerify      = 0xad
		opCheckMultiSig       = 0xae
		opCheckMultiSigVerify = 0xaf
	)
	var n int
	for _, b := range script {
		switch b {
		case opCheckSig, opCheckSigVerify:
			n++
		case opCheckMultiSig, opCheckMultiSigVerify:
			n += 20
		}
	}
	return n
}

// SerializeSize returns the number of bytes it would take to serialize the
// the transaction.
func (msg *MsgTx) SerializeSize() int {
	n := 4 // version + overwintered/group flags packed together
	if msg.Overwintered {
		n += 4 // version group id
	}
	n += VarIntSerializeSize(uint64(len(msg.TxIn)))
	for _, ti := range msg.TxIn {
		n += ti.SerializeSize()
	}
	n += VarIntSerializeSize(uint64(len(msg.TxOut)))
	for _, to := range msg.TxOut {
		n += to.SerializeSize()
	}
	n += 4 // locktime
	if msg.Overwintered {
		n += 4 // expiry height
	}
	return n
}

// TxHash generates the Hash for the transaction by double sha256'ing its
// serialized form. The hash is cached on the message since template
// assembly hashes the same transaction repeatedly while scoring and
// selecting it.
func (msg *MsgTx) TxHash() chainhash.Hash {
	if msg.cachedHash != nil {
		return *msg.cachedHash
	}
	var buf bytes.Buffer
	buf.Grow(msg.SerializeSize())
	_ = msg.Serialize(&buf)
	h := chainhash.HashH(buf.Bytes())
	msg.cachedHash = &h
	return h
}

// Serialize encodes the transaction to w.
func (msg *MsgTx) Serialize(w io.Writer) error {
	header := uint32(msg.Version)
	if msg.Overwintered {
		header |= overwinteredMask
	}
	if err := writeElement(w, header); err != nil {
		return err
	}
	if msg.Overwintered {
		if err := writeElement(w, msg.VersionGroupID); err != nil {
			return err
		}
	}

	if err := WriteVarInt(w, uint64(len(msg.TxIn))); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		if _, err := w.Write(ti.PreviousOutPoint.Hash[:]); err != nil {
			return err
		}
		if err := writeElement(w, ti.PreviousOutPoint.Index); err != nil {
			return err
		}
		if err := WriteVarBytes(w, ti.SignatureScript); err != nil {
			return err
		}
		if err := writeElement(w, ti.Sequence); err != nil {
			return err
		}
	}

	if err := WriteVarInt(w, uint64(len(msg.TxOut))); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		if err := writeElement(w, to.Value); err != nil {
			return err
		}
		if err := WriteVarBytes(w, to.PkScript); err != nil {
			return err
		}
	}

	if err := writeElement(w, msg.LockTime); err != nil {
		return err
	}
	if msg.Overwintered {
		if err := writeElement(w, msg.ExpiryHeight); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize decodes a transaction from r.
func (msg *MsgTx) Deserialize(r io.Reader) error {
	var header uint32
	if err := readElement(r, &header); err != nil {
		return err
	}
	msg.Overwintered = header&overwinteredMask != 0
	msg.Version = int32(header &^ overwinteredMask)
	if msg.Version > MaxTxVersion {
		return &MessageError{Func: "MsgTx.Deserialize", Message: "transaction version exceeds MaxTxVersion"}
	}
	if msg.Overwintered {
		if err := readElement(r, &msg.VersionGroupID); err != nil {
			return err
		}
	}

	txInCount, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	msg.TxIn = make([]*TxIn, txInCount)
	for i := range msg.TxIn {
		ti := new(TxIn)
		if _, err := io.ReadFull(r, ti.PreviousOutPoint.Hash[:]); err != nil {
			return err
		}
		if err := readElement(r, &ti.PreviousOutPoint.Index); err != nil {
			return err
		}
		script, err := ReadVarBytes(r, 1<<22, "TxIn.SignatureScript")
		if err != nil {
			return err
		}
		ti.SignatureScript = script
		if err := readElement(r, &ti.Sequence); err != nil {
			return err
		}
		msg.TxIn[i] = ti
	}

	txOutCount, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	msg.TxOut = make([]*TxOut, txOutCount)
	for i := range msg.TxOut {
		to := new(TxOut)
		if err := readElement(r, &to.Value); err != nil {
			return err
		}
		script, err := ReadVarBytes(r, 1<<22, "TxOut.PkScript")
		if err != nil {
			return err
		}
		to.PkScript = script
		msg.TxOut[i] = to
	}

	if err := readElement(r, &msg.LockTime); err != nil {
		return err
	}
	if msg.Overwintered {
		if err := readElement(r, &msg.ExpiryHeight); err != nil {
			return err
		}
	}
	msg.cachedHash = nil
	return nil
}
