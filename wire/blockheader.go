// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
	"time"

	"github.com/galaxywarscoin/GalaxywarsOcean/chainhash"
)

// EquihashSolutionLen is the length in bytes of a serialized Equihash
// solution for the chain's default (N=200,K=9) parameters. Networks running
// a different (N,K) carry a different solution length; BlockHeader stores
// the solution as a var-length byte string so both parameterizations
// round-trip without a wire-format change.
const EquihashSolutionLen = 1344

// BlockHeader defines information about a block and is used in the bitcoin
// block (MsgBlock) and headers (MsgHeaders) messages. It has been extended
// with the fields the Equihash-based proof of work needs: a reserved field
// for the Zcash-style extended nonce and the solution itself.
type BlockHeader struct {
	// Version of the block. This is not the same as the protocol version.
	Version int32

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Reserved is the Zcash-style "hashReserved" field. Unused on chains
	// without a shielded commitment tree, but kept so a sapling-style root
	// can be threaded through without another header version bump.
	Reserved chainhash.Hash

	// Time the block was created.
	Timestamp time.Time

	// Difficulty target for the block in compact form.
	Bits uint32

	// Nonce used to generate the block. Equihash networks use a 256-bit
	// nonce; the low 32 bits are incremented in the inner mining loop and
	// the upper bits carry the nonceshift/extra-nonce bytes.
	Nonce [32]byte

	// Solution is the serialized Equihash solution. Empty until a worker
	// thread successfully solves the header.
	Solution []byte
}

// blockHeaderLen is the number of bytes making up the fixed-size portion of
// a block header, excluding the variable-length solution.
const blockHeaderLen = 4 + chainhash.HashSize*3 + 4 + 4 + 32

// BlockHash computes the block identifier hash for the given block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, blockHeaderLen+VarIntSerializeSize(uint64(len(h.Solution)))+len(h.Solution)))
	_ = writeBlockHeader(buf, h)
	return chainhash.HashH(buf.Bytes())
}

// Serialize encodes a block header into the wire format used throughout
// this package's "block candidate" data model.
func (h *BlockHeader) Serialize(w io.Writer) error {
	return writeBlockHeader(w, h)
}

// Deserialize decodes a block header from r.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	return readBlockHeader(r, h)
}

func writeBlockHeader(w io.Writer, h *BlockHeader) error {
	sec := uint32(h.Timestamp.Unix())
	if err := writeElement(w, h.Version); err != nil {
		return err
	}
	if _, err := w.Write(h.PrevBlock[:]); err != nil {
		return err
	}
	if _, err := w.Write(h.MerkleRoot[:]); err != nil {
		return err
	}
	if _, err := w.Write(h.Reserved[:]); err != nil {
		return err
	}
	if err := writeElement(w, sec); err != nil {
		return err
	}
	if err := writeElement(w, h.Bits); err != nil {
		return err
	}
	if _, err := w.Write(h.Nonce[:]); err != nil {
		return err
	}
	return WriteVarBytes(w, h.Solution)
}

func readBlockHeader(r io.Reader, h *BlockHeader) error {
	if err := readElement(r, &h.Version); err != nil {
		return err
	}
	if _, err := io.ReadFull(r, h.PrevBlock[:]); err != nil {
		return err
	}
	if _, err := io.ReadFull(r, h.MerkleRoot[:]); err != nil {
		return err
	}
	if _, err := io.ReadFull(r, h.Reserved[:]); err != nil {
		return err
	}
	var sec uint32
	if err := readElement(r, &sec); err != nil {
		return err
	}
	h.Timestamp = time.Unix(int64(sec), 0)
	if err := readElement(r, &h.Bits); err != nil {
		return err
	}
	if _, err := io.ReadFull(r, h.Nonce[:]); err != nil {
		return err
	}
	solution, err := ReadVarBytes(r, EquihashSolutionLen*4, "BlockHeader.Solution")
	if err != nil {
		return err
	}
	h.Solution = solution
	return nil
}

// IncrementNonce adds 1 to the header's 256-bit little-endian nonce,
// wrapping on overflow. The inner mining loop calls this after every failed
// solve attempt; ASSETCHAINS_NONCESHIFT-style extra-nonce bytes live in the
// upper bytes of the array and are left untouched by the common case.
func (h *BlockHeader) IncrementNonce() {
	for i := range h.Nonce {
		h.Nonce[i]++
		if h.Nonce[i] != 0 {
			return
		}
	}
}
