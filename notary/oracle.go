// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package notary implements the active-notary-set oracle and the
// eligible-notary election windows (easy-mine, HF22 "second block allowed")
// that the mining driver consults when a network runs notary-signed
// checkpointing. It has no dependency on internal/mining beyond satisfying
// that package's NotaryOracle interface, so the template builder, the
// mining driver, and the RPC layer can all share one instance.
package notary

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/galaxywarscoin/GalaxywarsOcean/chaincfg"
)

// Oracle resolves a network's active notary set and parses notarisation
// OP_RETURN payloads. The zero value is not usable; construct with New.
type Oracle struct {
	params *chaincfg.Params
}

// New returns an Oracle for the given network parameters.
func New(params *chaincfg.Params) *Oracle {
	return &Oracle{params: params}
}

// ActiveNotaries returns the pubkeys allowed to sign a notarisation at the
// given height and block time. This network runs a single, static notary
// set for its lifetime rather than era-based pubkey rotation, so height and
// blockTime are accepted (to satisfy the NotaryOracle contract and allow a
// future rotation schedule) but do not currently affect the result.
func (o *Oracle) ActiveNotaries(height int64, blockTime time.Time) [][]byte {
	return o.params.NotaryPubKeys
}

// notarizedHeightMagic tags a notarisation OP_RETURN payload so
// ExtractNotarizedHeight can distinguish it from an unrelated OP_RETURN
// output that happens to carry 4+ bytes.
const notarizedHeightMagic = 0xf0

// ExtractNotarizedHeight parses a notarisation's OP_RETURN payload,
// expecting the layout [magic byte][4-byte little-endian height][32-byte
// notarized block hash], and returns the height or 0 if the payload isn't
// recognized.
func (o *Oracle) ExtractNotarizedHeight(opReturnScript []byte) uint32 {
	data := opReturnPushData(opReturnScript)
	if len(data) < 5 || data[0] != notarizedHeightMagic {
		return 0
	}
	return binary.LittleEndian.Uint32(data[1:5])
}

// BuildNotarisationOpret returns the OP_RETURN payload (not including the
// OP_RETURN opcode or its length push) committing to notarizedHeight and
// notarizedHash, the mirror image of ExtractNotarizedHeight.
func BuildNotarisationOpret(notarizedHeight uint32, notarizedHash [32]byte) []byte {
	buf := make([]byte, 0, 1+4+32)
	buf = append(buf, notarizedHeightMagic)
	var heightBytes [4]byte
	binary.LittleEndian.PutUint32(heightBytes[:], notarizedHeight)
	buf = append(buf, heightBytes[:]...)
	buf = append(buf, notarizedHash[:]...)
	return buf
}

// opReturnPushData extracts the single data push following an OP_RETURN
// opcode, supporting direct-length pushes (opcode <= 75) and OP_PUSHDATA1.
func opReturnPushData(script []byte) []byte {
	if len(script) < 2 || script[0] != 0x6a {
		return nil
	}
	lengthByte := script[1]
	switch {
	case lengthByte <= 75:
		if len(script) < 2+int(lengthByte) {
			return nil
		}
		return script[2 : 2+int(lengthByte)]
	case lengthByte == 0x4c: // OP_PUSHDATA1
		if len(script) < 3 {
			return nil
		}
		n := int(script[2])
		if len(script) < 3+n {
			return nil
		}
		return script[3 : 3+n]
	default:
		return nil
	}
}

// IndexOf returns the seat index of pubKey within the network's notary set,
// or -1 if it is not a registered notary.
func (o *Oracle) IndexOf(pubKey []byte) int {
	for i, p := range o.params.NotaryPubKeys {
		if bytes.Equal(p, pubKey) {
			return i
		}
	}
	return -1
}
