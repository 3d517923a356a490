// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dcrutil

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// calcHash calculates the hash of hasher over buf.
func calcHash(buf []byte, hasher interface {
	Write(p []byte) (int, error)
	Sum(b []byte) []byte
}) []byte {
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// Hash160 calculates the hash ripemd160(sha256(b)), the standard "pubkey
// hash" construction used by P2PKH and P2SH script templates.
func Hash160(buf []byte) []byte {
	sha := sha256.Sum256(buf)
	return calcHash(sha[:], ripemd160.New())
}
