// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"bytes"
	"time"

	"github.com/galaxywarscoin/GalaxywarsOcean/txscript"
	"github.com/galaxywarscoin/GalaxywarsOcean/txscript/stdscript"
	"github.com/galaxywarscoin/GalaxywarsOcean/wire"
)

// notarisationEvaluator accumulates the state needed to recognize a
// candidate notarisation transaction while the builder's scoring pass
// walks a single transaction's inputs.
type notarisationEvaluator struct {
	activeNotaries [][]byte
	signers        map[string]struct{}
}

// newNotarisationEvaluator starts evaluating a transaction against the
// notary set active at height/blockTime.
func newNotarisationEvaluator(oracle NotaryOracle, height int64, blockTime time.Time) *notarisationEvaluator {
	if oracle == nil {
		return nil
	}
	return &notarisationEvaluator{
		activeNotaries: oracle.ActiveNotaries(height, blockTime),
		signers:        make(map[string]struct{}),
	}
}

// reset clears the observed-signers set so the evaluator can be reused
// against the next transaction without losing the active-notary set it was
// constructed with.
func (n *notarisationEvaluator) reset() {
	if n == nil {
		return
	}
	n.signers = make(map[string]struct{})
}

// observeInput checks whether prevOutScript is the canonical
// "push33 <pubkey> OP_CHECKSIG" template for one of the active notaries and,
// if so, records its signer. It reports duplicate=true if this input is a
// second signature from a notary already seen on this transaction: a
// duplicate-signer notarisation is invalid and must be degraded to an
// ordinary transaction.
func (n *notarisationEvaluator) observeInput(prevOutScript []byte) (isNotarySigned, duplicate bool) {
	if n == nil || len(prevOutScript) != 35 || prevOutScript[34] != txscript.OP_CHECKSIG {
		return false, false
	}
	if !stdscript.IsNotaryPubKeyScriptV0(prevOutScript, n.activeNotaries) {
		return false, false
	}
	key := string(prevOutScript[1:34])
	if _, seen := n.signers[key]; seen {
		return true, true
	}
	n.signers[key] = struct{}{}
	return true, false
}

// signerCount returns the number of distinct notary signers observed so
// far.
func (n *notarisationEvaluator) signerCount() int {
	if n == nil {
		return 0
	}
	return len(n.signers)
}

// requiredNotarySigners returns ceil(activeNotaryCount/5), the quorum a
// transaction's distinct notary-signed input count must meet or exceed to
// qualify as a candidate notarisation.
func requiredNotarySigners(activeNotaryCount int) int {
	return (activeNotaryCount + 4) / 5
}

// isCandidateNotarisation reports whether tx qualifies as a notarisation:
// enough distinct notary signers, no duplicate signer, a two-output shape
// with a trailing zero-value OP_RETURN, and an extractable notarized
// height.
func isCandidateNotarisation(tx *wire.MsgTx, n *notarisationEvaluator, oracle NotaryOracle, duplicateSigner bool) bool {
	if n == nil || duplicateSigner {
		return false
	}
	if n.signerCount() < requiredNotarySigners(len(n.activeNotaries)) {
		return false
	}
	if len(tx.TxOut) != 2 {
		return false
	}
	last := tx.TxOut[1]
	if last.Value != 0 || len(last.PkScript) == 0 || last.PkScript[0] != txscript.OP_RETURN {
		return false
	}
	if oracle == nil || oracle.ExtractNotarizedHeight(last.PkScript) == 0 {
		return false
	}
	return true
}

// notarySignerPubKeys returns the distinct notary pubkeys that signed tx,
// in no particular order, for use composing a notary-pay split.
func notarySignerPubKeys(tx *wire.MsgTx, view UtxoViewpoint, activeNotaries [][]byte) [][]byte {
	seen := make(map[string]struct{})
	var signers [][]byte
	for _, txIn := range tx.TxIn {
		coins := view.AccessCoins(&txIn.PreviousOutPoint.Hash)
		if int(txIn.PreviousOutPoint.Index) >= len(coins) {
			continue
		}
		entry := coins[txIn.PreviousOutPoint.Index]
		if entry == nil {
			continue
		}
		pubKey := extractNotaryPubKey(entry.PkScript, activeNotaries)
		if pubKey == nil {
			continue
		}
		key := string(pubKey)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		signers = append(signers, pubKey)
	}
	return signers
}

func extractNotaryPubKey(script []byte, activeNotaries [][]byte) []byte {
	if len(script) != 35 || script[34] != txscript.OP_CHECKSIG {
		return nil
	}
	for _, notary := range activeNotaries {
		if bytes.Equal(script[1:34], notary) {
			return notary
		}
	}
	return nil
}
