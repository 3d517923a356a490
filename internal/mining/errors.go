// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import "fmt"

// ErrorCode identifies a kind of error encountered while assembling a block
// template.
type ErrorCode int

const (
	// ErrNoTemplate indicates the builder could not produce any template
	// at all, a transient condition the driver retries.
	ErrNoTemplate ErrorCode = iota

	// ErrDuplicateNotarySigner indicates a candidate notarisation had
	// two notary-signed inputs mapping to the same notary pubkey.
	ErrDuplicateNotarySigner

	// ErrZeroNotaryPaySplit indicates notary-pay was active but the
	// per-signer split computed to zero.
	ErrZeroNotaryPaySplit

	// ErrTimelockSourceNotStandard indicates a timelock wrap was
	// requested on a miner script that is already P2SH or otherwise not
	// a plain output the wrapper can safely nest.
	ErrTimelockSourceNotStandard

	// ErrStakeTxUnavailable indicates stake mode is active but no stake
	// transaction could be constructed for this height.
	ErrStakeTxUnavailable
)

var errorCodeStrings = map[ErrorCode]string{
	ErrNoTemplate:                "ErrNoTemplate",
	ErrDuplicateNotarySigner:     "ErrDuplicateNotarySigner",
	ErrZeroNotaryPaySplit:        "ErrZeroNotaryPaySplit",
	ErrTimelockSourceNotStandard: "ErrTimelockSourceNotStandard",
	ErrStakeTxUnavailable:        "ErrStakeTxUnavailable",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a template-assembly rule violation, mirroring the
// ErrorCode/description convention blockchain.RuleError uses for consensus
// errors.
type RuleError struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface.
func (e RuleError) Error() string {
	return e.Description
}

func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}
