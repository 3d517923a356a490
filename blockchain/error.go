// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "fmt"

// ErrorCode identifies a kind of error that may occur while assembling or
// validating a block candidate.
type ErrorCode int

// These constants are used to identify a specific RuleError.
const (
	// ErrBlockOneTx indicates that block 1 failed to correctly pay out the
	// initial token ledger.
	ErrBlockOneTx ErrorCode = iota

	// ErrBlockOneInputs indicates that block 1's coinbase input is not
	// finalized.
	ErrBlockOneInputs

	// ErrBlockOneOutputs indicates that block 1's coinbase outputs do not
	// match the configured initial ledger.
	ErrBlockOneOutputs

	// ErrBadCoinbaseValue indicates the coinbase transaction pays out more
	// than the combination of block subsidy and collected fees allows.
	ErrBadCoinbaseValue

	// ErrMissingCoinbase indicates a block template has no coinbase
	// transaction at all, or one not in the first position.
	ErrMissingCoinbase

	// ErrUnexpectedCommission indicates a commission/founders-reward output
	// is present in the coinbase when the active network parameters don't
	// call for one, or vice versa.
	ErrUnexpectedCommission

	// ErrInvalidTimelock indicates a coinbase timelock wrapper does not
	// satisfy the network's configured minimum lock height.
	ErrInvalidTimelock
)

// errorCodeStrings maps each ErrorCode to a human readable description.
var errorCodeStrings = map[ErrorCode]string{
	ErrBlockOneTx:            "ErrBlockOneTx",
	ErrBlockOneInputs:        "ErrBlockOneInputs",
	ErrBlockOneOutputs:       "ErrBlockOneOutputs",
	ErrBadCoinbaseValue:      "ErrBadCoinbaseValue",
	ErrMissingCoinbase:       "ErrMissingCoinbase",
	ErrUnexpectedCommission:  "ErrUnexpectedCommission",
	ErrInvalidTimelock:       "ErrInvalidTimelock",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a rule violation encountered while assembling or
// validating a block candidate. It carries both a machine-checkable
// ErrorCode and a human-readable description.
type RuleError struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// ruleError creates a RuleError given a set of arguments.
func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}
