// Copyright (c) 2018 The ExchangeCoin team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cequihash

import "unsafe"

// cancelCallback adapts a Go cancel predicate and a single-solution sink to
// the EquihashCallback interface the cgo solver invokes once per candidate
// solution it finds. Returning non-zero from Validate tells the C solver to
// stop searching, matching the "tromp" solver's early-exit contract.
type cancelCallback struct {
	n, k     int
	cancel   func() bool
	solution []byte
}

// Validate is part of the EquihashCallback interface.
func (c *cancelCallback) Validate(solptr unsafe.Pointer) int {
	if c.cancel != nil && c.cancel() {
		return 1
	}
	c.solution = ExtractSolution(c.n, c.k, solptr)
	return 1
}

// Solve runs the cgo "tromp" Equihash solver for the given parameters over
// header at the given starting nonce, returning the first solution found in
// its canonical packed byte encoding. It mirrors equihash.Solve's signature
// so internal/mining/cpuminer can treat the two backends interchangeably.
func Solve(n, k int, header []byte, nonce int64, cancel func() bool) ([]byte, error) {
	cb := &cancelCallback{n: n, k: k, cancel: cancel}
	var ifaceCallback EquihashCallback = cb
	if err := SolveEquihash(n, k, header, nonce, ifaceCallback); err != nil {
		return nil, err
	}
	return cb.solution, nil
}

// Validate reports whether solution is a valid Equihash solution for header
// at the given nonce under parameters n, k.
func Validate(n, k int, header []byte, nonce int64, solution []byte) bool {
	return ValidateEquihash(n, k, header, nonce, solution)
}
