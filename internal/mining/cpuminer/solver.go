// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cpuminer

import (
	"github.com/galaxywarscoin/GalaxywarsOcean/cequihash"
	"github.com/galaxywarscoin/GalaxywarsOcean/equihash"
)

// defaultSolver wraps the pure-Go branch-and-bound Equihash implementation.
type defaultSolver struct{}

func (defaultSolver) Solve(n, k int, header []byte, cancel func() bool) ([]byte, error) {
	return equihash.Solve(n, k, header, cancel)
}

func (defaultSolver) Validate(n, k int, header, solution []byte) (bool, error) {
	return equihash.Validate(n, k, header, solution)
}

// trompSolver wraps the cgo "tromp" GPU-style solver, which additionally
// needs the header's nonce split out as its own argument rather than
// embedded in header.
type trompSolver struct {
	nonce int64
}

func (s trompSolver) Solve(n, k int, header []byte, cancel func() bool) ([]byte, error) {
	return cequihash.Solve(n, k, header, s.nonce, cancel)
}

func (s trompSolver) Validate(n, k int, header, solution []byte) (bool, error) {
	return cequihash.Validate(n, k, header, s.nonce, solution), nil
}

// NewSolver returns the solver back-end selected by cfg: "tromp" when
// UseTromp is set, otherwise the default branch-and-bound solver. nonce is
// only consumed by the tromp back-end, which threads it as a separate
// argument instead of through the header bytes.
func NewSolver(cfg Config, nonce int64) Solver {
	if cfg.UseTromp {
		return trompSolver{nonce: nonce}
	}
	return defaultSolver{}
}
