// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dcrutil

import (
	"errors"
	"math"
	"strconv"
)

// AmountUnit describes a unit of a chain's native currency.
type AmountUnit int

// These constants define the supported AmountUnit values.
const (
	AmountMegaCoin  AmountUnit = 6
	AmountKiloCoin  AmountUnit = 3
	AmountCoin      AmountUnit = 0
	AmountMilliCoin AmountUnit = -3
	AmountMicroCoin AmountUnit = -6
	AmountAtom      AmountUnit = -8
)

// String returns the unit as a string.
func (u AmountUnit) String() string {
	switch u {
	case AmountMegaCoin:
		return "MCoin"
	case AmountKiloCoin:
		return "kCoin"
	case AmountCoin:
		return "Coin"
	case AmountMilliCoin:
		return "mCoin"
	case AmountMicroCoin:
		return "μCoin"
	case AmountAtom:
		return "Atom"
	default:
		return "1e" + strconv.FormatInt(int64(u), 10) + " Coin"
	}
}

// AtomsPerCoin is the number of atomic units in one whole coin.
const AtomsPerCoin = 1e8

// MaxAmount is the maximum transaction amount allowed, in atoms.
const MaxAmount = 21e6 * AtomsPerCoin

// Amount represents a quantity of the chain's native currency denominated
// in atoms, its smallest indivisible unit (1 Coin = 1e8 Atoms).
type Amount int64

// round converts a floating point number, which may or may not be
// representing an atom, to the nearest Amount.
func round(f float64) Amount {
	if f < 0 {
		return Amount(f - 0.5)
	}
	return Amount(f + 0.5)
}

// NewAmount creates an Amount from a floating point value representing
// whole coins. NewAmount errors if f is NaN or +-Infinity, but does not
// check that the amount is within the total amount of coins producible by
// the chain.
func NewAmount(f float64) (Amount, error) {
	switch {
	case math.IsNaN(f), math.IsInf(f, 1), math.IsInf(f, -1):
		return 0, errors.New("invalid coin amount")
	}
	return round(f * AtomsPerCoin), nil
}

// ToUnit converts a monetary amount counted in atoms to a floating point
// value representing an amount of the given unit.
func (a Amount) ToUnit(u AmountUnit) float64 {
	return float64(a) / math.Pow10(int(u+8))
}

// ToCoin is a convenience function for ToUnit(AmountCoin).
func (a Amount) ToCoin() float64 {
	return a.ToUnit(AmountCoin)
}

// String returns the Amount as a human readable string in units of the
// greatest magnitude for which the amount is non-zero.
func (a Amount) String() string {
	u := AmountCoin
	switch {
	case a >= 1e7*AtomsPerCoin:
		u = AmountMegaCoin
	case a >= 1e4*AtomsPerCoin:
		u = AmountKiloCoin
	case a <= 1e3:
		u = AmountAtom
	}
	return strconv.FormatFloat(a.ToUnit(u), 'f', -int(u+8), 64) + " " + u.String()
}
