// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/galaxywarscoin/GalaxywarsOcean/chaincfg"
)

func TestCalcBlockSubsidy(t *testing.T) {
	params := chaincfg.MainNetParams()

	tests := []struct {
		name   string
		height int64
		want   int64
	}{
		{"genesis pays nothing", 0, 0},
		{"first halving interval", 1000, params.BaseSubsidy},
		{"one halving in", params.SubsidyHalvingInterval, params.BaseSubsidy / 2},
		{"two halvings in", params.SubsidyHalvingInterval * 2, params.BaseSubsidy / 4},
		{"64 halvings exhausts the subsidy", params.SubsidyHalvingInterval * 64, 0},
	}

	for _, test := range tests {
		got := CalcBlockSubsidy(test.height, params)
		if got != test.want {
			t.Errorf("%s: got %d, want %d", test.name, got, test.want)
		}
	}
}

func TestCalcFounderReward(t *testing.T) {
	params := &chaincfg.Params{
		FounderReward: &chaincfg.FounderRewardParams{
			Percent:         10,
			Addresses:       []string{"addrA", "addrB"},
			AddressInterval: 100,
		},
	}

	amount, addr := CalcFounderReward(50, 1000, params)
	if amount != 100 || addr != "addrA" {
		t.Fatalf("got (%d, %s), want (100, addrA)", amount, addr)
	}

	amount, addr = CalcFounderReward(150, 1000, params)
	if amount != 100 || addr != "addrB" {
		t.Fatalf("got (%d, %s), want (100, addrB)", amount, addr)
	}
}

func TestCalcFounderRewardDisabled(t *testing.T) {
	params := &chaincfg.Params{}
	amount, addr := CalcFounderReward(50, 1000, params)
	if amount != 0 || addr != "" {
		t.Fatalf("got (%d, %q), want (0, \"\") with no founder reward configured", amount, addr)
	}
}

func TestCalcNotaryPay(t *testing.T) {
	params := &chaincfg.Params{NotaryPayPercent: 5}
	if got := CalcNotaryPay(1000, params); got != 50 {
		t.Fatalf("got %d, want 50", got)
	}

	params = &chaincfg.Params{}
	if got := CalcNotaryPay(1000, params); got != 0 {
		t.Fatalf("got %d, want 0 with notary-pay disabled", got)
	}
}
