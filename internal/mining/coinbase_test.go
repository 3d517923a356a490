// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"testing"

	"github.com/galaxywarscoin/GalaxywarsOcean/chaincfg"
	"github.com/galaxywarscoin/GalaxywarsOcean/wire"
)

func testParams() *chaincfg.Params {
	p := *chaincfg.RegNetParams()
	p.TimelockActivationHeight = 100
	p.TimelockValueThreshold = 1000
	p.StakeTxValue = 500
	p.StakeEligibilityWindow = 10
	p.DecemberHardforkHeight = 50
	return &p
}

func TestShouldTimelockCoinbase(t *testing.T) {
	params := testParams()

	cases := []struct {
		name   string
		height int64
		value  int64
		want   bool
	}{
		{"below activation height, above value", 99, 5000, false},
		{"at activation height, below value threshold", 100, 999, false},
		{"at activation height, at value threshold", 100, 1000, true},
		{"well past activation, high value", 500, 50000, true},
		{"feature disabled entirely", 0, 0, false},
	}

	for _, c := range cases {
		p := *params
		if c.name == "feature disabled entirely" {
			p.TimelockActivationHeight = 0
			c.height, c.value = 1000, 999999
		}
		if got := shouldTimelockCoinbase(&p, c.height, c.value); got != c.want {
			t.Errorf("%s: shouldTimelockCoinbase(height=%d, value=%d) = %v, want %v",
				c.name, c.height, c.value, got, c.want)
		}
	}
}

type fakeStakeSource struct {
	outpoint wire.OutPoint
	value    int64
	pkScript []byte
	ok       bool
	lastWon  int64
}

func (f *fakeStakeSource) EligibleStakeCoin(height int64) (wire.OutPoint, int64, []byte, bool) {
	return f.outpoint, f.value, f.pkScript, f.ok
}

func (f *fakeStakeSource) LastWonHeight() int64 {
	return f.lastWon
}

func TestComposeStakeTxDisabled(t *testing.T) {
	params := testParams()
	tx, err := ComposeStakeTx(params, &StakeParams{Height: 200, Policy: Policy{StakeMode: false}})
	if err != nil || tx != nil {
		t.Fatalf("stake mode off must yield (nil, nil), got (%v, %v)", tx, err)
	}
}

func TestComposeStakeTxNoSource(t *testing.T) {
	params := testParams()
	_, err := ComposeStakeTx(params, &StakeParams{Height: 200, Policy: Policy{StakeMode: true}})
	re, ok := err.(RuleError)
	if !ok || re.ErrorCode != ErrStakeTxUnavailable {
		t.Fatalf("expected ErrStakeTxUnavailable, got %v", err)
	}
}

func TestComposeStakeTxIneligible(t *testing.T) {
	params := testParams()
	src := &fakeStakeSource{lastWon: 195, ok: true, value: 1000}
	_, err := ComposeStakeTx(params, &StakeParams{Height: 200, Stake: src, Policy: Policy{StakeMode: true}})
	re, ok := err.(RuleError)
	if !ok || re.ErrorCode != ErrStakeTxUnavailable {
		t.Fatalf("a staker inside its eligibility window must be refused, got %v", err)
	}
}

func TestComposeStakeTxInsufficientValue(t *testing.T) {
	params := testParams()
	src := &fakeStakeSource{ok: true, value: 100, lastWon: 0}
	_, err := ComposeStakeTx(params, &StakeParams{Height: 200, Stake: src, Policy: Policy{StakeMode: true}})
	re, ok := err.(RuleError)
	if !ok || re.ErrorCode != ErrStakeTxUnavailable {
		t.Fatalf("a coin below StakeTxValue must be refused, got %v", err)
	}
}

func TestComposeStakeTxBuildsOutputs(t *testing.T) {
	params := testParams()
	script := []byte{0x76, 0xa9}
	src := &fakeStakeSource{
		outpoint: wire.OutPoint{Index: 3},
		value:    800,
		pkScript: script,
		ok:       true,
		lastWon:  0,
	}
	tx, err := ComposeStakeTx(params, &StakeParams{Height: 200, Stake: src, Policy: Policy{StakeMode: true}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tx.TxIn) != 1 || tx.TxIn[0].PreviousOutPoint != src.outpoint {
		t.Fatalf("stake tx must spend the eligible coin's outpoint")
	}
	if len(tx.TxOut) != 2 {
		t.Fatalf("stake tx with leftover value must carry a change output, got %d outputs", len(tx.TxOut))
	}
	if tx.TxOut[0].Value != params.StakeTxValue {
		t.Fatalf("stake output value = %d, want %d", tx.TxOut[0].Value, params.StakeTxValue)
	}
	if tx.TxOut[1].Value != src.value-params.StakeTxValue {
		t.Fatalf("change output value = %d, want %d", tx.TxOut[1].Value, src.value-params.StakeTxValue)
	}
}

func TestComposeStakeTxExactValueNoChange(t *testing.T) {
	params := testParams()
	src := &fakeStakeSource{ok: true, value: params.StakeTxValue, lastWon: 0}
	tx, err := ComposeStakeTx(params, &StakeParams{Height: 200, Stake: src, Policy: Policy{StakeMode: true}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tx.TxOut) != 1 {
		t.Fatalf("an exact-value stake coin must not produce a zero-value change output, got %d outputs", len(tx.TxOut))
	}
}

func TestStakeEligible(t *testing.T) {
	params := testParams()
	if !stakeEligible(params, 100, 0) {
		t.Fatal("a staker that has never won must always be eligible")
	}
	if stakeEligible(params, 105, 100) {
		t.Fatal("a staker inside its eligibility window must not be eligible")
	}
	if !stakeEligible(params, 110, 100) {
		t.Fatal("a staker exactly at its eligibility window must be eligible")
	}
}
