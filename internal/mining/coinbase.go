// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"time"

	"github.com/galaxywarscoin/GalaxywarsOcean/blockchain"
	"github.com/galaxywarscoin/GalaxywarsOcean/chaincfg"
	"github.com/galaxywarscoin/GalaxywarsOcean/dcrutil"
	"github.com/galaxywarscoin/GalaxywarsOcean/txscript"
	"github.com/galaxywarscoin/GalaxywarsOcean/txscript/stdaddr"
	"github.com/galaxywarscoin/GalaxywarsOcean/txscript/stdscript"
	"github.com/galaxywarscoin/GalaxywarsOcean/wire"
)

// notaryBonus is the flat sat bonus KMD-style chains add to a notary's
// coinbase/burn output, matching komodo_notaryvin's fixed reward.
const notaryBonus = 5000

// opretTypeTimelock tags the second output of a timelock-wrapped coinbase
// with the redeem script it wraps, so a watcher can recover the unlock
// height and original destination without re-deriving the P2SH address.
const opretTypeTimelock = 0xfe

// coinbaseInput is the null-prevout coinbase input every variant shares,
// parameterized only by its scriptSig (height + extra nonce + flags).
func coinbaseInput(scriptSig []byte) *wire.TxIn {
	return &wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Index: ^uint32(0)},
		SignatureScript:  scriptSig,
		Sequence:         wire.MaxTxInSequenceNum,
	}
}

// coinbaseScriptSig returns the standard "(height, 1) + flags" coinbase
// scriptSig, the minimal form required before IncrementExtraNonce appends
// the extra-nonce bytes.
func coinbaseScriptSig(height int64, coinbaseFlags []byte) []byte {
	heightPush := txscript.BuildCoinbaseHeightPush(height)
	sig := make([]byte, 0, len(heightPush)+1+len(coinbaseFlags))
	sig = append(sig, heightPush...)
	sig = append(sig, 0x51) // CScriptNum(1): distinguishes successive coinbases at the same height
	sig = append(sig, coinbaseFlags...)
	return sig
}

// CoinbaseParams carries every input the coinbase composer needs beyond
// the chain parameters themselves.
type CoinbaseParams struct {
	Height        int64
	Fees          int64
	MinerScript   []byte
	CoinbaseFlags []byte
	LockTime      uint32
	Notarisation  *wire.MsgTx // non-nil if this template carries one
	NotaryOracle  NotaryOracle
	UtxoView      UtxoViewpoint
	Policy        Policy
}

// ComposeCoinbase builds the coinbase transaction for a template, applying
// every variant in a fixed order: base form, KMD fee-burn, notary bonus,
// commission/founders, timelock wrap, notary-pay split. Stake composition
// is handled separately by ComposeStakeTx since it produces a second,
// non-coinbase transaction.
func ComposeCoinbase(params *chaincfg.Params, cp *CoinbaseParams) (*wire.MsgTx, error) {
	subsidy := blockchain.CalcBlockSubsidy(cp.Height, params)
	paid := subsidy + cp.Fees

	tx := wire.NewMsgTx()
	tx.Overwintered = true
	tx.LockTime = cp.LockTime
	tx.AddTxIn(coinbaseInput(coinbaseScriptSig(cp.Height, cp.CoinbaseFlags)))
	tx.AddTxOut(wire.NewTxOut(paid, cp.MinerScript))

	bonus := int64(0)
	if cp.Policy.IsNotary {
		bonus = notaryBonus
	}

	switch {
	case params.KIP0003ActivationHeight != 0 && cp.Height >= params.KIP0003ActivationHeight:
		// KMD fee-burn: vout[0] carries only the subsidy; fees (plus any
		// notary bonus) are burned in a second OP_RETURN output instead
		// of being paid out, matching the "burn fees" accounting used
		// once the fee-burn activation height is reached.
		tx.TxOut[0].Value = subsidy
		tx.AddTxOut(wire.NewTxOut(cp.Fees+bonus, txscript.NullDataScript(nil)))

	case params.FounderReward != nil:
		tx.TxOut[0].Value += bonus
		amount, addr := blockchain.CalcFounderReward(cp.Height, subsidy, params)
		if amount > 0 && addr != "" {
			script, err := founderRewardScript(addr, params)
			if err == nil {
				tx.AddTxOut(wire.NewTxOut(amount, script))
			}
		}

	default:
		tx.TxOut[0].Value += bonus
	}

	if shouldTimelockCoinbase(params, cp.Height, tx.TxOut[0].Value) {
		if err := wrapTimelockedOutput(tx, params, cp.Height); err != nil {
			return nil, err
		}
	}

	if cp.Notarisation != nil && params.NotaryPayPercent != 0 {
		if err := applyNotaryPaySplit(tx, cp.Notarisation, params, cp); err != nil {
			return nil, err
		}
	}

	return tx, nil
}

// shouldTimelockCoinbase reports whether the coinbase's primary output
// should be wrapped in a CHECKLOCKTIMEVERIFY timelock: the feature must be
// active at height, and the output's value must meet or exceed
// params.TimelockValueThreshold (ASSETCHAINS_TIMELOCKGTE), the actual gating
// condition. A zero TimelockValueThreshold means every value qualifies once
// the activation height is reached.
func shouldTimelockCoinbase(params *chaincfg.Params, height, value int64) bool {
	if params.TimelockActivationHeight == 0 || height < params.TimelockActivationHeight {
		return false
	}
	return value >= params.TimelockValueThreshold
}

// founderRewardScript resolves a configured founders-reward payout address
// string into its paying script. Only base58check P2PKH/P2SH addresses that
// stdaddr.DecodeAddress accepts are supported; a raw 33-byte pubkey hex
// string (the ASSETCHAINS_OVERRIDE_PUBKEY33 variant) is not recognized and
// yields a decode error.
func founderRewardScript(addr string, params *chaincfg.Params) ([]byte, error) {
	decoded, err := stdaddr.DecodeAddress(addr, params)
	if err != nil {
		return nil, err
	}
	_, script := decoded.PaymentScript()
	return script, nil
}

// wrapTimelockedOutput rewrites the coinbase's primary output in place,
// replacing it with a P2SH-wrapped CheckLockTimeVerify script whose lock
// height is the coinbase's own block height (no separate unlock-height
// setting is applied), and appends a tagged OP_RETURN carrying
// the redeem script so a wallet can recover the original destination
// without re-deriving the P2SH address. It aborts (returns an error) if the
// miner's original script is already a P2SH script, matching the reference
// implementation's refusal to nest P2SH-in-P2SH.
func wrapTimelockedOutput(tx *wire.MsgTx, params *chaincfg.Params, height int64) error {
	out := tx.TxOut[0]
	if stdscript.IsScriptHashScript(0, out.PkScript) {
		return ruleError(ErrTimelockSourceNotStandard,
			"coinbase output is already pay-to-script-hash; refusing to nest a timelock P2SH wrapper")
	}

	innerHash := dcrutil.Hash160(out.PkScript)
	redeemScript := txscript.CLTVP2SHRedeemScript(height, innerHash)
	redeemHash := dcrutil.Hash160(redeemScript)

	out.PkScript = txscript.PayToScriptHashScript(redeemHash)
	tx.AddTxOut(wire.NewTxOut(0, txscript.NullDataScript(append([]byte{opretTypeTimelock}, redeemScript...))))
	return nil
}

// StakeParams carries the inputs ComposeStakeTx needs to build a
// proof-of-stake block's paired stake transaction.
type StakeParams struct {
	Height int64
	Stake  StakeSource
	Policy Policy
}

// ComposeStakeTx builds the stake transaction a proof-of-stake block pairs
// with its coinbase: a self-payment of a stake-eligible coin, trimmed to
// params.StakeTxValue. It returns (nil, nil) when stake mode isn't active,
// and ErrStakeTxUnavailable when stake mode is active but this node has no
// usable stake source, isn't yet eligible (komodo_waituntilelegible), or
// holds no coin large enough to stake with.
func ComposeStakeTx(params *chaincfg.Params, sp *StakeParams) (*wire.MsgTx, error) {
	if !sp.Policy.StakeMode {
		return nil, nil
	}
	if sp.Stake == nil {
		return nil, ruleError(ErrStakeTxUnavailable, "stake mode active with no stake source configured")
	}
	if !stakeEligible(params, sp.Height, sp.Stake.LastWonHeight()) {
		return nil, ruleError(ErrStakeTxUnavailable, "staker not yet eligible for this height")
	}

	outpoint, value, pkScript, ok := sp.Stake.EligibleStakeCoin(sp.Height)
	if !ok || value < params.StakeTxValue {
		return nil, ruleError(ErrStakeTxUnavailable, "no eligible stake coin of sufficient value available")
	}

	tx := wire.NewMsgTx()
	tx.Overwintered = true
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: outpoint,
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(params.StakeTxValue, pkScript))
	if change := value - params.StakeTxValue; change > 0 {
		tx.AddTxOut(wire.NewTxOut(change, pkScript))
	}
	return tx, nil
}

// stakeEligible mirrors komodo_waituntilelegible: a staker that has never
// won is always eligible; otherwise it must let StakeEligibilityWindow
// blocks pass since the height it last won.
func stakeEligible(params *chaincfg.Params, height, lastWon int64) bool {
	if lastWon == 0 {
		return true
	}
	return height-lastWon >= params.StakeEligibilityWindow
}

// applyNotaryPaySplit distributes the notary-pay percentage of the block
// subsidy across the signers of the notarisation transaction, aborting the
// template if the per-signer split computes to zero.
func applyNotaryPaySplit(tx *wire.MsgTx, notarisation *wire.MsgTx, params *chaincfg.Params, cp *CoinbaseParams) error {
	if cp.NotaryOracle == nil {
		return ruleError(ErrZeroNotaryPaySplit, "notary-pay active with no notary oracle configured")
	}

	subsidy := blockchain.CalcBlockSubsidy(cp.Height, params)
	pool := blockchain.CalcNotaryPay(subsidy, params)

	activeNotaries := cp.NotaryOracle.ActiveNotaries(cp.Height, time.Unix(int64(cp.LockTime), 0))
	signers := notarySignerPubKeys(notarisation, cp.UtxoView, activeNotaries)
	if len(signers) == 0 {
		return ruleError(ErrZeroNotaryPaySplit, "notarisation has no resolvable notary signers")
	}

	share := pool / int64(len(signers))
	if share == 0 {
		return ruleError(ErrZeroNotaryPaySplit, "notary-pay split computed to zero")
	}

	tx.TxOut[0].Value -= pool
	for _, pubKey := range signers {
		tx.AddTxOut(wire.NewTxOut(share, txscript.PayToPubKeyScript(pubKey)))
	}
	return nil
}
