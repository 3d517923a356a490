// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"crypto/rand"
	"time"

	"github.com/galaxywarscoin/GalaxywarsOcean/blockchain"
	"github.com/galaxywarscoin/GalaxywarsOcean/chaincfg"
	"github.com/galaxywarscoin/GalaxywarsOcean/chainhash"
	"github.com/galaxywarscoin/GalaxywarsOcean/dcrutil"
	"github.com/galaxywarscoin/GalaxywarsOcean/notary"
	"github.com/galaxywarscoin/GalaxywarsOcean/txscript"
	"github.com/galaxywarscoin/GalaxywarsOcean/wire"
)

// notaryVinFee is the fixed sat fee a KMD-style notary-vin transaction
// pays, matching komodo_notaryvin's fixed spend.
const notaryVinFee = 5000

// allowFreeThreshold is the priority a free (non-fee-paying) transaction
// must clear to stay eligible once the builder is in fee mode, the same
// COIN*144/250 constant the Bitcoin-derived family has used since
// AllowFree was introduced.
const allowFreeThreshold = float64(dcrutil.AtomsPerCoin) * 144 / 250

// blockSizeReserve is the number of trailing bytes every block leaves
// unused below its configured maximum, headroom for the final header
// fields the selection pass can't account for until after coinbase
// composition.
const blockSizeReserve = 512

// BlockTemplate is a fully assembled, unsolved block candidate together
// with the bookkeeping the mining driver and RPC layer need around it.
type BlockTemplate struct {
	Block       *wire.MsgBlock
	Fees        []int64
	SigOpCounts []int
	Height      int64

	// HasStake reports whether Block carries a proof-of-stake stake
	// transaction, so the mining driver knows to mine against the
	// stake-aware target instead of the header's own bits.
	HasStake bool
}

// TemplateRequest bundles every input NewBlockTemplate needs beyond the
// network's consensus parameters.
type TemplateRequest struct {
	Chain        ChainView
	PrevHeader   blockchain.HeaderView
	Mempool      Mempool
	UtxoView     UtxoViewpoint
	NotaryOracle NotaryOracle
	NotaryVin    NotaryVinSource
	Stake        StakeSource
	Policy       Policy
	MinerScript  []byte
}

// NewBlockTemplate runs the scoring and selection passes over the mempool
// snapshot and returns an assembled, unsolved block. Every exit path
// (including every error return) leaves no outstanding mutation against the
// caller's original UtxoViewpoint: all speculative application happens
// against a private clone.
func NewBlockTemplate(params *chaincfg.Params, req *TemplateRequest) (*BlockTemplate, error) {
	height := req.Chain.TipHeight() + 1
	blockTime := nextBlockTime(req.Chain)

	view := req.UtxoView.Clone()
	tracker := newDependencyTracker(len(req.Mempool.TxDescs()))
	queue := newTxPriorityQueue(len(req.Mempool.TxDescs()))

	lockTimeCutoff := req.Chain.MedianTimePast()

	scoreMempool(params, req, view, height, blockTime, lockTimeCutoff, tracker, queue)

	selected, fees, sigOpCounts, notarisation := selectCandidates(params, req, view, height, queue, tracker)

	nBits := blockchain.NextWorkRequired(params, req.PrevHeader, blockTime.Unix())

	notaryVinTx := buildNotaryVinTx(params, req, height)

	totalFees := int64(0)
	for _, f := range fees {
		totalFees += f
	}
	if notaryVinTx != nil {
		totalFees += notaryVinFee
	}

	coinbase, err := ComposeCoinbase(params, &CoinbaseParams{
		Height:       height,
		Fees:         totalFees,
		MinerScript:  req.MinerScript,
		LockTime:     uint32(blockTime.Unix()),
		Notarisation: notarisation,
		NotaryOracle: req.NotaryOracle,
		UtxoView:     view,
		Policy:       req.Policy,
	})
	if err != nil {
		return nil, err
	}

	stakeTx, err := ComposeStakeTx(params, &StakeParams{
		Height: height,
		Stake:  req.Stake,
		Policy: req.Policy,
	})
	if err != nil {
		return nil, err
	}

	block := &wire.MsgBlock{}
	block.AddTransaction(coinbase)
	if stakeTx != nil {
		block.AddTransaction(stakeTx)
	}
	if notarisation != nil {
		block.AddTransaction(notarisation)
	}
	if notaryVinTx != nil {
		block.AddTransaction(notaryVinTx)
	}
	for _, c := range selected {
		block.AddTransaction(c.tx.Tx.MsgTx())
	}

	block.Header = wire.BlockHeader{
		Version:   1,
		PrevBlock: req.Chain.TipHash(),
		Timestamp: blockTime,
		Bits:      nBits,
		Nonce:     randomizedNonce(params.NonceShift),
	}
	block.Header.MerkleRoot = block.MerkleRoot()

	allFees := []int64{-totalFees}
	allSigOps := []int{coinbase.LegacySigOpCount()}
	if notaryVinTx != nil {
		allFees = append(allFees, notaryVinFee)
		allSigOps = append(allSigOps, notaryVinTx.LegacySigOpCount())
	}
	allFees = append(allFees, fees...)
	allSigOps = append(allSigOps, sigOpCounts...)

	return &BlockTemplate{
		Block:       block,
		Fees:        allFees,
		SigOpCounts: allSigOps,
		Height:      height,
		HasStake:    stakeTx != nil,
	}, nil
}

// buildNotaryVinTx appends the notary-vin transaction KMD-style chains use
// to keep a notarisation minable under fee pressure: a self-payment of this
// node's tracked notary-vin UTXO, minus notaryVinFee, carrying the current
// notary opret committing to the chain tip. It returns nil if this isn't a
// KMD-style chain past its activation height, this node isn't an active
// notary, or no notary-vin UTXO is currently tracked.
func buildNotaryVinTx(params *chaincfg.Params, req *TemplateRequest, height int64) *wire.MsgTx {
	if params.DecemberHardforkHeight == 0 || height < params.DecemberHardforkHeight {
		return nil
	}
	if !req.Policy.IsNotary || req.NotaryVin == nil {
		return nil
	}
	outpoint, value, pkScript, ok := req.NotaryVin.NotaryVinCoin()
	if !ok || value <= notaryVinFee {
		return nil
	}

	tipHash := req.Chain.TipHash()
	opret := notary.BuildNotarisationOpret(uint32(req.Chain.TipHeight()), [32]byte(tipHash))

	tx := wire.NewMsgTx()
	tx.Overwintered = true
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: outpoint,
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(value-notaryVinFee, pkScript))
	tx.AddTxOut(wire.NewTxOut(0, txscript.NullDataScript(opret)))
	return tx
}

// nextBlockTime computes the header timestamp candidate: the later of the
// chain's median-time-past successor and the wall clock, the non-adaptive-PoW
// rule. Adaptive-PoW chains instead key off the previous block's own
// timestamp; callers running such a network pass a Chain whose
// MedianTimePast already reflects that rule.
func nextBlockTime(chain ChainView) time.Time {
	floor := chain.MedianTimePast().Add(time.Second)
	now := time.Now()
	if now.After(floor) {
		return now
	}
	return floor
}

// randomizedNonce draws a fresh 256-bit starting nonce and, when shift is
// configured, shifts it left then right by 16 bits to clear the top and
// bottom bytes reserved for the mining driver's thread-id and rolled-nonce
// bookkeeping.
func randomizedNonce(shift uint) [32]byte {
	var nonce [32]byte
	_, _ = rand.Read(nonce[:])
	if shift == 0 {
		return nonce
	}
	shiftNonceLeft(&nonce, shift)
	shiftNonceRight(&nonce, 16)
	return nonce
}

// shiftNonceLeft and shiftNonceRight treat nonce as a 256-bit big-endian
// integer (index 0 most significant) and shift it by n bits, matching the
// byte layout wire.BlockHeader.Nonce uses on the wire.
func shiftNonceLeft(nonce *[32]byte, n uint) {
	bytesShift := n / 8
	bitShift := n % 8
	var out [32]byte
	for i := 0; i < 32; i++ {
		srcIdx := i + int(bytesShift)
		if srcIdx >= 32 {
			continue
		}
		var v byte
		v = nonce[srcIdx] << bitShift
		if bitShift > 0 && srcIdx+1 < 32 {
			v |= nonce[srcIdx+1] >> (8 - bitShift)
		}
		out[i] = v
	}
	*nonce = out
}

func shiftNonceRight(nonce *[32]byte, n uint) {
	bytesShift := n / 8
	bitShift := n % 8
	var out [32]byte
	for i := 31; i >= 0; i-- {
		srcIdx := i - int(bytesShift)
		if srcIdx < 0 {
			continue
		}
		var v byte
		v = nonce[srcIdx] >> bitShift
		if bitShift > 0 && srcIdx-1 >= 0 {
			v |= nonce[srcIdx-1] << (8 - bitShift)
		}
		out[i] = v
	}
	*nonce = out
}

// scoreMempool is the scoring pass: it walks every
// mempool transaction once, computing its priority and fee rate, routing it
// either into the dependency tracker (if an input is still unconfirmed) or
// straight into the priority queue, and finalizing the at-most-one
// notarisation slot as it goes.
func scoreMempool(
	params *chaincfg.Params,
	req *TemplateRequest,
	view UtxoViewpoint,
	height int64,
	blockTime time.Time,
	lockTimeCutoff time.Time,
	tracker *dependencyTracker,
	queue *txPriorityQueue,
) {
	var notarizedSlot *candidate
	evaluator := newNotarisationEvaluator(req.NotaryOracle, height, blockTime)

	for _, desc := range req.Mempool.TxDescs() {
		evaluator.reset()

		msgTx := desc.Tx.MsgTx()
		if msgTx.IsCoinBase() {
			continue
		}
		if !isFinalForTemplate(msgTx, height, lockTimeCutoff) {
			continue
		}

		var (
			valueAgeSum   float64
			totalIn       int64
			totalOut      int64
			duplicateSign bool
			parents       map[chainhash.Hash]struct{}
		)

		abort := false

		for _, txIn := range msgTx.TxIn {
			prevHash := txIn.PreviousOutPoint.Hash
			coins := view.AccessCoins(&prevHash)
			idx := int(txIn.PreviousOutPoint.Index)
			if coins != nil && idx < len(coins) && coins[idx] != nil && !coins[idx].Spent {
				entry := coins[idx]
				conf := height - entry.BlockHeight
				if conf < 0 {
					conf = 0
				}
				valueAgeSum += float64(entry.Amount) * float64(conf)
				totalIn += entry.Amount

				if _, dup := evaluator.observeInput(entry.PkScript); dup {
					duplicateSign = true
				}
				continue
			}

			if req.Mempool.HaveTx(&prevHash) {
				if parents == nil {
					parents = make(map[chainhash.Hash]struct{})
				}
				parents[prevHash] = struct{}{}
				continue
			}

			abort = true
			break
		}
		if abort {
			continue
		}

		for _, txOut := range msgTx.TxOut {
			totalOut += txOut.Value
		}

		priority := (valueAgeSum + desc.PriorityDelta) / float64(dcrutil.ModifiedSize(msgTx))
		size := float64(msgTx.SerializeSize())
		feeRate := (float64(totalIn-totalOut) + float64(desc.FeeDelta)) / size

		c := &candidate{tx: desc, priority: priority, feeRate: feeRate}

		if len(parents) > 0 {
			tracker.Add(c, parents)
			continue
		}

		finalizeNotarisation(c, msgTx, evaluator, req.NotaryOracle, duplicateSign, queue, &notarizedSlot)
		queue.PushCandidate(c)
	}
}

// finalizeNotarisation applies the at-most-one notarisation rule: the first
// transaction that qualifies as a candidate notarisation under §4.3 is
// forced to the sentinel priority and remembered; any competitor already
// holding that sentinel is degraded.
func finalizeNotarisation(
	c *candidate,
	msgTx *wire.MsgTx,
	evaluator *notarisationEvaluator,
	oracle NotaryOracle,
	duplicateSigner bool,
	queue *txPriorityQueue,
	slot **candidate,
) {
	if *slot != nil {
		return
	}
	if !isCandidateNotarisation(msgTx, evaluator, oracle, duplicateSigner) {
		return
	}
	c.priority = notarizedSentinelPriority
	c.notarizedPriority = true
	*slot = c
	queue.degradeNotarizedPriority(c)
}

// isFinalForTemplate reports whether msgTx is final at the candidate
// height/lock-time cutoff, a relaxed BIP-113-style stand-in used until the
// consensus package's own finality check is wired in.
func isFinalForTemplate(msgTx *wire.MsgTx, height int64, cutoff time.Time) bool {
	if msgTx.LockTime == 0 {
		return true
	}
	lockTime := int64(msgTx.LockTime)
	if lockTime < 500000000 {
		return lockTime < height
	}
	return lockTime < cutoff.Unix()
}

// selectCandidates is the selection pass: it pops
// candidates off the priority queue in comparator order, enforcing the
// size, sigops, and free-transaction budgets, flipping the queue's
// comparator to fee mode exactly once, and releasing dependents through the
// tracker as each candidate is admitted.
func selectCandidates(
	params *chaincfg.Params,
	req *TemplateRequest,
	view UtxoViewpoint,
	height int64,
	queue *txPriorityQueue,
	tracker *dependencyTracker,
) (selected []*candidate, fees []int64, sigOpCounts []int, notarisation *wire.MsgTx) {
	blockMaxSize := req.Policy.BlockMaxSize
	if limit := params.MaxBlockSize(height) - 1000; blockMaxSize > limit {
		blockMaxSize = limit
	}
	if blockMaxSize < 1000 {
		blockMaxSize = 1000
	}
	maxSize := blockMaxSize - blockSizeReserve
	prioritySize := req.Policy.BlockPrioritySize
	minSize := req.Policy.BlockMinSize

	runningSize := 0
	runningSigOps := 0
	byFee := prioritySize == 0
	queue.SetByFee(byFee)

	var ready []*candidate

	for {
		c := queue.PopCandidate()
		if c == nil {
			if len(ready) == 0 {
				break
			}
			for _, r := range ready {
				queue.PushCandidate(r)
			}
			ready = ready[:0]
			continue
		}

		msgTx := c.tx.Tx.MsgTx()
		size := msgTx.SerializeSize()

		if runningSize+size > maxSize {
			continue
		}

		if !byFee && (runningSize+size >= prioritySize || c.priority < allowFreeThreshold) {
			byFee = true
			queue.SetByFee(true)
		}

		if byFee {
			isFree := c.tx.FeeDelta <= 0 && c.tx.PriorityDelta <= 0 && c.feeRate < req.Policy.MinRelayFeeRate
			if isFree && runningSize >= minSize {
				continue
			}
		}

		if req.Policy.OpReturnMinRelayFee > 0 {
			opretLen := sumOpReturnPushes(msgTx)
			if opretLen > opReturnSpamThreshold && c.feeRate < req.Policy.OpReturnMinRelayFee {
				continue
			}
		}

		sigOps := msgTx.LegacySigOpCount()
		if runningSigOps+sigOps >= params.MaxBlockSigOps-1 {
			continue
		}

		txHash := msgTx.TxHash()
		view.AddTxOuts(msgTx, height)
		view.SpendInputs(msgTx)

		if c.notarizedPriority && notarisation == nil {
			notarisation = msgTx
		} else {
			selected = append(selected, c)
			fees = append(fees, int64(c.feeRate*float64(size)))
			sigOpCounts = append(sigOpCounts, sigOps)
		}

		runningSize += size
		runningSigOps += sigOps
		tracker.Admit(txHash, &ready)
	}

	return selected, fees, sigOpCounts, notarisation
}

// sumOpReturnPushes returns the total byte length of every OP_RETURN
// output's data push in msgTx, used by the opret spam filter.
func sumOpReturnPushes(msgTx *wire.MsgTx) int {
	total := 0
	for _, txOut := range msgTx.TxOut {
		if len(txOut.PkScript) > 0 && txOut.PkScript[0] == 0x6a {
			total += len(txOut.PkScript) - 1
		}
	}
	return total
}
