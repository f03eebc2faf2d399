package wallet

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// Balance returns the current wallet balance: the sum of all valid, unspent
// wallet-owned output amounts. Transactions known to be invalid never
// contribute.
func (w *Wallet) Balance() btcutil.Amount {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	return w.balance
}

// BalanceAfterTx returns the historical wallet balance immediately after
// the given transaction in ledger order, or the current balance when the
// transaction is not registered.
func (w *Wallet) BalanceAfterTx(rec *TxRecord) btcutil.Amount {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	if balance, ok := w.history[rec.Hash]; ok {
		return balance
	}

	return w.balance
}

// AmountReceivedFromTx returns the total of the transaction's outputs paying
// to wallet addresses, change included.
func (w *Wallet) AmountReceivedFromTx(rec *TxRecord) btcutil.Amount {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	return w.amountReceivedLocked(rec)
}

func (w *Wallet) amountReceivedLocked(rec *TxRecord) btcutil.Amount {
	var amount btcutil.Amount
	for _, txOut := range rec.MsgTx.TxOut {
		if w.addrRecordLocked(txOut.PkScript) != nil {
			amount += btcutil.Amount(txOut.Value)
		}
	}

	return amount
}

// AmountSentByTx returns the total of the wallet-owned outputs the
// transaction consumes, change and fee included.
func (w *Wallet) AmountSentByTx(rec *TxRecord) btcutil.Amount {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	return w.amountSentLocked(rec)
}

func (w *Wallet) amountSentLocked(rec *TxRecord) btcutil.Amount {
	var amount btcutil.Amount
	for _, txIn := range rec.MsgTx.TxIn {
		op := txIn.PreviousOutPoint
		prev, ok := w.txs[op.Hash]
		if !ok || int(op.Index) >= len(prev.MsgTx.TxOut) {
			continue
		}

		prevOut := prev.MsgTx.TxOut[op.Index]
		if w.addrRecordLocked(prevOut.PkScript) != nil {
			amount += btcutil.Amount(prevOut.Value)
		}
	}

	return amount
}

// FeeForTx returns the transaction's fee: the difference between the total
// of its inputs and the total of its outputs. The fee is unavailable when
// any input's producing transaction is unknown to the wallet, since the
// input values cannot be resolved.
func (w *Wallet) FeeForTx(rec *TxRecord) fn.Option[btcutil.Amount] {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	var amountIn btcutil.Amount
	for _, txIn := range rec.MsgTx.TxIn {
		op := txIn.PreviousOutPoint
		prev, ok := w.txs[op.Hash]
		if !ok || int(op.Index) >= len(prev.MsgTx.TxOut) {
			return fn.None[btcutil.Amount]()
		}

		amountIn += btcutil.Amount(prev.MsgTx.TxOut[op.Index].Value)
	}

	var amountOut btcutil.Amount
	for _, txOut := range rec.MsgTx.TxOut {
		amountOut += btcutil.Amount(txOut.Value)
	}

	return fn.Some(amountIn - amountOut)
}

// TotalReceived returns the total amount ever received by the wallet across
// all registered transactions.
func (w *Wallet) TotalReceived() btcutil.Amount {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	var total btcutil.Amount
	for _, rec := range w.ledger {
		total += w.amountReceivedLocked(rec)
	}

	return total
}

// TotalSent returns the total amount ever spent from the wallet across all
// registered transactions.
func (w *Wallet) TotalSent() btcutil.Amount {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	var total btcutil.Amount
	for _, rec := range w.ledger {
		total += w.amountSentLocked(rec)
	}

	return total
}
