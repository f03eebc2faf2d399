package wallet

import (
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// lockTimeGrace is how far into the future a timestamp lock time may point
// before the transaction is considered postdated.
const lockTimeGrace = 600 // seconds

// TransactionIsValid reports whether the transaction could be accepted by
// the chain given the wallet's current view: none of its inputs may be
// consumed by a different currently valid wallet transaction, and every
// wallet-owned ancestor must itself be valid. Confirmed transactions are
// always valid. Invalid registered transactions stay queryable but are
// excluded from the UTXO index and the balance; they are never removed
// automatically.
func (w *Wallet) TransactionIsValid(rec *TxRecord) bool {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	return w.txValidLocked(rec)
}

func (w *Wallet) txValidLocked(rec *TxRecord) bool {
	// The chain already accepted it.
	if rec.Height != 0 {
		return true
	}

	// For registered transactions the replay already decided validity.
	if _, ok := w.txs[rec.Hash]; ok {
		_, invalid := w.invalid[rec.Hash]
		return !invalid
	}

	for _, txIn := range rec.MsgTx.TxIn {
		op := txIn.PreviousOutPoint

		// An input consumed by a different valid wallet transaction
		// makes this one a double spend.
		if spender, ok := w.spentBy[op]; ok && spender != rec.Hash {
			return false
		}

		// A wallet-owned ancestor must itself be valid. Ancestors
		// the wallet does not know about are not its concern.
		if _, ok := w.invalid[op.Hash]; ok {
			return false
		}
	}

	return true
}

// TransactionIsPostdated reports whether the transaction cannot be mined by
// blockHeight+1 nor within the next ten minutes because of its lock time. A
// lock time below the timestamp threshold is compared against the block
// height, anything above it against wall clock time. Lock times are ignored
// entirely when every input is final.
func (w *Wallet) TransactionIsPostdated(tx *wire.MsgTx,
	blockHeight int32) bool {

	if tx.LockTime == 0 {
		return false
	}

	final := true
	for _, txIn := range tx.TxIn {
		if txIn.Sequence != wire.MaxTxInSequenceNum {
			final = false
			break
		}
	}
	if final {
		return false
	}

	if tx.LockTime < txscript.LockTimeThreshold {
		return tx.LockTime > uint32(blockHeight)+1
	}

	w.mtx.RLock()
	now := w.clock.Now().Unix()
	w.mtx.RUnlock()

	return int64(tx.LockTime) > now+lockTimeGrace
}
