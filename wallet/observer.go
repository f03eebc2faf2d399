package wallet

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Observer is the capability interface the owner of a wallet implements to
// learn about ledger mutations. Callbacks fire synchronously from within the
// mutating call, after the wallet's state is fully consistent, and outside
// the wallet's internal lock. Implementations must not call back into the
// wallet's mutating surface; any cross-goroutine hand-off is the
// implementation's responsibility.
type Observer interface {
	// BalanceChanged fires whenever a mutation moved the wallet balance,
	// carrying the new balance.
	BalanceChanged(balance btcutil.Amount)

	// TxAdded fires the first time a transaction is inserted into the
	// ledger. Re-registration of a known transaction does not fire it.
	TxAdded(rec *TxRecord)

	// TxUpdated fires when a transaction's block height or timestamp is
	// updated on confirmation.
	TxUpdated(hash chainhash.Hash, height int32, timestamp time.Time)

	// TxDeleted fires once per transaction erased from the ledger,
	// including every member of a cascading removal.
	TxDeleted(hash chainhash.Hash)
}

// event is a deferred observer callback, captured while the wallet lock is
// held and delivered after it is released.
type event func(Observer)

// notify delivers the queued events in order. It must be called after the
// wallet lock has been released.
func (w *Wallet) notify(events []event) {
	if w.cfg.Observer == nil {
		return
	}

	for _, deliver := range events {
		deliver(w.cfg.Observer)
	}
}
