package wallet

import (
	"errors"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcwallet/wallet/txrules"
	"github.com/btcsuite/btcwallet/wallet/txsizes"

	"github.com/coinledger/walletcore/keychain"
)

// ErrInsufficientFunds is returned when coin selection fails because the
// spendable outputs in the index cannot cover the requested amount plus the
// fee a transaction spending them would require.
type ErrInsufficientFunds struct {
	// Available is the total value of the wallet's spendable outputs.
	Available btcutil.Amount

	// Needed is the amount plus fee the selection had to reach.
	Needed btcutil.Amount
}

// Error returns a human-readable string describing the error.
func (e *ErrInsufficientFunds) Error() string {
	return fmt.Sprintf("insufficient funds: need %v, have %v spendable",
		e.Needed, e.Available)
}

// ErrNotFullySigned is returned when SignTransaction cannot produce a
// signature for every input, either because an input's provenance is
// unknown or because key derivation failed. The transaction is left
// unmodified.
var ErrNotFullySigned = errors.New("transaction could not be fully signed")

// CreateTransaction returns an unsigned transaction sending the given
// amount to the given address, funded from the wallet's spendable outputs.
// The destination output always comes first; an eventual change output to a
// freshly issued internal address comes second. A single output exactly
// matching amount plus fee is preferred over any multi-input combination,
// since it avoids the change output entirely. Otherwise outputs are
// accumulated greedily, largest value first with outpoint order breaking
// ties, recomputing the fee as the candidate transaction grows. Change
// below the dust threshold is folded into the fee.
//
// A nil address or non-positive amount is a caller bug and panics.
// Insufficient spendable funds yield an ErrInsufficientFunds.
func (w *Wallet) CreateTransaction(amount btcutil.Amount,
	addr btcutil.Address) (*wire.MsgTx, error) {

	if addr == nil {
		panic("wallet: create transaction with nil address")
	}
	if amount <= 0 {
		panic("wallet: create transaction with non-positive amount")
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()

	destScript, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return nil, fmt.Errorf("unable to build output script: %w",
			err)
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxOut(wire.NewTxOut(int64(amount), destScript))

	// Coin selection runs over a value-descending view of the index so
	// the fewest inputs are needed to reach the target. The full
	// ordering (value, then outpoint) makes selection deterministic for
	// a given index state.
	coins := make([]*Utxo, 0, len(w.utxos))
	for _, utxo := range w.utxos {
		coins = append(coins, utxo)
	}
	sort.Slice(coins, func(i, j int) bool {
		if coins[i].Value != coins[j].Value {
			return coins[i].Value > coins[j].Value
		}
		return outPointLess(coins[i].OutPoint, coins[j].OutPoint)
	})

	// First look for a single output matching amount plus fee exactly:
	// no change output, no leftover.
	feeExact := w.feeLocked(1, tx.TxOut, false)
	for _, coin := range coins {
		if coin.Value != amount+feeExact {
			continue
		}

		tx.AddTxIn(wire.NewTxIn(&coin.OutPoint, nil, nil))

		log.Debugf("Selected exact-value coin %v for %v send",
			coin.OutPoint, amount)

		return tx, nil
	}

	var total btcutil.Amount
	for _, coin := range coins {
		tx.AddTxIn(wire.NewTxIn(&coin.OutPoint, nil, nil))
		total += coin.Value

		numInputs := len(tx.TxIn)

		// The candidate grew, so the fee has to be recomputed.
		feeNoChange := w.feeLocked(numInputs, tx.TxOut, false)
		if total == amount+feeNoChange {
			return tx, nil
		}

		feeWithChange := w.feeLocked(numInputs, tx.TxOut, true)
		if total < amount+feeWithChange {
			continue
		}

		change := total - amount - feeWithChange

		changeAddr, err := w.firstUnusedAddrLocked(
			keychain.InternalBranch,
		)
		if err != nil {
			return nil, fmt.Errorf("unable to derive change "+
				"address: %w", err)
		}
		changeScript, err := txscript.PayToAddrScript(changeAddr)
		if err != nil {
			return nil, fmt.Errorf("unable to build change "+
				"script: %w", err)
		}

		changeOut := wire.NewTxOut(int64(change), changeScript)

		// Change not worth its future spending cost goes to the
		// miners instead.
		if txrules.IsDustOutput(changeOut, w.feePerKB) {
			log.Debugf("Folding dust change %v into fee", change)
			return tx, nil
		}

		tx.AddTxOut(changeOut)

		return tx, nil
	}

	// The whole index is selected. The transaction can still go out if
	// it covers the amount and the no-change fee, with the remainder
	// absorbed into the fee.
	if numInputs := len(tx.TxIn); numInputs > 0 {
		feeNoChange := w.feeLocked(numInputs, tx.TxOut, false)
		if total >= amount+feeNoChange {
			return tx, nil
		}

		return nil, &ErrInsufficientFunds{
			Available: total,
			Needed:    amount + feeNoChange,
		}
	}

	return nil, &ErrInsufficientFunds{Needed: amount}
}

// feeLocked estimates the fee for a transaction with the given number of
// wallet inputs and outputs, optionally reserving room for a change output.
func (w *Wallet) feeLocked(numInputs int, txOuts []*wire.TxOut,
	addChange bool) btcutil.Amount {

	size := txsizes.EstimateSerializeSize(numInputs, txOuts, addChange)
	return txrules.FeeForSerializeSize(w.feePerKB, size)
}

// SignTransaction signs every input that spends a wallet-owned output,
// deriving the matching private keys through the key ring. The auth prompt
// is passed through to the seed fetcher. Signature scripts are applied only
// if every input of the transaction ends up signed; on failure the
// transaction is left untouched and ErrNotFullySigned (or the underlying
// derivation error) is returned.
func (w *Wallet) SignTransaction(tx *wire.MsgTx, authPrompt string) error {
	if tx == nil {
		panic("wallet: sign of nil transaction")
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()

	sigScripts := make([][]byte, len(tx.TxIn))
	for i, txIn := range tx.TxIn {
		op := txIn.PreviousOutPoint

		prev, ok := w.txs[op.Hash]
		if !ok || int(op.Index) >= len(prev.MsgTx.TxOut) {
			continue
		}

		prevOut := prev.MsgTx.TxOut[op.Index]
		addr := w.addrRecordLocked(prevOut.PkScript)
		if addr == nil {
			continue
		}

		privKey, err := w.cfg.KeyRing.DerivePrivKey(
			addr.KeyLoc, authPrompt,
		)
		if err != nil {
			return fmt.Errorf("unable to derive key for input "+
				"%d: %w", i, err)
		}

		sigScript, err := txscript.SignatureScript(
			tx, i, prevOut.PkScript, txscript.SigHashAll, privKey,
			true,
		)
		if err != nil {
			return fmt.Errorf("unable to sign input %d: %w", i,
				err)
		}

		sigScripts[i] = sigScript
	}

	// Every input must end up signed, by us or by whoever produced the
	// transaction. Nothing is applied otherwise.
	for i, txIn := range tx.TxIn {
		if sigScripts[i] == nil && len(txIn.SignatureScript) == 0 {
			return ErrNotFullySigned
		}
	}

	for i := range tx.TxIn {
		if sigScripts[i] != nil {
			tx.TxIn[i].SignatureScript = sigScripts[i]
		}
	}

	return nil
}
