package wallet

import (
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

// Serialize size estimates at 1000 sat/kB translate one to one into fees:
// one P2PKH input and one P2PKH output come to 193 bytes, a change output
// adds another 34.
const (
	feeOneInOneOut     = 193
	feeOneInWithChange = 227
)

// TestCreateTransactionWithChange asserts the common case: one input covers
// the send, the remainder above the dust threshold comes back as change to
// an internal address.
func TestCreateTransactionWithChange(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t)
	h.fundingTx(t, 100_000)

	dest := foreignAddr(t)
	tx, err := h.wallet.CreateTransaction(60_000, dest)
	require.NoError(t, err)

	require.Len(t, tx.TxIn, 1)
	require.Len(t, tx.TxOut, 2)

	// Destination first.
	destScript, err := txscript.PayToAddrScript(dest)
	require.NoError(t, err)
	require.Equal(t, destScript, tx.TxOut[0].PkScript)
	require.EqualValues(t, 60_000, tx.TxOut[0].Value)

	// Change second, paying an internal wallet address.
	require.EqualValues(t, 100_000-60_000-feeOneInWithChange,
		tx.TxOut[1].Value)

	_, addrs, _, err := txscript.ExtractPkScriptAddrs(
		tx.TxOut[1].PkScript, &chaincfg.RegressionNetParams,
	)
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	require.True(t, h.wallet.ContainsAddress(addrs[0]))

	changeAddr, err := h.wallet.ChangeAddress()
	require.NoError(t, err)
	require.Equal(t, changeAddr.EncodeAddress(), addrs[0].EncodeAddress())
}

// TestCreateTransactionExactMatch asserts that a single output matching
// amount plus fee exactly wins over larger outputs and produces no change.
func TestCreateTransactionExactMatch(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t)
	h.fundingTx(t, 100_000)
	exact := h.fundingTx(t, 60_000+feeOneInOneOut)

	tx, err := h.wallet.CreateTransaction(60_000, foreignAddr(t))
	require.NoError(t, err)

	require.Len(t, tx.TxIn, 1)
	require.Equal(t, exact.Hash, tx.TxIn[0].PreviousOutPoint.Hash)
	require.Len(t, tx.TxOut, 1)
}

// TestCreateTransactionDustChange asserts that change below the dust
// threshold is dropped and absorbed into the fee.
func TestCreateTransactionDustChange(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t)

	// Leaves 500 after amount and the with-change fee, under the 546 dust
	// limit for a P2PKH output at the minimum relay fee.
	h.fundingTx(t, 60_000+feeOneInWithChange+500)

	tx, err := h.wallet.CreateTransaction(60_000, foreignAddr(t))
	require.NoError(t, err)

	require.Len(t, tx.TxOut, 1)
	require.EqualValues(t, 60_000, tx.TxOut[0].Value)

	fee := h.wallet.FeeForTx(NewTxRecord(tx, 0, h.nextTime()))
	require.Equal(t, btcutil.Amount(feeOneInWithChange+500),
		fee.UnwrapOr(0))
}

// TestCreateTransactionInsufficientFunds asserts the typed error carries the
// available and needed totals.
func TestCreateTransactionInsufficientFunds(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t)
	h.fundingTx(t, 10_000)

	_, err := h.wallet.CreateTransaction(50_000, foreignAddr(t))

	var insufficientErr *ErrInsufficientFunds
	require.ErrorAs(t, err, &insufficientErr)
	require.Equal(t, btcutil.Amount(10_000), insufficientErr.Available)
	require.Equal(t, btcutil.Amount(50_000+feeOneInOneOut),
		insufficientErr.Needed)

	// An empty wallet reports zero available.
	empty := newTestHarness(t)
	_, err = empty.wallet.CreateTransaction(50_000, foreignAddr(t))
	require.ErrorAs(t, err, &insufficientErr)
	require.Zero(t, insufficientErr.Available)
}

// TestCreateTransactionContractChecks asserts that caller bugs panic instead
// of returning errors.
func TestCreateTransactionContractChecks(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t)

	require.Panics(t, func() {
		_, _ = h.wallet.CreateTransaction(1_000, nil)
	})
	require.Panics(t, func() {
		_, _ = h.wallet.CreateTransaction(0, foreignAddr(t))
	})
}

// TestSetFeePerKB asserts the fee rate applies to subsequent estimates.
func TestSetFeePerKB(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t)

	require.Equal(t, btcutil.Amount(250), h.wallet.FeeForTxSize(250))

	h.wallet.SetFeePerKB(2000)
	require.Equal(t, btcutil.Amount(500), h.wallet.FeeForTxSize(250))
}

// TestSignTransaction asserts that a created transaction signs completely
// and that the signatures satisfy the spent output scripts.
func TestSignTransaction(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t)
	funding := h.fundingTx(t, 100_000)

	tx, err := h.wallet.CreateTransaction(60_000, foreignAddr(t))
	require.NoError(t, err)

	require.NoError(t, h.wallet.SignTransaction(tx, "send payment"))

	for i, txIn := range tx.TxIn {
		require.NotEmpty(t, txIn.SignatureScript)

		prevOut := funding.MsgTx.TxOut[txIn.PreviousOutPoint.Index]
		vm, err := txscript.NewEngine(
			prevOut.PkScript, tx, i, txscript.StandardVerifyFlags,
			nil, nil, prevOut.Value,
			txscript.NewCannedPrevOutputFetcher(
				prevOut.PkScript, prevOut.Value,
			),
		)
		require.NoError(t, err)
		require.NoError(t, vm.Execute())
	}

	// The signed spend registers and moves the balance.
	require.True(t, h.wallet.RegisterTransaction(
		NewTxRecord(tx, 0, h.nextTime()),
	))
	require.Equal(t, btcutil.Amount(100_000-60_000-feeOneInWithChange),
		h.wallet.Balance())
}

// TestSignTransactionUnknownInput asserts all-or-nothing signing: an input
// the wallet cannot resolve leaves the whole transaction untouched.
func TestSignTransactionUnknownInput(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t)
	funding := h.fundingTx(t, 100_000)

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewTxIn(
		&wire.OutPoint{Hash: funding.Hash, Index: 0}, nil, nil,
	))
	tx.AddTxIn(wire.NewTxIn(
		&wire.OutPoint{Hash: funding.MsgTx.TxIn[0].PreviousOutPoint.Hash},
		nil, nil,
	))
	tx.AddTxOut(payTo(t, foreignAddr(t), 90_000))

	err := h.wallet.SignTransaction(tx, "")
	require.True(t, errors.Is(err, ErrNotFullySigned))

	for _, txIn := range tx.TxIn {
		require.Empty(t, txIn.SignatureScript)
	}
}
