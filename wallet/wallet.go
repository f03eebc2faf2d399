// Package wallet implements the transaction and UTXO bookkeeping core of a
// UTXO-model wallet. It maintains an in-memory ledger of every transaction
// touching wallet addresses together with a secondary index of unspent
// outputs, validates incoming transactions against double spends and invalid
// ancestors, cascades removal through dependent spenders, computes running
// and historical balances, and selects coins for new outgoing transactions.
//
// Key derivation, signature primitives, networking and persistence are
// external collaborators; the wallet only consumes derived addresses and
// invokes signing through the keychain interfaces.
package wallet

import (
	"bytes"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcwallet/wallet/txrules"
	"github.com/lightningnetwork/lnd/clock"

	"github.com/coinledger/walletcore/keychain"
)

const (
	// externalLookahead is the number of unused external addresses kept
	// derived ahead of the last used one.
	externalLookahead = 10

	// internalLookahead is the number of unused change addresses kept
	// derived ahead of the last used one.
	internalLookahead = 5
)

var (
	// ErrDuplicateInputs is returned when a transaction spends the same
	// outpoint more than once.
	ErrDuplicateInputs = errors.New("transaction has duplicate inputs")

	// ErrSelfReferentialInput is returned when a transaction input
	// references the transaction's own hash.
	ErrSelfReferentialInput = errors.New("transaction input references " +
		"its own transaction")
)

// TxRecord is a transaction registered in the ledger together with its
// confirmation metadata.
type TxRecord struct {
	// MsgTx is the transaction itself. It must not be mutated once the
	// record has been registered.
	MsgTx *wire.MsgTx

	// Hash is the transaction's hash, cached at construction.
	Hash chainhash.Hash

	// Height is the height of the block the transaction confirmed in, or
	// zero while unconfirmed.
	Height int32

	// Timestamp is the time the transaction was first seen, or the
	// timestamp of its confirming block once known.
	Timestamp time.Time

	// seq breaks ordering ties between records sharing a timestamp,
	// preserving insertion order.
	seq uint64
}

// NewTxRecord wraps a transaction with its confirmation metadata, caching
// the transaction hash. A height of zero marks the transaction unconfirmed.
func NewTxRecord(tx *wire.MsgTx, height int32, timestamp time.Time) *TxRecord {
	return &TxRecord{
		MsgTx:     tx,
		Hash:      tx.TxHash(),
		Height:    height,
		Timestamp: timestamp,
	}
}

// Utxo is an output owned by the wallet that no currently valid registered
// transaction consumes.
type Utxo struct {
	// OutPoint is the output's identity: producing transaction hash and
	// output index.
	OutPoint wire.OutPoint

	// Value is the amount the output carries.
	Value btcutil.Amount

	// Address is the wallet address the output pays to.
	Address btcutil.Address

	// PkScript is the output's script.
	PkScript []byte
}

// AddrRecord tracks a single derived wallet address.
type AddrRecord struct {
	// Addr is the derived address.
	Addr btcutil.Address

	// KeyLoc is where the address lives in the derivation hierarchy.
	KeyLoc keychain.KeyLocator

	// Used is true once the address has appeared in an output of any
	// registered transaction.
	Used bool
}

// Config bundles the collaborators and tunables a wallet instance needs.
type Config struct {
	// ChainParams supplies the address encoding constants of the backing
	// network.
	ChainParams *chaincfg.Params

	// KeyRing derives wallet addresses and, during signing, their
	// private keys.
	KeyRing keychain.SecretKeyRing

	// FeePerKB is the fee rate applied when building new transactions.
	// Defaults to the minimum relay fee when zero.
	FeePerKB btcutil.Amount

	// Clock is the time source for lock time checks. Defaults to the
	// system clock.
	Clock clock.Clock

	// Observer, when set, receives ledger mutation callbacks.
	Observer Observer
}

// Wallet is the in-memory transaction ledger and UTXO index. A wallet has
// one logical owner; all mutating operations run under a single exclusive
// lock so coin selection always sees a stable snapshot. No operation
// performs I/O.
type Wallet struct {
	mtx sync.RWMutex

	cfg      Config
	feePerKB btcutil.Amount
	clock    clock.Clock

	// txs indexes every registered transaction by hash, valid or not.
	txs map[chainhash.Hash]*TxRecord

	// ledger holds the same records ordered oldest first by timestamp,
	// ties broken by insertion order. All derived state below is a pure
	// function of this ordering and is recomputed after every mutation.
	ledger  []*TxRecord
	nextSeq uint64

	// utxos is the index of spendable wallet-owned outputs.
	utxos map[wire.OutPoint]*Utxo

	// spentBy maps each outpoint consumed by a currently valid
	// registered transaction to the hash of the consuming transaction.
	spentBy map[wire.OutPoint]chainhash.Hash

	// invalid holds the hashes of registered transactions excluded from
	// the index and balance because they conflict with a valid
	// transaction or descend from an invalid one.
	invalid map[chainhash.Hash]struct{}

	// balance is the sum of the values in utxos.
	balance btcutil.Amount

	// history records the running balance immediately after each ledger
	// entry.
	history map[chainhash.Hash]btcutil.Amount

	// addrs indexes every derived address record by encoded address.
	addrs map[string]*AddrRecord

	// chains holds the derived address records per branch in index
	// order.
	chains map[keychain.Branch][]*AddrRecord
}

// New creates a wallet from the given configuration, seeded with previously
// persisted transaction records. Loading fires no observer callbacks.
func New(cfg Config, recs []*TxRecord) (*Wallet, error) {
	if cfg.ChainParams == nil {
		return nil, errors.New("wallet: chain parameters are required")
	}
	if cfg.KeyRing == nil {
		return nil, errors.New("wallet: key ring is required")
	}

	w := &Wallet{
		cfg:      cfg,
		feePerKB: cfg.FeePerKB,
		clock:    cfg.Clock,
		txs:      make(map[chainhash.Hash]*TxRecord),
		utxos:    make(map[wire.OutPoint]*Utxo),
		spentBy:  make(map[wire.OutPoint]chainhash.Hash),
		invalid:  make(map[chainhash.Hash]struct{}),
		history:  make(map[chainhash.Hash]btcutil.Amount),
		addrs:    make(map[string]*AddrRecord),
		chains:   make(map[keychain.Branch][]*AddrRecord),
	}
	if w.feePerKB == 0 {
		w.feePerKB = txrules.DefaultRelayFeePerKb
	}
	if w.clock == nil {
		w.clock = clock.NewDefaultClock()
	}

	for _, rec := range recs {
		if err := checkSane(rec.MsgTx, rec.Hash); err != nil {
			return nil, err
		}
		if _, ok := w.txs[rec.Hash]; ok {
			continue
		}

		rec.seq = w.nextSeq
		w.nextSeq++
		w.txs[rec.Hash] = rec
		w.ledger = append(w.ledger, rec)
	}
	w.sortLedger()

	if err := w.rescanLocked(); err != nil {
		return nil, err
	}

	return w, nil
}

// rescanLocked replays the ledger against the address chains until a
// fixpoint is reached: the replay marks addresses used, which may pull more
// addresses into the lookahead window, which in turn may claim further
// outputs in the ledger.
func (w *Wallet) rescanLocked() error {
	for {
		w.recompute()

		derived, err := w.topUpAddrs()
		if err != nil {
			return err
		}
		if derived == 0 {
			return nil
		}
	}
}

// checkSane rejects transactions that are malformed in ways the ledger's
// invariants cannot tolerate: spending the same outpoint twice within one
// transaction, or referencing the transaction's own hash.
func checkSane(tx *wire.MsgTx, hash chainhash.Hash) error {
	seen := make(map[wire.OutPoint]struct{}, len(tx.TxIn))
	for _, txIn := range tx.TxIn {
		op := txIn.PreviousOutPoint
		if _, ok := seen[op]; ok {
			return ErrDuplicateInputs
		}
		seen[op] = struct{}{}

		if op.Hash == hash {
			return ErrSelfReferentialInput
		}
	}

	return nil
}

// RegisterTransaction adds a transaction to the ledger. It returns false
// when the transaction is malformed or touches no wallet address, leaving
// the wallet untouched. Registration is idempotent: a transaction whose hash
// is already present returns true without firing callbacks. On first
// insertion the UTXO index and balance are updated and TxAdded fires,
// followed by BalanceChanged if the balance moved.
func (w *Wallet) RegisterTransaction(rec *TxRecord) bool {
	if rec == nil || rec.MsgTx == nil {
		panic("wallet: register of nil transaction record")
	}

	w.mtx.Lock()

	if _, ok := w.txs[rec.Hash]; ok {
		w.mtx.Unlock()
		return true
	}

	if err := checkSane(rec.MsgTx, rec.Hash); err != nil {
		w.mtx.Unlock()
		log.Warnf("Rejecting tx %v: %v", rec.Hash, err)
		return false
	}

	if !w.containsTxLocked(rec.MsgTx) {
		w.mtx.Unlock()
		log.Debugf("Ignoring tx %v: no wallet address involved",
			rec.Hash)
		return false
	}

	oldBalance := w.balance

	rec.seq = w.nextSeq
	w.nextSeq++
	w.txs[rec.Hash] = rec
	w.ledger = append(w.ledger, rec)
	w.sortLedger()

	if err := w.rescanLocked(); err != nil {
		// The ledger mutation already happened and is consistent;
		// running low on lookahead addresses only affects future
		// address issuance.
		log.Errorf("Unable to extend address chains: %v", err)
	}

	events := []event{
		func(o Observer) { o.TxAdded(rec) },
	}
	if w.balance != oldBalance {
		newBalance := w.balance
		events = append(events, func(o Observer) {
			o.BalanceChanged(newBalance)
		})
	}

	log.Infof("Registered tx %v (height=%d, balance=%v)", rec.Hash,
		rec.Height, w.balance)

	w.mtx.Unlock()
	w.notify(events)

	return true
}

// RemoveTransaction erases the transaction with the given hash from the
// ledger, along with every transaction that directly or indirectly consumes
// one of its outputs. Dependents are removed deepest first and TxDeleted
// fires once per removed transaction, the given hash last. Outputs consumed
// by removed transactions reappear in the UTXO index if their producing
// transaction survives. A hash not present in the ledger is a no-op.
func (w *Wallet) RemoveTransaction(hash chainhash.Hash) {
	w.mtx.Lock()

	if _, ok := w.txs[hash]; !ok {
		w.mtx.Unlock()
		return
	}

	oldBalance := w.balance

	removed := w.dependentClosureLocked(hash)
	for _, h := range removed {
		delete(w.txs, h)
	}

	survivors := w.ledger[:0]
	for _, rec := range w.ledger {
		if _, ok := w.txs[rec.Hash]; ok {
			survivors = append(survivors, rec)
		}
	}
	w.ledger = survivors

	w.recompute()

	events := make([]event, 0, len(removed)+1)
	for _, h := range removed {
		h := h
		events = append(events, func(o Observer) { o.TxDeleted(h) })
	}
	if w.balance != oldBalance {
		newBalance := w.balance
		events = append(events, func(o Observer) {
			o.BalanceChanged(newBalance)
		})
	}

	log.Infof("Removed tx %v and %d dependents", hash, len(removed)-1)

	w.mtx.Unlock()
	w.notify(events)
}

// dependentClosureLocked computes the transitive closure of transactions
// consuming outputs of the given transaction, returned in removal order:
// deepest dependents first, the given hash last. The closure is computed
// iteratively with an explicit worklist so arbitrarily long dependent chains
// cannot exhaust the stack.
func (w *Wallet) dependentClosureLocked(
	hash chainhash.Hash) []chainhash.Hash {

	doomed := map[chainhash.Hash]struct{}{hash: {}}
	worklist := []chainhash.Hash{hash}

	for len(worklist) > 0 {
		h := worklist[0]
		worklist = worklist[1:]

		for _, rec := range w.ledger {
			if _, ok := doomed[rec.Hash]; ok {
				continue
			}
			for _, txIn := range rec.MsgTx.TxIn {
				if txIn.PreviousOutPoint.Hash != h {
					continue
				}

				doomed[rec.Hash] = struct{}{}
				worklist = append(worklist, rec.Hash)
				break
			}
		}
	}

	// Order the doomed set leaves first: repeatedly peel off the
	// transactions no other doomed transaction depends on, scanning the
	// ledger newest first for determinism.
	order := make([]chainhash.Hash, 0, len(doomed))
	remaining := make(map[chainhash.Hash]struct{}, len(doomed))
	for h := range doomed {
		remaining[h] = struct{}{}
	}

	for len(remaining) > 0 {
		for i := len(w.ledger) - 1; i >= 0; i-- {
			h := w.ledger[i].Hash
			if _, ok := remaining[h]; !ok {
				continue
			}

			if w.hasDependentInLocked(h, remaining) {
				continue
			}

			order = append(order, h)
			delete(remaining, h)
		}
	}

	return order
}

// hasDependentInLocked reports whether any transaction in the given set,
// other than the transaction itself, spends one of the transaction's
// outputs.
func (w *Wallet) hasDependentInLocked(hash chainhash.Hash,
	set map[chainhash.Hash]struct{}) bool {

	for h := range set {
		if h == hash {
			continue
		}
		for _, txIn := range w.txs[h].MsgTx.TxIn {
			if txIn.PreviousOutPoint.Hash == hash {
				return true
			}
		}
	}

	return false
}

// UpdateTransaction sets the block height and timestamp of the transaction
// with the given hash, re-sorting the ledger and firing TxUpdated. A hash
// not present in the ledger is a no-op.
func (w *Wallet) UpdateTransaction(hash chainhash.Hash, height int32,
	timestamp time.Time) {

	w.mtx.Lock()

	rec, ok := w.txs[hash]
	if !ok {
		w.mtx.Unlock()
		return
	}

	oldBalance := w.balance

	rec.Height = height
	rec.Timestamp = timestamp
	w.sortLedger()
	w.recompute()

	events := []event{
		func(o Observer) { o.TxUpdated(hash, height, timestamp) },
	}
	if w.balance != oldBalance {
		newBalance := w.balance
		events = append(events, func(o Observer) {
			o.BalanceChanged(newBalance)
		})
	}

	log.Debugf("Updated tx %v to height %d", hash, height)

	w.mtx.Unlock()
	w.notify(events)
}

// sortLedger restores the ledger's oldest-first ordering by timestamp, with
// insertion order breaking ties.
func (w *Wallet) sortLedger() {
	sort.SliceStable(w.ledger, func(i, j int) bool {
		ti, tj := w.ledger[i], w.ledger[j]
		if !ti.Timestamp.Equal(tj.Timestamp) {
			return ti.Timestamp.Before(tj.Timestamp)
		}
		return ti.seq < tj.seq
	})
}

// recompute rebuilds all state derived from the ledger ordering: the UTXO
// index, the spent outpoint index, the invalid set, the balance and the
// per-transaction balance history. Replaying from empty after every mutation
// keeps the mutation invariants trivially intact: the index always equals
// the outputs owned by the wallet not consumed by any currently valid
// transaction, and the balance is never affected by invalid transactions.
func (w *Wallet) recompute() {
	clear(w.utxos)
	clear(w.spentBy)
	clear(w.invalid)
	clear(w.history)

	// Mark addresses appearing in any registered transaction as used,
	// whether or not the transaction turns out valid.
	for _, rec := range w.ledger {
		for _, txOut := range rec.MsgTx.TxOut {
			if addr := w.addrRecordLocked(txOut.PkScript); addr != nil {
				addr.Used = true
			}
		}
	}

	// Validity pass. Confirmed transactions were accepted by the chain
	// and outrank unconfirmed ones no matter when the wallet first saw
	// them, so they claim their inputs first. An unconfirmed transaction
	// is then invalid if any of its inputs is already claimed, or if a
	// wallet-owned ancestor is itself invalid.
	for _, rec := range w.ledger {
		if rec.Height == 0 {
			continue
		}
		for _, txIn := range rec.MsgTx.TxIn {
			op := txIn.PreviousOutPoint
			if _, ok := w.spentBy[op]; !ok {
				w.spentBy[op] = rec.Hash
			}
		}
	}
	for _, rec := range w.ledger {
		if rec.Height != 0 {
			continue
		}

		if w.conflictsLocked(rec) {
			w.invalid[rec.Hash] = struct{}{}
			continue
		}

		for _, txIn := range rec.MsgTx.TxIn {
			w.spentBy[txIn.PreviousOutPoint] = rec.Hash
		}
	}

	// Index pass: rebuild the UTXO set and the balance history over the
	// valid transactions, in ledger order.
	var balance btcutil.Amount
	for _, rec := range w.ledger {
		if _, ok := w.invalid[rec.Hash]; ok {
			w.history[rec.Hash] = balance
			continue
		}

		for _, txIn := range rec.MsgTx.TxIn {
			op := txIn.PreviousOutPoint
			if utxo, ok := w.utxos[op]; ok {
				balance -= utxo.Value
				delete(w.utxos, op)
			}
		}

		for i, txOut := range rec.MsgTx.TxOut {
			addr := w.addrRecordLocked(txOut.PkScript)
			if addr == nil {
				continue
			}

			op := wire.OutPoint{Hash: rec.Hash, Index: uint32(i)}
			w.utxos[op] = &Utxo{
				OutPoint: op,
				Value:    btcutil.Amount(txOut.Value),
				Address:  addr.Addr,
				PkScript: txOut.PkScript,
			}
			balance += btcutil.Amount(txOut.Value)
		}

		w.history[rec.Hash] = balance
	}

	w.balance = balance
}

// conflictsLocked reports whether the record double spends an outpoint
// already claimed by a confirmed or earlier valid transaction, or descends
// from a registered invalid transaction.
func (w *Wallet) conflictsLocked(rec *TxRecord) bool {
	for _, txIn := range rec.MsgTx.TxIn {
		op := txIn.PreviousOutPoint
		if spender, ok := w.spentBy[op]; ok && spender != rec.Hash {
			return true
		}
		if _, ok := w.invalid[op.Hash]; ok {
			return true
		}
	}

	return false
}

// addrRecordLocked resolves an output script to the wallet address record it
// pays to, or nil when the script pays elsewhere.
func (w *Wallet) addrRecordLocked(pkScript []byte) *AddrRecord {
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(
		pkScript, w.cfg.ChainParams,
	)
	if err != nil || len(addrs) != 1 {
		return nil
	}

	return w.addrs[addrs[0].EncodeAddress()]
}

// containsTxLocked reports whether the transaction is relevant to the
// wallet: it pays to a wallet address, or it spends an output of a
// registered transaction that pays to a wallet address.
func (w *Wallet) containsTxLocked(tx *wire.MsgTx) bool {
	for _, txOut := range tx.TxOut {
		if w.addrRecordLocked(txOut.PkScript) != nil {
			return true
		}
	}

	for _, txIn := range tx.TxIn {
		op := txIn.PreviousOutPoint
		prev, ok := w.txs[op.Hash]
		if !ok || int(op.Index) >= len(prev.MsgTx.TxOut) {
			continue
		}
		prevOut := prev.MsgTx.TxOut[op.Index]
		if w.addrRecordLocked(prevOut.PkScript) != nil {
			return true
		}
	}

	return false
}

// topUpAddrs extends both address chains until the configured number of
// never-used addresses is derived past the last used one, returning how
// many new addresses were derived.
func (w *Wallet) topUpAddrs() (int, error) {
	branches := []struct {
		branch    keychain.Branch
		lookahead int
	}{
		{keychain.ExternalBranch, externalLookahead},
		{keychain.InternalBranch, internalLookahead},
	}

	var derived int
	for _, b := range branches {
		chain := w.chains[b.branch]

		unused := 0
		for i := len(chain) - 1; i >= 0 && !chain[i].Used; i-- {
			unused++
		}

		for unused < b.lookahead {
			loc := keychain.KeyLocator{
				Branch: b.branch,
				Index:  uint32(len(chain)),
			}
			addr, err := w.cfg.KeyRing.DeriveAddress(loc)
			if err != nil {
				return derived, err
			}

			rec := &AddrRecord{Addr: addr, KeyLoc: loc}
			chain = append(chain, rec)
			w.addrs[addr.EncodeAddress()] = rec
			unused++
			derived++
		}

		w.chains[b.branch] = chain
	}

	return derived, nil
}

// firstUnusedAddrLocked returns the first address on the given branch that
// has not appeared in any registered transaction.
func (w *Wallet) firstUnusedAddrLocked(
	branch keychain.Branch) (btcutil.Address, error) {

	for _, rec := range w.chains[branch] {
		if !rec.Used {
			return rec.Addr, nil
		}
	}

	// All derived addresses are used; extend the chain.
	if _, err := w.topUpAddrs(); err != nil {
		return nil, err
	}
	for _, rec := range w.chains[branch] {
		if !rec.Used {
			return rec.Addr, nil
		}
	}

	return nil, errors.New("wallet: unable to derive unused address")
}

// ReceiveAddress returns the first unused external address.
func (w *Wallet) ReceiveAddress() (btcutil.Address, error) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	return w.firstUnusedAddrLocked(keychain.ExternalBranch)
}

// ChangeAddress returns the first unused internal address.
func (w *Wallet) ChangeAddress() (btcutil.Address, error) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	return w.firstUnusedAddrLocked(keychain.InternalBranch)
}

// ContainsAddress reports whether the address is controlled by the wallet.
func (w *Wallet) ContainsAddress(addr btcutil.Address) bool {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	_, ok := w.addrs[addr.EncodeAddress()]
	return ok
}

// AddressIsUsed reports whether the address has appeared in any registered
// transaction.
func (w *Wallet) AddressIsUsed(addr btcutil.Address) bool {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	rec, ok := w.addrs[addr.EncodeAddress()]
	return ok && rec.Used
}

// ContainsTxHash reports whether a transaction with the given hash is
// registered in the ledger.
func (w *Wallet) ContainsTxHash(hash chainhash.Hash) bool {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	_, ok := w.txs[hash]
	return ok
}

// ContainsTransaction reports whether the transaction is relevant to the
// wallet, whether or not it has been registered.
func (w *Wallet) ContainsTransaction(tx *wire.MsgTx) bool {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	return w.containsTxLocked(tx)
}

// TransactionForHash returns the registered record with the given hash, or
// nil when the hash is unknown. The returned record must be treated as
// read-only.
func (w *Wallet) TransactionForHash(hash chainhash.Hash) *TxRecord {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	return w.txs[hash]
}

// Transactions returns a snapshot of all registered transactions, ordered
// oldest first by timestamp with insertion order breaking ties.
func (w *Wallet) Transactions() []*TxRecord {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	recs := make([]*TxRecord, len(w.ledger))
	copy(recs, w.ledger)

	return recs
}

// UTXOs returns a snapshot of the current index of spendable wallet-owned
// outputs, ordered by outpoint for determinism.
func (w *Wallet) UTXOs() []Utxo {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	utxos := make([]Utxo, 0, len(w.utxos))
	for _, utxo := range w.utxos {
		utxos = append(utxos, *utxo)
	}
	sort.Slice(utxos, func(i, j int) bool {
		return outPointLess(utxos[i].OutPoint, utxos[j].OutPoint)
	})

	return utxos
}

// outPointLess orders outpoints by hash, then index.
func outPointLess(a, b wire.OutPoint) bool {
	switch bytes.Compare(a.Hash[:], b.Hash[:]) {
	case -1:
		return true
	case 1:
		return false
	default:
		return a.Index < b.Index
	}
}

// SetFeePerKB sets the fee rate used when building new transactions.
func (w *Wallet) SetFeePerKB(feePerKB btcutil.Amount) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	w.feePerKB = feePerKB
}

// FeeForTxSize returns the fee the wallet would attach to a transaction of
// the given serialized size.
func (w *Wallet) FeeForTxSize(size int) btcutil.Amount {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	return txrules.FeeForSerializeSize(w.feePerKB, size)
}
