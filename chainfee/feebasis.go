// Package chainfee models the cost of publishing a transaction across the
// supported chain families. UTXO chains price a transaction by its size at a
// per-kilobyte fee rate, account chains price it as gas times a gas price,
// and everything else is covered by an opaque chain-supplied cost factor and
// price. A FeeBasis captures exactly one of these models at construction and
// yields a total fee through a single dispatching surface.
package chainfee

import (
	"math/bits"
	"sync/atomic"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// BasisType enumerates the cost models a FeeBasis can carry.
type BasisType uint8

const (
	// BasisUTXO prices a transaction by its serialized size at a
	// per-kilobyte fee rate.
	BasisUTXO BasisType = iota

	// BasisGas prices a transaction as a gas limit times a gas price.
	BasisGas

	// BasisGeneric prices a transaction by an opaque chain-supplied cost
	// factor and price.
	BasisGeneric
)

// String returns a human readable name for the basis type.
func (t BasisType) String() string {
	switch t {
	case BasisUTXO:
		return "utxo"
	case BasisGas:
		return "gas"
	case BasisGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// Unit is a shared, reference counted description of the denomination a fee
// is expressed in. A Unit starts with a single reference held by its
// creator; every additional holder must Take it and Give it back. The
// optional release hook runs exactly once, when the last reference is given
// up.
type Unit struct {
	name     string
	decimals uint8
	refs     atomic.Int32
	release  func()
}

// NewUnit creates a unit with one outstanding reference. The release hook
// may be nil.
func NewUnit(name string, decimals uint8, release func()) *Unit {
	u := &Unit{
		name:     name,
		decimals: decimals,
		release:  release,
	}
	u.refs.Store(1)

	return u
}

// Name returns the unit's display name.
func (u *Unit) Name() string {
	return u.name
}

// Decimals returns the number of decimal places between the unit's base
// denomination and its display denomination.
func (u *Unit) Decimals() uint8 {
	return u.decimals
}

// Take acquires an additional reference to the unit. Taking a released unit
// panics and leaves the count untouched, so the release hook can never run
// twice.
func (u *Unit) Take() *Unit {
	for {
		refs := u.refs.Load()
		if refs <= 0 {
			panic("chainfee: take of released unit")
		}
		if u.refs.CompareAndSwap(refs, refs+1) {
			return u
		}
	}
}

// Give releases one reference to the unit, running the release hook when the
// last reference is given up. Giving with no reference outstanding panics.
func (u *Unit) Give() {
	for {
		refs := u.refs.Load()
		if refs <= 0 {
			panic("chainfee: give of released unit")
		}
		if !u.refs.CompareAndSwap(refs, refs-1) {
			continue
		}

		if refs == 1 && u.release != nil {
			u.release()
		}

		return
	}
}

// FeeBasis is an immutable-after-construction description of what a
// transaction will cost. Exactly one cost model is active, fixed by the
// constructor used. The basis owns a reference to its unit and is itself
// reference counted: constructors return a basis with one outstanding
// reference, additional holders Take and Give it, and when the last
// reference is given up the owned unit reference is given back and the
// optional payload release hook runs.
type FeeBasis struct {
	basisType BasisType

	// feePerKB and sizeBytes are set for BasisUTXO.
	feePerKB  btcutil.Amount
	sizeBytes uint32

	// gasLimit and gasPrice are set for BasisGas.
	gasLimit uint64
	gasPrice uint64

	// costFactor and pricePerCost are set for BasisGeneric.
	costFactor   uint64
	pricePerCost uint64

	release func()
	unit    *Unit
	refs    atomic.Int32
}

// newFeeBasis creates the shared portion of a fee basis, taking a reference
// to the unit.
func newFeeBasis(basisType BasisType, unit *Unit) *FeeBasis {
	b := &FeeBasis{
		basisType: basisType,
		unit:      unit.Take(),
	}
	b.refs.Store(1)

	return b
}

// NewUTXOBasis creates a fee basis for a UTXO chain transaction of the given
// serialized size paying the given per-kilobyte fee rate.
func NewUTXOBasis(unit *Unit, feePerKB btcutil.Amount,
	sizeBytes uint32) *FeeBasis {

	b := newFeeBasis(BasisUTXO, unit)
	b.feePerKB = feePerKB
	b.sizeBytes = sizeBytes

	return b
}

// NewGasBasis creates a fee basis for an account chain transaction with the
// given gas limit and gas price.
func NewGasBasis(unit *Unit, gasLimit, gasPrice uint64) *FeeBasis {
	b := newFeeBasis(BasisGas, unit)
	b.gasLimit = gasLimit
	b.gasPrice = gasPrice

	return b
}

// NewGenericBasis creates a fee basis from an opaque chain-supplied cost
// factor and price per cost factor. The optional release hook runs when the
// last reference to the basis is given up, letting the supplying chain
// reclaim whatever backs the cost description.
func NewGenericBasis(unit *Unit, costFactor, pricePerCost uint64,
	release func()) *FeeBasis {

	b := newFeeBasis(BasisGeneric, unit)
	b.costFactor = costFactor
	b.pricePerCost = pricePerCost
	b.release = release

	return b
}

// Take acquires an additional reference to the fee basis. Taking a released
// basis panics and leaves the count untouched.
func (b *FeeBasis) Take() *FeeBasis {
	for {
		refs := b.refs.Load()
		if refs <= 0 {
			panic("chainfee: take of released fee basis")
		}
		if b.refs.CompareAndSwap(refs, refs+1) {
			return b
		}
	}
}

// Give releases one reference to the fee basis. When the last reference is
// given up the owned unit reference is given back and the payload release
// hook, if any, runs. Giving with no reference outstanding panics.
func (b *FeeBasis) Give() {
	for {
		refs := b.refs.Load()
		if refs <= 0 {
			panic("chainfee: give of released fee basis")
		}
		if !b.refs.CompareAndSwap(refs, refs-1) {
			continue
		}

		if refs == 1 {
			b.unit.Give()
			if b.release != nil {
				b.release()
			}
		}

		return
	}
}

// Type returns the active cost model.
func (b *FeeBasis) Type() BasisType {
	return b.basisType
}

// Unit returns the unit the fee is expressed in, without transferring a
// reference.
func (b *FeeBasis) Unit() *Unit {
	return b.unit
}

// CostFactor returns the dimensionless cost of the transaction under the
// active model: kilobytes of serialized size, units of gas, or the opaque
// chain-supplied factor.
func (b *FeeBasis) CostFactor() float64 {
	switch b.basisType {
	case BasisUTXO:
		return float64(b.sizeBytes) / 1000

	case BasisGas:
		return float64(b.gasLimit)

	case BasisGeneric:
		return float64(b.costFactor)

	default:
		panic("chainfee: unknown basis type")
	}
}

// PricePerCostFactor returns the price of one cost factor in the unit's base
// denomination.
func (b *FeeBasis) PricePerCostFactor() uint64 {
	switch b.basisType {
	case BasisUTXO:
		return uint64(b.feePerKB)

	case BasisGas:
		return b.gasPrice

	case BasisGeneric:
		return b.pricePerCost

	default:
		panic("chainfee: unknown basis type")
	}
}

// Fee returns the total fee in the unit's base denomination, or fn.None when
// the multiplication of price and cost factor overflows. An overflowed fee
// is reported unavailable rather than silently wrapped.
func (b *FeeBasis) Fee() fn.Option[uint64] {
	switch b.basisType {
	case BasisUTXO:
		hi, lo := bits.Mul64(
			uint64(b.feePerKB), uint64(b.sizeBytes),
		)
		if hi != 0 {
			log.Warnf("UTXO fee overflow: feePerKB=%v, size=%d",
				b.feePerKB, b.sizeBytes)
			return fn.None[uint64]()
		}

		// Round to the nearest base unit.
		return fn.Some((lo + 500) / 1000)

	case BasisGas:
		return checkedMul(b.gasLimit, b.gasPrice)

	case BasisGeneric:
		return checkedMul(b.costFactor, b.pricePerCost)

	default:
		panic("chainfee: unknown basis type")
	}
}

// checkedMul multiplies two fee components using wide arithmetic, reporting
// the product unavailable on overflow.
func checkedMul(costFactor, price uint64) fn.Option[uint64] {
	hi, lo := bits.Mul64(costFactor, price)
	if hi != 0 {
		log.Warnf("fee overflow: costFactor=%d, price=%d",
			costFactor, price)
		return fn.None[uint64]()
	}

	return fn.Some(lo)
}

// FeePerKB returns the per-kilobyte fee rate of a UTXO basis. It panics when
// called on any other variant, as that is a caller contract violation.
func (b *FeeBasis) FeePerKB() btcutil.Amount {
	if b.basisType != BasisUTXO {
		panic("chainfee: fee basis is not utxo-rate")
	}

	return b.feePerKB
}

// SizeBytes returns the serialized transaction size of a UTXO basis. It
// panics when called on any other variant.
func (b *FeeBasis) SizeBytes() uint32 {
	if b.basisType != BasisUTXO {
		panic("chainfee: fee basis is not utxo-rate")
	}

	return b.sizeBytes
}

// GasLimit returns the gas limit of a gas basis. It panics when called on
// any other variant.
func (b *FeeBasis) GasLimit() uint64 {
	if b.basisType != BasisGas {
		panic("chainfee: fee basis is not gas-based")
	}

	return b.gasLimit
}

// GasPrice returns the gas price of a gas basis. It panics when called on
// any other variant.
func (b *FeeBasis) GasPrice() uint64 {
	if b.basisType != BasisGas {
		panic("chainfee: fee basis is not gas-based")
	}

	return b.gasPrice
}

// GenericCost returns the opaque cost factor of a generic basis. It panics
// when called on any other variant.
func (b *FeeBasis) GenericCost() uint64 {
	if b.basisType != BasisGeneric {
		panic("chainfee: fee basis is not generic")
	}

	return b.costFactor
}
