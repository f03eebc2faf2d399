package keychain

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
)

// Branch identifies one of the two address chains of the wallet, following
// the BIP32 convention of a branch for externally visible addresses and a
// branch for internal change addresses.
type Branch uint32

const (
	// ExternalBranch is the chain of addresses handed out to other parties
	// in order to receive funds.
	ExternalBranch Branch = 0

	// InternalBranch is the chain of addresses used for change outputs of
	// transactions the wallet itself creates.
	InternalBranch Branch = 1
)

// String returns a human readable name for the branch.
func (b Branch) String() string {
	switch b {
	case ExternalBranch:
		return "external"
	case InternalBranch:
		return "internal"
	default:
		return "unknown"
	}
}

// KeyLocator is the unique address of a key within the wallet's derivation
// hierarchy: the branch it belongs to, and its index within that branch.
type KeyLocator struct {
	// Branch is the address chain the key belongs to.
	Branch Branch

	// Index is the position of the key within its branch.
	Index uint32
}

// SeedFetcher retrieves the wallet seed from wherever the application keeps
// it. The authPrompt string is surfaced to the user when unlocking the seed
// requires an authorization step, such as a PIN entry or a hardware token
// touch. Implementations should return a fresh copy the caller may zero.
type SeedFetcher func(authPrompt string) ([]byte, error)

// KeyRing describes the public half of the wallet's key derivation
// collaborator: the ability to derive addresses for any locator without
// access to private key material.
type KeyRing interface {
	// DeriveAddress returns the payment address for the given locator.
	DeriveAddress(loc KeyLocator) (btcutil.Address, error)
}

// SecretKeyRing extends KeyRing with private key derivation. Deriving a
// private key may require the seed to be unlocked, so the caller supplies an
// authorization prompt that is passed through to the seed fetcher.
type SecretKeyRing interface {
	KeyRing

	// DerivePrivKey returns the private key for the given locator.
	DerivePrivKey(loc KeyLocator, authPrompt string) (*btcec.PrivateKey,
		error)
}
