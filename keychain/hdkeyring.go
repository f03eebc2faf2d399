package keychain

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// accountIndex is the hardened account all wallet keys descend from, giving
// the derivation path m/0'/branch/index.
const accountIndex = 0

// HDKeyRing is a SecretKeyRing backed by a BIP32 hierarchy. The extended
// public key for the account is derived once at construction, so address
// derivation never touches the seed. Private key derivation re-fetches the
// seed on every call and discards all intermediate key material before
// returning.
type HDKeyRing struct {
	acctPub   *hdkeychain.ExtendedKey
	fetchSeed SeedFetcher
	netParams *chaincfg.Params
}

// A compile time check to ensure HDKeyRing satisfies the SecretKeyRing
// interface.
var _ SecretKeyRing = (*HDKeyRing)(nil)

// NewHDKeyRing creates a key ring over the seed supplied by fetchSeed,
// deriving addresses encoded for the given network.
func NewHDKeyRing(fetchSeed SeedFetcher,
	netParams *chaincfg.Params) (*HDKeyRing, error) {

	if fetchSeed == nil {
		return nil, fmt.Errorf("keychain: seed fetcher is required")
	}

	acct, err := deriveAccountKey(fetchSeed, netParams, "")
	if err != nil {
		return nil, err
	}
	defer acct.Zero()

	neutered, err := acct.Neuter()
	if err != nil {
		return nil, fmt.Errorf("unable to neuter account key: %w", err)
	}

	// The neutered key shares its key material buffers with the private
	// parent, which the deferred Zero wipes. Round-trip through the
	// serialized form to obtain an independent copy.
	acctPub, err := hdkeychain.NewKeyFromString(neutered.String())
	if err != nil {
		return nil, fmt.Errorf("unable to copy account key: %w", err)
	}

	return &HDKeyRing{
		acctPub:   acctPub,
		fetchSeed: fetchSeed,
		netParams: netParams,
	}, nil
}

// deriveAccountKey fetches the seed and derives the hardened account key
// m/0' from it.
func deriveAccountKey(fetchSeed SeedFetcher, netParams *chaincfg.Params,
	authPrompt string) (*hdkeychain.ExtendedKey, error) {

	seed, err := fetchSeed(authPrompt)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch seed: %w", err)
	}

	master, err := hdkeychain.NewMaster(seed, netParams)
	if err != nil {
		return nil, fmt.Errorf("unable to derive master key: %w", err)
	}
	defer master.Zero()

	acct, err := master.Derive(
		hdkeychain.HardenedKeyStart + accountIndex,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to derive account key: %w", err)
	}

	return acct, nil
}

// AccountPubKey returns the neutered extended key for the wallet account.
// External components can use it to watch for wallet addresses without any
// access to the seed.
func (r *HDKeyRing) AccountPubKey() *hdkeychain.ExtendedKey {
	return r.acctPub
}

// DeriveAddress returns the pay-to-pubkey-hash address at the given locator.
//
// NOTE: This is part of the KeyRing interface.
func (r *HDKeyRing) DeriveAddress(loc KeyLocator) (btcutil.Address, error) {
	branchKey, err := r.acctPub.Derive(uint32(loc.Branch))
	if err != nil {
		return nil, fmt.Errorf("unable to derive %v branch: %w",
			loc.Branch, err)
	}

	indexKey, err := branchKey.Derive(loc.Index)
	if err != nil {
		return nil, fmt.Errorf("unable to derive index %d: %w",
			loc.Index, err)
	}

	return indexKey.Address(r.netParams)
}

// DerivePrivKey returns the private key at the given locator. The auth
// prompt is passed through to the seed fetcher.
//
// NOTE: This is part of the SecretKeyRing interface.
func (r *HDKeyRing) DerivePrivKey(loc KeyLocator,
	authPrompt string) (*btcec.PrivateKey, error) {

	acct, err := deriveAccountKey(r.fetchSeed, r.netParams, authPrompt)
	if err != nil {
		return nil, err
	}
	defer acct.Zero()

	branchKey, err := acct.Derive(uint32(loc.Branch))
	if err != nil {
		return nil, fmt.Errorf("unable to derive %v branch: %w",
			loc.Branch, err)
	}
	defer branchKey.Zero()

	indexKey, err := branchKey.Derive(loc.Index)
	if err != nil {
		return nil, fmt.Errorf("unable to derive index %d: %w",
			loc.Index, err)
	}
	defer indexKey.Zero()

	return indexKey.ECPrivKey()
}
