package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"slices"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/dmitrymomot/chainconfig/core/buildconfig"
)

// Network is a resolved network: a usable RPC URL and decoded signing keys.
type Network struct {
	name  string
	url   string
	keys  []*ecdsa.PrivateKey
	addrs []ethcommon.Address
}

// Resolve selects the named network from cfg for use.
// It fails with ErrNilConfig, ErrUnknownNetwork, *MissingCredentialError or
// *InvalidAccountError.
func Resolve(cfg *buildconfig.BuildConfig, name string) (*Network, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	ep, ok := cfg.Network(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
	spec, _ := cfg.Source(name)

	if ep.URL == nil || *ep.URL == "" {
		return nil, &MissingCredentialError{Network: name, Field: FieldURL, Variable: spec.URLVar}
	}
	if len(ep.Accounts) == 0 {
		return nil, &MissingCredentialError{Network: name, Field: FieldAccounts, Variable: spec.KeyVar}
	}

	n := &Network{
		name:  name,
		url:   *ep.URL,
		keys:  make([]*ecdsa.PrivateKey, 0, len(ep.Accounts)),
		addrs: make([]ethcommon.Address, 0, len(ep.Accounts)),
	}
	for i, acc := range ep.Accounts {
		key, err := parsePrivateKey(acc.Reveal())
		if err != nil {
			return nil, &InvalidAccountError{Network: name, Index: i, Variable: spec.KeyVar}
		}
		n.keys = append(n.keys, key)
		n.addrs = append(n.addrs, crypto.PubkeyToAddress(key.PublicKey))
	}

	return n, nil
}

// Name returns the network name.
func (n *Network) Name() string {
	return n.name
}

// URL returns the RPC endpoint.
func (n *Network) URL() string {
	return n.url
}

// Accounts returns the signer addresses in configuration order.
func (n *Network) Accounts() []ethcommon.Address {
	return slices.Clone(n.addrs)
}

// Sign signs a 32-byte digest with the key of the given account.
// The signature is in [R || S || V] form with V being 0 or 1.
func (n *Network) Sign(account ethcommon.Address, digest []byte) ([]byte, error) {
	if len(digest) != 32 {
		return nil, ErrInvalidDigest
	}

	i := slices.Index(n.addrs, account)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s on %q", ErrUnknownAccount, account.Hex(), n.name)
	}

	sig, err := crypto.Sign(digest, n.keys[i])
	if err != nil {
		return nil, fmt.Errorf("sign digest: %w", err)
	}
	return sig, nil
}

// Dial connects an ethclient to the network's RPC endpoint.
// The URL is left out of errors since providers embed API keys in it.
func (n *Network) Dial(ctx context.Context) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, n.url)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrDialFailed, n.name)
	}
	return client, nil
}

func parsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	hexKey = strings.TrimSpace(hexKey)
	if len(hexKey) >= 2 && (hexKey[:2] == "0x" || hexKey[:2] == "0X") {
		hexKey = hexKey[2:]
	}
	return crypto.HexToECDSA(hexKey)
}
