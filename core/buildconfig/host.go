package buildconfig

import (
	"slices"

	"github.com/dmitrymomot/chainconfig/pkg/secrets"
)

// HostConfig is the record shape the host build tool consumes:
// compiler version under "solidity", networks keyed by name with url and
// accounts, and the explorer key under "etherscan.apiKey".
type HostConfig struct {
	Solidity  string                     `json:"solidity"`
	Networks  map[string]NetworkEndpoint `json:"networks"`
	Etherscan EtherscanConfig            `json:"etherscan"`
}

// EtherscanConfig holds contract explorer verification settings.
type EtherscanConfig struct {
	APIKey *secrets.Secret `json:"apiKey,omitempty"`
}

// Host returns a copy of the configuration in the host tool's shape.
// Marshalling the result never exposes secret values.
func (c *BuildConfig) Host() HostConfig {
	networks := make(map[string]NetworkEndpoint, len(c.Networks))
	for name, ep := range c.Networks {
		out := NetworkEndpoint{Accounts: slices.Clone(ep.Accounts)}
		if out.Accounts == nil {
			out.Accounts = []secrets.Secret{}
		}
		if ep.URL != nil {
			u := *ep.URL
			out.URL = &u
		}
		networks[name] = out
	}

	var apiKey *secrets.Secret
	if c.EtherscanAPIKey != nil {
		k := *c.EtherscanAPIKey
		apiKey = &k
	}

	return HostConfig{
		Solidity:  c.compilerVersion,
		Networks:  networks,
		Etherscan: EtherscanConfig{APIKey: apiKey},
	}
}
