package buildconfig

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/chainconfig/pkg/secrets"
)

// DefaultCompilerVersion is the Solidity compiler version used when the loader
// is not given another one.
const DefaultCompilerVersion = "0.8.28"

// BuildConfig is the assembled build configuration.
type BuildConfig struct {
	compilerVersion string
	sources         map[string]NetworkSpec

	// Networks maps a network name to its endpoint.
	Networks map[string]NetworkEndpoint

	// EtherscanAPIKey is nil when the explorer key variable is unset.
	EtherscanAPIKey *secrets.Secret
}

// NetworkEndpoint is a named remote node plus the accounts that sign for it.
type NetworkEndpoint struct {
	// URL is nil when the URL variable is unset, and points to "" when it is set empty.
	URL *string `json:"url,omitempty"`

	// Accounts is never nil; it is empty when no signing key is configured.
	Accounts []secrets.Secret `json:"accounts"`
}

// CompilerVersion returns the compiler version the configuration was loaded with.
func (c *BuildConfig) CompilerVersion() string {
	return c.compilerVersion
}

// Network returns the endpoint registered under name.
func (c *BuildConfig) Network(name string) (NetworkEndpoint, bool) {
	ep, ok := c.Networks[name]
	return ep, ok
}

// NetworkNames returns the configured network names in sorted order.
func (c *BuildConfig) NetworkNames() []string {
	return slices.Sorted(maps.Keys(c.Networks))
}

// Source returns the variables the named network was read from.
func (c *BuildConfig) Source(name string) (NetworkSpec, bool) {
	spec, ok := c.sources[name]
	return spec, ok
}

// HasURL reports whether the URL variable was set, even if empty.
func (e NetworkEndpoint) HasURL() bool {
	return e.URL != nil
}

// HasAccounts reports whether at least one signing account is configured.
func (e NetworkEndpoint) HasAccounts() bool {
	return len(e.Accounts) > 0
}
