// Package buildconfig assembles the build configuration of a smart-contract
// toolchain from an environment mapping.
//
// A BuildConfig carries the compiler version, a set of named network
// endpoints (RPC URL plus signing accounts) and the contract explorer API key.
// The Loader maps environment variables onto those fields according to a
// table of NetworkSpec rows; the default table has a single "sepolia" row:
//
//	ALCHEMY_SEPOLIA_URL   -> Networks["sepolia"].URL
//	SEPOLIA_PRIVATE_KEY   -> Networks["sepolia"].Accounts[0]
//	ETHERSCAN_KEY         -> EtherscanAPIKey
//
// # Loading
//
// The environment is passed in explicitly, so loading never depends on or
// mutates process state:
//
//	cfg, err := buildconfig.Load(buildconfig.Environ())
//	if err != nil {
//		log.Fatal(err) // malformed secrets file
//	}
//
// Before lookup, the optional secrets file (".env" by default) is merged into
// a copy of the environment. Variables already present in the environment win.
// A missing file is ignored; a malformed one fails the load and no partial
// configuration is returned.
//
// Missing credentials are not an error here. A network with no URL keeps a nil
// URL, and a network with no signing key gets an empty Accounts slice. The
// network layer reports those at first use (see integration/ethereum).
//
// # Process-wide Configuration
//
// Default loads the real process environment once and returns the same result
// for the rest of the process lifetime:
//
//	cfg, err := buildconfig.Default()
//
// # Secrets
//
// Signing keys and the explorer key are secrets.Secret values. They print as
// "[REDACTED]" through fmt, slog and JSON, including in the host-shaped
// record returned by BuildConfig.Host.
package buildconfig
