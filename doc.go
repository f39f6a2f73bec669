// Package chainconfig loads the build configuration of a smart-contract
// toolchain (compiler version, network endpoints with signing accounts and the
// contract explorer API key) from the environment and an optional local
// secrets file.
//
// # Package Organization
//
//	github.com/dmitrymomot/chainconfig/core/buildconfig  - Environment to BuildConfig mapping and host-shaped export
//	github.com/dmitrymomot/chainconfig/core/envfile      - KEY=value secrets file parsing and merging
//	github.com/dmitrymomot/chainconfig/core/config       - Type-safe environment variable loading
//	github.com/dmitrymomot/chainconfig/core/logger       - Structured logging helpers built on slog
//	github.com/dmitrymomot/chainconfig/pkg/secrets       - Redacting wrapper for secret strings
//	github.com/dmitrymomot/chainconfig/integration/ethereum - Network resolution, signing and RPC dialling with go-ethereum
//
// The chainconfig command in cmd/chainconfig prints the loaded configuration
// with secrets redacted, or resolves a single network.
//
// # Getting Documentation
//
//	go doc github.com/dmitrymomot/chainconfig/core/buildconfig
//	go doc -all github.com/dmitrymomot/chainconfig/integration/ethereum
package chainconfig
