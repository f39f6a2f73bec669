package buildconfig

import "log/slog"

// DefaultSecretsFile is the secrets file read when no other path is configured.
const DefaultSecretsFile = ".env"

// DefaultExplorerKeyVar is the variable holding the contract explorer API key.
const DefaultExplorerKeyVar = "ETHERSCAN_KEY"

// NetworkSpec tells the loader which variables feed a network.
type NetworkSpec struct {
	Name   string
	URLVar string
	KeyVar string
}

// Sepolia is the default network table row.
var Sepolia = NetworkSpec{
	Name:   "sepolia",
	URLVar: "ALCHEMY_SEPOLIA_URL",
	KeyVar: "SEPOLIA_PRIVATE_KEY",
}

// DefaultNetworks returns the network table used when no WithNetworks option is given.
func DefaultNetworks() []NetworkSpec {
	return []NetworkSpec{Sepolia}
}

// Option configures a Loader.
type Option func(*Loader)

// WithNetwork adds a network to the table.
func WithNetwork(spec NetworkSpec) Option {
	return func(l *Loader) {
		l.networks = append(l.networks, spec)
	}
}

// WithNetworks replaces the whole network table.
func WithNetworks(specs ...NetworkSpec) Option {
	return func(l *Loader) {
		l.networks = append([]NetworkSpec(nil), specs...)
	}
}

// WithCompilerVersion overrides DefaultCompilerVersion.
func WithCompilerVersion(version string) Option {
	return func(l *Loader) {
		l.compilerVersion = version
	}
}

// WithExplorerKeyVar overrides DefaultExplorerKeyVar.
func WithExplorerKeyVar(name string) Option {
	return func(l *Loader) {
		l.explorerKeyVar = name
	}
}

// WithSecretsFile sets the secrets file path. An empty path disables the file.
func WithSecretsFile(path string) Option {
	return func(l *Loader) {
		l.secretsFile = path
	}
}

// WithoutSecretsFile disables the secrets file.
func WithoutSecretsFile() Option {
	return WithSecretsFile("")
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}
