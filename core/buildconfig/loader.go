package buildconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"time"

	"github.com/dmitrymomot/chainconfig/core/envfile"
	"github.com/dmitrymomot/chainconfig/core/logger"
	"github.com/dmitrymomot/chainconfig/pkg/secrets"
)

// Loader maps environment variables onto a BuildConfig.
// It is immutable after New and safe for concurrent use.
type Loader struct {
	compilerVersion string
	networks        []NetworkSpec
	explorerKeyVar  string
	secretsFile     string
	log             *slog.Logger
}

// New creates a Loader. Without options it reads the default network table,
// DefaultExplorerKeyVar and DefaultSecretsFile.
func New(opts ...Option) (*Loader, error) {
	l := &Loader{
		compilerVersion: DefaultCompilerVersion,
		networks:        DefaultNetworks(),
		explorerKeyVar:  DefaultExplorerKeyVar,
		secretsFile:     DefaultSecretsFile,
		log:             logger.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.compilerVersion == "" {
		return nil, ErrEmptyCompiler
	}
	if l.explorerKeyVar == "" {
		return nil, fmt.Errorf("explorer key: %w", ErrEmptyVariableName)
	}

	seen := make(map[string]struct{}, len(l.networks))
	for _, spec := range l.networks {
		if spec.Name == "" {
			return nil, ErrEmptyNetworkName
		}
		if spec.URLVar == "" || spec.KeyVar == "" {
			return nil, fmt.Errorf("network %q: %w", spec.Name, ErrEmptyVariableName)
		}
		if _, ok := seen[spec.Name]; ok {
			return nil, fmt.Errorf("network %q: %w", spec.Name, ErrDuplicateNetwork)
		}
		seen[spec.Name] = struct{}{}
	}

	l.log = l.log.With(logger.Component("buildconfig"))
	return l, nil
}

// Load is a shortcut for a default Loader's Load.
func Load(environ map[string]string) (*BuildConfig, error) {
	l, err := New()
	if err != nil {
		return nil, err
	}
	return l.Load(environ)
}

// Load builds a BuildConfig from environ merged with the secrets file.
// environ itself is not modified. The only error is a secrets file that
// exists but cannot be read or parsed.
func (l *Loader) Load(environ map[string]string) (*BuildConfig, error) {
	start := time.Now()

	env := make(map[string]string, len(environ))
	maps.Copy(env, environ)

	if err := l.mergeSecretsFile(env); err != nil {
		l.log.Error("secrets file rejected", logger.File(l.secretsFile), logger.Error(err))
		return nil, fmt.Errorf("load build config: %w", err)
	}

	cfg := &BuildConfig{
		compilerVersion: l.compilerVersion,
		sources:         make(map[string]NetworkSpec, len(l.networks)),
		Networks:        make(map[string]NetworkEndpoint, len(l.networks)),
	}

	for _, spec := range l.networks {
		ep := NetworkEndpoint{Accounts: []secrets.Secret{}}
		if u, ok := env[spec.URLVar]; ok {
			ep.URL = &u
		}
		// An empty key can never sign, so it counts as no account.
		if k := env[spec.KeyVar]; k != "" {
			ep.Accounts = append(ep.Accounts, secrets.New(k))
		}

		cfg.Networks[spec.Name] = ep
		cfg.sources[spec.Name] = spec

		l.log.Debug("network assembled",
			logger.Network(spec.Name),
			logger.Group("credentials",
				logger.Configured("url", ep.HasURL()),
				logger.Count("accounts", len(ep.Accounts)),
			),
		)
		if !ep.HasURL() {
			l.log.Debug("variable not set", logger.Network(spec.Name), logger.Variable(spec.URLVar))
		}
		if !ep.HasAccounts() {
			l.log.Debug("variable not set", logger.Network(spec.Name), logger.Variable(spec.KeyVar))
		}
	}

	if k, ok := env[l.explorerKeyVar]; ok {
		key := secrets.New(k)
		cfg.EtherscanAPIKey = &key
	}

	l.log.Debug("build config loaded",
		logger.Version(cfg.compilerVersion),
		logger.Count("networks", len(cfg.Networks)),
		logger.Configured("etherscan", cfg.EtherscanAPIKey != nil),
		logger.Elapsed(start),
	)

	return cfg, nil
}

func (l *Loader) mergeSecretsFile(env map[string]string) error {
	if l.secretsFile == "" {
		return nil
	}

	vals, err := envfile.Read(l.secretsFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.log.Debug("secrets file not found", logger.File(l.secretsFile))
		return nil
	case err != nil:
		return err
	}

	added := envfile.Merge(env, vals)
	l.log.Debug("secrets file merged", logger.File(l.secretsFile), logger.Count("variables", added))
	return nil
}
