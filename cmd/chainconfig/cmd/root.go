package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/chainconfig/core/buildconfig"
	"github.com/dmitrymomot/chainconfig/core/config"
	"github.com/dmitrymomot/chainconfig/core/logger"
	"github.com/dmitrymomot/chainconfig/integration/ethereum"
)

// Version is set at build time.
var Version = "dev"

// Exit codes returned by the chainconfig command.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// UsageError reports invalid command line input.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	var uerr *UsageError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &uerr):
		return ExitUsage
	default:
		return ExitError
	}
}

type options struct {
	network     string
	secretsFile string
	logLevel    string
	logFormat   string
}

type networkReport struct {
	Network  string   `json:"network"`
	Accounts []string `json:"accounts"`
}

// NewRootCommand builds the chainconfig command reading from environ.
// Flag defaults come from the CHAINCONFIG_* settings in environ.
func NewRootCommand(environ map[string]string) *cobra.Command {
	var settings buildconfig.Settings
	settingsErr := config.Parse(&settings, config.WithEnvironment(environ))

	var opts options
	rootCmd := &cobra.Command{
		Use:   "chainconfig",
		Short: "Print the smart-contract build configuration",
		Long: `chainconfig loads the build configuration (compiler version, network
endpoints with signing accounts and the explorer API key) from the
environment and an optional secrets file, and prints it as JSON with
every secret redacted.

With --network, the named network is resolved and its signer addresses
are printed instead, which fails when its URL or signing key is missing.`,
		Version:       Version,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if settingsErr != nil {
				return settingsErr
			}
			return run(cmd, environ, opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.network, "network", "",
		"resolve this network and print its signer addresses")
	rootCmd.Flags().StringVar(&opts.secretsFile, "secrets-file", settings.SecretsFile,
		"path to the KEY=value secrets file, empty disables it")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", settings.LogLevel,
		"log level: debug, info, warn or error")
	rootCmd.Flags().StringVar(&opts.logFormat, "log-format", settings.LogFormat,
		"log format: text or json")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	rootCmd.SetVersionTemplate("chainconfig {{.Version}}\n")

	return rootCmd
}

// Execute runs the root command against the process environment.
// This is called by main.main().
func Execute() error {
	return NewRootCommand(buildconfig.Environ()).Execute()
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &UsageError{Err: err}
	}
	return nil
}

func run(cmd *cobra.Command, environ map[string]string, opts options) error {
	level, err := logger.ParseLevel(opts.logLevel)
	if err != nil {
		return &UsageError{Err: err}
	}
	format, err := logger.ParseFormat(opts.logFormat)
	if err != nil {
		return &UsageError{Err: err}
	}

	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(logger.Component("cli")),
	)

	loader, err := buildconfig.New(
		buildconfig.WithSecretsFile(opts.secretsFile),
		buildconfig.WithLogger(log),
	)
	if err != nil {
		return err
	}

	cfg, err := loader.Load(environ)
	if err != nil {
		return err
	}

	var out any = cfg.Host()
	if opts.network != "" {
		n, err := ethereum.Resolve(cfg, opts.network)
		if err != nil {
			return err
		}

		report := networkReport{Network: n.Name()}
		for _, addr := range n.Accounts() {
			report.Accounts = append(report.Accounts, addr.Hex())
		}
		log.Info("network resolved", logger.Network(n.Name()), logger.Count("accounts", len(report.Accounts)))
		out = report
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
