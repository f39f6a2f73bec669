// Package config provides type-safe environment variable loading with caching
// using Go generics. It is a thin layer over caarlos0/env.
//
// Two entry points are available. Parse fills a struct from an explicit
// environment mapping and never caches, which keeps tests deterministic.
// Load reads the process environment and caches the result per type, so each
// configuration type is loaded once per application lifetime.
//
// Load never reads a .env file and never changes the process environment.
// Secrets files are parsed by core/envfile, which keeps values literal.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/chainconfig/core/config"
//
//	type Settings struct {
//		SecretsFile string `env:"CHAINCONFIG_SECRETS_FILE" envDefault:".env"`
//		LogLevel    string `env:"CHAINCONFIG_LOG_LEVEL" envDefault:"info"`
//	}
//
//	func main() {
//		var s Settings
//
//		// Load with error handling
//		if err := config.Load(&s); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&s)
//	}
//
// Parsing an injected environment:
//
//	var s Settings
//	err := config.Parse(&s, config.WithEnvironment(map[string]string{
//		"CHAINCONFIG_LOG_LEVEL": "debug",
//	}))
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 Settings
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 Settings
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently. Parse bypasses the cache.
package config
