// Package secrets provides a string wrapper for credentials that must never
// leave the process in clear text.
//
// A Secret renders as "[REDACTED]" everywhere a value is usually turned into
// text: fmt verbs (including %#v), slog attributes, encoding/json and
// encoding.TextMarshaler. The raw value is only reachable through Reveal.
//
// # Usage
//
//	key := secrets.New(os.Getenv("SEPOLIA_PRIVATE_KEY"))
//
//	fmt.Println(key)                  // [REDACTED]
//	log.Info("loaded", "key", key)    // key=[REDACTED]
//	raw := key.Reveal()               // the actual value
//
// # Environment Parsing
//
// Secret implements encoding.TextUnmarshaler, so it can be used directly as a
// field type with caarlos0/env:
//
//	type Config struct {
//		APIKey secrets.Secret `env:"ETHERSCAN_KEY"`
//	}
//
// Unmarshalling accepts the raw value; marshalling never returns it. The
// asymmetry is intentional and means a Secret does not survive a round trip
// through JSON or text encoding.
//
// # Security Considerations
//
//   - Never pass Reveal() output to a logger or an error message
//   - Keep secrets in Secret values for as long as possible, reveal at the call site
//   - A zero Secret is valid and reports IsZero() == true
package secrets
