package secrets

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// Redacted is the placeholder rendered in place of a secret value.
const Redacted = "[REDACTED]"

// Secret holds a sensitive string value.
type Secret struct {
	value string
}

// New wraps value in a Secret.
func New(value string) Secret {
	return Secret{value: value}
}

// Reveal returns the raw value.
func (s Secret) Reveal() string {
	return s.value
}

// IsZero reports whether the secret holds an empty value.
func (s Secret) IsZero() bool {
	return s.value == ""
}

// Equal reports whether both secrets hold the same value.
func (s Secret) Equal(other Secret) bool {
	return s.value == other.value
}

// String implements fmt.Stringer.
func (s Secret) String() string {
	return Redacted
}

// GoString implements fmt.GoStringer.
func (s Secret) GoString() string {
	return "secrets.Secret{" + Redacted + "}"
}

// Format implements fmt.Formatter so that every verb, including %x and %q,
// prints the placeholder.
func (s Secret) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = io.WriteString(f, s.GoString())
		return
	}
	_, _ = io.WriteString(f, Redacted)
}

// LogValue implements slog.LogValuer.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(Redacted)
}

// MarshalJSON implements json.Marshaler.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(Redacted)
}

// MarshalText implements encoding.TextMarshaler.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(Redacted), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and stores the raw value.
func (s *Secret) UnmarshalText(text []byte) error {
	s.value = string(text)
	return nil
}
