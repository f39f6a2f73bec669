package ethereum

import (
	"errors"
	"fmt"
)

var (
	ErrNilConfig         = errors.New("build config is nil")
	ErrMissingCredential = errors.New("missing network credential")
	ErrUnknownNetwork    = errors.New("unknown network")
	ErrInvalidAccount    = errors.New("invalid signing account")
	ErrUnknownAccount    = errors.New("account is not configured for network")
	ErrInvalidDigest     = errors.New("digest must be 32 bytes")
	ErrDialFailed        = errors.New("failed to dial network")
)

// Credential fields reported by MissingCredentialError.
const (
	FieldURL      = "url"
	FieldAccounts = "accounts"
)

// MissingCredentialError is returned when a network is used without a URL or
// a signing account.
type MissingCredentialError struct {
	Network  string
	Field    string
	Variable string
}

// Error implements the error interface.
func (e *MissingCredentialError) Error() string {
	if e.Variable == "" {
		return fmt.Sprintf("network %q: %s is not configured", e.Network, e.Field)
	}
	return fmt.Sprintf("network %q: %s is not configured (set %s)", e.Network, e.Field, e.Variable)
}

// Is reports whether target is ErrMissingCredential.
func (e *MissingCredentialError) Is(target error) bool {
	return target == ErrMissingCredential
}

// InvalidAccountError is returned when a signing key cannot be decoded.
// It never carries key material.
type InvalidAccountError struct {
	Network  string
	Index    int
	Variable string
}

// Error implements the error interface.
func (e *InvalidAccountError) Error() string {
	msg := fmt.Sprintf("network %q: account %d is not a valid secp256k1 private key", e.Network, e.Index)
	if e.Variable != "" {
		msg += " (check " + e.Variable + ")"
	}
	return msg
}

// Is reports whether target is ErrInvalidAccount.
func (e *InvalidAccountError) Is(target error) bool {
	return target == ErrInvalidAccount
}
