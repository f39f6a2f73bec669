package envfile

import (
	"errors"
	"fmt"
)

// ErrMalformedSecretsFile is matched by every *MalformedError.
var ErrMalformedSecretsFile = errors.New("malformed secrets file")

// MalformedError reports a secrets file line that is not a valid KEY=value pair.
type MalformedError struct {
	Path   string
	Line   int
	Reason string
}

// Error implements the error interface.
func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed secrets file %s: line %d: %s", e.Path, e.Line, e.Reason)
}

// Is reports whether target is ErrMalformedSecretsFile.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedSecretsFile
}
