package buildconfig

import "errors"

var (
	// Loader construction errors
	ErrEmptyNetworkName  = errors.New("network name cannot be empty")
	ErrEmptyVariableName = errors.New("environment variable name cannot be empty")
	ErrDuplicateNetwork  = errors.New("network is already registered")
	ErrEmptyCompiler     = errors.New("compiler version cannot be empty")
)
