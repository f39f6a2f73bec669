package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
)

// ErrParsing is returned when environment variables cannot be parsed into the target struct.
var ErrParsing = errors.New("failed to parse environment variables")

// cache holds loaded configurations keyed by their type.
var cache sync.Map

// Option adjusts how Parse reads the environment.
type Option func(*env.Options)

// WithEnvironment parses from environ instead of the process environment.
// A nil map is treated as an empty environment.
func WithEnvironment(environ map[string]string) Option {
	return func(o *env.Options) {
		if environ == nil {
			environ = map[string]string{}
		}
		o.Environment = environ
	}
}

// Parse fills cfg from the environment without caching.
func Parse[T any](cfg *T, opts ...Option) error {
	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}

	if err := env.ParseWithOptions(cfg, o); err != nil {
		return fmt.Errorf("%w: %w", ErrParsing, err)
	}
	return nil
}

// Load fills cfg from the process environment. The first successful load of
// a type is cached and returned by subsequent calls.
func Load[T any](cfg *T) error {
	key := reflect.TypeFor[T]()
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	var loaded T
	if err := Parse(&loaded); err != nil {
		return err
	}

	actual, _ := cache.LoadOrStore(key, loaded)
	*cfg = actual.(T)
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
