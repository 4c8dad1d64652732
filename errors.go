package digo

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is against the typed errors below.
var (
	ErrServiceNotRegistered = errors.New("service not registered")
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrFactoryFailed        = errors.New("factory failed")
	ErrNilFactory           = errors.New("nil factory")
	ErrInvalidKey           = errors.New("invalid service key")
	ErrInvalidLifetime      = errors.New("invalid lifetime")
	ErrRegistryBuilt        = errors.New("registry already built")
	ErrResolverClosed       = errors.New("resolver closed")
)

// ServiceNotRegisteredError represents a lookup for a key without a descriptor.
type ServiceNotRegisteredError struct {
	Key ServiceKey
}

func (e *ServiceNotRegisteredError) Error() string {
	return fmt.Sprintf("no service registered for type: %s", e.Key)
}

func (e *ServiceNotRegisteredError) Is(target error) bool {
	return target == ErrServiceNotRegistered
}

// TypeMismatchError represents a resolved instance that does not implement the requested type.
type TypeMismatchError struct {
	Key      ServiceKey
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch for %s: expected %s, got %s", e.Key, e.Expected, e.Got)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// FactoryError represents a factory that returned an error.
type FactoryError struct {
	Key ServiceKey
	Err error
}

func (e *FactoryError) Error() string {
	return fmt.Sprintf("factory failed for type %s: %v", e.Key, e.Err)
}

func (e *FactoryError) Is(target error) bool {
	return target == ErrFactoryFailed
}

func (e *FactoryError) Unwrap() error {
	return e.Err
}

// NilFactoryError represents an attempt to register a nil factory.
type NilFactoryError struct {
	Key ServiceKey
}

func (e *NilFactoryError) Error() string {
	return fmt.Sprintf("nil factory provided for type: %s", e.Key)
}

func (e *NilFactoryError) Is(target error) bool {
	return target == ErrNilFactory
}

// InvalidKeyError represents a registration with the zero ServiceKey.
type InvalidKeyError struct {
	Key ServiceKey
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid service key: %s", e.Key)
}

func (e *InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

// InvalidLifetimeError represents a registration with an unknown lifetime.
type InvalidLifetimeError struct {
	Key      ServiceKey
	Lifetime Lifetime
}

func (e *InvalidLifetimeError) Error() string {
	return fmt.Sprintf("invalid lifetime %s for type %s", e.Lifetime, e.Key)
}

func (e *InvalidLifetimeError) Is(target error) bool {
	return target == ErrInvalidLifetime
}
