package digo

import (
	"sync"

	"github.com/rs/zerolog"
)

// Registry collects service registrations before any resolution happens.
// It is safe for concurrent use. Once Build has been called every further
// Register or Build call fails with ErrRegistryBuilt.
type Registry struct {
	mu          sync.Mutex
	descriptors map[ServiceKey]*descriptor
	built       bool
	logger      zerolog.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	o := newOptions(opts)
	return &Registry{
		descriptors: make(map[ServiceKey]*descriptor, o.capacity),
		logger:      o.logger,
	}
}

// Register inserts the descriptor for key, replacing any earlier registration
// for the same key.
func (reg *Registry) Register(key ServiceKey, lifetime Lifetime, factory Factory) error {
	if key.IsZero() {
		return &InvalidKeyError{Key: key}
	}
	if !lifetime.valid() {
		return &InvalidLifetimeError{Key: key, Lifetime: lifetime}
	}
	if factory == nil {
		return &NilFactoryError{Key: key}
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if reg.built {
		return ErrRegistryBuilt
	}

	if prev, ok := reg.descriptors[key]; ok {
		reg.logger.Debug().
			Str("service", key.String()).
			Str("lifetime", lifetime.String()).
			Str("previous_lifetime", prev.lifetime.String()).
			Msg("replacing service registration")
	}
	reg.descriptors[key] = newDescriptor(key, lifetime, factory)
	return nil
}

// RegisterSingleton registers factory for key with the Singleton lifetime.
func (reg *Registry) RegisterSingleton(key ServiceKey, factory Factory) error {
	return reg.Register(key, Singleton, factory)
}

// RegisterTransient registers factory for key with the Transient lifetime.
func (reg *Registry) RegisterTransient(key ServiceKey, factory Factory) error {
	return reg.Register(key, Transient, factory)
}

// Len returns the number of registered services. It is zero once the registry is built.
func (reg *Registry) Len() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return len(reg.descriptors)
}

// Build seals the registry and returns a Resolver holding every registration
// made so far. Singleton slots start empty.
func (reg *Registry) Build() (*Resolver, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if reg.built {
		return nil, ErrRegistryBuilt
	}
	reg.built = true

	// The resolver takes the map over, the registry never touches it again.
	snapshot := reg.descriptors
	reg.descriptors = nil

	reg.logger.Debug().Int("count", len(snapshot)).Msg("service registry built")

	return &Resolver{
		descriptors: snapshot,
		logger:      reg.logger,
	}, nil
}

// BindSingleton registers factory as the Singleton implementation of T.
func BindSingleton[T any](reg *Registry, factory func(r *Resolver) (T, error)) error {
	return reg.RegisterSingleton(KeyOf[T](), wrapFactory(factory))
}

// BindTransient registers factory as the Transient implementation of T.
func BindTransient[T any](reg *Registry, factory func(r *Resolver) (T, error)) error {
	return reg.RegisterTransient(KeyOf[T](), wrapFactory(factory))
}

// BindSingletonFunc registers a zero-argument constructor as the Singleton implementation of T.
func BindSingletonFunc[T any](reg *Registry, ctor func() T) error {
	return reg.RegisterSingleton(KeyOf[T](), wrapConstructor(ctor))
}

// BindTransientFunc registers a zero-argument constructor as the Transient implementation of T.
func BindTransientFunc[T any](reg *Registry, ctor func() T) error {
	return reg.RegisterTransient(KeyOf[T](), wrapConstructor(ctor))
}

func wrapFactory[T any](factory func(r *Resolver) (T, error)) Factory {
	if factory == nil {
		return nil
	}
	return func(r *Resolver) (any, error) {
		v, err := factory(r)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func wrapConstructor[T any](ctor func() T) Factory {
	if ctor == nil {
		return nil
	}
	return func(*Resolver) (any, error) {
		return ctor(), nil
	}
}
