package digo

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// instance is the materialized result of a singleton factory.
// A failed factory call is cached as well so the factory never runs twice.
type instance struct {
	value any
	err   error
}

// released marks a singleton slot emptied by Resolver.Close.
var released = &instance{err: ErrResolverClosed}

// descriptor is the registered record for one service key.
type descriptor struct {
	key      ServiceKey
	lifetime Lifetime
	factory  Factory

	// Singleton slot. ready is nil while empty and is written once under mu.
	mu    sync.Mutex
	ready atomic.Pointer[instance]
}

func newDescriptor(key ServiceKey, lifetime Lifetime, factory Factory) *descriptor {
	return &descriptor{
		key:      key,
		lifetime: lifetime,
		factory:  factory,
	}
}

func (d *descriptor) get(r *Resolver) (any, error) {
	if d.lifetime == Transient {
		return d.create(r)
	}

	// Fast path, already materialized
	if inst := d.ready.Load(); inst != nil {
		return inst.value, inst.err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// Double-check after acquiring the slot lock
	if inst := d.ready.Load(); inst != nil {
		return inst.value, inst.err
	}
	if r.closed.Load() {
		return nil, ErrResolverClosed
	}

	// A panicking factory still counts as its one call, as with sync.Once.
	defer func() {
		if p := recover(); p != nil {
			d.ready.Store(&instance{err: &FactoryError{Key: d.key, Err: fmt.Errorf("factory panicked: %v", p)}})
			panic(p)
		}
	}()

	value, err := d.create(r)
	d.ready.Store(&instance{value: value, err: err})

	evt := r.logger.Debug().Str("service", d.key.String()).Str("lifetime", d.lifetime.String())
	if err != nil {
		evt.Err(err).Msg("singleton factory failed")
	} else {
		evt.Msg("singleton materialized")
	}
	return value, err
}

func (d *descriptor) create(r *Resolver) (any, error) {
	value, err := d.factory(r)
	if err != nil {
		return nil, &FactoryError{Key: d.key, Err: err}
	}
	return value, nil
}

// initialized reports whether a singleton slot holds a live instance.
func (d *descriptor) initialized() bool {
	inst := d.ready.Load()
	return inst != nil && inst != released && inst.err == nil
}

// failed reports whether a singleton slot holds a cached factory failure.
func (d *descriptor) failed() bool {
	inst := d.ready.Load()
	return inst != nil && inst != released && inst.err != nil
}

// release empties the slot for good and returns what it held.
func (d *descriptor) release() *instance {
	d.mu.Lock()
	defer d.mu.Unlock()
	inst := d.ready.Swap(released)
	if inst == released {
		return nil
	}
	return inst
}
