package digo

import (
	"fmt"
	"io"
	"reflect"
	"slices"
	"sync/atomic"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"
)

// Resolver hands out service instances according to their registered lifetime.
// It is created by Registry.Build and is safe for concurrent use. The set of
// registrations never changes; only singleton slots are filled lazily, each
// guarded by its own lock.
type Resolver struct {
	descriptors map[ServiceKey]*descriptor
	logger      zerolog.Logger
	closed      atomic.Bool
}

// RegistrationInfo describes a registered service for introspection.
type RegistrationInfo struct {
	Key         ServiceKey
	Lifetime    Lifetime
	Initialized bool
	// Failed is set for a singleton whose factory failed. The failure is
	// cached and returned by every Resolve.
	Failed bool
}

// Resolve returns the instance registered for key.
// Transient services are built on every call and belong to the caller.
// Singleton services are built once and the same instance is returned to every caller.
// Returns ServiceNotRegisteredError if key is not registered.
// Returns FactoryError if the factory failed.
func (r *Resolver) Resolve(key ServiceKey) (any, error) {
	if r.closed.Load() {
		return nil, ErrResolverClosed
	}
	d, ok := r.descriptors[key]
	if !ok {
		return nil, &ServiceNotRegisteredError{Key: key}
	}
	return d.get(r)
}

// Has reports whether key is registered.
func (r *Resolver) Has(key ServiceKey) bool {
	_, ok := r.descriptors[key]
	return ok
}

// Keys returns every registered key ordered by name, then by package path.
func (r *Resolver) Keys() []ServiceKey {
	keys := make([]ServiceKey, 0, len(r.descriptors))
	for key := range r.descriptors {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, compareKeys)
	return keys
}

// Registrations returns a snapshot of every registration ordered by key.
func (r *Resolver) Registrations() []RegistrationInfo {
	keys := r.Keys()
	infos := make([]RegistrationInfo, 0, len(keys))
	for _, key := range keys {
		d := r.descriptors[key]
		infos = append(infos, RegistrationInfo{
			Key:         key,
			Lifetime:    d.lifetime,
			Initialized: d.lifetime == Singleton && d.initialized(),
			Failed:      d.lifetime == Singleton && d.failed(),
		})
	}
	return infos
}

// Close releases every materialized singleton. Singletons implementing
// io.Closer are closed. Any later Resolve fails with ErrResolverClosed.
// Calling Close more than once is a no-op.
func (r *Resolver) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}

	var err error
	count := 0
	for _, key := range r.Keys() {
		d := r.descriptors[key]
		if d.lifetime != Singleton {
			continue
		}
		inst := d.release()
		if inst == nil || inst.err != nil {
			continue
		}
		count++
		if closer, ok := inst.value.(io.Closer); ok {
			if cerr := closer.Close(); cerr != nil {
				err = multierr.Append(err, fmt.Errorf("close %s: %w", key, cerr))
			}
		}
	}

	r.logger.Debug().Int("count", count).Msg("service resolver closed")
	return err
}

// Resolve returns the instance registered for T.
func Resolve[T any](r *Resolver) (T, error) {
	return ResolveKey[T](r, KeyOf[T]())
}

// ResolveNamed returns the instance registered for T under name.
func ResolveNamed[T any](r *Resolver, name string) (T, error) {
	return ResolveKey[T](r, NamedKeyOf[T](name))
}

// ResolveKey resolves key and asserts the instance to T.
// Returns TypeMismatchError if the instance does not implement T.
func ResolveKey[T any](r *Resolver, key ServiceKey) (T, error) {
	var zero T
	v, err := r.Resolve(key)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, &TypeMismatchError{
			Key:      key,
			Expected: typeString(reflect.TypeOf((*T)(nil)).Elem()),
			Got:      fmt.Sprintf("%T", v),
		}
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on error.
func MustResolve[T any](r *Resolver) T {
	v, err := Resolve[T](r)
	if err != nil {
		panic(err)
	}
	return v
}
