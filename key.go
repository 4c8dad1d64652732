package digo

import (
	"cmp"
	"reflect"
	"sync"
)

var typeStringCache sync.Map

// ServiceKey identifies a registered service.
// Two keys are equal when they name the same service type and the same name.
type ServiceKey struct {
	typ  reflect.Type
	name string
}

// KeyOf returns the key for service type T.
// T is normally the interface a service is resolved through, not its concrete type.
func KeyOf[T any]() ServiceKey {
	return ServiceKey{typ: reflect.TypeOf((*T)(nil)).Elem()}
}

// NamedKeyOf returns a key for T that is distinct from KeyOf[T]() and from
// keys of T with any other name.
func NamedKeyOf[T any](name string) ServiceKey {
	return ServiceKey{typ: reflect.TypeOf((*T)(nil)).Elem(), name: name}
}

// Type returns the service type the key was derived from.
func (k ServiceKey) Type() reflect.Type {
	return k.typ
}

// Name returns the key name, empty for unnamed keys.
func (k ServiceKey) Name() string {
	return k.name
}

// IsZero reports whether k is the zero key, which cannot be registered.
func (k ServiceKey) IsZero() bool {
	return k.typ == nil
}

func (k ServiceKey) String() string {
	if k.typ == nil {
		return "<nil>"
	}
	if k.name == "" {
		return typeString(k.typ)
	}
	return typeString(k.typ) + "#" + k.name
}

func typeString(t reflect.Type) string {
	if cached, ok := typeStringCache.Load(t); ok {
		return cached.(string)
	}
	s := t.String()
	typeStringCache.Store(t, s)
	return s
}

// compareKeys orders keys by their rendering. Types from different packages
// can render the same, so ties fall back to the package path.
func compareKeys(a, b ServiceKey) int {
	return cmp.Or(
		cmp.Compare(a.String(), b.String()),
		cmp.Compare(pkgPath(a.typ), pkgPath(b.typ)),
	)
}

// pkgPath returns the import path of the named type underneath t.
func pkgPath(t reflect.Type) string {
	for t != nil {
		if path := t.PkgPath(); path != "" {
			return path
		}
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
			t = t.Elem()
		default:
			return ""
		}
	}
	return ""
}
