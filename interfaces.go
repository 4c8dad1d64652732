package digo

// Package digo provides a service registry with singleton and transient lifetimes.

import "strconv"

// Factory builds a new instance of a service.
// It receives the Resolver it is invoked from so it can resolve its own dependencies.
// A singleton factory runs while holding its service's slot lock. Resolving the
// same key from inside the factory, or two singletons resolving each other from
// different goroutines, blocks forever. Cycles are not detected.
type Factory func(r *Resolver) (any, error)

// Lifetime defines how many instances of a service are created and shared.
type Lifetime int

// Available service lifetimes
const (
	// Singleton creates one instance on first resolution and shares it afterwards
	Singleton Lifetime = iota
	// Transient creates a new instance for each resolution
	Transient
)

func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "singleton"
	case Transient:
		return "transient"
	default:
		return "lifetime(" + strconv.Itoa(int(l)) + ")"
	}
}

func (l Lifetime) valid() bool {
	return l == Singleton || l == Transient
}
