package digo_test

import (
	"errors"
	"testing"

	"github.com/centraunit/digo"
	"github.com/centraunit/digo/mock"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	key := digo.KeyOf[mock.Database]()
	cause := errors.New("dial tcp: refused")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{"NotRegistered", &digo.ServiceNotRegisteredError{Key: key}, digo.ErrServiceNotRegistered, "no service registered for type: mock.Database"},
		{"TypeMismatch", &digo.TypeMismatchError{Key: key, Expected: "mock.Database", Got: "int"}, digo.ErrTypeMismatch, "type mismatch for mock.Database: expected mock.Database, got int"},
		{"Factory", &digo.FactoryError{Key: key, Err: cause}, digo.ErrFactoryFailed, "factory failed for type mock.Database: dial tcp: refused"},
		{"NilFactory", &digo.NilFactoryError{Key: key}, digo.ErrNilFactory, "nil factory provided for type: mock.Database"},
		{"InvalidKey", &digo.InvalidKeyError{}, digo.ErrInvalidKey, "invalid service key: <nil>"},
		{"InvalidLifetime", &digo.InvalidLifetimeError{Key: key, Lifetime: 3}, digo.ErrInvalidLifetime, "invalid lifetime lifetime(3) for type mock.Database"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.message)
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.NotErrorIs(t, tt.err, digo.ErrRegistryBuilt)
		})
	}
}

func TestFactoryErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := &digo.FactoryError{Key: digo.KeyOf[mock.Database](), Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Same(t, cause, errors.Unwrap(err))
}
