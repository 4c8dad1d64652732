package digo_test

import (
	"reflect"
	"testing"

	"github.com/centraunit/digo"
	"github.com/centraunit/digo/mock"
	shadow "github.com/centraunit/digo/mock/shadow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceKey(t *testing.T) {
	t.Run("SameTypeSameKey", func(t *testing.T) {
		assert.Equal(t, digo.KeyOf[mock.Database](), digo.KeyOf[mock.Database]())
		assert.True(t, digo.KeyOf[mock.Database]() == digo.KeyOf[mock.Database]())
	})

	t.Run("InterfaceAndImplementationDiffer", func(t *testing.T) {
		assert.NotEqual(t, digo.KeyOf[mock.Database](), digo.KeyOf[*mock.MockDB]())
		assert.Equal(t, reflect.Interface, digo.KeyOf[mock.Database]().Type().Kind())
	})

	t.Run("NamedKeys", func(t *testing.T) {
		primary := digo.NamedKeyOf[mock.Database]("primary")
		assert.NotEqual(t, digo.KeyOf[mock.Database](), primary)
		assert.NotEqual(t, digo.NamedKeyOf[mock.Database]("replica"), primary)
		assert.Equal(t, digo.NamedKeyOf[mock.Database]("primary"), primary)
		assert.Equal(t, "primary", primary.Name())
		assert.Equal(t, "mock.Database#primary", primary.String())
	})

	t.Run("ZeroKey", func(t *testing.T) {
		var key digo.ServiceKey
		assert.True(t, key.IsZero())
		assert.False(t, digo.KeyOf[int]().IsZero())
		assert.Equal(t, "<nil>", key.String())
	})

	t.Run("UsableAsMapKey", func(t *testing.T) {
		m := map[digo.ServiceKey]int{
			digo.KeyOf[mock.Database](): 1,
			digo.KeyOf[mock.Cache]():    2,
		}
		assert.Equal(t, 1, m[digo.KeyOf[mock.Database]()])
		assert.Equal(t, 2, m[digo.KeyOf[mock.Cache]()])
		assert.Len(t, m, 2)
	})
}

func TestKeysOrderWithSameRendering(t *testing.T) {
	parent := digo.KeyOf[mock.Database]()
	other := digo.KeyOf[shadow.Database]()
	assert.Equal(t, parent.String(), other.String())
	assert.NotEqual(t, parent, other)

	for i := 0; i < 20; i++ {
		reg := digo.NewRegistry()
		require.NoError(t, digo.BindSingletonFunc[shadow.Database](reg, func() shadow.Database { return &shadow.ShadowDB{} }))
		require.NoError(t, digo.BindSingletonFunc[mock.Database](reg, func() mock.Database { return mock.NewMockDB() }))
		require.NoError(t, digo.BindSingletonFunc[*mock.MockDB](reg, mock.NewMockDB))
		resolver, err := reg.Build()
		require.NoError(t, err)

		// github.com/centraunit/digo/mock sorts before .../mock/shadow
		assert.Equal(t, []digo.ServiceKey{digo.KeyOf[*mock.MockDB](), parent, other}, resolver.Keys())
	}
}

func TestLifetimeString(t *testing.T) {
	assert.Equal(t, "singleton", digo.Singleton.String())
	assert.Equal(t, "transient", digo.Transient.String())
	assert.Equal(t, "lifetime(9)", digo.Lifetime(9).String())
}
