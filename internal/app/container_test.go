package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct{ name string }

func TestContainer_RegisterAndResolve(t *testing.T) {
	c := NewContainer()
	svc := &fakeService{name: "audit"}
	require.NoError(t, c.Register(svc))

	var resolved *fakeService
	require.NoError(t, c.Resolve(&resolved))
	assert.Equal(t, "audit", resolved.name)
}

func TestContainer_RegisterRejectsDuplicate(t *testing.T) {
	c := NewContainer()
	require.NoError(t, c.Register(&fakeService{}))
	assert.Error(t, c.Register(&fakeService{}))
}

func TestContainer_ResolveUnregisteredFails(t *testing.T) {
	c := NewContainer()
	var resolved *fakeService
	assert.Error(t, c.Resolve(&resolved))
}

func TestContainer_RegisterFactory(t *testing.T) {
	c := NewContainer()
	require.NoError(t, c.RegisterFactory(func() (*fakeService, error) {
		return &fakeService{name: "from-factory"}, nil
	}))

	var resolved *fakeService
	require.NoError(t, c.Resolve(&resolved))
	assert.Equal(t, "from-factory", resolved.name)
}

func TestContainer_Clear(t *testing.T) {
	c := NewContainer()
	require.NoError(t, c.Register(&fakeService{}))
	c.Clear()

	var resolved *fakeService
	assert.Error(t, c.Resolve(&resolved))
}
