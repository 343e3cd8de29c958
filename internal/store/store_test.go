package store_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HelmerNylen/mkbsc/internal/examples"
	"github.com/HelmerNylen/mkbsc/internal/store"
)

func TestStore_CreateGetReplace(t *testing.T) {
	s := store.New()
	g, err := examples.Wagon()
	require.NoError(t, err)

	id := s.Create(g)
	assert.NotEmpty(t, id)

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Same(t, g, got)

	other, err := examples.Magiian22()
	require.NoError(t, err)
	require.NoError(t, s.Replace(id, other))

	got, err = s.Get(id)
	require.NoError(t, err)
	assert.Same(t, other, got)
}

func TestStore_GetUnknownIDFails(t *testing.T) {
	s := store.New()
	_, err := s.Get("does-not-exist")
	assert.Error(t, err)
}

func TestStore_ReplaceUnknownIDFails(t *testing.T) {
	s := store.New()
	g, err := examples.Wagon()
	require.NoError(t, err)
	assert.Error(t, s.Replace("does-not-exist", g))
}

func TestStore_ConcurrentAccessIsSafe(t *testing.T) {
	s := store.New()
	g, err := examples.Wagon()
	require.NoError(t, err)
	id := s.Create(g)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Get(id)
		}()
	}
	wg.Wait()
}
