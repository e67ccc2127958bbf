package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheExpires(t *testing.T) {
	c := New[int](time.Minute)
	defer c.Close()

	now := time.Unix(1_700_000_000, 0)
	c.now = func() time.Time { return now }

	c.Set("max", 255)
	got, ok := c.Get("max")
	require.True(t, ok)
	assert.Equal(t, 255, got)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("max")
	assert.False(t, ok)

	c.sweep()
	assert.Zero(t, c.Len())
}

func TestCacheGetOrSetDoesNotCacheErrors(t *testing.T) {
	c := New[string](time.Minute)
	defer c.Close()

	calls := 0
	boom := errors.New("store down")
	_, err := c.GetOrSet("k", func() (string, error) {
		calls++
		return "", boom
	})
	require.ErrorIs(t, err, boom)

	for i := 0; i < 2; i++ {
		v, err := c.GetOrSet("k", func() (string, error) {
			calls++
			return "v", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "v", v)
	}
	assert.Equal(t, 2, calls)
}

func TestCacheZeroTTLDisablesCaching(t *testing.T) {
	c := New[int](0)
	defer c.Close()

	c.Set("k", 1)
	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}
