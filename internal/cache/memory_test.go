package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGetDelete(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("k", "v")
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)

	c.Delete("k")
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(20*time.Millisecond, time.Minute)

	c.Set("k", 1)
	time.Sleep(40 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
}
