package movieapi

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseCache(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		c := newResponseCache(30 * time.Second)
		c.put("k", []byte("payload"), nil)

		body, err, ok := c.get("k")
		require.True(t, ok)
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), body)
	})

	t.Run("miss", func(t *testing.T) {
		c := newResponseCache(30 * time.Second)
		_, _, ok := c.get("absent")
		assert.False(t, ok)
	})

	t.Run("stale entry treated as absent", func(t *testing.T) {
		c := newResponseCache(30 * time.Second)
		now := time.Now()
		c.now = func() time.Time { return now }

		c.put("k", []byte("payload"), nil)
		now = now.Add(30 * time.Second)

		_, _, ok := c.get("k")
		assert.False(t, ok)
	})

	t.Run("errors cached alongside successes", func(t *testing.T) {
		c := newResponseCache(30 * time.Second)
		wantErr := errors.New("boom")
		c.put("k", nil, wantErr)

		_, err, ok := c.get("k")
		require.True(t, ok)
		assert.Equal(t, wantErr, err)
	})

	t.Run("zero TTL disables caching", func(t *testing.T) {
		c := newResponseCache(0)
		c.put("k", []byte("payload"), nil)
		_, _, ok := c.get("k")
		assert.False(t, ok)
	})

	t.Run("stored body isolated from caller mutation", func(t *testing.T) {
		c := newResponseCache(30 * time.Second)
		c.put("k", []byte("abc"), nil)

		body, _, ok := c.get("k")
		require.True(t, ok)
		body[0] = 'z'

		again, _, ok := c.get("k")
		require.True(t, ok)
		assert.Equal(t, []byte("abc"), again)
	})

	t.Run("clear", func(t *testing.T) {
		c := newResponseCache(30 * time.Second)
		c.put("k", []byte("payload"), nil)
		c.clear()
		_, _, ok := c.get("k")
		assert.False(t, ok)
	})
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "/home", cacheKey("/home", nil))

	params := url.Values{}
	params.Set("category", "trending")
	params.Set("limit", "24")
	assert.Equal(t, "/home?category=trending&limit=24", cacheKey("/home", params))
}
