package geocoding

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_HitWithinTTL(t *testing.T) {
	fc := clockwork.NewFakeClock()
	c := NewCache(time.Hour, fc)

	want := Result{Address: "Makati, Metro Manila, Philippines", Provider: ProviderNominatim}
	c.Put(CacheKey("14.5", "121.0"), want)

	fc.Advance(59 * time.Minute)

	got, ok := c.Get(CacheKey("14.5", "121.0"))
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestCache_ExpiresAfterTTL(t *testing.T) {
	fc := clockwork.NewFakeClock()
	c := NewCache(time.Hour, fc)

	c.Put(CacheKey("14.5", "121.0"), Result{Address: "x", Provider: ProviderNominatim})

	fc.Advance(time.Hour + time.Minute)

	_, ok := c.Get(CacheKey("14.5", "121.0"))
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "expired entry should be dropped")
}

func TestCacheKey_LiteralStringsAreDistinct(t *testing.T) {
	// "14.5" and "14.50" name the same point but are distinct cache
	// entries on purpose.
	assert.NotEqual(t, CacheKey("14.5", "121.0"), CacheKey("14.50", "121.0"))
	assert.Equal(t, CacheKey("14.5", "121.0"), CacheKey("14.5", "121.0"))
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c := NewCache(time.Hour, clockwork.NewFakeClock())
	_, ok := c.Get(CacheKey("0", "0"))
	assert.False(t, ok)
}
