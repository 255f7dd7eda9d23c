// Package geocoding proxies reverse-geocoding lookups through external
// providers, with a shared TTL cache, a global rate limit on the
// primary provider, and a fallback chain that always produces a
// result.
package geocoding

import "errors"

// Provider tags reported back to API callers.
const (
	ProviderNominatim    = "nominatim"
	ProviderBigDataCloud = "bigdatacloud"
	ProviderCoordinates  = "coordinates"
)

// ErrInvalidCoordinates means the lat/lon input was malformed or out
// of range. It is the only error Resolve can return.
var ErrInvalidCoordinates = errors.New("geocoding: invalid coordinates")

// Result is a resolved human-readable address and the provider that
// produced it.
type Result struct {
	Address  string `json:"address"`
	Provider string `json:"provider"`
}
