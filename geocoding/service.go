package geocoding

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/smartwayz/api-go/observability"
)

// Provider resolves coordinates to an address string.
type Provider interface {
	Reverse(ctx context.Context, lat, lon string) (string, error)
}

// Service runs the resolve pipeline: validate, cache, rate-limited
// primary provider, secondary provider, synthesized coordinates. The
// final stage cannot fail, so provider outages never surface to the
// caller.
type Service struct {
	cache     *Cache
	limiter   *Limiter
	primary   Provider
	secondary Provider
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// Options configures a Service.
type Options struct {
	Primary   Provider
	Secondary Provider
	CacheTTL  time.Duration // defaults to 1 hour
	Interval  time.Duration // minimum spacing between primary dispatches, defaults to 1 second
	Clock     clockwork.Clock
	Logger    *slog.Logger
	Metrics   *observability.Metrics
}

func NewService(opts Options) *Service {
	if opts.CacheTTL == 0 {
		opts.CacheTTL = time.Hour
	}
	if opts.Interval == 0 {
		opts.Interval = time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = observability.NewMetricsForTesting()
	}
	return &Service{
		cache:     NewCache(opts.CacheTTL, opts.Clock),
		limiter:   NewLimiter(opts.Interval, opts.Clock),
		primary:   opts.Primary,
		secondary: opts.Secondary,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
	}
}

// Resolve maps the literal lat/lon strings to an address. The only
// possible error is ErrInvalidCoordinates; every provider failure is
// absorbed by the fallback chain.
func (s *Service) Resolve(ctx context.Context, lat, lon string) (Result, error) {
	if err := validateCoordinates(lat, lon); err != nil {
		return Result{}, err
	}

	key := CacheKey(lat, lon)
	if cached, ok := s.cache.Get(key); ok {
		s.metrics.GeocodeCache.WithLabelValues("hit").Inc()
		return cached, nil
	}
	s.metrics.GeocodeCache.WithLabelValues("miss").Inc()

	// Primary: global 1-per-interval pacing, then dispatch.
	s.limiter.Wait()
	if address, err := s.attempt(ctx, s.primary, ProviderNominatim, lat, lon); err == nil {
		result := Result{Address: address, Provider: ProviderNominatim}
		s.cache.Put(key, result)
		return result, nil
	}

	// Secondary: no rate limit.
	if address, err := s.attempt(ctx, s.secondary, ProviderBigDataCloud, lat, lon); err == nil {
		result := Result{Address: address, Provider: ProviderBigDataCloud}
		s.cache.Put(key, result)
		return result, nil
	}

	// Last resort: never fails, never cached.
	return Result{
		Address:  fmt.Sprintf("Location: %s, %s", lat, lon),
		Provider: ProviderCoordinates,
	}, nil
}

func (s *Service) attempt(ctx context.Context, provider Provider, name, lat, lon string) (string, error) {
	start := time.Now()
	address, err := provider.Reverse(ctx, lat, lon)
	s.metrics.GeocodeProviderDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.GeocodeRequests.WithLabelValues(name, "error").Inc()
		s.logger.Warn("reverse geocoding provider failed",
			"provider", name,
			"lat", lat,
			"lon", lon,
			"error", err,
		)
		return "", err
	}
	s.metrics.GeocodeRequests.WithLabelValues(name, "success").Inc()
	return address, nil
}

func validateCoordinates(lat, lon string) error {
	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return ErrInvalidCoordinates
	}
	lonF, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return ErrInvalidCoordinates
	}
	// Written as negated range checks so NaN fails too.
	if !(latF >= -90 && latF <= 90) || !(lonF >= -180 && lonF <= 180) {
		return ErrInvalidCoordinates
	}
	return nil
}
