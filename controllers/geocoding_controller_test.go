package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartwayz/api-go/geocoding"
	"github.com/smartwayz/api-go/observability"
)

type fixedProvider struct {
	address string
	err     error
}

func (p fixedProvider) Reverse(ctx context.Context, lat, lon string) (string, error) {
	return p.address, p.err
}

func newGeocodingRouter(primary, secondary geocoding.Provider) *gin.Engine {
	svc := geocoding.NewService(geocoding.Options{
		Primary:   primary,
		Secondary: secondary,
		Interval:  time.Millisecond,
		Metrics:   observability.NewMetricsForTesting(),
	})
	gc := NewGeocodingController(svc)

	r := gin.New()
	r.GET("/api/geocoding/reverse", gc.ReverseGeocode)
	return r
}

func getReverse(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestReverseGeocode_Success(t *testing.T) {
	r := newGeocodingRouter(
		fixedProvider{address: "Makati, Metro Manila, Philippines"},
		fixedProvider{err: errors.New("unused")},
	)

	w := getReverse(r, "/api/geocoding/reverse?lat=14.5547&lon=121.0244")

	require.Equal(t, http.StatusOK, w.Code)
	var result geocoding.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "Makati, Metro Manila, Philippines", result.Address)
	assert.Equal(t, geocoding.ProviderNominatim, result.Provider)
}

func TestReverseGeocode_MissingParameters(t *testing.T) {
	r := newGeocodingRouter(fixedProvider{}, fixedProvider{})

	for _, target := range []string{
		"/api/geocoding/reverse",
		"/api/geocoding/reverse?lat=14.5",
		"/api/geocoding/reverse?lon=121.0",
	} {
		w := getReverse(r, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), "Missing required parameters")
	}
}

func TestReverseGeocode_InvalidCoordinates(t *testing.T) {
	r := newGeocodingRouter(fixedProvider{}, fixedProvider{})

	w := getReverse(r, "/api/geocoding/reverse?lat=95&lon=121.0")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid coordinates")
}

func TestReverseGeocode_ProviderOutageStillSucceeds(t *testing.T) {
	r := newGeocodingRouter(
		fixedProvider{err: errors.New("down")},
		fixedProvider{err: errors.New("down")},
	)

	w := getReverse(r, "/api/geocoding/reverse?lat=14.5&lon=121.0")

	require.Equal(t, http.StatusOK, w.Code)
	var result geocoding.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "Location: 14.5, 121.0", result.Address)
	assert.Equal(t, geocoding.ProviderCoordinates, result.Provider)
}
