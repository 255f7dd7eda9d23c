package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominatimClient_Reverse(t *testing.T) {
	var gotQuery map[string]string
	var gotHeaders http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reverse", r.URL.Path)
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		gotHeaders = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"display_name": "full display name",
			"address": {
				"road": "Ayala Avenue",
				"suburb": "Bel-Air",
				"city": "Makati",
				"state": "Metro Manila",
				"country": "Philippines"
			}
		}`))
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL, "https://smartwayz.app", 5*time.Second)
	address, err := client.Reverse(context.Background(), "14.5547", "121.0244")
	require.NoError(t, err)
	assert.Equal(t, "Ayala Avenue, Bel-Air, Makati, Metro Manila, Philippines", address)

	assert.Equal(t, map[string]string{
		"format":         "json",
		"lat":            "14.5547",
		"lon":            "121.0244",
		"zoom":           "18",
		"addressdetails": "1",
	}, gotQuery)
	assert.Equal(t, "https://smartwayz.app", gotHeaders.Get("Referer"))
	assert.Equal(t, "en", gotHeaders.Get("Accept-Language"))
	assert.Contains(t, userAgents, gotHeaders.Get("User-Agent"))
}

func TestNominatimClient_ComponentFallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"display_name": "somewhere",
			"address": {
				"street": "Session Road",
				"neighbourhood": "Lower Session",
				"town": "Baguio",
				"province": "Benguet",
				"country": "Philippines"
			}
		}`))
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL, "", 5*time.Second)
	address, err := client.Reverse(context.Background(), "16.41", "120.59")
	require.NoError(t, err)
	assert.Equal(t, "Session Road, Lower Session, Baguio, Benguet, Philippines", address)
}

func TestNominatimClient_DisplayNameWhenNoAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"display_name": "Pacific Ocean"}`))
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL, "", 5*time.Second)
	address, err := client.Reverse(context.Background(), "0", "150")
	require.NoError(t, err)
	assert.Equal(t, "Pacific Ocean", address)
}

func TestNominatimClient_Non200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL, "", 5*time.Second)
	_, err := client.Reverse(context.Background(), "14.5", "121.0")
	assert.ErrorContains(t, err, "unexpected status 429")
}

func TestBigDataCloudClient_Reverse(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/data/reverse-geocode-client", r.URL.Path)
		gotQuery = map[string]string{
			"latitude":         r.URL.Query().Get("latitude"),
			"longitude":        r.URL.Query().Get("longitude"),
			"localityLanguage": r.URL.Query().Get("localityLanguage"),
		}
		w.Write([]byte(`{
			"locality": "Makati",
			"principalSubdivision": "Metro Manila",
			"countryName": "Philippines",
			"localityInfo": {
				"administrative": [
					{"name": "Philippines"},
					{"name": "Luzon"},
					{"name": "NCR"},
					{"name": "Metro Manila"},
					{"name": "Makati"},
					{"name": "District 1"},
					{"name": "Bel-Air"}
				]
			}
		}`))
	}))
	defer srv.Close()

	client := NewBigDataCloudClient(srv.URL, 5*time.Second)
	address, err := client.Reverse(context.Background(), "14.5547", "121.0244")
	require.NoError(t, err)
	assert.Equal(t, "Bel-Air, District 1, Makati, Metro Manila, Philippines", address)
	assert.Equal(t, map[string]string{
		"latitude":         "14.5547",
		"longitude":        "121.0244",
		"localityLanguage": "en",
	}, gotQuery)
}

func TestBigDataCloudClient_ShallowAdministrativeHierarchy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"city": "Cebu City",
			"principalSubdivision": "Central Visayas",
			"countryName": "Philippines",
			"localityInfo": {"administrative": [{"name": "Philippines"}]}
		}`))
	}))
	defer srv.Close()

	client := NewBigDataCloudClient(srv.URL, 5*time.Second)
	address, err := client.Reverse(context.Background(), "10.31", "123.89")
	require.NoError(t, err)
	assert.Equal(t, "Cebu City, Central Visayas, Philippines", address)
}

func TestBigDataCloudClient_Non200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewBigDataCloudClient(srv.URL, 5*time.Second)
	_, err := client.Reverse(context.Background(), "14.5", "121.0")
	assert.ErrorContains(t, err, "unexpected status 500")
}
