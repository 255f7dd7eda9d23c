package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"time"
)

// DefaultNominatimBaseURL is the public OpenStreetMap Nominatim endpoint.
const DefaultNominatimBaseURL = "https://nominatim.openstreetmap.org"

// userAgents is the fixed pool a request's User-Agent is drawn from.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
}

func randomUserAgent() string {
	return userAgents[rand.Intn(len(userAgents))]
}

// NominatimClient is the primary reverse-geocoding provider.
type NominatimClient struct {
	baseURL    string
	referer    string
	httpClient *http.Client
}

// NewNominatimClient creates a client against baseURL with the given
// request timeout. An empty baseURL means the public endpoint.
func NewNominatimClient(baseURL, referer string, timeout time.Duration) *NominatimClient {
	if baseURL == "" {
		baseURL = DefaultNominatimBaseURL
	}
	return &NominatimClient{
		baseURL:    baseURL,
		referer:    referer,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type nominatimAddress struct {
	Road          string `json:"road"`
	Street        string `json:"street"`
	Suburb        string `json:"suburb"`
	Neighbourhood string `json:"neighbourhood"`
	City          string `json:"city"`
	Town          string `json:"town"`
	Municipality  string `json:"municipality"`
	Village       string `json:"village"`
	State         string `json:"state"`
	Province      string `json:"province"`
	Country       string `json:"country"`
}

type nominatimResponse struct {
	DisplayName string            `json:"display_name"`
	Address     *nominatimAddress `json:"address"`
}

// Reverse resolves the coordinates to a human-readable address. The
// lat/lon strings are forwarded verbatim to the provider.
func (c *NominatimClient) Reverse(ctx context.Context, lat, lon string) (string, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", lat)
	params.Set("lon", lon)
	params.Set("zoom", "18")
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("nominatim: create request: %w", err)
	}
	req.Header.Set("User-Agent", randomUserAgent())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en")
	if c.referer != "" {
		req.Header.Set("Referer", c.referer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("nominatim: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("nominatim: unexpected status %d", resp.StatusCode)
	}

	var data nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("nominatim: decode response: %w", err)
	}

	if data.Address == nil {
		return data.DisplayName, nil
	}
	addr := data.Address
	parts := []string{
		firstNonEmpty(addr.Road, addr.Street),
		firstNonEmpty(addr.Suburb, addr.Neighbourhood),
		firstNonEmpty(addr.City, addr.Town, addr.Municipality, addr.Village),
		firstNonEmpty(addr.State, addr.Province),
		addr.Country,
	}
	return joinNonEmpty(parts), nil
}
