package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBigDataCloudBaseURL is the public BigDataCloud endpoint.
const DefaultBigDataCloudBaseURL = "https://api.bigdatacloud.net"

// BigDataCloudClient is the secondary reverse-geocoding provider. It
// is only attempted after the primary fails and is not rate limited.
type BigDataCloudClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewBigDataCloudClient(baseURL string, timeout time.Duration) *BigDataCloudClient {
	if baseURL == "" {
		baseURL = DefaultBigDataCloudBaseURL
	}
	return &BigDataCloudClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type bigDataCloudResponse struct {
	Locality             string `json:"locality"`
	City                 string `json:"city"`
	PrincipalSubdivision string `json:"principalSubdivision"`
	CountryName          string `json:"countryName"`
	LocalityInfo         struct {
		Administrative []struct {
			Name string `json:"name"`
		} `json:"administrative"`
	} `json:"localityInfo"`
}

// Reverse resolves the coordinates via BigDataCloud's client endpoint.
func (c *BigDataCloudClient) Reverse(ctx context.Context, lat, lon string) (string, error) {
	params := url.Values{}
	params.Set("latitude", lat)
	params.Set("longitude", lon)
	params.Set("localityLanguage", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/data/reverse-geocode-client?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("bigdatacloud: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("bigdatacloud: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bigdatacloud: unexpected status %d", resp.StatusCode)
	}

	var data bigDataCloudResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("bigdatacloud: decode response: %w", err)
	}

	// The most specific administrative names sit at indexes 6 and 5
	// when the hierarchy is deep enough.
	var parts []string
	admin := data.LocalityInfo.Administrative
	if len(admin) > 6 {
		parts = append(parts, admin[6].Name)
	}
	if len(admin) > 5 {
		parts = append(parts, admin[5].Name)
	}
	parts = append(parts,
		firstNonEmpty(data.Locality, data.City),
		data.PrincipalSubdivision,
		data.CountryName,
	)
	return joinNonEmpty(parts), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func joinNonEmpty(parts []string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
