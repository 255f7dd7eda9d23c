package config

import (
	"os"
	"time"
)

type GeocodingConfig struct {
	NominatimBaseURL    string
	BigDataCloudBaseURL string
	Referer             string
	RequestTimeout      time.Duration
}

func GetGeocodingConfig() *GeocodingConfig {
	cfg := &GeocodingConfig{
		NominatimBaseURL:    os.Getenv("NOMINATIM_BASE_URL"),
		BigDataCloudBaseURL: os.Getenv("BIGDATACLOUD_BASE_URL"),
		Referer:             os.Getenv("GEOCODING_REFERER"),
		RequestTimeout:      10 * time.Second,
	}
	if cfg.Referer == "" {
		cfg.Referer = "https://smartwayz.app"
	}
	if v := os.Getenv("GEOCODING_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}
	return cfg
}
