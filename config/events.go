package config

import (
	"os"
	"strings"
)

type EventsConfig struct {
	KafkaBrokers []string
	ReportsTopic string
}

// GetEventsConfig reads the Kafka publishing settings. Empty
// KafkaBrokers means event publishing is disabled.
func GetEventsConfig() *EventsConfig {
	cfg := &EventsConfig{
		ReportsTopic: os.Getenv("KAFKA_REPORTS_TOPIC"),
	}
	if cfg.ReportsTopic == "" {
		cfg.ReportsTopic = "report-created"
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	return cfg
}
