// Package events publishes domain events for downstream consumers
// (authority dashboards, notification workers). Publishing is best
// effort: a failed publish never fails the originating request.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// ReportCreated is emitted after a report is persisted.
type ReportCreated struct {
	ID            uint      `json:"id"`
	CitizenID     uint      `json:"citizen_id"`
	CategoryID    uint      `json:"category_id"`
	CategoryName  string    `json:"category"`
	SubCategoryID *uint     `json:"sub_category_id,omitempty"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	CreatedAt     time.Time `json:"created_at"`
}

// Publisher emits domain events.
type Publisher interface {
	PublishReportCreated(ctx context.Context, event ReportCreated) error
	Close() error
}

// KafkaPublisher writes events to a Kafka topic.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *KafkaPublisher) PublishReportCreated(ctx context.Context, event ReportCreated) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal report-created event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.ID), 10)),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write report-created event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher discards events. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishReportCreated(context.Context, ReportCreated) error { return nil }
func (NopPublisher) Close() error                                              { return nil }
