package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/rabbitmq/amqp091-go"
)

const (
	EventReportSaved   = "report.saved"
	EventReportDeleted = "report.deleted"
)

// ReportEvent describes a change to the saved reports list
type ReportEvent struct {
	Type       string            `json:"type"`
	ReportID   string            `json:"report_id"`
	Name       string            `json:"name,omitempty"`
	DateRange  *models.DateRange `json:"date_range,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event ReportEvent) error
}

// LogPublisher only logs events. Used when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, event ReportEvent) error {
	log.Printf("[report-events] %s id=%s name=%q", event.Type, event.ReportID, event.Name)
	return nil
}

// AMQPPublisher sends events as persistent JSON messages to a durable queue
type AMQPPublisher struct {
	mu    sync.Mutex
	ch    *amqp091.Channel
	queue string
}

func NewAMQPPublisher(conn *amqp091.Connection, queue string) (*AMQPPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}
	return &AMQPPublisher{ch: ch, queue: queue}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event ReportEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.OccurredAt,
		Type:         event.Type,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	return p.ch.Close()
}
