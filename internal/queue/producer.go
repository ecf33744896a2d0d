package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"

	"travelsuite.app/api/common/metrics"
)

type EventType string

const (
	EventOrganizationCreated EventType = "organization.created"
	EventOrganizationUpdated EventType = "organization.updated"
	EventTourCreated         EventType = "tour.created"
	EventTourUpdated         EventType = "tour.updated"
	EventTourDeleted         EventType = "tour.deleted"
)

// Event describes a committed change. TourID is empty for organization events.
type Event struct {
	Type           EventType
	UserID         int64
	OrganizationID int64
	TourID         string
	OccurredAt     time.Time
}

type Producer interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Publish(ctx context.Context, event Event) error {
	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: eventFields(ctx, event),
	}).Err(); err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(string(event.Type), "error").Inc()
		return fmt.Errorf("publish event: %w", err)
	}

	metrics.EventsPublishedTotal.WithLabelValues(string(event.Type), "ok").Inc()
	p.logger.DebugContext(ctx, "published event",
		"event_type", event.Type,
		"organization_id", event.OrganizationID,
		"tour_id", event.TourID)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}

func eventFields(ctx context.Context, event Event) map[string]any {
	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	fields := map[string]any{
		"event_type":      string(event.Type),
		"user_id":         strconv.FormatInt(event.UserID, 10),
		"organization_id": strconv.FormatInt(event.OrganizationID, 10),
		"occurred_at":     occurredAt.UTC().Format(time.RFC3339Nano),
	}

	if event.TourID != "" {
		fields["tour_id"] = event.TourID
	}

	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		fields["trace_id"] = sc.TraceID().String()
	}

	return fields
}

// NopProducer drops every event. It is used when no event stream is configured.
type NopProducer struct{}

func (NopProducer) Publish(context.Context, Event) error { return nil }

func (NopProducer) Close() error { return nil }
