package kafka

import (
	"context"
	"encoding/json"

	"lungtracker-srv/internal/report"
	"lungtracker-srv/pkg/kafka"
	"lungtracker-srv/pkg/log"
)

type implPublisher struct {
	producer kafka.IProducer
	l        log.Logger
}

// NewPublisher wraps a Kafka producer as a report lifecycle event publisher.
func NewPublisher(producer kafka.IProducer, l log.Logger) report.EventPublisher {
	return &implPublisher{
		producer: producer,
		l:        l,
	}
}

// Publish emits one lifecycle event. Failures are logged and swallowed; the
// event stream is best-effort by contract.
func (p *implPublisher) Publish(ctx context.Context, event report.ReportEvent) {
	value, err := json.Marshal(event)
	if err != nil {
		p.l.Errorf(ctx, "report.delivery.kafka.Publish: Failed to marshal event: %v", err)
		return
	}

	if err := p.producer.Publish([]byte(event.ExportID), value); err != nil {
		p.l.Warnf(ctx, "report.delivery.kafka.Publish: Failed to publish %s event for export %s: %v",
			event.Type, event.ExportID, err)
	}
}
