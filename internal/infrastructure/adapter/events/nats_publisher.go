package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/config"
	"github.com/nats-io/nats.go"
)

// Envelope is the wire format of every published event
type Envelope struct {
	Subject    string         `json:"subject"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data"`
}

type publisherConn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// NATSPublisher implements core.EventPublisher on a core NATS connection
type NATSPublisher struct {
	conn         publisherConn
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// Connect dials NATS and returns a publisher
func Connect(cfg config.NATSConfig, timeProvider coreport.TimeProvider, logger coreport.Logger) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.Name),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected with error", map[string]any{"error": err.Error()})
			} else {
				logger.Warn("NATS disconnected", nil)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("NATS reconnected", nil)
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("Connected to NATS", map[string]any{"url": cfg.URL})
	return &NATSPublisher{conn: nc, timeProvider: timeProvider, logger: logger}, nil
}

// Publish sends an event. NATS buffers the message; delivery is best-effort.
func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(Envelope{
		Subject:    subject,
		OccurredAt: p.timeProvider.Now(),
		Data:       payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	p.logger.Debug("Event published", map[string]any{"subject": subject})
	return nil
}

// Close drains pending messages and closes the connection
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}

// NoopPublisher drops every event. Used when no NATS URL is configured.
type NoopPublisher struct {
	logger coreport.Logger
}

// NewNoopPublisher creates a publisher that only logs
func NewNoopPublisher(logger coreport.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

// Publish implements core.EventPublisher
func (p *NoopPublisher) Publish(_ context.Context, subject string, _ map[string]any) error {
	p.logger.Debug("Event dropped, no broker configured", map[string]any{"subject": subject})
	return nil
}
