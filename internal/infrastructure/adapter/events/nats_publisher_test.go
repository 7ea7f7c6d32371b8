package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/logger"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/config"
	coremocks "github.com/johnjerry8749/Affiliate-Academy-sub000/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingConn struct {
	subjects []string
	bodies   [][]byte
	err      error
	drained  bool
}

func (c *recordingConn) Publish(subject string, data []byte) error {
	if c.err != nil {
		return c.err
	}
	c.subjects = append(c.subjects, subject)
	c.bodies = append(c.bodies, data)
	return nil
}

func (c *recordingConn) Drain() error {
	c.drained = true
	return nil
}

func TestNATSPublisher_Publish(t *testing.T) {
	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	conn := &recordingConn{}
	p := &NATSPublisher{conn: conn, timeProvider: coremocks.FixedTime(t, now), logger: logger.NewNoopLogger()}

	err := p.Publish(context.Background(), coreport.SubjectPaymentReviewed, map[string]any{
		"payment_id": "proof-1",
		"status":     "approved",
	})
	require.NoError(t, err)

	require.Len(t, conn.bodies, 1)
	assert.Equal(t, "affiliate.payment.reviewed", conn.subjects[0])

	var env Envelope
	require.NoError(t, json.Unmarshal(conn.bodies[0], &env))
	assert.Equal(t, coreport.SubjectPaymentReviewed, env.Subject)
	assert.True(t, now.Equal(env.OccurredAt))
	assert.Equal(t, "approved", env.Data["status"])

	require.NoError(t, p.Close())
	assert.True(t, conn.drained)
}

func TestNATSPublisher_Errors(t *testing.T) {
	t.Run("connection error", func(t *testing.T) {
		p := &NATSPublisher{
			conn:         &recordingConn{err: errors.New("nats: connection closed")},
			timeProvider: coremocks.FixedTime(t, time.Now()),
			logger:       logger.NewNoopLogger(),
		}
		err := p.Publish(context.Background(), coreport.SubjectAccountRegistered, nil)
		assert.ErrorContains(t, err, "failed to publish affiliate.account.registered")
	})

	t.Run("canceled context", func(t *testing.T) {
		conn := &recordingConn{}
		p := &NATSPublisher{conn: conn, timeProvider: coremocks.FixedTime(t, time.Now()), logger: logger.NewNoopLogger()}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, p.Publish(ctx, coreport.SubjectAccountRegistered, nil), context.Canceled)
		assert.Empty(t, conn.subjects)
	})
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect(config.NATSConfig{URL: "nats://127.0.0.1:1", Name: "test"},
		coremocks.FixedTime(t, time.Now()), logger.NewNoopLogger())
	assert.ErrorContains(t, err, "failed to connect to NATS")
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher(logger.NewNoopLogger())
	assert.NoError(t, p.Publish(context.Background(), coreport.SubjectPaymentVerified, map[string]any{"x": 1}))
}
