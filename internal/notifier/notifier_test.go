package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/finance"
)

type fakeChannel struct {
	declared   []string
	declareErr error
	publishErr error
	exchange   string
	key        string
	published  []amqp091.Publishing
	deadline   bool
	closed     bool
}

func (c *fakeChannel) ExchangeDeclare(name, kind string, durable, _, _, _ bool, _ amqp091.Table) error {
	c.declared = append(c.declared, name+":"+kind)
	if !durable {
		return errors.New("exchange must be durable")
	}
	return c.declareErr
}

func (c *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	_, c.deadline = ctx.Deadline()
	c.exchange = exchange
	c.key = key
	c.published = append(c.published, msg)
	return c.publishErr
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func sampleAlert() finance.Alert {
	return finance.Alert{
		ID:          uuid.Must(uuid.NewV4()),
		CategoryID:  uuid.Must(uuid.NewV4()),
		Message:     "Warning! You have spent 85.0% of the limit for category Food",
		AmountSpent: decimal.NewFromInt(85),
		LimitAmount: decimal.NewFromInt(100),
		Percentage:  decimal.NewFromInt(85),
		Date:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestAMQPPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	publisher, err := newAMQPPublisher(ch, "finance", "alerts")
	require.NoError(t, err)
	assert.Equal(t, []string{"finance:direct"}, ch.declared)

	alert := sampleAlert()
	require.NoError(t, publisher.Publish(context.Background(), alert))

	require.Len(t, ch.published, 1)
	msg := ch.published[0]
	assert.Equal(t, "finance", ch.exchange)
	assert.Equal(t, "alerts", ch.key)
	assert.True(t, ch.deadline)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)
	assert.Equal(t, alert.ID.String(), msg.MessageId)

	var event AlertEvent
	require.NoError(t, json.Unmarshal(msg.Body, &event))
	assert.Equal(t, alert.CategoryID.String(), event.CategoryID)
	assert.Equal(t, "85.00", event.AmountSpent)
	assert.Equal(t, "100.00", event.LimitAmount)
	assert.Equal(t, "85.0", event.Percentage)
	assert.Equal(t, "2025-03-14", event.Date)
}

func TestAMQPPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{publishErr: errors.New("channel closed")}
	publisher, err := newAMQPPublisher(ch, "finance", "alerts")
	require.NoError(t, err)

	err = publisher.Publish(context.Background(), sampleAlert())
	assert.ErrorContains(t, err, "channel closed")
}

func TestAMQPPublisher_DeclareError(t *testing.T) {
	_, err := newAMQPPublisher(&fakeChannel{declareErr: errors.New("access refused")}, "finance", "alerts")
	assert.ErrorContains(t, err, "declare exchange")
}

func TestAMQPPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	publisher, err := newAMQPPublisher(ch, "finance", "alerts")
	require.NoError(t, err)

	assert.NoError(t, publisher.Close())
	assert.True(t, ch.closed)
}

func TestNoopPublisher(t *testing.T) {
	var publisher AlertPublisher = NoopPublisher{}
	assert.NoError(t, publisher.Publish(context.Background(), sampleAlert()))
	assert.NoError(t, publisher.Close())
}
