package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
	"github.com/Astemirdum/edu-licensing/pkg/circuit_breaker"
)

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()
	ev := model.BatchEvent{
		Type:      model.EventBatchCreated,
		BatchID:   12,
		BookID:    7,
		Quantity:  3,
		Customer:  model.CustomerSecretary,
		Status:    model.BatchCreated,
		Timestamp: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "license-batches" {
			return errors.Errorf("unexpected topic %s", msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "12" {
			return errors.Errorf("unexpected key %s", key)
		}
		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var got model.BatchEvent
		if err := json.Unmarshal(value, &got); err != nil {
			return err
		}
		if !got.Timestamp.Equal(ev.Timestamp) || got.BatchID != ev.BatchID || got.Type != ev.Type {
			return errors.Errorf("unexpected event %+v", got)
		}
		return nil
	})

	p := NewPublisher(producer, "license-batches", zap.NewNop())
	require.NoError(t, p.Publish(context.Background(), ev))
	require.NoError(t, p.Close())
}

func TestPublisher_BrokerDown(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewPublisher(producer, "license-batches", zap.NewNop()).(*kafkaPublisher)
	p.cb = circuit_breaker.New(circuit_breaker.Config{RecordLength: 1, Timeout: time.Minute, Percentile: 0.5, RecoveryRequests: 1})

	err := p.Publish(context.Background(), model.BatchEvent{BatchID: 1})
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)

	// the breaker is open now, the producer is not called again
	err = p.Publish(context.Background(), model.BatchEvent{BatchID: 1})
	require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)
	require.NoError(t, p.Close())
}

func TestNopPublisher(t *testing.T) {
	t.Parallel()
	var p Publisher = NopPublisher{}
	require.NoError(t, p.Publish(context.Background(), model.BatchEvent{}))
	require.NoError(t, p.Close())
}
