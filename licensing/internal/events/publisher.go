package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
	"github.com/Astemirdum/edu-licensing/pkg/circuit_breaker"
)

//go:generate go run github.com/golang/mock/mockgen -source=publisher.go -destination=mocks/mock.go

type Publisher interface {
	Publish(ctx context.Context, ev model.BatchEvent) error
	Close() error
}

func NewPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		cb: circuit_breaker.New(circuit_breaker.Config{
			RecordLength:     100,
			Timeout:          10 * time.Second,
			Percentile:       0.2,
			RecoveryRequests: 2,
		}),
		log: log.Named("events"),
	}
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

// Publish sends ev keyed by batch id so that events of one batch stay ordered in a partition.
func (p *kafkaPublisher) Publish(_ context.Context, ev model.BatchEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.Itoa(ev.BatchID)),
		Value: sarama.ByteEncoder(data),
	}
	return p.cb.Call(func() error {
		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			return errors.Wrap(err, "send message")
		}
		p.log.Debug("event published",
			zap.String("type", ev.Type),
			zap.Int("batch_id", ev.BatchID),
			zap.Int32("partition", partition),
			zap.Int64("offset", offset))
		return nil
	})
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

// NopPublisher drops events; it is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, model.BatchEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
