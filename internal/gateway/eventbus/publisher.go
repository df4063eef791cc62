package eventbus

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"marketplace/internal/entities"
)

const headerEventType = "event_type"

// Publisher отправляет outbox-сообщения в топик событий заказа. Ключ сообщения
// id заказа, поэтому события одного заказа попадают в одну партицию по порядку.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

func New(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *Publisher) Publish(ctx context.Context, message entities.OutboxMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, _, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(message.Key),
		Value: sarama.ByteEncoder(message.Payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(headerEventType), Value: []byte(message.EventType)},
		},
	})
	if err != nil {
		return fmt.Errorf("publish outbox message %d: %w", message.ID, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
