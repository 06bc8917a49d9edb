package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
)

const orderEventsTopic = "order_events"

// Producer は注文イベントをKafkaに流す。
// brokersが空ならnilを返し、呼び出し側はnilセーフに扱う。
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	if len(brokers) == 0 {
		return nil
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    orderEventsTopic,
			Balancer: &kafka.Hash{},
		},
	}
}

// PublishEvent はイベントをJSONで発行する。
// ベストエフォート。失敗しても注文自体は成立している。
func (p *Producer) PublishEvent(ctx context.Context, key string, event interface{}) error {
	if p == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
