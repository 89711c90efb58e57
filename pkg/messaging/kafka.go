package messaging

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
)

// Topics emitted by the ordering flow.
const (
	TopicOrderPlaced     = "order.placed"
	TopicPaymentCaptured = "payment.captured"
)

type KafkaProducer struct {
	brokers []string
	writers map[string]*kafka.Writer
}

func NewKafkaProducer(brokers []string) *KafkaProducer {
	return &KafkaProducer{
		brokers: brokers,
		writers: make(map[string]*kafka.Writer),
	}
}

func (kp *KafkaProducer) getWriter(topic string) *kafka.Writer {
	if writer, exists := kp.writers[topic]; exists {
		return writer
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(kp.brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	kp.writers[topic] = writer
	return writer
}

// SendMessage publishes value as JSON to the topic, keyed for partition
// affinity (order events are keyed by user ID).
func (kp *KafkaProducer) SendMessage(ctx context.Context, topic, key string, value interface{}) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}

	message := kafka.Message{
		Key:   []byte(key),
		Value: jsonData,
	}

	return kp.getWriter(topic).WriteMessages(ctx, message)
}

func (kp *KafkaProducer) Close() {
	for topic, writer := range kp.writers {
		if err := writer.Close(); err != nil {
			log.Printf("Failed to close Kafka writer for topic %s: %v", topic, err)
		}
	}
}
