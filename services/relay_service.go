package services

import (
	"fmt"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/pidey-coffee/utils"
)

// IRelayService forwards order events to an external consumer (a WhatsApp gateway, a printer, ...).
type IRelayService interface {
	PushMessage(topic, key string, message []byte) error
	Close() error
}

// KafkaRelayService publishes to Kafka through a sarama SyncProducer.
type KafkaRelayService struct {
	producer sarama.SyncProducer
}

// NewKafkaRelayService connects a SyncProducer that waits for all in-sync replicas.
func NewKafkaRelayService(brokers []string) (*KafkaRelayService, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("connect kafka producer: %w", err)
	}
	return NewKafkaRelayServiceWithProducer(producer), nil
}

func NewKafkaRelayServiceWithProducer(producer sarama.SyncProducer) *KafkaRelayService {
	return &KafkaRelayService{producer: producer}
}

func (k *KafkaRelayService) PushMessage(topic, key string, message []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(message),
	}
	if key != "" {
		msg.Key = sarama.StringEncoder(key)
	}

	partition, offset, err := k.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("push message to %s: %w", topic, err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"topic":     topic,
		"key":       key,
		"partition": partition,
		"offset":    offset,
	}).Info("order event relayed")
	return nil
}

func (k *KafkaRelayService) Close() error {
	return k.producer.Close()
}

// NoopRelayService is used when no relay is configured.
type NoopRelayService struct{}

func (NoopRelayService) PushMessage(string, string, []byte) error { return nil }
func (NoopRelayService) Close() error                             { return nil }
