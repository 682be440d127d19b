package kafka

import (
	"fmt"
	"strings"
	"time"

	"wallet-service/src/pkg/log"

	"github.com/IBM/sarama"
)

type Producer interface {
	Publish(topic string, key, value []byte) error
	Close() error
}

type Cfg struct {
	KafkaUrl      string
	KafkaUsername string
	KafkaPassword string
	ClientID      string
}

type KafkaConfig struct {
	Brokers  []string
	Username string
	Password string
	ClientID string
}

func InitKafkaConfig(cfg Cfg) KafkaConfig {
	var brokers []string
	for _, b := range strings.Split(cfg.KafkaUrl, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return KafkaConfig{
		Brokers:  brokers,
		Username: cfg.KafkaUsername,
		Password: cfg.KafkaPassword,
		ClientID: cfg.ClientID,
	}
}

func (kc KafkaConfig) GetSaramaConfig() *sarama.Config {
	c := sarama.NewConfig()
	c.ClientID = kc.ClientID
	c.Producer.RequiredAcks = sarama.WaitForAll
	c.Producer.Return.Successes = true
	c.Producer.Retry.Max = 3
	c.Producer.Retry.Backoff = 500 * time.Millisecond
	c.Net.DialTimeout = 5 * time.Second
	if kc.Username != "" {
		c.Net.SASL.Enable = true
		c.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		c.Net.SASL.User = kc.Username
		c.Net.SASL.Password = kc.Password
		c.Net.TLS.Enable = true
	}
	return c
}

type syncProducer struct {
	producer sarama.SyncProducer
	log      log.Log
}

func NewProducer(kc KafkaConfig, logger log.Log) (Producer, error) {
	if len(kc.Brokers) == 0 {
		return nil, fmt.Errorf("kafka: no bootstrap servers configured")
	}
	p, err := sarama.NewSyncProducer(kc.Brokers, kc.GetSaramaConfig())
	if err != nil {
		return nil, fmt.Errorf("kafka: create producer: %w", err)
	}
	return &syncProducer{producer: p, log: logger}, nil
}

func (p *syncProducer) Publish(topic string, key, value []byte) error {
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return err
	}
	p.log.Info("kafka-producer", "message delivered", topic, fmt.Sprintf("partition=%d offset=%d", partition, offset))
	return nil
}

func (p *syncProducer) Close() error {
	return p.producer.Close()
}
