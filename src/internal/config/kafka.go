package config

import (
	kafkaPkg "wallet-service/src/pkg/kafka"
	"wallet-service/src/pkg/log"

	"github.com/spf13/viper"
)

func NewKafkaConfig(viper *viper.Viper) kafkaPkg.KafkaConfig {
	configKafka := kafkaPkg.Cfg{
		KafkaUrl:      viper.GetString("kafka.bootstrap.servers"),
		KafkaUsername: viper.GetString("kafka.username"),
		KafkaPassword: viper.GetString("kafka.password"),
		ClientID:      viper.GetString("kafka.client_id"),
	}
	return kafkaPkg.InitKafkaConfig(configKafka)
}

// NewKafkaProducer returns nil when publishing is disabled; the messaging
// producers treat nil as a no-op.
func NewKafkaProducer(config *viper.Viper, log log.Log) (kafkaPkg.Producer, error) {
	if !config.GetBool("kafka.producer.enabled") {
		log.Info("kafka-config", "Kafka producer is disabled in configuration", "kafka", "")
		return nil, nil
	}
	return kafkaPkg.NewProducer(NewKafkaConfig(config), log)
}
